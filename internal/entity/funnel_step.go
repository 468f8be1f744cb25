package entity

import "fmt"

// FunnelStep es una etapa del embudo. El orden es fijo y compartido
// entre el tracker y todos los consumidores que calculan porcentajes.
type FunnelStep string

const (
	StepWelcome    FunnelStep = "WELCOME"
	StepHistoria   FunnelStep = "HISTORIA"
	StepInstaLogin FunnelStep = "INSTA_LOGIN"
	StepFeed       FunnelStep = "FEED"
	StepSalesPage  FunnelStep = "SALES_PAGE"

	// StepAdmin es un marcador administrativo, nunca cuenta como progreso.
	StepAdmin FunnelStep = "ADMIN"
)

var orderedSteps = []FunnelStep{
	StepWelcome,
	StepHistoria,
	StepInstaLogin,
	StepFeed,
	StepSalesPage,
	StepAdmin,
}

// progressSteps se calcula una sola vez: el embudo sin el marcador admin.
var progressSteps = func() []FunnelStep {
	steps := make([]FunnelStep, 0, len(orderedSteps)-1)
	for _, s := range orderedSteps {
		if s != StepAdmin {
			steps = append(steps, s)
		}
	}
	return steps
}()

// ProgressSteps devuelve las etapas que cuentan para la conversión, en orden.
func ProgressSteps() []FunnelStep {
	out := make([]FunnelStep, len(progressSteps))
	copy(out, progressSteps)
	return out
}

func ParseFunnelStep(raw string) (FunnelStep, error) {
	for _, s := range orderedSteps {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("etapa desconocida: %q", raw)
}
