package usecase

import (
	"context"
	"math"

	"github.com/PescadorStudios/Vlado/internal/entity"
)

// DefaultSessionWindow es la ventana de sesiones recientes sobre la que se
// calculan los porcentajes del embudo. Los porcentajes son una aproximación
// deliberada sobre la actividad reciente, no sobre todo el histórico: el
// dashboard gana en respuesta lo que pierde en exactitud.
const DefaultSessionWindow = 100

type StepConversion struct {
	Step    entity.FunnelStep `json:"step"`
	Percent int               `json:"percent"`
}

type DashboardMetricsOutput struct {
	TotalSessions  int64            `json:"total_sessions"`
	TotalLeads     int64            `json:"total_leads"`
	TotalBienestar int64            `json:"total_bienestar"`
	Funnel         []StepConversion `json:"funnel"`
	SalesConv      int              `json:"sales_conversion"`
	LeadConv       int              `json:"lead_conversion"`
}

type DashboardMetricsUseCase struct {
	Sessions SessionRepositoryInterface
	Leads    LeadQueryInterface
	Users    BienestarRepositoryInterface
	Window   int
}

func NewDashboardMetricsUseCase(
	sessions SessionRepositoryInterface,
	leads LeadQueryInterface,
	users BienestarRepositoryInterface,
	window int,
) *DashboardMetricsUseCase {
	if window <= 0 {
		window = DefaultSessionWindow
	}
	return &DashboardMetricsUseCase{
		Sessions: sessions,
		Leads:    leads,
		Users:    users,
		Window:   window,
	}
}

// Execute junta los totales (conteo completo de cada colección) con los
// porcentajes de conversión sobre la ventana reciente.
func (uc *DashboardMetricsUseCase) Execute(ctx context.Context) (*DashboardMetricsOutput, error) {
	totalSessions, err := uc.Sessions.Count(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "STORE_UNAVAILABLE", Message: "failed to count sessions: " + err.Error()}
	}
	totalLeads, err := uc.Leads.Count(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "STORE_UNAVAILABLE", Message: "failed to count leads: " + err.Error()}
	}
	totalBienestar, err := uc.Users.Count(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "STORE_UNAVAILABLE", Message: "failed to count users: " + err.Error()}
	}

	recent, err := uc.Sessions.Recent(ctx, uc.Window)
	if err != nil {
		return nil, &TechnicalError{Code: "STORE_UNAVAILABLE", Message: "failed to load recent sessions: " + err.Error()}
	}

	steps := entity.ProgressSteps()
	funnel := make([]StepConversion, 0, len(steps))
	for _, step := range steps {
		funnel = append(funnel, StepConversion{
			Step:    step,
			Percent: entity.ConversionRate(recent, step),
		})
	}

	return &DashboardMetricsOutput{
		TotalSessions:  totalSessions,
		TotalLeads:     totalLeads,
		TotalBienestar: totalBienestar,
		Funnel:         funnel,
		SalesConv:      entity.ConversionRate(recent, entity.StepSalesPage),
		LeadConv:       LeadConversion(totalSessions, totalLeads),
	}, nil
}

// LeadConversion es el porcentaje de sesiones que terminaron en lead.
// Con cero sesiones devuelve 0.
func LeadConversion(totalSessions, totalLeads int64) int {
	if totalSessions <= 0 {
		return 0
	}
	return int(math.Round(float64(totalLeads) / float64(totalSessions) * 100))
}
