package usecase

import (
	"context"

	"github.com/PescadorStudios/Vlado/internal/entity"
	"github.com/PescadorStudios/Vlado/internal/infra/queue"
)

type CaptureLeadInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CaptureLeadOutput struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}

type CaptureLeadUseCase struct {
	Leads entity.LeadRepositoryInterface
	Queue QueueProducerInterface
}

func NewCaptureLeadUseCase(leads entity.LeadRepositoryInterface, producer QueueProducerInterface) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Leads: leads,
		Queue: producer,
	}
}

// Execute crea SIEMPRE un lead nuevo: un lead es un evento de conversión,
// no una identidad. No toca la sesión que lo originó.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	if validationErrors := ValidateCaptureLeadInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	lead, err := entity.NewLead(input.Name, input.Phone)
	if err != nil {
		return nil, &DomainError{
			Code:    "INVALID_LEAD",
			Message: err.Error(),
		}
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_UNAVAILABLE",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	// Aviso al equipo de campaña, fuera del camino crítico.
	if uc.Queue != nil {
		go func() {
			uc.Queue.PublishNotification(context.Background(), queue.NotificationPayload{
				Kind:  queue.KindLeadCaptured,
				Name:  lead.Name,
				Phone: lead.Phone,
			})
		}()
	}

	return &CaptureLeadOutput{
		ID:  lead.ID,
		Msg: "¡Registro exitoso! Pronto nos pondremos en contacto.",
	}, nil
}
