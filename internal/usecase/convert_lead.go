package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/matheusvll/casaflor-api/internal/entity"
	"github.com/matheusvll/casaflor-api/internal/infra/queue"
)

type ConvertLeadInput struct {
	LeadID    string `json:"lead_id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"type"`
}

// ConvertLeadUseCase transforma um lead em evento: marca o lead como
// "closed" e cria o evento apontando para ele via client_id.
//
// São DUAS escritas sequenciais em duas tabelas, sem transação entre elas.
// Se a criação do evento falhar depois do update do lead, o sistema fica
// parcialmente convertido — isso sai como erro PARTIAL_CONVERSION para o
// caller enxergar e resolver, nunca é re-tentado por baixo dos panos.
type ConvertLeadUseCase struct {
	LeadRepo  entity.LeadRepositoryInterface
	EventRepo entity.EventRepositoryInterface
	Queue     QueueProducerInterface
}

func NewConvertLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	eventRepo entity.EventRepositoryInterface,
	producer QueueProducerInterface,
) *ConvertLeadUseCase {
	return &ConvertLeadUseCase{
		LeadRepo:  leadRepo,
		EventRepo: eventRepo,
		Queue:     producer,
	}
}

func (uc *ConvertLeadUseCase) Execute(ctx context.Context, input ConvertLeadInput) (*entity.Event, error) {
	validationErrors := ValidateConvertLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: errMsg,
		}
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeLeadNotFound,
			Message: "lead não encontrado: " + err.Error(),
		}
	}

	// Escrita 1: o lead sai do funil.
	if _, err := uc.LeadRepo.Update(ctx, lead.ID, map[string]any{
		"status": string(entity.LeadStatusClosed),
	}); err != nil {
		return nil, &TechnicalError{
			Code:    "LEAD_UPDATE_FAILED",
			Message: "falha ao fechar o lead: " + err.Error(),
		}
	}

	// Escrita 2: nasce o evento. Se falhar aqui, o lead JÁ está closed.
	event := &entity.Event{
		Title:     input.Title,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
		Status:    string(entity.EventStatusPending),
		ClientID:  &lead.ID,
	}
	created, err := uc.EventRepo.Create(ctx, event)
	if err != nil {
		return nil, &DomainError{
			Code:    CodePartialConversion,
			Message: "lead " + lead.ID + " foi marcado como closed mas o evento não foi criado: " + err.Error(),
		}
	}

	// Notificação é melhor esforço: a conversão já aconteceu, falha aqui só
	// gera log.
	if uc.Queue != nil {
		payload := queue.ConversionPayload{
			MessageID:   uuid.New().String(),
			LeadID:      lead.ID,
			LeadName:    lead.Name,
			LeadContact: lead.Contact,
			EventID:     created.ID,
			EventTitle:  created.Title,
			EventType:   created.Type,
			StartDate:   created.StartDate,
			EndDate:     created.EndDate,
		}
		if err := uc.Queue.PublishConversion(ctx, payload); err != nil {
			log.Printf("⚠️ Falha ao publicar conversão na fila: %v", err)
		}
	}

	return created, nil
}
