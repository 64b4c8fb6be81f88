package usecase

import (
	"context"

	"github.com/matheusvll/casaflor-api/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishConversion(ctx context.Context, payload queue.ConversionPayload) error
}
