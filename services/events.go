package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/bill-printing-app/models"
)

// Publishers fans one event out to every publisher and joins their errors.
type Publishers []EventPublisher

func (p Publishers) PublishOrderEvent(ctx context.Context, event models.OrderEvent) error {
	var errs []error
	for _, pub := range p {
		if pub == nil {
			continue
		}
		if err := pub.PublishOrderEvent(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
