package orderRepo

import (
	"context"

	"viavela/models"
)

// OrderRepository persists confirmed booking orders. The booking gate treats
// Create as a black box: it either succeeds or the error is surfaced to the
// caller unchanged, with no retry.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	GetByProvider(ctx context.Context, providerID string) ([]models.Order, error)
}
