package booking

import (
	"context"
	"fmt"
	"time"

	orderRepo "viavela/database/repository/order"
	"viavela/models"
	"viavela/services/availability"
	"viavela/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService accepts gated booking submissions and records orders.
type BookingService interface {
	SubmitBooking(ctx context.Context, providerID string, req models.BookingRequest) (*models.Order, error)
	ListOrders(ctx context.Context, providerID string) ([]models.Order, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Availability availability.AvailabilityService
	Orders       orderRepo.OrderRepository
	Clock        availability.Clock // optional; nil falls back to the system clock
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}

// SubmitBooking re-validates the (date, time) pair against freshly generated
// slots, then hands the order to the repository. Collaborator failures
// propagate unchanged with no retry; the caller keeps the submitted data and
// may resubmit.
func (s *DefaultBookingService) SubmitBooking(ctx context.Context, providerID string, req models.BookingRequest) (*models.Order, error) {
	logger := utils.GetLogger()

	slots, err := s.Availability.DaySlots(ctx, providerID, req.Date)
	if err != nil {
		// An unparseable date is the submitter's problem, not a server fault.
		if _, dateErr := models.NormalizeDate(req.Date); dateErr != nil {
			return nil, newValidationError("date", "booking date is not a valid date")
		}
		return nil, fmt.Errorf("failed to compute availability: %w", err)
	}

	validated, err := ValidateSubmission(req, slots)
	if err != nil {
		logger.Debug("booking submission rejected",
			zap.String("providerID", providerID), zap.Error(err))
		return nil, err
	}

	order := &models.Order{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		Customer:   validated.Customer,
		Service:    validated.Service,
		Date:       validated.Date,
		Time:       validated.Time,
		Status:     "pending",
		CreatedAt:  s.now().UTC(),
	}
	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	logger.Info("booking created",
		zap.String("orderID", order.ID),
		zap.String("providerID", providerID),
		zap.String("date", order.Date),
		zap.String("time", order.Time))
	return order, nil
}

func (s *DefaultBookingService) ListOrders(ctx context.Context, providerID string) ([]models.Order, error) {
	orders, err := s.Orders.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}
