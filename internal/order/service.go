package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mobilebanquet/banquet-service/internal/apperr"
	"github.com/mobilebanquet/banquet-service/internal/docstore"
)

var ErrNotFound = errors.New("order not found")

type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	Replace(ctx context.Context, id string, o *Order) (*Order, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store docstore.Store
}

func NewService(store docstore.Store) Service {
	return &service{store: store}
}

// Create validates the request, generates the day schedule when no plans
// were supplied, and persists the new aggregate. Supplied plans are used
// verbatim and are not cross-checked against daysCount or startDate.
func (s *service) Create(ctx context.Context, req *CreateRequest) (*Order, error) {
	// Checked before plan generation: the generator sizes its slice from
	// daysCount and must never see a negative value.
	if req.DaysCount < 1 {
		return nil, apperr.Validation("daysCount", "must be a positive integer, got %d", req.DaysCount)
	}

	o := &Order{
		ID:            s.store.NewID(),
		OrderNumber:   newOrderNumber(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		EventReason:   req.EventReason,
		Address:       req.Address,
		DaysCount:     req.DaysCount,
		StartDate:     req.StartDate,
		Status:        StatusToBeExecuted,
		Plans:         req.Plans,
	}

	if len(o.Plans) == 0 {
		start, ok := ParseStartDate(req.StartDate)
		if !ok {
			// Kept leniency from the original backend: an unparseable
			// startDate anchors the schedule at today. The stored
			// startDate and the plan dates then disagree, so flag it.
			log.Warn().
				Str("start_date", req.StartDate).
				Str("customer", req.CustomerName).
				Msg("service: start date did not parse, generating schedule from today")
			start = time.Now()
		}
		o.Plans = GeneratePlans(start, req.DaysCount)
	}

	if err := validateOrder(o); err != nil {
		log.Warn().Err(err).Msg("service: order creation rejected")
		return nil, err
	}

	if err := s.store.Set(ctx, Collection, o.ID, o); err != nil {
		log.Error().Err(err).Str("order_id", o.ID).Msg("service: failed to store new order")
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}

	log.Info().Str("order_id", o.ID).Str("order_number", o.OrderNumber).Msg("service: order created")
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	if err := s.store.Get(ctx, Collection, id, &o); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("order_id", id).Msg("service: failed to fetch order")
		return nil, fmt.Errorf("service: failed to fetch order %s: %w", id, err)
	}
	return &o, nil
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	orders := make([]Order, 0)
	if err := s.store.List(ctx, Collection, &orders); err != nil {
		log.Error().Err(err).Msg("service: failed to list orders")
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	return orders, nil
}

// Replace overwrites an existing order with the incoming document, whole.
// Fields the caller omitted are cleared, never merged with the prior
// state; downstream consumers depend on that.
func (s *service) Replace(ctx context.Context, id string, o *Order) (*Order, error) {
	var existing Order
	if err := s.store.Get(ctx, Collection, id, &existing); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("order_id", id).Msg("service: failed to fetch order for replace")
		return nil, fmt.Errorf("service: failed to fetch order %s: %w", id, err)
	}

	// The path id wins; orderNumber is generated once and kept.
	o.ID = id
	if o.OrderNumber == "" {
		o.OrderNumber = existing.OrderNumber
	}
	if o.Plans == nil {
		o.Plans = []DayPlan{}
	}

	if err := validateOrder(o); err != nil {
		log.Warn().Err(err).Str("order_id", id).Msg("service: order replacement rejected")
		return nil, err
	}

	if err := s.store.Set(ctx, Collection, id, o); err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("service: failed to store replaced order")
		return nil, fmt.Errorf("service: failed to replace order %s: %w", id, err)
	}

	log.Info().Str("order_id", id).Msg("service: order replaced")
	return o, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, Collection, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Str("order_id", id).Msg("service: failed to delete order")
		return fmt.Errorf("service: failed to delete order %s: %w", id, err)
	}
	log.Info().Str("order_id", id).Msg("service: order deleted")
	return nil
}

// newOrderNumber builds the human-facing code shown on tickets, e.g.
// "#CRT-48213". The numeric part is uniform over [10000, 99999];
// collisions are not checked because the number is informational, not a
// join key.
func newOrderNumber() string {
	return fmt.Sprintf("#CRT-%d", 10000+rand.IntN(90000))
}
