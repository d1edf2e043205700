// Package dashboard derives summary statistics over the whole order,
// dish, and supplier collections. Nothing here is persisted or cached;
// every call re-scans, which is fine at this deployment's data volume.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/mobilebanquet/banquet-service/internal/dish"
	"github.com/mobilebanquet/banquet-service/internal/docstore"
	"github.com/mobilebanquet/banquet-service/internal/order"
	"github.com/mobilebanquet/banquet-service/internal/supplier"
)

// recentLimit bounds the recentOrders list.
const recentLimit = 5

type Stats struct {
	TotalOrders    int           `json:"totalOrders"`
	TotalDishes    int           `json:"totalDishes"`
	TotalSuppliers int           `json:"totalSuppliers"`
	ActiveOrders   int           `json:"activeOrders"`
	RecentOrders   []order.Order `json:"recentOrders"`
}

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	store docstore.Store
}

func NewService(store docstore.Store) Service {
	return &service{store: store}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	orders := make([]order.Order, 0)
	if err := s.store.List(ctx, order.Collection, &orders); err != nil {
		log.Error().Err(err).Msg("service: failed to list orders for stats")
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	dishes := make([]dish.Dish, 0)
	if err := s.store.List(ctx, dish.Collection, &dishes); err != nil {
		log.Error().Err(err).Msg("service: failed to list dishes for stats")
		return nil, fmt.Errorf("service: failed to list dishes: %w", err)
	}
	suppliers := make([]supplier.Supplier, 0)
	if err := s.store.List(ctx, supplier.Collection, &suppliers); err != nil {
		log.Error().Err(err).Msg("service: failed to list suppliers for stats")
		return nil, fmt.Errorf("service: failed to list suppliers: %w", err)
	}

	stats := Compute(orders, len(dishes), len(suppliers))
	return &stats, nil
}

// Compute folds the order collection into the dashboard counts and the
// bounded most-recent ranking. Orders with equal start dates keep their
// relative collection order; the sort must stay stable for that to hold.
func Compute(orders []order.Order, totalDishes, totalSuppliers int) Stats {
	active := 0
	for _, o := range orders {
		if o.Status == order.StatusToBeExecuted {
			active++
		}
	}

	// Dates are fixed-width ISO strings, so lexical compare is date order.
	recent := make([]order.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].StartDate > recent[j].StartDate
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return Stats{
		TotalOrders:    len(orders),
		TotalDishes:    totalDishes,
		TotalSuppliers: totalSuppliers,
		ActiveOrders:   active,
		RecentOrders:   recent,
	}
}
