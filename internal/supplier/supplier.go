// Package supplier is a pass-through CRUD aggregate with no relation to
// orders.
package supplier

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mobilebanquet/banquet-service/internal/docstore"
)

// Collection is the docstore collection suppliers live in.
const Collection = "suppliers"

var ErrNotFound = errors.New("supplier not found")

type Supplier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone"`
	Note        string `json:"note,omitempty"`
}

type Service interface {
	Create(ctx context.Context, sup *Supplier) (*Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
	Replace(ctx context.Context, id string, sup *Supplier) (*Supplier, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store docstore.Store
}

func NewService(store docstore.Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, sup *Supplier) (*Supplier, error) {
	if sup.ID == "" {
		sup.ID = s.store.NewID()
	}
	if err := s.store.Set(ctx, Collection, sup.ID, sup); err != nil {
		log.Error().Err(err).Str("supplier_id", sup.ID).Msg("service: failed to store new supplier")
		return nil, fmt.Errorf("service: failed to create supplier: %w", err)
	}
	log.Info().Str("supplier_id", sup.ID).Str("name", sup.Name).Msg("service: supplier created")
	return sup, nil
}

func (s *service) List(ctx context.Context) ([]Supplier, error) {
	suppliers := make([]Supplier, 0)
	if err := s.store.List(ctx, Collection, &suppliers); err != nil {
		log.Error().Err(err).Msg("service: failed to list suppliers")
		return nil, fmt.Errorf("service: failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *service) Replace(ctx context.Context, id string, sup *Supplier) (*Supplier, error) {
	var existing Supplier
	if err := s.store.Get(ctx, Collection, id, &existing); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("supplier_id", id).Msg("service: failed to fetch supplier for replace")
		return nil, fmt.Errorf("service: failed to fetch supplier %s: %w", id, err)
	}

	sup.ID = id
	if err := s.store.Set(ctx, Collection, id, sup); err != nil {
		log.Error().Err(err).Str("supplier_id", id).Msg("service: failed to store replaced supplier")
		return nil, fmt.Errorf("service: failed to replace supplier %s: %w", id, err)
	}
	return sup, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, Collection, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Str("supplier_id", id).Msg("service: failed to delete supplier")
		return fmt.Errorf("service: failed to delete supplier %s: %w", id, err)
	}
	log.Info().Str("supplier_id", id).Msg("service: supplier deleted")
	return nil
}
