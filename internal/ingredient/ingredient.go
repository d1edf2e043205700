// Package ingredient maintains the two-level ingredient library: level-1
// categories and level-2 sub-categories that point at a level-1 parent.
// Dishes reference library items by id only; deleting an item never
// cascades into dishes or into level-2 children.
package ingredient

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mobilebanquet/banquet-service/internal/apperr"
	"github.com/mobilebanquet/banquet-service/internal/docstore"
)

// Collection is the docstore collection library items live in.
const Collection = "ingredient_library"

var ErrNotFound = errors.New("ingredient library item not found")

type LibraryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Level 1 is a category, level 2 a sub-category under ParentID.
	Level    int    `json:"level"`
	ParentID string `json:"parentId,omitempty"`
}

type Service interface {
	Save(ctx context.Context, item *LibraryItem) (*LibraryItem, error)
	List(ctx context.Context) ([]LibraryItem, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store docstore.Store
}

func NewService(store docstore.Store) Service {
	return &service{store: store}
}

// Save upserts a library item. The model structurally caps depth at two,
// so the only invariant to enforce is that a level-2 item's parent
// resolves to an existing level-1 item; nothing else checks it.
func (s *service) Save(ctx context.Context, item *LibraryItem) (*LibraryItem, error) {
	switch item.Level {
	case 1:
		if item.ParentID != "" {
			return nil, apperr.Validation("parentId", "level-1 item must not have a parent")
		}
	case 2:
		if item.ParentID == "" {
			return nil, apperr.Validation("parentId", "level-2 item requires a parent")
		}
		var parent LibraryItem
		if err := s.store.Get(ctx, Collection, item.ParentID, &parent); err != nil {
			if errors.Is(err, docstore.ErrNotFound) {
				return nil, apperr.Validation("parentId", "parent %q does not exist", item.ParentID)
			}
			log.Error().Err(err).Str("parent_id", item.ParentID).Msg("service: failed to resolve parent item")
			return nil, fmt.Errorf("service: failed to resolve parent %s: %w", item.ParentID, err)
		}
		if parent.Level != 1 {
			return nil, apperr.Validation("parentId", "parent %q is not a level-1 item", item.ParentID)
		}
	default:
		return nil, apperr.Validation("level", "must be 1 or 2, got %d", item.Level)
	}

	if item.ID == "" {
		item.ID = s.store.NewID()
	}
	if err := s.store.Set(ctx, Collection, item.ID, item); err != nil {
		log.Error().Err(err).Str("item_id", item.ID).Msg("service: failed to store library item")
		return nil, fmt.Errorf("service: failed to save ingredient: %w", err)
	}

	log.Info().Str("item_id", item.ID).Int("level", item.Level).Msg("service: ingredient saved")
	return item, nil
}

// List returns the flat collection; grouping level-2 items under their
// parents is the consumer's concern.
func (s *service) List(ctx context.Context) ([]LibraryItem, error) {
	items := make([]LibraryItem, 0)
	if err := s.store.List(ctx, Collection, &items); err != nil {
		log.Error().Err(err).Msg("service: failed to list ingredient library")
		return nil, fmt.Errorf("service: failed to list ingredients: %w", err)
	}
	return items, nil
}

// Delete removes one item. Level-2 children of a deleted level-1 item and
// dish references to the deleted id are left dangling on purpose.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, Collection, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Str("item_id", id).Msg("service: failed to delete library item")
		return fmt.Errorf("service: failed to delete ingredient %s: %w", id, err)
	}
	log.Info().Str("item_id", id).Msg("service: ingredient deleted")
	return nil
}
