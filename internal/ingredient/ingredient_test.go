package ingredient_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mobilebanquet/banquet-service/internal/apperr"
	"github.com/mobilebanquet/banquet-service/internal/docstore"
	"github.com/mobilebanquet/banquet-service/internal/ingredient"
)

func TestService_Save(t *testing.T) {
	tests := []struct {
		name      string
		seed      []ingredient.LibraryItem
		item      ingredient.LibraryItem
		wantField string
	}{
		{
			name: "level1_ok",
			item: ingredient.LibraryItem{Name: "肉类", Level: 1},
		},
		{
			name:      "level1_with_parent",
			seed:      []ingredient.LibraryItem{{ID: "cat-1", Name: "肉类", Level: 1}},
			item:      ingredient.LibraryItem{Name: "菜类", Level: 1, ParentID: "cat-1"},
			wantField: "parentId",
		},
		{
			name: "level2_with_existing_parent",
			seed: []ingredient.LibraryItem{{ID: "cat-1", Name: "肉类", Level: 1}},
			item: ingredient.LibraryItem{Name: "牛肉", Level: 2, ParentID: "cat-1"},
		},
		{
			name:      "level2_missing_parent",
			item:      ingredient.LibraryItem{Name: "牛肉", Level: 2, ParentID: "no-such-id"},
			wantField: "parentId",
		},
		{
			name: "level2_parent_is_level2",
			seed: []ingredient.LibraryItem{
				{ID: "cat-1", Name: "肉类", Level: 1},
				{ID: "sub-1", Name: "牛肉", Level: 2, ParentID: "cat-1"},
			},
			item:      ingredient.LibraryItem{Name: "牛腩", Level: 2, ParentID: "sub-1"},
			wantField: "parentId",
		},
		{
			name:      "level2_without_parent",
			item:      ingredient.LibraryItem{Name: "牛肉", Level: 2},
			wantField: "parentId",
		},
		{
			name:      "level_out_of_range",
			item:      ingredient.LibraryItem{Name: "x", Level: 3},
			wantField: "level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := docstore.NewMemory()
			ctx := context.Background()
			for _, s := range tt.seed {
				assert.NoError(t, store.Set(ctx, ingredient.Collection, s.ID, s))
			}
			svc := ingredient.NewService(store)

			saved, err := svc.Save(ctx, &tt.item)

			if tt.wantField != "" {
				var ve *apperr.ValidationError
				assert.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
				assert.Equal(t, tt.wantField, ve.Field)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, saved.ID)

			items, err := svc.List(ctx)
			assert.NoError(t, err)
			found := false
			for _, it := range items {
				if it.ID == saved.ID {
					found = true
				}
			}
			assert.True(t, found, "saved item must appear in the listing")
		})
	}
}

func TestService_Delete_NoCascade(t *testing.T) {
	store := docstore.NewMemory()
	ctx := context.Background()
	svc := ingredient.NewService(store)

	parent, err := svc.Save(ctx, &ingredient.LibraryItem{Name: "肉类", Level: 1})
	assert.NoError(t, err)
	child, err := svc.Save(ctx, &ingredient.LibraryItem{Name: "牛肉", Level: 2, ParentID: parent.ID})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, parent.ID))

	// The level-2 child is left dangling on purpose.
	items, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, child.ID, items[0].ID)
	assert.Equal(t, parent.ID, items[0].ParentID)

	assert.ErrorIs(t, svc.Delete(ctx, "no-such-id"), ingredient.ErrNotFound)
}
