package sysconfig_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mobilebanquet/banquet-service/internal/apperr"
	"github.com/mobilebanquet/banquet-service/internal/docstore"
	"github.com/mobilebanquet/banquet-service/internal/sysconfig"
)

func TestService_Get_AbsentReturnsEmptyDefault(t *testing.T) {
	svc := sysconfig.NewService(docstore.NewMemory())

	cfg, err := svc.Get(context.Background(), "dish_categories")

	assert.NoError(t, err)
	assert.Equal(t, &sysconfig.SystemConfig{ID: "dish_categories", Label: "Unknown", Values: []string{}}, cfg)
}

func TestService_SaveAndGet(t *testing.T) {
	svc := sysconfig.NewService(docstore.NewMemory())
	ctx := context.Background()

	saved, err := svc.Save(ctx, &sysconfig.SystemConfig{
		ID:     "event_reasons",
		Label:  "活动事由",
		Values: []string{"婚宴", "寿宴", "满月酒"},
	})
	assert.NoError(t, err)

	got, err := svc.Get(ctx, "event_reasons")
	assert.NoError(t, err)
	assert.Equal(t, saved, got)

	// Saving again overwrites the value list whole.
	_, err = svc.Save(ctx, &sysconfig.SystemConfig{ID: "event_reasons", Label: "活动事由", Values: []string{"婚宴"}})
	assert.NoError(t, err)

	got, err = svc.Get(ctx, "event_reasons")
	assert.NoError(t, err)
	assert.Equal(t, []string{"婚宴"}, got.Values)

	configs, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, configs, 1)
}

func TestService_Save_RequiresID(t *testing.T) {
	svc := sysconfig.NewService(docstore.NewMemory())

	_, err := svc.Save(context.Background(), &sysconfig.SystemConfig{Label: "x"})

	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "id", ve.Field)
}
