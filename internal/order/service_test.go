package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mobilebanquet/banquet-service/internal/apperr"
	"github.com/mobilebanquet/banquet-service/internal/docstore"
	"github.com/mobilebanquet/banquet-service/internal/order"
)

func newTestService() order.Service {
	return order.NewService(docstore.NewMemory())
}

func TestOrderService_Create_GeneratesSchedule(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &order.CreateRequest{
		CustomerName:  "张三",
		CustomerPhone: "13800000000",
		EventReason:   "婚宴",
		DaysCount:     2,
		StartDate:     "2024-01-10",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Regexp(t, `^#CRT-\d{5}$`, created.OrderNumber)
	assert.Equal(t, order.StatusToBeExecuted, created.Status)
	assert.Len(t, created.Plans, 2)
	assert.Equal(t, "2024-01-10", created.Plans[0].Date)
	assert.Equal(t, "2024-01-11", created.Plans[1].Date)
	for _, plan := range created.Plans {
		assert.NotNil(t, plan.Slots.Lunch)
		assert.NotNil(t, plan.Slots.Dinner)
		assert.Empty(t, plan.Slots.Lunch.Dishes)
		assert.Empty(t, plan.Slots.Dinner.Dishes)
	}

	// The aggregate must round-trip through the store whole.
	fetched, err := svc.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestOrderService_Create_SuppliedPlansUsedVerbatim(t *testing.T) {
	svc := newTestService()

	// One plan against daysCount 3: supplied plans are not cross-checked.
	plans := []order.DayPlan{{
		Date: "2024-06-01",
		Slots: order.DayPlanSlots{
			Lunch: &order.MealSlot{Type: order.SlotLunch, TableCount: 12, Dishes: []order.DishInSlot{
				{DishID: "dish-1", Quantity: 3},
			}},
		},
	}}

	created, err := svc.Create(context.Background(), &order.CreateRequest{
		CustomerName: "李四",
		DaysCount:    3,
		StartDate:    "2024-06-01",
		Plans:        plans,
	})

	assert.NoError(t, err)
	assert.Equal(t, plans, created.Plans)
}

func TestOrderService_Create_Validation(t *testing.T) {
	badSlotType := []order.DayPlan{{
		Date:  "2024-06-01",
		Slots: order.DayPlanSlots{Lunch: &order.MealSlot{Type: "dinner"}},
	}}
	negativeTables := []order.DayPlan{{
		Date:  "2024-06-01",
		Slots: order.DayPlanSlots{Dinner: &order.MealSlot{Type: "dinner", TableCount: -1}},
	}}
	zeroQuantity := []order.DayPlan{{
		Date: "2024-06-01",
		Slots: order.DayPlanSlots{Lunch: &order.MealSlot{Type: "lunch", Dishes: []order.DishInSlot{
			{DishID: "dish-1", Quantity: 0},
		}}},
	}}

	tests := []struct {
		name      string
		req       *order.CreateRequest
		wantField string
	}{
		{
			name:      "zero_days",
			req:       &order.CreateRequest{CustomerName: "a", DaysCount: 0, StartDate: "2024-06-01"},
			wantField: "daysCount",
		},
		{
			name:      "negative_days",
			req:       &order.CreateRequest{CustomerName: "a", DaysCount: -2, StartDate: "2024-06-01"},
			wantField: "daysCount",
		},
		{
			name:      "slot_type_mismatch",
			req:       &order.CreateRequest{CustomerName: "a", DaysCount: 1, StartDate: "2024-06-01", Plans: badSlotType},
			wantField: "plans[0].slots.lunch.type",
		},
		{
			name:      "negative_table_count",
			req:       &order.CreateRequest{CustomerName: "a", DaysCount: 1, StartDate: "2024-06-01", Plans: negativeTables},
			wantField: "plans[0].slots.dinner.tableCount",
		},
		{
			name:      "zero_dish_quantity",
			req:       &order.CreateRequest{CustomerName: "a", DaysCount: 1, StartDate: "2024-06-01", Plans: zeroQuantity},
			wantField: "plans[0].slots.lunch.dishes[0].quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			_, err := svc.Create(context.Background(), tt.req)

			var ve *apperr.ValidationError
			assert.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestOrderService_Create_NegativeDaysWithoutPlans(t *testing.T) {
	svc := newTestService()

	// No plans supplied, so creation would reach the schedule generator:
	// the bad daysCount must surface as a field error, never further.
	_, err := svc.Create(context.Background(), &order.CreateRequest{
		CustomerName: "张三",
		DaysCount:    -2,
		StartDate:    "2024-06-01",
	})

	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	assert.Equal(t, "daysCount", ve.Field)

	orders, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_Create_UnparseableStartDateFallsBack(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &order.CreateRequest{
		CustomerName: "王五",
		DaysCount:    2,
		StartDate:    "not-a-date",
	})

	// Kept leniency: the order is created anyway, anchored at today, and
	// the visible startDate keeps the bad value.
	assert.NoError(t, err)
	assert.Equal(t, "not-a-date", created.StartDate)
	assert.Len(t, created.Plans, 2)
}

func TestOrderService_Replace(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &order.CreateRequest{
		CustomerName: "张三",
		DaysCount:    2,
		StartDate:    "2024-01-10",
	})
	assert.NoError(t, err)

	t.Run("overwrite_clears_absent_plans", func(t *testing.T) {
		replacement := &order.Order{
			OrderNumber:   created.OrderNumber,
			CustomerName:  "张三",
			CustomerPhone: "13900000000",
			DaysCount:     2,
			StartDate:     "2024-01-10",
			Status:        order.StatusCompleted,
			// Plans deliberately omitted: full-overwrite semantics.
		}

		replaced, err := svc.Replace(context.Background(), created.ID, replacement)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, replaced.ID)
		assert.Equal(t, []order.DayPlan{}, replaced.Plans)

		fetched, err := svc.GetByID(context.Background(), created.ID)
		assert.NoError(t, err)
		assert.Equal(t, []order.DayPlan{}, fetched.Plans)
		assert.Equal(t, order.StatusCompleted, fetched.Status)
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		_, err := svc.Replace(context.Background(), created.ID, &order.Order{
			CustomerName: "张三",
			DaysCount:    2,
			StartDate:    "2024-01-10",
			Status:       "shipped",
		})

		var ve *apperr.ValidationError
		assert.True(t, errors.As(err, &ve))
		assert.Equal(t, "status", ve.Field)
	})

	t.Run("missing_target", func(t *testing.T) {
		_, err := svc.Replace(context.Background(), "no-such-order", &order.Order{
			DaysCount: 1,
			Status:    order.StatusToBeExecuted,
		})
		assert.ErrorIs(t, err, order.ErrNotFound)
	})
}

func TestOrderService_Delete(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &order.CreateRequest{
		CustomerName: "张三",
		DaysCount:    1,
		StartDate:    "2024-01-10",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, order.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), order.ErrNotFound)
}

func TestOrderService_List(t *testing.T) {
	svc := newTestService()

	orders, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, orders)

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(context.Background(), &order.CreateRequest{
			CustomerName: name,
			DaysCount:    1,
			StartDate:    "2024-01-10",
		})
		assert.NoError(t, err)
	}

	orders, err = svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, "a", orders[0].CustomerName)
	assert.Equal(t, "c", orders[2].CustomerName)
}
