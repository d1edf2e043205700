package order

import (
	"fmt"

	"github.com/mobilebanquet/banquet-service/internal/apperr"
)

// validateOrder checks the aggregate's structural invariants before it is
// persisted. Dish references inside slots are weak and deliberately not
// resolved here.
func validateOrder(o *Order) error {
	if o.DaysCount < 1 {
		return apperr.Validation("daysCount", "must be a positive integer, got %d", o.DaysCount)
	}
	if o.Status != StatusToBeExecuted && o.Status != StatusCompleted {
		return apperr.Validation("status", "unknown status %q", o.Status)
	}
	return validatePlans(o.Plans)
}

func validatePlans(plans []DayPlan) error {
	for i, plan := range plans {
		base := fmt.Sprintf("plans[%d]", i)
		if err := validateSlot(base+".slots.lunch", SlotLunch, plan.Slots.Lunch); err != nil {
			return err
		}
		if err := validateSlot(base+".slots.dinner", SlotDinner, plan.Slots.Dinner); err != nil {
			return err
		}
	}
	return nil
}

func validateSlot(path, wantType string, slot *MealSlot) error {
	if slot == nil {
		return nil
	}
	if slot.Type != wantType {
		return apperr.Validation(path+".type", "must be %q, got %q", wantType, slot.Type)
	}
	if slot.TableCount < 0 {
		return apperr.Validation(path+".tableCount", "must be non-negative, got %d", slot.TableCount)
	}
	for i, d := range slot.Dishes {
		if d.Quantity < 1 {
			return apperr.Validation(fmt.Sprintf("%s.dishes[%d].quantity", path, i),
				"must be at least 1, got %d", d.Quantity)
		}
	}
	return nil
}
