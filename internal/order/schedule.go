package order

import "time"

// DateLayout is the fixed-width ISO form all order dates are stored in.
const DateLayout = "2006-01-02"

// ParseStartDate parses an order start date. ok is false when the value
// does not parse; the caller then anchors the schedule at today and should
// log the substitution, since the stored startDate and the generated plan
// dates will disagree.
func ParseStartDate(s string) (start time.Time, ok bool) {
	start, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}

// GeneratePlans builds one DayPlan per consecutive calendar day beginning
// at start, each with empty lunch and dinner sittings. Pure function of
// its inputs.
func GeneratePlans(start time.Time, daysCount int) []DayPlan {
	plans := make([]DayPlan, 0, daysCount)
	for i := 0; i < daysCount; i++ {
		day := start.AddDate(0, 0, i)
		plans = append(plans, DayPlan{
			Date: day.Format(DateLayout),
			Slots: DayPlanSlots{
				Lunch:  emptySlot(SlotLunch),
				Dinner: emptySlot(SlotDinner),
			},
		})
	}
	return plans
}

func emptySlot(slotType string) *MealSlot {
	return &MealSlot{Type: slotType, TableCount: 0, Dishes: []DishInSlot{}}
}
