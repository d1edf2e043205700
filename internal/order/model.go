// Package order holds the catering-order aggregate: a multi-day engagement
// whose day plans each carry a lunch and a dinner sitting with table counts
// and dish selections. The aggregate is persisted and replaced whole.
package order

// Collection is the docstore collection orders live in.
const Collection = "orders"

// Status labels are the Chinese strings the original clients store and
// display; they are part of the wire format, not presentation.
type Status string

const (
	StatusToBeExecuted Status = "待执行"
	StatusCompleted    Status = "已完成"
)

const (
	SlotLunch  = "lunch"
	SlotDinner = "dinner"
)

// DishInSlot is a weak reference to a Dish plus a quantity. The dish id is
// not checked for existence at write time.
type DishInSlot struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

type MealSlot struct {
	// Type must match the slot key the MealSlot sits under.
	Type       string       `json:"type"`
	TableCount int          `json:"tableCount"`
	Dishes     []DishInSlot `json:"dishes"`
}

type DayPlanSlots struct {
	Lunch  *MealSlot `json:"lunch,omitempty"`
	Dinner *MealSlot `json:"dinner,omitempty"`
}

type DayPlan struct {
	Date  string       `json:"date"`
	Slots DayPlanSlots `json:"slots"`
}

type Order struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	EventReason   string    `json:"eventReason"`
	Address       string    `json:"address"`
	DaysCount     int       `json:"daysCount"`
	StartDate     string    `json:"startDate"`
	Status        Status    `json:"status"`
	Plans         []DayPlan `json:"plans"`
}

// CreateRequest is the creation body; id and orderNumber are generated by
// the backend. Absent plans are generated from startDate and daysCount.
type CreateRequest struct {
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	EventReason   string    `json:"eventReason"`
	Address       string    `json:"address"`
	DaysCount     int       `json:"daysCount"`
	StartDate     string    `json:"startDate"`
	Plans         []DayPlan `json:"plans"`
}
