// Package dish holds the menu-dish aggregate and its embedded ingredient
// entries.
package dish

// Collection is the docstore collection dishes live in.
const Collection = "dishes"

// Ingredient is a value object embedded in a Dish. LibID is a weak link
// into the ingredient library; old data may not carry it.
type Ingredient struct {
	LibID    string `json:"libId,omitempty"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Detail   string `json:"detail,omitempty"`
}

type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Category    string       `json:"category"`
	ImageURL    string       `json:"imageUrl"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
}

// CreateRequest is the creation body; the id is assigned by the store.
type CreateRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Category    string       `json:"category"`
	ImageURL    string       `json:"imageUrl"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
}
