package models

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealSlots lists the three fixed meal slots in display order.
var MealSlots = []MealType{MealBreakfast, MealLunch, MealDinner}

// ValidMealType reports whether mealType names one of the fixed slots.
func ValidMealType(mealType MealType) bool {
	for _, m := range MealSlots {
		if m == mealType {
			return true
		}
	}
	return false
}

type MenuItem struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Menu is the published item list for one (date, meal_type) pair. At most one
// menu exists per pair; republishing replaces Items wholesale and keeps the id.
type Menu struct {
	ID       int        `json:"id"`
	Date     string     `json:"date"`
	MealType MealType   `json:"meal_type"`
	Items    []MenuItem `json:"items"`
}
