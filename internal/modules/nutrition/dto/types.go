package dto

// LogInput carries the raw field values from the nutrition form. Empty
// macro fields are legal and normalize to 0 during validation.
type LogInput struct {
	FoodItem string
	Calories string
	Carbs    string
	Protein  string
	Fats     string
}

type EntryOutput struct {
	ID       int64
	FoodItem string
	Calories int
	Carbs    int
	Protein  int
	Fats     int
	Date     string
	Line     string
}
