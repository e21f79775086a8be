package dto

// LogInput carries the raw field values from an entry form submission.
// Validation happens in the domain, not at this boundary.
type LogInput struct {
	Name      string
	Duration  string
	Intensity string
}

type ActivityOutput struct {
	ID          int64
	Name        string
	DurationMin int
	Intensity   string
	Date        string
	Line        string
}
