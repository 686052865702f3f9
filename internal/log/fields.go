package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldExpenseID   = "id"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldDate        = "date"
	FieldMonth       = "month"
)

// ComponentCLI is the component every record carries; the tool runs one
// command per process, so there is a single logging component.
const ComponentCLI = "cli"
