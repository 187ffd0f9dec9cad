package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// FieldErrorResponse carries a validation failure tied to a single form
// field, e.g. an overpayment rejection on the amount field.
type FieldErrorResponse struct {
	Error string `json:"error" example:"amount exceeds remaining balance"`
	Field string `json:"field" example:"amount"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
