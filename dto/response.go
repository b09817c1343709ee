package dto

// ErrorResponseDTO is the common error envelope. Fields is only set for
// validation errors and lists every offending field at once.
type ErrorResponseDTO struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// MessageResponseDTO is the common confirmation envelope.
type MessageResponseDTO struct {
	Message string `json:"message"`
}

// CounterResponseDTO carries the new value after a counter increment.
type CounterResponseDTO struct {
	Message  string `json:"message"`
	NewCount int64  `json:"new_count"`
}
