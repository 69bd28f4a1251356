package dto

// ErrorResponse is the shape of every client-facing error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse wraps a message into the standard error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// MessageResponse is a bare confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}
