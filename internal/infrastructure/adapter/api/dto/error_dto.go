package dto

// InternalServerErrorMessage is the only detail a store or server failure exposes
const InternalServerErrorMessage = "Internal Server Error"

// ErrorResponse represents a standardized error response for the API.
// Code is set for client errors only.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// InternalError returns the opaque body sent for server-side failures
func InternalError() ErrorResponse {
	return ErrorResponse{Error: InternalServerErrorMessage}
}
