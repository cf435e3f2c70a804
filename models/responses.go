package models

// ErrorResponse is the JSON body of every failed API call.
//
// Code is a stable machine-readable identifier clients can branch on;
// Error is a human-readable message. ServerVersion is set only for
// version conflicts.
type ErrorResponse struct {
	Error         string `json:"error"`
	Code          string `json:"code"`
	ServerVersion *int64 `json:"serverVersion,omitempty"`
}

// MessageResponse is the body of operations that only acknowledge success.
type MessageResponse struct {
	Message string `json:"message"`
}
