package models

// ErrorResponse is the body of every error produced by the proxy itself.
type ErrorResponse struct {
	// Detail is a human-readable message naming the failed operation.
	Detail string `json:"detail"`
}
