package models

// ErrorResponse is the JSON error body returned by every failing endpoint.
// Detail carries a short human-readable description of what went wrong,
// e.g. "stamp not found for batch_id=abc123".
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// LivenessResponse is the body of the lightweight liveness endpoint.
// It is served without contacting the node.
type LivenessResponse struct {
	Status string `json:"status"`
}
