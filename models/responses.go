package models

// MessageResponse is the {"msg": ...} body returned by favorite operations.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the {"error": ...} body returned for missing entities
// and unexpected failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Route describes one registered endpoint of the API.
type Route struct {
	Method  string `json:"method"`
	Pattern string `json:"pattern"`
}
