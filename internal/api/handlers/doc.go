package handlers

// ErrorResponse is the error body returned outside huma's error model,
// such as by the panic recovery middleware.
type ErrorResponse struct {
	Error string `json:"error" example:"internal server error"`
}

// StatusResponse is the body of the health and readiness endpoints.
type StatusResponse struct {
	Status string `json:"status" example:"ready"`
}
