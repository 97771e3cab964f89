package atomicdto

// ErrorResponse carries a user-facing rejection or failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}
