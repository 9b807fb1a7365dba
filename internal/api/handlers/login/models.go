package login

// LoginRequest HTTP request model
type LoginRequest struct {
	Token string `json:"token"`
}
