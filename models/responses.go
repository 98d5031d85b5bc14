package models

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse is the uniform error envelope. The kind of failure is
// reflected only by the status code and the message text.
type ErrorResponse struct {
	Message string `json:"message"`
}
