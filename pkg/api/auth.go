package api

// LoginRequest is the body of POST /api/v1/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the credential token issued on successful login.
type TokenResponse struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ExpiresIn int64  `json:"expires_in"` // access token lifetime in seconds
}

// ProfileResponse describes the identity behind a credential token.
type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse is the common error body returned by the server.
// Fields is only populated for validation failures.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
