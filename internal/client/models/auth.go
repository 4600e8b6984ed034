package models

// Credentials is the body of POST /api/users/login/.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is the login response.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest is the body of POST /api/users/logout/.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest is the body of POST /api/users/token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries the new access token. The refresh token is not
// rotated.
type RefreshResponse struct {
	Access string `json:"access"`
}
