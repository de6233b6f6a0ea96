package models

// SignUpRequest is the typed request body of POST /auth/signUp.
// All three fields are required non-empty strings.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the typed request body of POST /auth/login.
// Both fields are required non-empty strings.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the success body of both auth endpoints: the account
// record plus a signed bearer token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ErrorResponse is the failure body of both auth endpoints.
//
// Validation failures populate Message; conflict, credential, and server
// failures populate Error. The split mirrors the public API contract, so
// exactly one of the two fields is set per response.
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
