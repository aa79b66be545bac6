package dto

// LoginRequest carries the shared admin credential.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed bearer token for the admin session.
type LoginResponse struct {
	Token string `json:"token"`
}
