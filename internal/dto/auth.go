package dto

// LoginRequest carries the gate credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// TipResponse returns the AI savings tip (or a degradation message).
type TipResponse struct {
	Tip string `json:"tip"`
}
