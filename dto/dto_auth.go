package dto

// Identity is the part of the token claims the handlers care about.
type Identity struct {
	Email string `mapstructure:"email"`
	Name  string `mapstructure:"name"`
	Role  string `mapstructure:"role"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
