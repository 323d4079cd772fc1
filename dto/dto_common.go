package dto

// ===== Error Response =====
type ErrorResponse struct {
	Message string `json:"message" example:"invalid body"`
}

// UserExistsResponse is returned by POST /users when the email is taken.
type UserExistsResponse struct {
	Message    string  `json:"message" example:"user already exists"`
	InsertedID *string `json:"insertedId"`
}
