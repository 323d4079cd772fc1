package dto

type PaymentIntentRequest struct {
	Price Number `json:"price" example:"19.99"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
