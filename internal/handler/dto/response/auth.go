package response

import "hotel-front-desk/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}

type CustomerResponse struct {
	AccessToken string                `json:"access_token,omitempty"`
	Customer    *queries.CustomerView `json:"customer"`
}
