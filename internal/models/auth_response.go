package models

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	AccessToken string `json:"accessToken"` // JWT bearer token
}
