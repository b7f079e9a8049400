package verify_account_token

// VerifyTokenRequest HTTP request model
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// VerifyTokenResponse HTTP response model
type VerifyTokenResponse struct {
	Valid bool `json:"valid"`
}
