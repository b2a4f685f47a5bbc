package dto

// SignInRequest são as credenciais de POST /auth/signin
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInResponse carrega o bearer token
type SignInResponse struct {
	AccessToken string `json:"accessToken"`
}
