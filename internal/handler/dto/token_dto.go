package dto

// TokenResponse - модель токена авторизации
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
