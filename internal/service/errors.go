package service

import "errors"

// Ошибки потока авторизации
var (
	ErrGoogleTokenVerificationFailed = errors.New("google_token_verification_failed")
)
