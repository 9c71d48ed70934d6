package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	"github.com/yourusername/quizcraft-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
	"github.com/yourusername/quizcraft-api/pkg/auth"
)

// GoogleVerifier проверяет внешний ID-токен и возвращает подтвержденные клеймы
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleTokenInfo, error)
}

// AuthService обменивает проверенный внешний ID-токен на локально подписанный
// токен доступа. При первом входе пользователь создается из клеймов Google.
type AuthService struct {
	userRepo   repository.UserRepository
	google     GoogleVerifier
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис авторизации
func NewAuthService(userRepo repository.UserRepository, google GoogleVerifier, jwtService *auth.JWTService) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if google == nil {
		return nil, fmt.Errorf("google verifier is required")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("jwt service is required")
	}
	return &AuthService{
		userRepo:   userRepo,
		google:     google,
		jwtService: jwtService,
	}, nil
}

// Login проверяет ID-токен Google и возвращает локальный токен доступа.
// Ошибка проверки внешнего токена транслируется в apperrors.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, idToken string) (string, error) {
	info, err := s.google.VerifyIDToken(ctx, idToken)
	if err != nil {
		log.Printf("[AuthService] Ошибка проверки токена Google: %v", err)
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	user, err := s.ensureUser(info)
	if err != nil {
		return "", err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", err
	}

	log.Printf("[AuthService] Пользователь %s авторизован, email=%s", user.GUID, user.Email)
	return token, nil
}

// ensureUser находит пользователя по email из клеймов или создает нового.
// Email защищен уникальным индексом: если конкурирующий вход успел создать
// запись первым, конфликт перечитывается как успешный вход.
func (s *AuthService) ensureUser(info *GoogleTokenInfo) (*entity.User, error) {
	user, err := s.userRepo.GetByEmail(info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user = &entity.User{
		Name:    info.GivenName,
		Surname: info.FamilyName,
		Email:   info.Email,
	}
	err = s.userRepo.Create(user)
	if err == nil {
		log.Printf("[AuthService] Первый вход: создан пользователь guid=%s email=%s", user.GUID, user.Email)
		return user, nil
	}
	if errors.Is(err, apperrors.ErrConflict) {
		return s.userRepo.GetByEmail(info.Email)
	}
	return nil, err
}
