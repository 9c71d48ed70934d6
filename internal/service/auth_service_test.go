package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
	"github.com/yourusername/quizcraft-api/pkg/auth"
)

// ============================================================================
// Моки для тестирования AuthService
// ============================================================================

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Count(guids []uuid.UUID) (int64, error) {
	args := m.Called(guids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByGUID(guid uuid.UUID) (bool, error) {
	args := m.Called(guid)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetByGUID(guid uuid.UUID) (*entity.User, error) {
	args := m.Called(guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(guids []uuid.UUID, limit, offset int) ([]entity.User, error) {
	args := m.Called(guids, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(guid uuid.UUID, updates map[string]interface{}) (*entity.User, error) {
	args := m.Called(guid, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Delete(guid uuid.UUID) error {
	args := m.Called(guid)
	return args.Error(0)
}

// MockGoogleVerifier реализует GoogleVerifier
type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) VerifyIDToken(ctx context.Context, idToken string) (*GoogleTokenInfo, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GoogleTokenInfo), args.Error(1)
}

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService("test-secret", "HS256", 30)
	require.NoError(t, err)
	return svc
}

// ============================================================================
// Тесты
// ============================================================================

func TestAuthService_Login_InvalidGoogleToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	google := new(MockGoogleVerifier)
	google.On("VerifyIDToken", mock.Anything, "bad-token").
		Return(nil, ErrGoogleTokenVerificationFailed)

	svc, err := NewAuthService(userRepo, google, newTestJWTService(t))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "bad-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	// До хранилища дело дойти не должно
	userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Login_ExistingUser(t *testing.T) {
	existing := &entity.User{
		GUID:    uuid.New(),
		Name:    "Иван",
		Surname: "Петров",
		Email:   "ivan@example.com",
	}

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", existing.Email).Return(existing, nil)

	google := new(MockGoogleVerifier)
	google.On("VerifyIDToken", mock.Anything, "good-token").Return(&GoogleTokenInfo{
		Sub:        "google-sub",
		Email:      existing.Email,
		GivenName:  "Иван",
		FamilyName: "Петров",
	}, nil)

	jwtService := newTestJWTService(t)
	svc, err := NewAuthService(userRepo, google, jwtService)
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "good-token")
	require.NoError(t, err)

	claims, err := jwtService.ParseToken(token)
	require.NoError(t, err)
	guid, err := claims.UserGUID()
	require.NoError(t, err)
	assert.Equal(t, existing.GUID, guid, "токен должен выпускаться для существующего пользователя")

	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Login_FirstLoginCreatesUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", "new@example.com").Return(nil, apperrors.ErrNotFound)
	userRepo.On("Create", mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new@example.com" && u.Name == "Анна" && u.Surname == "Смирнова"
	})).Run(func(args mock.Arguments) {
		// Хранилище присваивает GUID при вставке
		args.Get(0).(*entity.User).GUID = uuid.New()
	}).Return(nil)

	google := new(MockGoogleVerifier)
	google.On("VerifyIDToken", mock.Anything, "good-token").Return(&GoogleTokenInfo{
		Sub:        "google-sub",
		Email:      "new@example.com",
		GivenName:  "Анна",
		FamilyName: "Смирнова",
	}, nil)

	svc, err := NewAuthService(userRepo, google, newTestJWTService(t))
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "good-token")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_ConcurrentFirstLoginRereadsOnConflict(t *testing.T) {
	winner := &entity.User{
		GUID:    uuid.New(),
		Name:    "Анна",
		Surname: "Смирнова",
		Email:   "new@example.com",
	}

	userRepo := new(MockUserRepository)
	// Первая проверка: пользователя еще нет
	userRepo.On("GetByEmail", winner.Email).Return(nil, apperrors.ErrNotFound).Once()
	// Конкурент успел вставить первым
	userRepo.On("Create", mock.Anything).Return(apperrors.ErrConflict)
	// Повторное чтение возвращает запись победителя
	userRepo.On("GetByEmail", winner.Email).Return(winner, nil).Once()

	google := new(MockGoogleVerifier)
	google.On("VerifyIDToken", mock.Anything, "good-token").Return(&GoogleTokenInfo{
		Sub:        "google-sub",
		Email:      winner.Email,
		GivenName:  "Анна",
		FamilyName: "Смирнова",
	}, nil)

	jwtService := newTestJWTService(t)
	svc, err := NewAuthService(userRepo, google, jwtService)
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "good-token")
	require.NoError(t, err)

	claims, err := jwtService.ParseToken(token)
	require.NoError(t, err)
	guid, err := claims.UserGUID()
	require.NoError(t, err)
	assert.Equal(t, winner.GUID, guid, "при конфликте вход продолжается от имени уже созданной записи")

	userRepo.AssertExpectations(t)
}

func TestNewAuthService_RequiresDependencies(t *testing.T) {
	jwtService := newTestJWTService(t)
	google := new(MockGoogleVerifier)
	userRepo := new(MockUserRepository)

	_, err := NewAuthService(nil, google, jwtService)
	assert.Error(t, err)

	_, err = NewAuthService(userRepo, nil, jwtService)
	assert.Error(t, err)

	_, err = NewAuthService(userRepo, google, nil)
	assert.Error(t, err)
}
