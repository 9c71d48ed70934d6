package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// Claims содержит полезную нагрузку токена доступа.
// Помимо стандартных клеймов токен несет денормализованные email/имя/фамилию
// для удобства клиента.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	jwt.RegisteredClaims
}

// UserGUID возвращает GUID пользователя из клейма sub
func (c *Claims) UserGUID() (uuid.UUID, error) {
	guid, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid subject claim", apperrors.ErrUnauthorized)
	}
	return guid, nil
}

// JWTService выпускает и проверяет токены доступа.
// Токен полностью stateless: валидность определяется только подписью и
// встроенным сроком действия, серверного списка выданных токенов нет.
type JWTService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewJWTService создает новый сервис токенов доступа.
// Поддерживаются только HMAC-алгоритмы (секрет симметричный).
func NewJWTService(secret, algorithm string, expirationMin int) (*JWTService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %s is not an HMAC method", algorithm)
	}
	return &JWTService{
		secret: []byte(secret),
		method: method,
		ttl:    time.Duration(expirationMin) * time.Minute,
	}, nil
}

// GenerateToken выпускает подписанный токен доступа для пользователя.
// jti генерируется на случай будущего списка отзыва, сейчас нигде не учитывается.
func (s *JWTService) GenerateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:   user.Email,
		Name:    user.Name,
		Surname: user.Surname,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
			Subject:   user.GUID.String(),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// ParseToken проверяет подпись и срок действия токена и возвращает клеймы.
// Это единственная точка проверки: middleware использует её и для допуска,
// и для извлечения действующего пользователя. Клейм aud не проверяется.
// Любая ошибка (неверная подпись, истекший срок, мусор вместо токена)
// транслируется в apperrors.ErrUnauthorized.
func (s *JWTService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{s.method.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	if token == nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}
	return claims, nil
}
