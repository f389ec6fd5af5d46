package jwt

import (
	"errors"
	"time"

	"clubtab/internal/domain/member"
	"clubtab/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Scope separates full logins from shared-device terminal sessions. Terminal
// tokens are short-lived (the idle timeout) and only valid on booking routes.
const (
	ScopeFull     = "full"
	ScopeTerminal = "terminal"
)

type Claims struct {
	MemberID uuid.UUID `json:"member_id"`
	Role     string    `json:"role"`
	Scope    string    `json:"scope"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey        []byte
	tokenDuration    time.Duration
	terminalDuration time.Duration
	clk              clock.Clock
}

func NewService(secretKey string, tokenDuration, terminalDuration time.Duration, clk clock.Clock) *Service {
	return &Service{
		secretKey:        []byte(secretKey),
		tokenDuration:    tokenDuration,
		terminalDuration: terminalDuration,
		clk:              clk,
	}
}

func (s *Service) GenerateToken(memberID uuid.UUID, role member.Role) (string, error) {
	return s.generate(memberID, role, ScopeFull, s.tokenDuration)
}

func (s *Service) GenerateTerminalToken(memberID uuid.UUID, role member.Role) (string, error) {
	return s.generate(memberID, role, ScopeTerminal, s.terminalDuration)
}

func (s *Service) generate(memberID uuid.UUID, role member.Role, scope string, d time.Duration) (string, error) {
	now := s.clk.Now()
	claims := Claims{
		MemberID: memberID,
		Role:     role.String(),
		Scope:    scope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
