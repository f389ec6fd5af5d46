//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"clubtab/internal/domain/member"
	"clubtab/internal/pkg/clock"
	"clubtab/internal/pkg/config"
	"clubtab/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, tokenDuration time.Duration) *jwt.Service {
	t.Helper()
	return jwt.NewService(h.cfg.Secret, tokenDuration, 90*time.Second, clock.NewRealClock())
}

func (h *JWTHelper) GenerateToken(t *testing.T, memberID uuid.UUID, role member.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := h.service(t, duration).GenerateToken(memberID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateTerminalToken(t *testing.T, memberID uuid.UUID, role member.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := h.service(t, duration).GenerateTerminalToken(memberID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs with a clock two days in the past so the token is
// structurally valid but past its expiry.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, memberID uuid.UUID, role member.Role) string {
	t.Helper()
	svc := jwt.NewService(h.cfg.Secret, 24*time.Hour, 90*time.Second, clock.NewMockClock(time.Now().Add(-48*time.Hour)))
	token, err := svc.GenerateToken(memberID, role)
	require.NoError(t, err)
	return token
}
