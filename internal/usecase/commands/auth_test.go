//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"clubtab/internal/pkg/clock"
	"clubtab/internal/pkg/jwt"
	"clubtab/internal/usecase/commands"
	"clubtab/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The builder's password hash is bcrypt("password123").
const builderPassword = "password123"

func newAuthFixture(t *testing.T) (*fakeState, commands.AuthCommands, *jwt.Service) {
	t.Helper()
	state := newFakeState()
	svc := jwt.NewService("test-secret-key-for-tests-only", time.Hour, 90*time.Second, clock.NewRealClock())
	return state, commands.NewAuthCommands(newFakeUow(state), svc), svc
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("正しい資格情報でフルスコープトークン", func(t *testing.T) {
		state, uc, svc := newAuthFixture(t)
		snap := builder.NewMemberBuilder().BuildSnapshot()
		state.addMember(snap)

		result, err := uc.Login(ctx, commands.LoginRequest{
			Email:    snap.Email,
			Password: builderPassword,
		})
		require.NoError(t, err)

		assert.Equal(t, snap.ID, result.MemberID)
		assert.Equal(t, "member", result.Role)

		claims, err := svc.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, snap.ID, claims.MemberID)
		assert.Equal(t, jwt.ScopeFull, claims.Scope)
	})

	t.Run("誤ったパスワードNG", func(t *testing.T) {
		state, uc, _ := newAuthFixture(t)
		snap := builder.NewMemberBuilder().BuildSnapshot()
		state.addMember(snap)

		_, err := uc.Login(ctx, commands.LoginRequest{
			Email:    snap.Email,
			Password: "wrong-password",
		})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("未登録メールも同じエラー", func(t *testing.T) {
		_, uc, _ := newAuthFixture(t)

		_, err := uc.Login(ctx, commands.LoginRequest{
			Email:    "nobody@example.org",
			Password: builderPassword,
		})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("無効化されたメンバーNG", func(t *testing.T) {
		state, uc, _ := newAuthFixture(t)
		snap := builder.NewMemberBuilder().AsInactive().BuildSnapshot()
		state.addMember(snap)

		_, err := uc.Login(ctx, commands.LoginRequest{
			Email:    snap.Email,
			Password: builderPassword,
		})
		require.ErrorIs(t, err, commands.ErrMemberInactive)
	})
}

func TestTerminalLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("PINで端末スコープトークン", func(t *testing.T) {
		state, uc, svc := newAuthFixture(t)
		snap := builder.NewMemberBuilder().BuildSnapshot()
		state.addMember(snap)
		state.pins[snap.ID] = "123456"

		result, err := uc.TerminalLogin(ctx, "123456")
		require.NoError(t, err)

		assert.Equal(t, snap.ID, result.MemberID)
		assert.Equal(t, "Test Member", result.DisplayName)

		claims, err := svc.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.ScopeTerminal, claims.Scope)
	})

	t.Run("未知のPINNG", func(t *testing.T) {
		_, uc, _ := newAuthFixture(t)

		_, err := uc.TerminalLogin(ctx, "999999")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("形式不正のPINは照合せずNG", func(t *testing.T) {
		_, uc, _ := newAuthFixture(t)

		_, err := uc.TerminalLogin(ctx, "12345")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("無効化されたメンバーNG", func(t *testing.T) {
		state, uc, _ := newAuthFixture(t)
		snap := builder.NewMemberBuilder().AsInactive().BuildSnapshot()
		state.addMember(snap)
		state.pins[snap.ID] = "654321"

		_, err := uc.TerminalLogin(ctx, "654321")
		require.ErrorIs(t, err, commands.ErrMemberInactive)
	})
}
