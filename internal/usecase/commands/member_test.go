//go:build unit

package commands_test

import (
	"context"
	"testing"

	"clubtab/internal/domain/booking"
	"clubtab/internal/pkg/pin"
	"clubtab/internal/usecase/commands"
	"clubtab/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMember(t *testing.T) {
	ctx := context.Background()

	t.Run("作成で一意なPINが払い出される", func(t *testing.T) {
		state := newFakeState()
		uow := newFakeUow(state)
		uc := commands.NewMemberUseCase(uow)

		result, err := uc.CreateMember(ctx, commands.CreateMemberRequest{
			Email:       "new@example.org",
			DisplayName: "New Member",
			Password:    "password123",
			Role:        "member",
		})
		require.NoError(t, err)

		require.NoError(t, pin.Validate(result.PIN))
		created := uow.state.members[result.MemberID]
		require.NotNil(t, created)
		assert.Equal(t, "new@example.org", created.Email)
		assert.Equal(t, int64(0), created.OpenBalanceCents)
		assert.Equal(t, result.PIN, uow.state.pins[result.MemberID])
	})

	t.Run("メール重複NG", func(t *testing.T) {
		state := newFakeState()
		state.addMember(builder.NewMemberBuilder().WithEmail("taken@example.org").BuildSnapshot())
		uc := commands.NewMemberUseCase(newFakeUow(state))

		_, err := uc.CreateMember(ctx, commands.CreateMemberRequest{
			Email:       "taken@example.org",
			DisplayName: "Someone",
			Password:    "password123",
			Role:        "member",
		})
		require.ErrorIs(t, err, commands.ErrDuplicateMember)
	})

	t.Run("PIN衝突が続くと払い出し失敗", func(t *testing.T) {
		state := newFakeState()
		state.forceDuplicate = true
		uc := commands.NewMemberUseCase(newFakeUow(state))

		_, err := uc.CreateMember(ctx, commands.CreateMemberRequest{
			Email:       "unlucky@example.org",
			DisplayName: "Unlucky",
			Password:    "password123",
			Role:        "member",
		})
		require.ErrorIs(t, err, commands.ErrPINExhausted)
	})

	t.Run("不正なロールNG", func(t *testing.T) {
		uc := commands.NewMemberUseCase(newFakeUow(newFakeState()))

		_, err := uc.CreateMember(ctx, commands.CreateMemberRequest{
			Email:       "x@example.org",
			DisplayName: "X",
			Password:    "password123",
			Role:        "superuser",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("短すぎるパスワードNG", func(t *testing.T) {
		uc := commands.NewMemberUseCase(newFakeUow(newFakeState()))

		_, err := uc.CreateMember(ctx, commands.CreateMemberRequest{
			Email:       "x@example.org",
			DisplayName: "X",
			Password:    "short",
			Role:        "member",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestResetPIN(t *testing.T) {
	ctx := context.Background()

	t.Run("新しいPINに置き換わる", func(t *testing.T) {
		state := newFakeState()
		snap := builder.NewMemberBuilder().BuildSnapshot()
		state.addMember(snap)
		state.pins[snap.ID] = "123456"
		uow := newFakeUow(state)
		uc := commands.NewMemberUseCase(uow)

		newPIN, err := uc.ResetPIN(ctx, snap.ID)
		require.NoError(t, err)

		require.NoError(t, pin.Validate(newPIN))
		assert.Equal(t, newPIN, uow.state.pins[snap.ID])
	})

	t.Run("存在しないメンバーNG", func(t *testing.T) {
		uc := commands.NewMemberUseCase(newFakeUow(newFakeState()))

		_, err := uc.ResetPIN(ctx, uuid.New())
		require.ErrorIs(t, err, commands.ErrMemberNotFound)
	})

	t.Run("衝突が続くと失敗", func(t *testing.T) {
		state := newFakeState()
		snap := builder.NewMemberBuilder().BuildSnapshot()
		state.addMember(snap)
		state.forceDuplicate = true
		uc := commands.NewMemberUseCase(newFakeUow(state))

		_, err := uc.ResetPIN(ctx, snap.ID)
		require.ErrorIs(t, err, commands.ErrPINExhausted)
	})
}

func TestAdjustBalance(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeUow, commands.MemberCommands, uuid.UUID, uuid.UUID) {
		t.Helper()
		state := newFakeState()
		snap := builder.NewMemberBuilder().WithBalance(1000).BuildSnapshot()
		admin := builder.NewMemberBuilder().WithEmail("admin@example.org").AsAdmin().BuildSnapshot()
		state.addMember(snap)
		state.addMember(admin)
		uow := newFakeUow(state)
		return uow, commands.NewMemberUseCase(uow), snap.ID, admin.ID
	}

	t.Run("控除の調整は台帳行を書き残高を動かす", func(t *testing.T) {
		uow, uc, memberID, adminID := setup(t)

		result, err := uc.AdjustBalance(ctx, memberID, adminID, commands.AdjustBalanceRequest{
			DeltaCents: -300,
			Note:       "miscounted crate deposit",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(700), result.OpenBalanceCents)
		line := uow.state.lastLine()
		require.NotNil(t, line)
		assert.Equal(t, booking.KindAdjustment, line.Kind)
		assert.Equal(t, int64(-300), line.AmountCents)
		assert.Nil(t, line.DrinkID)
	})

	t.Run("加算の調整も可能", func(t *testing.T) {
		uow, uc, memberID, adminID := setup(t)

		result, err := uc.AdjustBalance(ctx, memberID, adminID, commands.AdjustBalanceRequest{
			DeltaCents: 250,
			Note:       "broken bottle charge",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1250), result.OpenBalanceCents)
		assert.Equal(t, int64(1250), uow.state.members[memberID].OpenBalanceCents)
	})

	t.Run("メモなしNG", func(t *testing.T) {
		_, uc, memberID, adminID := setup(t)

		_, err := uc.AdjustBalance(ctx, memberID, adminID, commands.AdjustBalanceRequest{
			DeltaCents: -300,
			Note:       "",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("存在しないメンバーNG", func(t *testing.T) {
		_, uc, _, adminID := setup(t)

		_, err := uc.AdjustBalance(ctx, uuid.New(), adminID, commands.AdjustBalanceRequest{
			DeltaCents: -300,
			Note:       "typo fix",
		})
		require.ErrorIs(t, err, commands.ErrMemberNotFound)
	})
}
