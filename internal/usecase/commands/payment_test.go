//go:build unit

package commands_test

import (
	"context"
	"testing"

	"clubtab/internal/usecase/commands"
	"clubtab/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPayment(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeUow, commands.PaymentCommands, uuid.UUID) {
		t.Helper()
		state := newFakeState()
		memberSnap := builder.NewMemberBuilder().WithBalance(2000).BuildSnapshot()
		state.addMember(memberSnap)
		uow := newFakeUow(state)
		return uow, commands.NewPaymentUseCase(uow), memberSnap.ID
	}

	t.Run("申告は未確認で記録され残高は動かない", func(t *testing.T) {
		uow, uc, memberID := setup(t)

		result, err := uc.ReportPayment(ctx, memberID, commands.ReportPaymentRequest{
			AmountCents: 2000,
			Method:      "transfer",
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, result.PaymentID)

		snap := uow.state.payments[result.PaymentID]
		require.NotNil(t, snap)
		assert.False(t, snap.Verified)
		assert.Equal(t, int64(2000), uow.state.members[memberID].OpenBalanceCents)
	})

	t.Run("金額ゼロNG", func(t *testing.T) {
		_, uc, memberID := setup(t)

		_, err := uc.ReportPayment(ctx, memberID, commands.ReportPaymentRequest{
			AmountCents: 0,
			Method:      "cash",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("不正な支払い方法NG", func(t *testing.T) {
		_, uc, memberID := setup(t)

		_, err := uc.ReportPayment(ctx, memberID, commands.ReportPaymentRequest{
			AmountCents: 500,
			Method:      "bitcoin",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("存在しないメンバーNG", func(t *testing.T) {
		_, uc, _ := setup(t)

		_, err := uc.ReportPayment(ctx, uuid.New(), commands.ReportPaymentRequest{
			AmountCents: 500,
			Method:      "cash",
		})
		require.ErrorIs(t, err, commands.ErrMemberNotFound)
	})
}

func TestVerifyPayment(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeUow, commands.PaymentCommands, uuid.UUID, uuid.UUID) {
		t.Helper()
		state := newFakeState()
		memberSnap := builder.NewMemberBuilder().WithBalance(2000).BuildSnapshot()
		admin := builder.NewMemberBuilder().WithEmail("admin@example.org").AsAdmin().BuildSnapshot()
		state.addMember(memberSnap)
		state.addMember(admin)
		uow := newFakeUow(state)
		return uow, commands.NewPaymentUseCase(uow), memberSnap.ID, admin.ID
	}

	t.Run("確認で残高から控除", func(t *testing.T) {
		uow, uc, memberID, adminID := setup(t)

		reported, err := uc.ReportPayment(ctx, memberID, commands.ReportPaymentRequest{
			AmountCents: 1500,
			Method:      "cash",
		})
		require.NoError(t, err)

		result, err := uc.VerifyPayment(ctx, reported.PaymentID, adminID)
		require.NoError(t, err)

		assert.Equal(t, memberID, result.MemberID)
		assert.Equal(t, int64(1500), result.AmountCents)
		assert.Equal(t, int64(500), result.OpenBalanceCents)
		assert.Equal(t, int64(500), uow.state.members[memberID].OpenBalanceCents)
		assert.True(t, uow.state.payments[reported.PaymentID].Verified)
	})

	t.Run("二重確認は一度だけ控除", func(t *testing.T) {
		uow, uc, memberID, adminID := setup(t)

		reported, err := uc.ReportPayment(ctx, memberID, commands.ReportPaymentRequest{
			AmountCents: 1500,
			Method:      "cash",
		})
		require.NoError(t, err)

		_, err = uc.VerifyPayment(ctx, reported.PaymentID, adminID)
		require.NoError(t, err)

		_, err = uc.VerifyPayment(ctx, reported.PaymentID, adminID)
		require.ErrorIs(t, err, commands.ErrPaymentAlreadyVerified)
		assert.Equal(t, int64(500), uow.state.members[memberID].OpenBalanceCents)
	})

	t.Run("存在しない支払いNG", func(t *testing.T) {
		_, uc, _, adminID := setup(t)

		_, err := uc.VerifyPayment(ctx, uuid.New(), adminID)
		require.ErrorIs(t, err, commands.ErrPaymentNotFound)
	})
}
