//go:build unit

package payment_test

import (
	"testing"

	"clubtab/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMethod(t *testing.T) {
	t.Run("有効な支払方法", func(t *testing.T) {
		for _, s := range []string{"cash", "transfer", "paypal"} {
			m, err := payment.NewMethod(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, m.String())
		}
	})

	t.Run("無効な支払方法NG", func(t *testing.T) {
		_, err := payment.NewMethod("bitcoin")
		require.ErrorIs(t, err, payment.ErrInvalidMethod)
	})

	t.Run("空文字NG", func(t *testing.T) {
		_, err := payment.NewMethod("")
		require.ErrorIs(t, err, payment.ErrInvalidMethod)
	})
}

func TestNewPayment(t *testing.T) {
	memberID := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		p, err := payment.NewPayment(memberID, 5000, payment.MethodTransfer)
		require.NoError(t, err)

		assert.Equal(t, memberID, p.MemberID())
		assert.Equal(t, int64(5000), p.AmountCents())
		assert.Equal(t, payment.MethodTransfer, p.Method())
		assert.False(t, p.Verified())
		assert.Nil(t, p.VerifiedBy())
		assert.Nil(t, p.VerifiedAt())
	})

	t.Run("金額ゼロNG", func(t *testing.T) {
		_, err := payment.NewPayment(memberID, 0, payment.MethodCash)
		require.ErrorIs(t, err, payment.ErrInvalidAmount)
	})

	t.Run("負の金額NG", func(t *testing.T) {
		_, err := payment.NewPayment(memberID, -100, payment.MethodCash)
		require.ErrorIs(t, err, payment.ErrInvalidAmount)
	})
}
