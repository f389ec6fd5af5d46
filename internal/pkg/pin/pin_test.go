//go:build unit

package pin_test

import (
	"testing"

	"clubtab/internal/pkg/pin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "6桁の数字OK", input: "123456", valid: true},
		{name: "先頭ゼロOK", input: "000042", valid: true},
		{name: "5桁NG", input: "12345", valid: false},
		{name: "7桁NG", input: "1234567", valid: false},
		{name: "数字以外NG", input: "12a456", valid: false},
		{name: "空文字NG", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pin.Validate(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, pin.ErrInvalidPIN)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Run("生成したPINは常に検証を通る", func(t *testing.T) {
		for range 100 {
			p, err := pin.Generate()
			require.NoError(t, err)
			require.NoError(t, pin.Validate(p), p)
		}
	})
}
