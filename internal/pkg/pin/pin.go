// Package pin implements the 6-digit numeric kiosk PIN. It is an
// identification convenience on a shared device, not a credential: the value
// is stored and compared in clear and is strictly lower-assurance than the
// bcrypt-hashed login password.
package pin

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

const Length = 6

var ErrInvalidPIN = errors.New("pin must be exactly 6 digits")

func Validate(s string) error {
	if len(s) != Length {
		return ErrInvalidPIN
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ErrInvalidPIN
		}
	}
	return nil
}

// Generate returns a random zero-padded 6-digit PIN. Uniqueness is enforced
// by the members table, not here; callers retry on a duplicate-key error.
func Generate() (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint64(buf[:]) % 1000000
	return fmt.Sprintf("%06d", n), nil
}
