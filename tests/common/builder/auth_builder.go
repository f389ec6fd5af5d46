//go:build unit || e2e

package builder

import (
	reqdto "clubtab/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.org",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildTerminalDTO(pin string) reqdto.TerminalSessionRequest {
	return reqdto.TerminalSessionRequest{PIN: pin}
}
