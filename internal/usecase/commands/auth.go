package commands

import (
	"context"

	"clubtab/internal/infra"
	"clubtab/internal/pkg/errs"
	"clubtab/internal/pkg/jwt"
	"clubtab/internal/pkg/password"
	"clubtab/internal/pkg/pin"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrMemberInactive     = errs.New("member inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	MemberID    uuid.UUID
	Role        string
	AccessToken string
}

// TerminalLoginResult carries a short-lived, terminal-scoped token; the
// kiosk holds it only until the idle timeout logs the member out again.
type TerminalLoginResult struct {
	MemberID    uuid.UUID
	DisplayName string
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	TerminalLogin(ctx context.Context, memberPIN string) (*TerminalLoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	snap, err := a.uow.CommandReads().MemberByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password so the response does not leak
			// which emails exist.
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}
	if !snap.IsActive {
		return nil, ErrMemberInactive
	}
	if err := password.ComparePassword(snap.PasswordHash, req.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(snap.ID, snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		MemberID:    snap.ID,
		Role:        snap.Role.String(),
		AccessToken: token,
	}, nil
}

// TerminalLogin identifies a member by kiosk PIN and issues a terminal-scoped
// token that can book drinks and read the member's own tab, nothing else.
func (a *authCommandsImpl) TerminalLogin(ctx context.Context, memberPIN string) (*TerminalLoginResult, error) {
	if err := pin.Validate(memberPIN); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	snap, err := a.uow.CommandReads().MemberByPIN(ctx, memberPIN)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}
	if !snap.IsActive {
		return nil, ErrMemberInactive
	}

	token, err := a.jwtService.GenerateTerminalToken(snap.ID, snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TerminalLoginResult{
		MemberID:    snap.ID,
		DisplayName: snap.DisplayName,
		AccessToken: token,
	}, nil
}
