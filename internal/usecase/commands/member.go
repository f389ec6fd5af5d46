package commands

import (
	"context"

	"clubtab/internal/domain/booking"
	"clubtab/internal/domain/member"
	"clubtab/internal/infra"
	"clubtab/internal/pkg/errs"
	"clubtab/internal/pkg/password"
	"clubtab/internal/pkg/pin"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateMember = errs.New("member email already exists")
	ErrPINExhausted    = errs.New("could not allocate a unique pin")
)

// pinAllocationAttempts bounds the retry loop on PIN collisions. With a
// six-digit space and club-sized membership a collision is already rare;
// several in a row means something else is wrong.
const pinAllocationAttempts = 5

type CreateMemberRequest struct {
	Email       string
	DisplayName string
	Password    string
	Role        string
}

type CreateMemberResult struct {
	MemberID uuid.UUID
	PIN      string
}

type AdjustBalanceRequest struct {
	DeltaCents int64
	Note       string
}

type AdjustBalanceResult struct {
	LineID           uuid.UUID
	OpenBalanceCents int64
}

type MemberCommands interface {
	CreateMember(ctx context.Context, req CreateMemberRequest) (*CreateMemberResult, error)
	ResetPIN(ctx context.Context, memberID uuid.UUID) (string, error)
	AdjustBalance(ctx context.Context, memberID, adminID uuid.UUID, req AdjustBalanceRequest) (*AdjustBalanceResult, error)
}

type memberUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewMemberUseCase(uow shared.UnitOfWork) MemberCommands {
	return &memberUseCaseImpl{uow: uow}
}

// CreateMember registers a member with a freshly generated kiosk PIN. The
// PIN is returned exactly once, in the creation response.
func (uc *memberUseCaseImpl) CreateMember(ctx context.Context, req CreateMemberRequest) (*CreateMemberResult, error) {
	email, err := member.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	displayName, err := member.NewDisplayName(req.DisplayName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := member.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	pw, err := member.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, err
	}

	var result CreateMemberResult
	for attempt := 0; attempt < pinAllocationAttempts; attempt++ {
		memberPIN, perr := pin.Generate()
		if perr != nil {
			return nil, perr
		}

		m := member.NewMember(email, displayName, hash, memberPIN, role)
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			id, cerr := tx.Members().Create(ctx, tx.DB(), m)
			if cerr != nil {
				return cerr
			}
			result = CreateMemberResult{MemberID: id, PIN: memberPIN}
			return nil
		})
		if err == nil {
			return &result, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		// Distinguish an email duplicate (caller error) from a PIN
		// collision (retry with a new PIN).
		if _, lookupErr := uc.uow.CommandReads().MemberByEmail(ctx, email.Value()); lookupErr == nil {
			return nil, errs.Mark(err, ErrDuplicateMember)
		}
	}

	return nil, errs.Mark(err, ErrPINExhausted)
}

// ResetPIN issues a new kiosk PIN, retrying on the unlikely collision.
func (uc *memberUseCaseImpl) ResetPIN(ctx context.Context, memberID uuid.UUID) (string, error) {
	var lastErr error
	for attempt := 0; attempt < pinAllocationAttempts; attempt++ {
		memberPIN, err := pin.Generate()
		if err != nil {
			return "", err
		}

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Members().UpdatePIN(ctx, tx.DB(), memberID, memberPIN)
		})
		if err == nil {
			return memberPIN, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return "", markNotFound(err, ErrMemberNotFound)
		}
		lastErr = err
	}

	return "", errs.Mark(lastErr, ErrPINExhausted)
}

// AdjustBalance is the admin escape hatch for corrections. It writes a
// regular ledger line so the correction shows up on the member's tab with
// its note, and moves the balance by the signed delta.
func (uc *memberUseCaseImpl) AdjustBalance(ctx context.Context, memberID, adminID uuid.UUID, req AdjustBalanceRequest) (*AdjustBalanceResult, error) {
	line, err := booking.NewAdjustment(memberID, req.DeltaCents, req.Note)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var result AdjustBalanceResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Lines().Create(ctx, tx.DB(), line)
		if derr != nil {
			return derr
		}
		balance, derr := tx.Ledger().IncrementBalance(ctx, tx.DB(), memberID, req.DeltaCents)
		if derr != nil {
			return markNotFound(derr, ErrMemberNotFound)
		}
		result = AdjustBalanceResult{LineID: id, OpenBalanceCents: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
