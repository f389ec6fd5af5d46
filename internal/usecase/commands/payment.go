package commands

import (
	"context"

	"clubtab/internal/domain/payment"
	"clubtab/internal/infra"
	"clubtab/internal/pkg/errs"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound        = errs.New("payment not found")
	ErrPaymentAlreadyVerified = errs.New("payment already verified")
)

type ReportPaymentRequest struct {
	AmountCents int64
	Method      string
}

type ReportPaymentResult struct {
	PaymentID uuid.UUID
}

type VerifyPaymentResult struct {
	MemberID         uuid.UUID
	AmountCents      int64
	OpenBalanceCents int64
}

type PaymentCommands interface {
	ReportPayment(ctx context.Context, memberID uuid.UUID, req ReportPaymentRequest) (*ReportPaymentResult, error)
	VerifyPayment(ctx context.Context, paymentID, adminID uuid.UUID) (*VerifyPaymentResult, error)
}

type paymentUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentUseCase(uow shared.UnitOfWork) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow}
}

// ReportPayment records a claimed settlement. The tab is untouched until an
// admin verifies the payment.
func (uc *paymentUseCaseImpl) ReportPayment(ctx context.Context, memberID uuid.UUID, req ReportPaymentRequest) (*ReportPaymentResult, error) {
	method, err := payment.NewMethod(req.Method)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	p, err := payment.NewPayment(memberID, req.AmountCents, method)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var result ReportPaymentResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, merr := tx.Reads().MemberByID(ctx, memberID); merr != nil {
			return markNotFound(merr, ErrMemberNotFound)
		}
		id, perr := tx.Payments().Create(ctx, tx.DB(), p)
		if perr != nil {
			return perr
		}
		result = ReportPaymentResult{PaymentID: id}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// VerifyPayment credits the payment against the member's tab exactly once.
// The verified flag is claimed atomically, so two admins confirming the same
// payment cannot credit it twice.
func (uc *paymentUseCaseImpl) VerifyPayment(ctx context.Context, paymentID, adminID uuid.UUID) (*VerifyPaymentResult, error) {
	var result VerifyPaymentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, derr := tx.Payments().ClaimVerification(ctx, tx.DB(), paymentID, adminID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrPaymentAlreadyVerified)
			}
			return markNotFound(derr, ErrPaymentNotFound)
		}

		balance, derr := tx.Ledger().IncrementBalance(ctx, tx.DB(), claimed.MemberID, -claimed.AmountCents)
		if derr != nil {
			return markNotFound(derr, ErrMemberNotFound)
		}

		result = VerifyPaymentResult{
			MemberID:         claimed.MemberID,
			AmountCents:      claimed.AmountCents,
			OpenBalanceCents: balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
