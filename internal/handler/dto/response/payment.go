package response

import (
	"clubtab/internal/usecase/commands"
	"clubtab/internal/usecase/queries"
)

type PaymentResponse struct {
	ID          string  `json:"id"`
	MemberID    string  `json:"member_id"`
	MemberName  string  `json:"member_name"`
	AmountCents int64   `json:"amount_cents"`
	Method      string  `json:"method"`
	Verified    bool    `json:"verified"`
	VerifiedBy  *string `json:"verified_by,omitempty"`
	VerifiedAt  *int64  `json:"verified_at,omitempty"`
	CreatedAt   int64   `json:"created_at"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	resp := &PaymentResponse{
		ID:          v.ID.String(),
		MemberID:    v.MemberID.String(),
		MemberName:  v.MemberName,
		AmountCents: v.AmountCents,
		Method:      v.Method,
		Verified:    v.Verified,
		CreatedAt:   v.CreatedAt.Unix(),
	}
	if v.VerifiedBy != nil {
		id := v.VerifiedBy.String()
		resp.VerifiedBy = &id
	}
	if v.VerifiedAt != nil {
		ts := v.VerifiedAt.Unix()
		resp.VerifiedAt = &ts
	}
	return resp
}

func FromPaymentList(items []*queries.PaymentView) []*PaymentResponse {
	res := make([]*PaymentResponse, len(items))
	for i, it := range items {
		res[i] = FromPaymentView(it)
	}
	return res
}

type PaymentReportedResponse struct {
	PaymentID string `json:"payment_id"`
}

func FromReportPaymentResult(r *commands.ReportPaymentResult) *PaymentReportedResponse {
	return &PaymentReportedResponse{PaymentID: r.PaymentID.String()}
}

type PaymentVerifiedResponse struct {
	MemberID         string `json:"member_id"`
	AmountCents      int64  `json:"amount_cents"`
	OpenBalanceCents int64  `json:"open_balance_cents"`
}

func FromVerifyPaymentResult(r *commands.VerifyPaymentResult) *PaymentVerifiedResponse {
	return &PaymentVerifiedResponse{
		MemberID:         r.MemberID.String(),
		AmountCents:      r.AmountCents,
		OpenBalanceCents: r.OpenBalanceCents,
	}
}
