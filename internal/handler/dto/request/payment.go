package request

import "clubtab/internal/usecase/commands"

type ReportPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,min=1"`
	Method      string `json:"method" binding:"required,oneof=cash transfer paypal"`
}

func (r *ReportPaymentRequest) ToCommand() commands.ReportPaymentRequest {
	return commands.ReportPaymentRequest{
		AmountCents: r.AmountCents,
		Method:      r.Method,
	}
}
