package api

import (
	"errors"
	"net/http"

	reqdto "clubtab/internal/handler/dto/request"
	resdto "clubtab/internal/handler/dto/response"
	"clubtab/internal/handler/httperr"
	"clubtab/internal/handler/middleware"
	"clubtab/internal/usecase/commands"
	"clubtab/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Report payment
// @Description Report a settlement; the tab is credited once an admin verifies it
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReportPaymentRequest true "Payment report"
// @Success 201 {object} resdto.PaymentReportedResponse
// @Failure 400 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Report(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing member context"), "Unauthorized", nil)
		return
	}

	var req reqdto.ReportPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.ReportPayment(c.Request.Context(), memberID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment", nil)
		case errors.Is(err, commands.ErrMemberNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Member not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to report payment", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReportPaymentResult(result))
}

// @Summary My payments
// @Description Payments reported by the authenticated member
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max payments"
// @Success 200 {array} resdto.PaymentResponse
// @Router /payments [get]
func (h *PaymentHandler) MyPayments(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing member context"), "Unauthorized", nil)
		return
	}

	payments, err := h.q.ListByMember(c.Request.Context(), memberID, limitQuery(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load payments", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentList(payments))
}

// @Summary List payments
// @Description All reported payments, filterable by verification state
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param verified query bool false "Filter by verified flag"
// @Param limit query int false "Max payments"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 403 {object} map[string]string
// @Router /admin/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	var verified *bool
	switch c.Query("verified") {
	case "true":
		v := true
		verified = &v
	case "false":
		v := false
		verified = &v
	}

	payments, err := h.q.List(c.Request.Context(), verified, limitQuery(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load payments", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentList(payments))
}

// @Summary Verify payment
// @Description Confirm a reported payment and credit the member's tab, exactly once
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentVerifiedResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/payments/{id}/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	adminID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing member context"), "Unauthorized", nil)
		return
	}

	result, err := h.cmds.VerifyPayment(c.Request.Context(), paymentID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
		case errors.Is(err, commands.ErrPaymentAlreadyVerified):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment already verified", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to verify payment", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerifyPaymentResult(result))
}
