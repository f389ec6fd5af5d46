package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "clubtab/internal/handler/dto/request"
	resdto "clubtab/internal/handler/dto/response"
	"clubtab/internal/handler/httperr"
	"clubtab/internal/handler/middleware"
	"clubtab/internal/usecase/commands"
	"clubtab/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	drinks    commands.DrinkCommands
	purchases commands.PurchaseCommands
	members   commands.MemberCommands
	bookings  commands.BookingCommands
	reports   queries.ReportQueries
}

func NewAdminHandler(
	drinks commands.DrinkCommands,
	purchases commands.PurchaseCommands,
	members commands.MemberCommands,
	bookings commands.BookingCommands,
	reports queries.ReportQueries,
) *AdminHandler {
	return &AdminHandler{
		drinks:    drinks,
		purchases: purchases,
		members:   members,
		bookings:  bookings,
		reports:   reports,
	}
}

// @Summary Create drink
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDrinkRequest true "Drink"
// @Success 201 {object} resdto.DrinkCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/drinks [post]
func (h *AdminHandler) CreateDrink(c *gin.Context) {
	var req reqdto.CreateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.drinks.CreateDrink(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateDrink):
			httperr.AbortWithError(c, http.StatusConflict, err, "Drink name already exists", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid drink", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create drink", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateDrinkResult(result))
}

// @Summary Update drink
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drink ID"
// @Param request body reqdto.UpdateDrinkRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/drinks/{id} [patch]
func (h *AdminHandler) UpdateDrink(c *gin.Context) {
	drinkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.drinks.UpdateDrink(c.Request.Context(), drinkID, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrDrinkNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Drink not found", nil)
		case errors.Is(err, commands.ErrDuplicateDrink):
			httperr.AbortWithError(c, http.StatusConflict, err, "Drink name already exists", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid update", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update drink", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Record purchase
// @Description Book crates into stock; a zero price marks a correction
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordPurchaseRequest true "Purchase"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/purchases [post]
func (h *AdminHandler) RecordPurchase(c *gin.Context) {
	var req reqdto.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.purchases.RecordPurchase(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDrinkNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Drink not found", nil)
		case errors.Is(err, commands.ErrInvalidPurchase):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid purchase", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record purchase", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRecordPurchaseResult(result))
}

// @Summary Create member
// @Description Register a member; the response carries the kiosk PIN exactly once
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMemberRequest true "Member"
// @Success 201 {object} resdto.MemberCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/members [post]
func (h *AdminHandler) CreateMember(c *gin.Context) {
	var req reqdto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.members.CreateMember(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateMember):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid member", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create member", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateMemberResult(result))
}

// @Summary Reset kiosk PIN
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} resdto.PINResetResponse
// @Failure 404 {object} map[string]string
// @Router /admin/members/{id}/pin [post]
func (h *AdminHandler) ResetPIN(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	newPIN, err := h.members.ResetPIN(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, commands.ErrMemberNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Member not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reset PIN", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.PINResetResponse{PIN: newPIN})
}

// @Summary Adjust balance
// @Description Manual signed correction of a member's open balance, with a note
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param request body reqdto.AdjustBalanceRequest true "Adjustment"
// @Success 200 {object} resdto.BalanceAdjustedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/members/{id}/adjust [post]
func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	adminID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing member context"), "Unauthorized", nil)
		return
	}

	var req reqdto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.members.AdjustBalance(c.Request.Context(), memberID, adminID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMemberNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Member not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid adjustment", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to adjust balance", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdjustBalanceResult(result))
}

// @Summary Reverse ledger line
// @Description Undo one ledger line (charge, free draw, crate or adjustment), exactly once
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Line ID"
// @Success 200 {object} resdto.ReversalResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/lines/{id}/reverse [post]
func (h *AdminHandler) ReverseLine(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing member context"), "Unauthorized", nil)
		return
	}

	result, err := h.bookings.ReverseLine(c.Request.Context(), lineID, actorID, middleware.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLineNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Line not found", nil)
		case errors.Is(err, commands.ErrLineAlreadyReversed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Line already reversed", nil)
		case errors.Is(err, commands.ErrLineNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Line belongs to another member", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reverse line", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReverseLineResult(result))
}

// @Summary Consumption summary
// @Description Paid vs free units, revenue, cost and profit per drink over a window
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query int true "Window start (unix seconds)"
// @Param to query int true "Window end (unix seconds)"
// @Success 200 {object} resdto.SummaryReportResponse
// @Failure 400 {object} map[string]string
// @Router /admin/reports/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	from, to, err := reportWindow(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid report window", nil)
		return
	}

	report, err := h.reports.Summary(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidReportRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid report window", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build report", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSummaryReport(report))
}

// @Summary Consumption leaderboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query int true "Window start (unix seconds)"
// @Param to query int true "Window end (unix seconds)"
// @Param limit query int false "Max entries"
// @Success 200 {array} resdto.LeaderboardEntryResponse
// @Failure 400 {object} map[string]string
// @Router /admin/reports/leaderboard [get]
func (h *AdminHandler) Leaderboard(c *gin.Context) {
	from, to, err := reportWindow(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid report window", nil)
		return
	}

	entries, err := h.reports.Leaderboard(c.Request.Context(), from, to, limitQuery(c))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidReportRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid report window", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build leaderboard", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLeaderboard(entries))
}

func reportWindow(c *gin.Context) (time.Time, time.Time, error) {
	fromSec, err := strconv.ParseInt(c.Query("from"), 10, 64)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	toSec, err := strconv.ParseInt(c.Query("to"), 10, 64)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return time.Unix(fromSec, 0), time.Unix(toSec, 0), nil
}
