package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "clubtab/internal/handler/dto/request"
	resdto "clubtab/internal/handler/dto/response"
	"clubtab/internal/handler/httperr"
	"clubtab/internal/handler/middleware"
	"clubtab/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book drinks
// @Description Book drinks onto the member's tab, optionally drawing from the free pool
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookDrinkRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Book(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing member context"), "Unauthorized", nil)
		return
	}

	var req reqdto.BookDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.BookDrink(c.Request.Context(), memberID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDrinkNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Drink not found", nil)
		case errors.Is(err, commands.ErrDrinkInactive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Drink is not bookable", nil)
		case errors.Is(err, commands.ErrFreePoolExhausted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Free pool cannot cover the booking", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Booking failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookDrinkResult(result))
}

// @Summary Provide a crate
// @Description Add a crate of a drink to the shared free pool; a purchased crate is charged to the member's tab
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProvideCrateRequest true "Crate request"
// @Success 201 {object} resdto.CrateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /crates [post]
func (h *BookingHandler) ProvideCrate(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing member context"), "Unauthorized", nil)
		return
	}

	var req reqdto.ProvideCrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.ProvideCrate(c.Request.Context(), memberID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDrinkNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Drink not found", nil)
		case errors.Is(err, commands.ErrDrinkInactive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Drink is not bookable", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid crate", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Crate booking failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromProvideCrateResult(result))
}

func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return limit
}
