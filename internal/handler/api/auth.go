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
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.MemberQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.MemberQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Member login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), commands.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrMemberInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Member is deactivated", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Terminal session
// @Description Open a kiosk session with a member PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.TerminalSessionRequest true "Terminal session request"
// @Success 200 {object} resdto.TerminalSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /terminal/session [post]
func (h *AuthHandler) TerminalSession(c *gin.Context) {
	var req reqdto.TerminalSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.TerminalLogin(c.Request.Context(), req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			// The kiosk shows one generic message for unknown and malformed
			// PINs alike.
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unknown PIN", nil)
		case errors.Is(err, commands.ErrMemberInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Member is deactivated", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Terminal login failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTerminalLoginResult(result))
}

// @Summary Current member
// @Description Profile and open balance of the authenticated member
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MemberResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing member context"), "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, queries.ErrMemberNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Member not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load member", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMemberView(view))
}
