package api

import (
	"errors"
	"net/http"

	resdto "clubtab/internal/handler/dto/response"
	"clubtab/internal/handler/httperr"
	"clubtab/internal/handler/middleware"
	"clubtab/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TabHandler struct {
	tabs    queries.TabQueries
	catalog queries.CatalogQueries
}

func NewTabHandler(tabs queries.TabQueries, catalog queries.CatalogQueries) *TabHandler {
	return &TabHandler{tabs: tabs, catalog: catalog}
}

// @Summary My tab
// @Description Open balance and recent ledger lines of the authenticated member
// @Tags tab
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max lines"
// @Success 200 {object} resdto.TabResponse
// @Failure 401 {object} map[string]string
// @Router /tab [get]
func (h *TabHandler) MyTab(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing member context"), "Unauthorized", nil)
		return
	}

	tab, err := h.tabs.MyTab(c.Request.Context(), memberID, limitQuery(c))
	if err != nil {
		if errors.Is(err, queries.ErrTabNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Member not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load tab", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTabView(tab))
}

// @Summary My bookings
// @Description Recent ledger lines of the authenticated member
// @Tags tab
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max lines"
// @Success 200 {array} resdto.LineResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *TabHandler) MyLines(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing member context"), "Unauthorized", nil)
		return
	}

	tab, err := h.tabs.MyTab(c.Request.Context(), memberID, limitQuery(c))
	if err != nil {
		if errors.Is(err, queries.ErrTabNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Member not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load lines", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLineList(tab.Lines))
}

// @Summary Drink catalog
// @Description Active drinks with prices and current stock
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CatalogItemResponse
// @Router /drinks [get]
func (h *TabHandler) Catalog(c *gin.Context) {
	includeInactive := middleware.IsAdmin(c) && c.Query("include_inactive") == "true"

	items, err := h.catalog.List(c.Request.Context(), includeInactive)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load catalog", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCatalog(items))
}

// @Summary Free pool status
// @Description Remaining free units in the shared pool
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PoolResponse
// @Router /pool [get]
func (h *TabHandler) PoolStatus(c *gin.Context) {
	pool, err := h.tabs.PoolStatus(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load pool status", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPoolView(pool))
}
