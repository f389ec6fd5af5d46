//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"clubtab/internal/domain/member"
	"clubtab/internal/handler/api"
	resdto "clubtab/internal/handler/dto/response"
	"clubtab/internal/usecase/queries"
	"clubtab/tests/common/builder"
	"clubtab/tests/common/httptest"
	queriesmock "clubtab/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TabHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockTabs    *queriesmock.MockTabQueries
	mockCatalog *queriesmock.MockCatalogQueries
	handler     *api.TabHandler

	memberID uuid.UUID
	role     member.Role
}

func (s *TabHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTabs = queriesmock.NewMockTabQueries(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewTabHandler(s.mockTabs, s.mockCatalog)
	s.memberID = uuid.New()
	s.role = member.RoleMember

	authed := func(handler gin.HandlerFunc) gin.HandlerFunc {
		// Stand-in for the auth middleware.
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("member_id", s.memberID)
				c.Set("member_role", s.role)
			}
			handler(c)
		}
	}

	s.router.GET("/api/tab", authed(s.handler.MyTab))
	s.router.GET("/api/bookings", authed(s.handler.MyLines))
	s.router.GET("/api/drinks", authed(s.handler.Catalog))
	s.router.GET("/api/pool", authed(s.handler.PoolStatus))
}

func (s *TabHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTabHandlerSuite(t *testing.T) {
	suite.Run(t, new(TabHandlerTestSuite))
}

func (s *TabHandlerTestSuite) TestMyTab() {
	url := "/api/tab"

	s.Run("success: returns balance and lines", func() {
		line := builder.NewLineBuilder().WithMemberID(s.memberID).BuildReadModel()
		s.mockTabs.EXPECT().MyTab(gomock.Any(), s.memberID, 0).
			Return(&queries.TabView{
				MemberID:         s.memberID,
				DisplayName:      "Test Member",
				OpenBalanceCents: 450,
				Lines:            []*queries.LineView{line},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.TabResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(450), response.OpenBalanceCents)
		s.Len(response.Lines, 1)
		s.Equal(line.ID.String(), response.Lines[0].ID)
		s.False(response.Lines[0].Reversed)
	})

	s.Run("success: passes the limit query through", func() {
		s.mockTabs.EXPECT().MyTab(gomock.Any(), s.memberID, 5).
			Return(&queries.TabView{MemberID: s.memberID, DisplayName: "Test Member"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without member context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 when member missing", func() {
		s.mockTabs.EXPECT().MyTab(gomock.Any(), s.memberID, 0).
			Return(nil, queries.ErrTabNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Member not found")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockTabs.EXPECT().MyTab(gomock.Any(), s.memberID, 0).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load tab")
	})
}

func (s *TabHandlerTestSuite) TestMyLines() {
	url := "/api/bookings"

	s.Run("success: returns only the line list", func() {
		reversed := builder.NewLineBuilder().WithMemberID(s.memberID).AsReversed().BuildReadModel()
		s.mockTabs.EXPECT().MyTab(gomock.Any(), s.memberID, 0).
			Return(&queries.TabView{
				MemberID: s.memberID,
				Lines:    []*queries.LineView{reversed},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.LineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.True(response[0].Reversed)
	})
}

func (s *TabHandlerTestSuite) TestCatalog() {
	url := "/api/drinks"

	s.Run("success: members get active drinks", func() {
		item := builder.NewDrinkBuilder().BuildReadModel()
		s.mockCatalog.EXPECT().List(gomock.Any(), false).
			Return([]*queries.CatalogItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.CatalogItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(item.Name, response[0].Name)
	})

	s.Run("success: member cannot request inactive drinks", func() {
		s.mockCatalog.EXPECT().List(gomock.Any(), false).
			Return([]*queries.CatalogItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?include_inactive=true", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: admin can request inactive drinks", func() {
		s.role = member.RoleAdmin
		defer func() { s.role = member.RoleMember }()

		s.mockCatalog.EXPECT().List(gomock.Any(), true).
			Return([]*queries.CatalogItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?include_inactive=true", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *TabHandlerTestSuite) TestPoolStatus() {
	url := "/api/pool"

	s.Run("success: returns remaining free units", func() {
		s.mockTabs.EXPECT().PoolStatus(gomock.Any()).
			Return(&queries.PoolView{QuantityRemaining: 12, UpdatedAt: time.Now()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PoolResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(12), response.QuantityRemaining)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockTabs.EXPECT().PoolStatus(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load pool status")
	})
}
