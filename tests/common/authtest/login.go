//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"clubtab/internal/handler/dto/request"
	"clubtab/tests/common/dbtest"
	"clubtab/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginMember(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		AccessToken string `json:"access_token"`
	}
	_ = httptest.DecodeResponseBody(t, w.Body, &body)
	require.NotEmpty(t, body.AccessToken, "Access token missing from login response")

	return body.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestMember(t, db, email, role)
	return LoginMember(t, router, email, "password123")
}

// TerminalSession opens a kiosk session by PIN and returns its short-lived token.
func TerminalSession(t *testing.T, router *gin.Engine, pin string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/terminal/session",
		request.TerminalSessionRequest{PIN: pin}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		AccessToken string `json:"access_token"`
	}
	_ = httptest.DecodeResponseBody(t, w.Body, &body)
	require.NotEmpty(t, body.AccessToken, "Access token missing from terminal session response")

	return body.AccessToken
}
