//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"rentledger/internal/handler/dto/request"
	"rentledger/tests/common/dbtest"
	"rentledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.AccessToken, "Access token not found in login response")

	return body.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, name, email)
	return LoginUser(t, router, email, "password123")
}
