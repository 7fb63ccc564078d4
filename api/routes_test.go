package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturetrails/trails-backend/dto"
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/usecases"
	"github.com/naturetrails/trails-backend/utils"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	uc := usecases.NewUsecases(repositories.Repositories{
		TrailsDbRepository: repositories.NewTrailsDbRepository(),
		JwtRepository:      repositories.NewJwtRepository([]byte("test-signing-key")),
	})
	auth := utils.Authentication{Validator: uc.NewAuthUsecase()}

	router := gin.New()
	addRoutes(router, auth, uc)
	return router
}

func TestUnauthenticatedRequestGetsJsonErrorBody(t *testing.T) {
	router := newTestRouter()

	request := httptest.NewRequest(http.MethodGet, "/trails", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body dto.ApiErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotEmpty(t, body.Errors)
	assert.NotEmpty(t, body.Errors[0].Message)
}

func TestGarbageTokenGetsJsonErrorBody(t *testing.T) {
	router := newTestRouter()

	request := httptest.NewRequest(http.MethodGet, "/trails", nil)
	request.Header.Set("Authorization", "Bearer not-a-jwt")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body dto.ApiErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotEmpty(t, body.Errors)
}
