package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturetrails/trails-backend/dto"
	"github.com/naturetrails/trails-backend/models"
)

type validatorStub struct {
	credentials models.Credentials
	err         error
}

func (s validatorStub) Validate(ctx context.Context, token string) (models.Credentials, error) {
	return s.credentials, s.err
}

func serveAuthed(t *testing.T, middleware gin.HandlerFunc, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/resource", middleware, func(c *gin.Context) {
		_, ok := CredentialsFromCtx(c.Request.Context())
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/resource", nil)
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeErrorBody(t *testing.T, recorder *httptest.ResponseRecorder) dto.ApiErrorResponse {
	t.Helper()
	var body dto.ApiErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body),
		"authentication failures must carry the JSON error envelope")
	require.NotEmpty(t, body.Errors)
	return body
}

func userCredentials(active bool) models.Credentials {
	user := models.User{Role: models.USER, Active: active}
	return models.Credentials{
		Principal: models.UserPrincipal{User: user},
		Role:      models.USER,
	}
}

func TestAuthedByRejectionsCarryJsonErrorBody(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		auth := Authentication{Validator: validatorStub{}}
		recorder := serveAuthed(t, auth.AuthedBy(models.CredentialKindUser), "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		body := decodeErrorBody(t, recorder)
		assert.Equal(t, "no credentials presented", body.Errors[0].Message)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		auth := Authentication{Validator: validatorStub{}}
		recorder := serveAuthed(t, auth.AuthedBy(models.CredentialKindUser), "Token abc")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		decodeErrorBody(t, recorder)
	})

	t.Run("invalid token", func(t *testing.T) {
		auth := Authentication{Validator: validatorStub{err: models.UnAuthorizedError}}
		recorder := serveAuthed(t, auth.AuthedBy(models.CredentialKindUser), "Bearer bad-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		decodeErrorBody(t, recorder)
	})

	t.Run("credential kind not accepted", func(t *testing.T) {
		auth := Authentication{Validator: validatorStub{credentials: userCredentials(true)}}
		recorder := serveAuthed(t, auth.AuthedBy(models.CredentialKindInstallation), "Bearer token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		decodeErrorBody(t, recorder)
	})
}

func TestAuthedByInactiveUser(t *testing.T) {
	auth := Authentication{Validator: validatorStub{credentials: userCredentials(false)}}

	recorder := serveAuthed(t, auth.AuthedBy(models.CredentialKindUser), "Bearer token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	body := decodeErrorBody(t, recorder)
	assert.Equal(t, "user account is inactive", body.Errors[0].Message)

	allowed := serveAuthed(t,
		auth.AuthedByWith([]models.CredentialKind{models.CredentialKindUser}, AllowInactive()),
		"Bearer token")
	assert.Equal(t, http.StatusOK, allowed.Code)
}
