package utils

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/naturetrails/trails-backend/models"
)

type ContextKey int

const (
	ContextKeyCredentials ContextKey = iota
	ContextKeyLogger
)

func CredentialsFromCtx(ctx context.Context) (models.Credentials, bool) {
	creds, ok := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds, ok
}

// MustCredentialsFromCtx returns the credentials stored by the authentication
// middleware. Calling it on a route outside the authenticated group is a
// programming error.
func MustCredentialsFromCtx(ctx context.Context) models.Credentials {
	creds, ok := CredentialsFromCtx(ctx)
	if !ok {
		panic(errors.New("no credentials in context"))
	}
	return creds
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, ContextKeyCredentials, creds)
}
