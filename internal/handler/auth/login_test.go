// File: internal/handler/auth/login_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lighthouse-bnb/internal/database"
	"lighthouse-bnb/internal/model"
	"lighthouse-bnb/internal/service"
	"lighthouse-bnb/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newLoginCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	getUserByEmail = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	sample := &model.User{ID: 7, Name: "Alice", Email: "alice@example.com", PasswordHash: "h"}

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newLoginCtx(e, "%")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newLoginCtx(e, "email=alice@example.com&password=p")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lookup error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("db down")
		}
		ctx, rec := newLoginCtx(e, "email=alice@example.com&password=p")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return nil, nil }
		ctx, rec := newLoginCtx(e, "email=ghost@example.com&password=p")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return sample, nil }
		authenticateUser = func(context.Context, model.User, string) (*model.User, error) {
			return nil, errors.New("invalid password")
		}
		ctx, rec := newLoginCtx(e, "email=alice@example.com&password=bad")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return sample, nil }
		authenticateUser = func(_ context.Context, u model.User, _ string) (*model.User, error) { return &u, nil }
		issueAccessToken = func(model.User, time.Duration) (string, error) { return "", errors.New("no secret") }
		ctx, rec := newLoginCtx(e, "email=alice@example.com&password=p")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success lowercases email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var gotEmail string
		getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
			gotEmail = email
			return sample, nil
		}
		authenticateUser = func(_ context.Context, u model.User, _ string) (*model.User, error) { return &u, nil }
		issueAccessToken = func(model.User, time.Duration) (string, error) { return "tok", nil }
		ctx, rec := newLoginCtx(e, "email=Alice@EXAMPLE.com&password=p")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "alice@example.com", gotEmail)
		require.Contains(t, rec.Body.String(), "tok")
	})
}
