// File: internal/handler/users/user_test.go
package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lighthouse-bnb/internal/database"
	"lighthouse-bnb/internal/middleware"
	"lighthouse-bnb/internal/model"
	"lighthouse-bnb/internal/service"
	"lighthouse-bnb/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newParamCtx(e *echo.Echo, val string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/users/"+val, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/users/:user_id")
	c.SetParamNames("user_id")
	c.SetParamValues(val)
	return c, rec
}

func newQueryCtx(e *echo.Echo, query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/users"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	createUser = store.CreateUser
	getUserByID = store.GetUserByID
	getUserByEmail = store.GetUserByEmail
}

func TestCreateUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newFormCtx(e, "%")
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid form data")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newFormCtx(e, "name=a&email=a@b.com&password=p")
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "v")
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		ctx, rec := newFormCtx(e, "name=a&email=a@b.com&password=p")
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "failed to hash password")
	})

	t.Run("bad email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		ctx, rec := newFormCtx(e, "name=a&email=bad&password=p")
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid email format")
	})

	t.Run("create error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			return nil, errors.New("c")
		}
		ctx, rec := newFormCtx(e, "name=a&email=a@b.com&password=p")
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(p string) (string, error) { require.Equal(t, "p", p); return "h", nil }
		var gotEmail string
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			gotEmail = u.Email
			u.ID = 1
			return u, nil
		}
		ctx, rec := newFormCtx(e, "name=A&email=Alice@EXAMPLE.com&password=p")
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "alice@example.com", gotEmail)
		require.Contains(t, rec.Body.String(), "\"id\":1")
		// 回應不洩漏密碼哈希
		require.NotContains(t, rec.Body.String(), "password")
	})
}

func TestGetUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("bad id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, "x")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lookup error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return nil, errors.New("db") }
		ctx, rec := newParamCtx(e, "1")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return nil, nil }
		ctx, rec := newParamCtx(e, "999")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return &model.User{ID: 1, Name: "n", Email: "e"}, nil
		}
		ctx, rec := newParamCtx(e, "1")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"id\":1")
	})
}

func TestFindUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("missing email", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newQueryCtx(e, "")
		require.NoError(t, FindUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lookup error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return nil, errors.New("db") }
		ctx, rec := newQueryCtx(e, "?email=a@b.com")
		require.NoError(t, FindUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return nil, nil }
		ctx, rec := newQueryCtx(e, "?email=ghost@b.com")
		require.NoError(t, FindUserHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success lowercases email", func(t *testing.T) {
		t.Cleanup(restore)
		var gotEmail string
		getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
			gotEmail = email
			return &model.User{ID: 2, Name: "n", Email: email}, nil
		}
		ctx, rec := newQueryCtx(e, "?email=Bob@EX.com")
		require.NoError(t, FindUserHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "bob@ex.com", gotEmail)
	})
}

func TestGetMyUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("no claims", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newQueryCtx(e, "/me")
		require.NoError(t, GetMyUserHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("lookup error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return nil, errors.New("e") }
		ctx, rec := newQueryCtx(e, "/me")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		require.NoError(t, GetMyUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return nil, nil }
		ctx, rec := newQueryCtx(e, "/me")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		require.NoError(t, GetMyUserHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			require.Equal(t, 1, id)
			return &model.User{ID: 1, Name: "n", Email: "e"}, nil
		}
		ctx, rec := newQueryCtx(e, "/me")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		require.NoError(t, GetMyUserHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"id\":1")
	})
}
