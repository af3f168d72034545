package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
	"github.com/hekmatehsan/geoweather-api/internal/core/token"
)

func newTokenService(t *testing.T, secret string) *token.Service {
	t.Helper()
	svc, err := token.NewService(secret, time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return svc
}

func signedToken(t *testing.T, svc *token.Service) string {
	t.Helper()
	raw, err := svc.Issue("user_1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return raw
}

func runAuth(t *testing.T, svc *token.Service, req *http.Request) (echo.Context, bool, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(svc)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return c, called, err
}

func TestAuth_TokenFromAuthHeader(t *testing.T) {
	svc := newTokenService(t, "secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-auth-token", signedToken(t, svc))

	c, called, err := runAuth(t, svc, req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if c.Get("user_id") != "user_1" || c.Get("email") != "alice@example.com" {
		t.Fatalf("claims not injected: %v %v", c.Get("user_id"), c.Get("email"))
	}
}

func TestAuth_TokenFromBody(t *testing.T) {
	svc := newTokenService(t, "secret")
	body := `{"token":"` + signedToken(t, svc) + `","lat":1.5}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	c, called, err := runAuth(t, svc, req)
	if err != nil || !called {
		t.Fatalf("expected pass-through, err=%v called=%v", err, called)
	}

	// The body must still be readable by the downstream handler.
	var payload struct {
		Lat float64 `json:"lat"`
	}
	if bindErr := c.Bind(&payload); bindErr != nil {
		t.Fatalf("body not restored: %v", bindErr)
	}
	if payload.Lat != 1.5 {
		t.Fatalf("unexpected body content: %+v", payload)
	}
}

func TestAuth_TokenFromQuery(t *testing.T) {
	svc := newTokenService(t, "secret")
	req := httptest.NewRequest(http.MethodGet, "/?token="+signedToken(t, svc), nil)

	if _, called, err := runAuth(t, svc, req); err != nil || !called {
		t.Fatalf("expected pass-through, err=%v called=%v", err, called)
	}
}

func TestAuth_TokenFromLegacyHeader(t *testing.T) {
	svc := newTokenService(t, "secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-access-token", signedToken(t, svc))

	if _, called, err := runAuth(t, svc, req); err != nil || !called {
		t.Fatalf("expected pass-through, err=%v called=%v", err, called)
	}
}

func TestAuth_HeaderWinsOverQuery(t *testing.T) {
	svc := newTokenService(t, "secret")
	req := httptest.NewRequest(http.MethodGet, "/?token=garbage", nil)
	req.Header.Set("x-auth-token", signedToken(t, svc))

	if _, called, err := runAuth(t, svc, req); err != nil || !called {
		t.Fatalf("header token should win, err=%v called=%v", err, called)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	svc := newTokenService(t, "secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, called, err := runAuth(t, svc, req)
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if called {
		t.Fatalf("next must not run without a token")
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	issuer := newTokenService(t, "other-secret")
	verifier := newTokenService(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-auth-token", signedToken(t, issuer))

	_, called, err := runAuth(t, verifier, req)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if called {
		t.Fatalf("next must not run with a bad token")
	}
}

func TestAuth_Garbage(t *testing.T) {
	svc := newTokenService(t, "secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-auth-token", "not-a-token")

	if _, _, err := runAuth(t, svc, req); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
