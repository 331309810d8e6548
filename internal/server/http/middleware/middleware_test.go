package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	testhelpers "github.com/salwa-health/rentalboard/internal/test"
)

func newSessionEngine(facade SessionFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Session(facade))
	engine.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(WorkspaceContextKey))
	})
	return engine
}

func TestSessionReusesValidToken(t *testing.T) {
	stub := &testhelpers.RentalFacadeStub{
		ParseFn: func(token string) (string, error) {
			if token != "valid-token" {
				t.Fatalf("unexpected token %q", token)
			}
			return "ws-7", nil
		},
		OpenFn: func(ctx context.Context) (string, string, error) {
			t.Fatal("must not open a new workspace for a valid token")
			return "", "", nil
		},
	}
	engine := newSessionEngine(stub)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Body.String() != "ws-7" {
		t.Fatalf("expected bound workspace ws-7, got %q", rec.Body.String())
	}
}

func TestSessionAcceptsCookieToken(t *testing.T) {
	stub := &testhelpers.RentalFacadeStub{
		ParseFn: func(token string) (string, error) {
			if token != "cookie-token" {
				t.Fatalf("unexpected token %q", token)
			}
			return "ws-9", nil
		},
	}
	engine := newSessionEngine(stub)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "salwa_session", Value: "cookie-token"})
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Body.String() != "ws-9" {
		t.Fatalf("expected bound workspace ws-9, got %q", rec.Body.String())
	}
}

func TestSessionOpensWorkspaceWithoutToken(t *testing.T) {
	opened := false
	stub := &testhelpers.RentalFacadeStub{
		OpenFn: func(ctx context.Context) (string, string, error) {
			opened = true
			return "ws-new", "fresh-token", nil
		},
	}
	engine := newSessionEngine(stub)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if !opened {
		t.Fatal("expected a fresh workspace to be opened")
	}
	if rec.Body.String() != "ws-new" {
		t.Fatalf("expected new workspace bound, got %q", rec.Body.String())
	}

	cookieSet := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "salwa_session" && c.Value == "fresh-token" {
			cookieSet = true
			if !c.HttpOnly {
				t.Fatal("session cookie must be http-only")
			}
		}
	}
	if !cookieSet {
		t.Fatal("expected session cookie in response")
	}
	if got := rec.Header().Get("Authorization"); got != "Bearer fresh-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
}

func TestSessionReplacesInvalidToken(t *testing.T) {
	stub := &testhelpers.RentalFacadeStub{
		ParseFn: func(token string) (string, error) {
			return "", errors.New("invalid session token")
		},
		OpenFn: func(ctx context.Context) (string, string, error) {
			return "ws-new", "fresh-token", nil
		},
	}
	engine := newSessionEngine(stub)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Body.String() != "ws-new" {
		t.Fatalf("expected replacement workspace, got %q", rec.Body.String())
	}
}

func TestSessionReplacesTokenForEvictedWorkspace(t *testing.T) {
	stub := &testhelpers.RentalFacadeStub{
		ParseFn: func(token string) (string, error) { return "ws-gone", nil },
		HasFn:   func(ctx context.Context, workspaceID string) bool { return false },
		OpenFn: func(ctx context.Context) (string, string, error) {
			return "ws-new", "fresh-token", nil
		},
	}
	engine := newSessionEngine(stub)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Body.String() != "ws-new" {
		t.Fatalf("expected replacement workspace, got %q", rec.Body.String())
	}
}

func TestSessionOpenFailure(t *testing.T) {
	stub := &testhelpers.RentalFacadeStub{
		OpenFn: func(ctx context.Context) (string, string, error) {
			return "", "", errors.New("storage unavailable")
		},
	}
	engine := newSessionEngine(stub)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func newDecompressEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(DecompressRequest())
	engine.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, string(body))
	})
	return engine
}

func TestDecompressRequestUnwrapsGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(`{"items":[]}`))
	zw.Close()

	req := httptest.NewRequest(http.MethodPost, "/echo", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	newDecompressEngine().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if rec.Body.String() != `{"items":[]}` {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestDecompressRequestRejectsMalformedGzip(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("plainly not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	newDecompressEngine().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDecompressRequestPassesPlainBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("plain"))
	rec := httptest.NewRecorder()
	newDecompressEngine().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "plain" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
}
