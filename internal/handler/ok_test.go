package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestOKHandler_Response(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewOKHandler(0)
	if err := h.Serve(c); err != nil {
		t.Fatalf("Serve returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "OK\n" {
		t.Errorf("Expected body %q, got %q", "OK\n", got)
	}
	if got := rec.Header().Get(echo.HeaderContentLength); got != "3" {
		t.Errorf("Expected Content-Length 3, got %q", got)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != echo.MIMETextPlainCharsetUTF8 {
		t.Errorf("Expected plain text content type, got %q", got)
	}
}

func TestOKHandler_Delay(t *testing.T) {
	e := echo.New()
	h := NewOKHandler(50 * time.Millisecond)
	if h.Delay() != 50*time.Millisecond {
		t.Fatalf("Expected delay 50ms, got %v", h.Delay())
	}

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	start := time.Now()
	if err := h.Serve(c); err != nil {
		t.Fatalf("Serve returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("Expected at least 50ms, took %v", elapsed)
	}
}

// TestOKHandler_IgnoresMethodAndPath checks the request has no influence on the response.
func TestOKHandler_IgnoresMethodAndPath(t *testing.T) {
	e := echo.New()
	h := NewOKHandler(0)
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/some/other/path?x=1", nil)
		rec := httptest.NewRecorder()
		if err := h.Serve(e.NewContext(req, rec)); err != nil {
			t.Fatalf("%s: Serve returned error: %v", method, err)
		}
		if rec.Code != http.StatusOK || rec.Body.String() != Body {
			t.Errorf("%s: unexpected response %d %q", method, rec.Code, rec.Body.String())
		}
	}
}
