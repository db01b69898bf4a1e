package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlashRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	setFlash(rec, "error", "Bir sorun oluştu!")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()

	f := popFlash(rec2, req)
	if f == nil {
		t.Fatal("flash not read back")
	}
	if f.Type != "error" || f.Message != "Bir sorun oluştu!" {
		t.Errorf("flash = %+v", f)
	}

	// Reading must expire the cookie.
	var cleared bool
	for _, c := range rec2.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie not expired after read")
	}
}

func TestPopFlashAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	if f := popFlash(httptest.NewRecorder(), req); f != nil {
		t.Errorf("flash = %+v, want nil", f)
	}
}
