// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCSRFSetsCookieOnGet(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/settings", nil)

	CSRF(okHandler()).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == CSRFCookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("CSRF cookie not set")
	}
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/products", nil)
	r.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-value"})

	CSRF(okHandler()).ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestCSRFRejectsMismatchedToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/products", nil)
	r.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-value"})
	r.Header.Set(CSRFHeaderName, "different-value")

	CSRF(okHandler()).ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestCSRFAcceptsMatchingToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/products", nil)
	r.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-value"})
	r.Header.Set(CSRFHeaderName, "token-value")

	CSRF(okHandler()).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
