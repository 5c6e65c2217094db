package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Run("calls next handler and returns correct status", func(t *testing.T) {
		var called bool
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})

		handler := Logger(inner)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if !called {
			t.Error("next handler should have been called")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})

	t.Run("captures non-200 status code", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		handler := Logger(inner)

		req := httptest.NewRequest(http.MethodGet, "/api/catalogs/missing", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rr.Code)
		}
	})

	t.Run("handles write without explicit WriteHeader", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Write body without calling WriteHeader — Go defaults to 200.
			w.Write([]byte("hello"))
		})

		handler := Logger(inner)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
		if rr.Body.String() != "hello" {
			t.Errorf("body: got %q, want %q", rr.Body.String(), "hello")
		}
	})
}

// TestResponseWriter verifies the wrapper the Logger uses to capture
// status codes.
func TestResponseWriter(t *testing.T) {
	t.Run("WriteHeader only captures first call", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

		rw.WriteHeader(http.StatusNotFound)
		rw.WriteHeader(http.StatusInternalServerError) // Should be ignored.

		if rw.statusCode != http.StatusNotFound {
			t.Errorf("statusCode: got %d, want 404 (first call)", rw.statusCode)
		}
		if !rw.written {
			t.Error("written should be true after WriteHeader")
		}
	})

	t.Run("Write sets default 200 status", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

		n, err := rw.Write([]byte("test"))
		if err != nil {
			t.Fatalf("Write error: %v", err)
		}
		if n != 4 {
			t.Errorf("bytes written: got %d, want 4", n)
		}
		if rw.statusCode != http.StatusOK {
			t.Errorf("statusCode: got %d, want 200", rw.statusCode)
		}
	})

	t.Run("Write does not override explicit WriteHeader", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

		rw.WriteHeader(http.StatusCreated)
		rw.Write([]byte("created"))

		if rw.statusCode != http.StatusCreated {
			t.Errorf("statusCode: got %d, want 201", rw.statusCode)
		}
	})
}
