// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// secureHeaders is applied to every response. The storefront serves JSON
// and a stylesheet, so the set is deliberately small: no sniffing, no
// framing from other origins, no legacy XSS filter, minimal referrer.
var secureHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "SAMEORIGIN",
	"X-XSS-Protection":       "0",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
	"Permissions-Policy":     "interest-cohort=()",
}

// SecureHeaders sets baseline security headers on every response.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for name, value := range secureHeaders {
			h.Set(name, value)
		}
		next.ServeHTTP(w, r)
	})
}
