package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"vitrine/internal/middleware"
	"vitrine/internal/session"
	"vitrine/internal/store"
)

// totpIssuer is the issuer shown in authenticator apps.
const totpIssuer = "Vitrine"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		sessions:  sessions,
		userStore: userStore,
	}
}

// Login validates credentials and opens a session. The response tells the
// admin UI whether 2FA still needs to be set up or just verified.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := a.userStore.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if user == nil || !a.userStore.CheckPassword(user, req.Password) {
		apiError(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	// Create a session. TwoFADone starts as false — user must complete 2FA.
	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
		TwoFADone:   false,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	resp := map[string]any{
		"display_name":    user.DisplayName,
		"needs_2fa_setup": user.Needs2FASetup(),
	}

	// First login: generate a TOTP secret and hand back provisioning data.
	if user.Needs2FASetup() {
		key, err := totp.Generate(totp.GenerateOpts{
			Issuer:      totpIssuer,
			AccountName: user.Email,
		})
		if err != nil {
			slog.Error("totp generate failed", "error", err)
			apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
		if err := a.userStore.SetTOTPSecret(user.ID, key.Secret()); err != nil {
			slog.Error("save totp secret failed", "error", err)
			apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}

		qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
		if err != nil {
			slog.Error("qr code generation failed", "error", err)
			apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
		resp["totp_secret"] = key.Secret()
		resp["totp_qr_png"] = base64.StdEncoding.EncodeToString(qrPNG)
	}

	writeJSON(w, http.StatusOK, resp)
}

// VerifyTwoFA validates the TOTP code and completes authentication.
func (a *Auth) VerifyTwoFA(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if !sess.Authenticated() {
		apiError(w, http.StatusUnauthorized, "Not logged in.")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if user.TOTPSecret == nil {
		apiError(w, http.StatusConflict, "Two-factor setup has not been started.")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		apiError(w, http.StatusUnauthorized, "Invalid code. Please try again.")
		return
	}

	// First successful verification completes enrollment.
	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
