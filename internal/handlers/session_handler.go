package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"immoBack/internal/models"
	"immoBack/internal/services"
)

type SessionHandler struct {
	Service *services.SessionService
}

// CreateSession exchanges the dashboard secret for a short-lived HttpOnly
// cookie. The secret itself never ends up in the cookie.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Secret string `json:"secret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.Service.SignIn(r.Context(), req.Secret)
	if err != nil {
		if errors.Is(err, models.ErrInvalidSecret) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]bool{"success": false})
			return
		}
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(models.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(models.SessionCookieName); err == nil {
		if err := h.Service.SignOut(r.Context(), cookie.Value); err != nil {
			http.Error(w, "Failed to delete session", http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}
