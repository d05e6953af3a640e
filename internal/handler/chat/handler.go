package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/syncailabs/mitra-backend/internal/metrics"
	dialoguemodel "github.com/syncailabs/mitra-backend/internal/model/dialogue"
	dialogueservice "github.com/syncailabs/mitra-backend/internal/service/dialogue"
	"github.com/syncailabs/mitra-backend/internal/service/session"
	"github.com/syncailabs/mitra-backend/pkg/utils"
)

// Handler serves the widget's turn endpoint. Each request is one complete
// synchronous turn: load session, route, save, respond.
type Handler struct {
	engine     *dialogueservice.Engine
	store      session.Store
	cookieName string
	ttl        time.Duration
}

// New creates the chat handler.
func New(engine *dialogueservice.Engine, store session.Store, cookieName string, ttl time.Duration) *Handler {
	return &Handler{
		engine:     engine,
		store:      store,
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// RegisterRoutes registers the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleTurn)
}

func (h *Handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}
	// A missing or malformed body is normalized to an empty message, which
	// falls through to the fallback reply.
	_ = json.NewDecoder(r.Body).Decode(&payload)

	sessionID := h.sessionID(r)
	h.setSessionCookie(w, sessionID)

	sess, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusInternalServerError, "session store unavailable")
			return
		}
		sess = dialoguemodel.NewSession(sessionID)
	}

	reply, outcome := h.engine.Route(payload.Message, sess)
	metrics.TurnsTotal.WithLabelValues(string(outcome)).Inc()

	sess.UpdatedAt = time.Now().UTC()
	if err := h.store.Put(r.Context(), sessionID, sess); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "session store unavailable")
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}

// sessionID resolves the visitor identity from the session cookie, minting a
// fresh id for first contact.
func (h *Handler) sessionID(r *http.Request) string {
	if c, err := r.Cookie(h.cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return uuid.NewString()
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
