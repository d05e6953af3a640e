package chat

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/syncailabs/mitra-backend/internal/metrics"
	dialoguemodel "github.com/syncailabs/mitra-backend/internal/model/dialogue"
	dialogueservice "github.com/syncailabs/mitra-backend/internal/service/dialogue"
	"github.com/syncailabs/mitra-backend/internal/service/session"
)

// WebSocketHandler is the persistent-connection variant of the turn endpoint,
// for widgets that keep a socket open instead of posting per message. Turns
// are still strictly sequential per connection.
type WebSocketHandler struct {
	engine     *dialogueservice.Engine
	store      session.Store
	cookieName string
	upgrader   websocket.Upgrader
}

// NewWebSocketHandler creates the websocket chat handler.
func NewWebSocketHandler(engine *dialogueservice.Engine, store session.Store, cookieName string) *WebSocketHandler {
	return &WebSocketHandler{
		engine:     engine,
		store:      store,
		cookieName: cookieName,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the websocket route.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/ws", h.handleWebSocket)
}

type inboundTurn struct {
	Message string `json:"message"`
}

type sessionEnvelope struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Tell the widget which session the connection is bound to so it can
	// reconnect with ?session=<id>.
	if err := conn.WriteJSON(sessionEnvelope{Type: "session", SessionID: sessionID}); err != nil {
		log.Printf("[ws] session=%s handshake write failed: %v", sessionID, err)
		return
	}

	for {
		var in inboundTurn
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] session=%s read error: %v", sessionID, err)
			}
			return
		}

		reply, err := h.turn(r, sessionID, in.Message)
		if err != nil {
			log.Printf("[ws] session=%s turn failed: %v", sessionID, err)
			return
		}

		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("[ws] session=%s write error: %v", sessionID, err)
			return
		}
	}
}

func (h *WebSocketHandler) turn(r *http.Request, sessionID, message string) (dialoguemodel.Reply, error) {
	sess, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			return dialoguemodel.Reply{}, err
		}
		sess = dialoguemodel.NewSession(sessionID)
	}

	reply, outcome := h.engine.Route(message, sess)
	metrics.TurnsTotal.WithLabelValues(string(outcome)).Inc()

	sess.UpdatedAt = time.Now().UTC()
	if err := h.store.Put(r.Context(), sessionID, sess); err != nil {
		return dialoguemodel.Reply{}, err
	}
	return reply, nil
}

// sessionID prefers the session cookie, then the session query parameter used
// on reconnects, then mints a fresh id.
func (h *WebSocketHandler) sessionID(r *http.Request) string {
	if c, err := r.Cookie(h.cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if id := r.URL.Query().Get("session"); id != "" {
		return id
	}
	return uuid.NewString()
}
