package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-chatedit/pkg/assistant"
	"github.com/goliatone/go-chatedit/pkg/render"
	"github.com/goliatone/go-chatedit/pkg/schema"
	"github.com/goliatone/go-chatedit/pkg/session"
)

const sessionCookie = "chatedit_session"

type chatServer struct {
	registry        *render.Registry
	defaultRenderer string
	schema          schema.Form
	document        string
	collab          assistant.Assistant
	logger          *slog.Logger
	theme           *theme.RendererConfig
	sessions        *sessionStore
}

// sessionStore guards the session map. Each session itself stays
// single-threaded; the per-entry mutex serialises the handlers that share it.
type sessionStore struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

type sessionEntry struct {
	mu   sync.Mutex
	sess *session.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{entries: make(map[string]*sessionEntry)}
}

func (s *sessionStore) get(id string) (*sessionEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	return entry, ok
}

func (s *sessionStore) put(id string, entry *sessionEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry
}

// sessionFor returns the visitor's session, creating it (and the cookie) on
// first contact.
func (s *chatServer) sessionFor(w http.ResponseWriter, r *http.Request) *sessionEntry {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if entry, ok := s.sessions.get(cookie.Value); ok {
			return entry
		}
	}

	id := newSessionID()
	entry := &sessionEntry{
		sess: session.New(
			session.WithSchema(s.schema),
			session.WithDocument(s.document),
			session.WithAssistant(s.collab),
			session.WithLogger(s.logger),
		),
	}
	s.sessions.put(id, entry)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return entry
}

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Reply   string            `json:"reply"`
	Applied int               `json:"applied"`
	Panes   string            `json:"panes"`
	Values  map[string]string `json:"values"`
}

func (s *chatServer) messageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	entry := s.sessionFor(w, r)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	reply, err := entry.sess.HandleMessage(r.Context(), req.Message)
	if err != nil {
		s.logger.Error("handle message", "error", err)
		http.Error(w, "assistant unavailable", http.StatusBadGateway)
		return
	}

	panes, err := s.renderPanes(r, entry)
	if err != nil {
		s.logger.Error("render panes", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	display := reply.Text
	if display == "" {
		if reply.Applied == 0 {
			display = "No changes applied."
		} else {
			display = fmt.Sprintf("Applied %d edit(s).", reply.Applied)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(messageResponse{
		Reply:   display,
		Applied: reply.Applied,
		Panes:   panes,
		Values:  reply.Values,
	}); err != nil {
		s.logger.Warn("encode response", "error", err)
	}
}

func (s *chatServer) panesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entry := s.sessionFor(w, r)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	renderer, err := s.rendererFor(r.URL.Query().Get("renderer"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := renderer.Render(r.Context(), entry.sess.View(), render.Options{Theme: s.theme})
	if err != nil {
		s.logger.Error("render panes", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	_, _ = w.Write(out)
}

func (s *chatServer) renderPanes(r *http.Request, entry *sessionEntry) (string, error) {
	renderer, err := s.rendererFor(r.URL.Query().Get("renderer"))
	if err != nil {
		return "", err
	}
	out, err := renderer.Render(r.Context(), entry.sess.View(), render.Options{Theme: s.theme})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (s *chatServer) rendererFor(name string) (render.Renderer, error) {
	if name == "" {
		name = s.defaultRenderer
	}
	return s.registry.Get(name)
}
