package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"killfeed/models"
	"killfeed/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// Server receives kill events from game-server agents over HTTP
type Server struct {
	killfeedService service.KillfeedService
	token           string
	httpServer      *http.Server
}

// killPayload is the wire format agents post for one kill
type killPayload struct {
	Killer    string  `json:"killer"`
	Victim    string  `json:"victim"`
	Weapon    string  `json:"weapon"`
	Distance  float64 `json:"distance"`
	IsSuicide bool    `json:"is_suicide"`
}

func NewServer(addr, token string, killfeedService service.KillfeedService) *Server {
	s := &Server{
		killfeedService: killfeedService,
		token:           token,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.authenticate)

	r.Post("/guilds/{guildID}/servers/{serverID}/kills", s.handleKill)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Start serves until the listener closes. It blocks; run it in a goroutine.
func (s *Server) Start() error {
	log.Infof("Telemetry server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token == "" || r.Header.Get("Authorization") != "Bearer "+s.token {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleKill(w http.ResponseWriter, r *http.Request) {
	guildID, err := strconv.ParseInt(chi.URLParam(r, "guildID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid guild id")
		return
	}
	serverID := chi.URLParam(r, "serverID")

	var payload killPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	event := &models.KillEvent{
		GuildID:   guildID,
		ServerID:  serverID,
		Killer:    payload.Killer,
		Victim:    payload.Victim,
		Weapon:    payload.Weapon,
		Distance:  payload.Distance,
		IsSuicide: payload.IsSuicide,
	}

	if err := s.killfeedService.RecordKill(r.Context(), event); err != nil {
		log.Errorf("Failed to record kill from server %s: %v", serverID, err)
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": event.ID})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": message})
}
