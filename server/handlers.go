package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"sealdive/leaderboard"
	"sealdive/storage"
)

// Server holds the HTTP handlers' dependencies.
type Server struct {
	players *storage.Players
	board   *Board
	conns   *ConnManager
	limiter *ipRateLimiter
	topN    int
	log     *slog.Logger

	trustProxy bool
}

// Routes builds the request multiplexer.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+APIPrefix+"/players", s.handleRegister)
	mux.HandleFunc("POST "+APIPrefix+"/players/{id}/scores", s.handleSubmit)
	mux.HandleFunc("GET "+APIPrefix+"/leaderboard", s.handleTop)
	mux.HandleFunc("GET "+WebSocketPath, s.handleWS)
	return mux
}

// clientIP is the peer address. Behind a trusted reverse proxy it is the first
// X-Forwarded-For entry, the client the proxy saw.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad request body")
		return false
	}
	return true
}

// handleRegister finds the player by nickname or creates one. Only creation is rate limited.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req leaderboard.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	nick, err := leaderboard.NormalizeNickname(req.Nickname)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx := r.Context()

	p, err := s.players.FindByNickname(ctx, nick)
	if err == nil {
		writeJSON(w, http.StatusOK, playerOf(p))
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		s.internal(w, r, err)
		return
	}

	if !s.limiter.allow(clientIP(r, s.trustProxy)) {
		writeError(w, http.StatusTooManyRequests, "too many registrations, try again later")
		return
	}
	p, err = s.players.Create(ctx, uuid.New().String(), nick)
	if errors.Is(err, storage.ErrDuplicate) {
		// Lost a race with another registration of the same name.
		p, err = s.players.FindByNickname(ctx, nick)
	}
	if err != nil {
		s.internal(w, r, err)
		return
	}
	s.log.InfoContext(ctx, "player registered", "id", p.ID, "nickname", p.Nickname)
	writeJSON(w, http.StatusOK, playerOf(p))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req leaderboard.SubmitRequest
	if !decode(w, r, &req) {
		return
	}
	if math.IsNaN(req.Time) || req.Time < 0 || req.Time > MaxTime || req.Score < 0 {
		writeError(w, http.StatusBadRequest, "result out of range")
		return
	}
	ctx := r.Context()
	id := r.PathValue("id")

	changed, err := s.players.SubmitBest(ctx, id, req.Time, req.Score)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "unknown player")
		return
	}
	if err != nil {
		s.internal(w, r, err)
		return
	}
	if changed {
		s.log.InfoContext(ctx, "new record", "id", id, "time", req.Time, "score", req.Score)
		s.board.MarkDirty()
	}
	writeJSON(w, http.StatusOK, leaderboard.SubmitResponse{Changed: changed})
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	n := s.topN
	if v := r.URL.Query().Get("limit"); v != "" {
		var err error
		if n, err = strconv.Atoi(v); err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad limit")
			return
		}
		n = min(n, MaxTopN)
	}
	top, err := s.players.Top(r.Context(), n)
	if err != nil {
		s.internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rowsOf(top))
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; the table is public
		return true
	},
	ReadBufferSize:  512,
	WriteBufferSize: 4096,
	// Enable per-message deflate compression (RFC 7692)
	EnableCompression: true,
}

// sendErrorAndClose sends an error message via WebSocket then closes the connection
func sendErrorAndClose(ws *websocket.Conn, msg string) {
	data, _ := json.Marshal(leaderboard.ErrorResponse{Error: msg})
	_ = ws.WriteMessage(websocket.TextMessage, data)
	ws.Close()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("ws upgrade error", "err", err)
		return
	}
	// Check limits after upgrade so client can receive error messages
	if s.conns.Count() >= MaxSubscribers {
		sendErrorAndClose(ws, "Server full. Please try again later.")
		return
	}

	conn := NewConn(ws)
	s.conns.Add(conn)
	s.log.Debug("subscriber connected", "conn", conn.ID)
	s.board.Greet(r.Context(), conn)

	conn.ReadLoop(s.log, func(c *Conn) {
		s.conns.Remove(c.ID)
		s.log.Debug("subscriber disconnected", "conn", c.ID)
	})
}

func (s *Server) internal(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
