package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"sealdive/game"
)

// fakeServer is an in-memory leaderboard speaking the same REST and push protocol.
type fakeServer struct {
	mu      sync.Mutex
	players map[string]*Player
	submits int
	push    chan []Row
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	f := &fakeServer{players: map[string]*Player{}, push: make(chan []Row, 4)}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/players", f.register)
	mux.HandleFunc("POST /api/players/{id}/scores", f.submit)
	mux.HandleFunc("GET /api/leaderboard", f.top)
	mux.HandleFunc("GET /ws", f.ws)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (f *fakeServer) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	json.NewDecoder(r.Body).Decode(&req)
	if strings.TrimSpace(req.Nickname) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrBadNickname.Error()})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.players {
		if p.Nickname == req.Nickname {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	p := &Player{ID: "id-" + req.Nickname, Nickname: req.Nickname}
	f.players[p.ID] = p
	writeJSON(w, http.StatusOK, p)
}

func (f *fakeServer) submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	json.NewDecoder(r.Body).Decode(&req)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits++
	p, ok := f.players[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "unknown player"})
		return
	}
	changed := p.BestTime < req.Time
	if changed {
		p.BestTime, p.BestScore = req.Time, req.Score
	}
	writeJSON(w, http.StatusOK, SubmitResponse{Changed: changed})
}

func (f *fakeServer) top(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := []Row{}
	for _, p := range f.players {
		rows = append(rows, Row{Nickname: p.Nickname, BestTime: p.BestTime, BestScore: p.BestScore})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (f *fakeServer) ws(w http.ResponseWriter, r *http.Request) {
	var up websocket.Upgrader
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for rows := range f.push {
		if err := conn.WriteJSON(BoardMsg{Type: MsgBoard, Rows: rows}); err != nil {
			return
		}
	}
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func TestNormalizeNickname(t *testing.T) {
	tests := []struct {
		in, want string
		err      error
	}{
		{"  kelp ", "kelp", nil},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnop", nil},
		{"тюлень-тюлень-тюлень", "тюлень-тюлень-тю", nil},
		{"   ", "", ErrBadNickname},
	}
	for _, tt := range tests {
		got, err := NormalizeNickname(tt.in)
		if got != tt.want || !errors.Is(err, tt.err) {
			t.Errorf("NormalizeNickname(%q) = %q, %v; want %q, %v", tt.in, got, err, tt.want, tt.err)
		}
	}
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, srv := newFakeServer(t)
	c := NewClient(srv.URL+"/", nil)

	p, err := c.RegisterOrFind(ctx, "  kelp  ")
	if err != nil {
		t.Fatal(err)
	}
	if p.Nickname != "kelp" || p.ID == "" {
		t.Fatalf("RegisterOrFind = %+v", p)
	}
	again, err := c.RegisterOrFind(ctx, "kelp")
	if err != nil || again.ID != p.ID {
		t.Fatalf("second RegisterOrFind = %+v, %v; want the same id", again, err)
	}

	if changed, err := c.Submit(ctx, p.ID, 42, 5); err != nil || !changed {
		t.Fatalf("Submit = %v, %v", changed, err)
	}
	if changed, _ := c.Submit(ctx, p.ID, 12, 9); changed {
		t.Fatal("worse time changed the record")
	}
	rows, err := c.Top(ctx, 10)
	if err != nil || len(rows) != 1 || rows[0].BestTime != 42 || rows[0].BestScore != 5 {
		t.Fatalf("Top = %+v, %v", rows, err)
	}
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	_, srv := newFakeServer(t)
	c := NewClient(srv.URL, nil)

	if _, err := c.RegisterOrFind(ctx, " "); !errors.Is(err, ErrBadNickname) {
		t.Fatalf("blank nickname err = %v", err)
	}
	if _, err := c.Submit(ctx, "ghost", 1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id err = %v, want ErrNotFound", err)
	}

	down := NewClient("http://127.0.0.1:1", &http.Client{Timeout: time.Second})
	if _, err := down.Top(ctx, 3); err == nil {
		t.Fatal("Top against a closed port succeeded")
	}
}

func TestSubscribe(t *testing.T) {
	f, srv := newFakeServer(t)
	c := NewClient(srv.URL, nil)

	got := make(chan []Row, 4)
	done := make(chan error, 1)
	go func() { done <- c.Subscribe(context.Background(), func(r []Row) { got <- r }) }()

	f.push <- []Row{{Nickname: "kelp", BestTime: 30}}
	select {
	case rows := <-got:
		if len(rows) != 1 || rows[0].Nickname != "kelp" {
			t.Fatalf("pushed rows = %+v", rows)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no board pushed")
	}

	close(f.push)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Subscribe after normal close = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe did not return after close")
	}
}

func TestSubscribeStopsOnCancel(t *testing.T) {
	_, srv := newFakeServer(t)
	c := NewClient(srv.URL, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Subscribe(ctx, func([]Row) {}) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Subscribe = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe ignored cancel")
	}
}

func TestReporterSubmitsAndRefreshes(t *testing.T) {
	f, srv := newFakeServer(t)
	c := NewClient(srv.URL, nil)
	p, err := c.RegisterOrFind(context.Background(), "kelp")
	if err != nil {
		t.Fatal(err)
	}

	var (
		mu    sync.Mutex
		board []Row
	)
	r := NewReporter(c, 10, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.OnBoard = func(rows []Row) {
		mu.Lock()
		board = rows
		mu.Unlock()
	}

	var sb game.Scoreboard = r
	sb.Submit(game.Result{Time: 20, Score: 3})
	r.Wait()
	if f.submits != 0 {
		t.Fatalf("submitted %d results before a player was set", f.submits)
	}

	r.SetPlayer(p.ID)
	sb.Submit(game.Result{Survival: 50, Bonus: 2, Time: 52, Score: 6})
	r.Wait()

	f.mu.Lock()
	submits := f.submits
	f.mu.Unlock()
	if submits != 1 {
		t.Fatalf("submits = %d, want 1", submits)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(board) != 1 || board[0].BestTime != 52 {
		t.Fatalf("board = %+v, want kelp at 52", board)
	}
}

func TestReporterSwallowsFailures(t *testing.T) {
	r := NewReporter(NewClient("http://127.0.0.1:1", &http.Client{Timeout: time.Second}), 10,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.OnBoard = func([]Row) { t.Error("OnBoard called after a failed fetch") }
	r.SetPlayer("x")
	r.Submit(game.Result{Time: 1})
	r.Wait()
}
