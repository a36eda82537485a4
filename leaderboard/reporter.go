package leaderboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sealdive/game"
)

// SubmitTimeout bounds one submit-and-refresh round trip.
const SubmitTimeout = 10 * time.Second

// Reporter is the game's Scoreboard: each finished round is submitted in the
// background and the refreshed table handed to OnBoard. Failures are logged
// and dropped.
type Reporter struct {
	client  *Client
	limit   int
	log     *slog.Logger
	OnBoard func([]Row)

	mu sync.Mutex
	id string
	wg sync.WaitGroup
}

func NewReporter(c *Client, limit int, log *slog.Logger) *Reporter {
	return &Reporter{client: c, limit: limit, log: log}
}

// SetPlayer sets the id results are filed under. Until then only the table is fetched.
func (r *Reporter) SetPlayer(id string) {
	r.mu.Lock()
	r.id = id
	r.mu.Unlock()
}

func (r *Reporter) player() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.id
}

// Submit implements game.Scoreboard.
func (r *Reporter) Submit(res game.Result) {
	id := r.player()
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), SubmitTimeout)
		defer cancel()

		if id != "" {
			changed, err := r.client.Submit(ctx, id, res.Time, res.Score)
			if err != nil {
				r.log.Warn("submit result", "player", id, "time", res.Time, "err", err)
			} else {
				r.log.Info("result submitted", "player", id, "time", res.Time, "record", changed)
			}
		}
		r.Refresh(ctx)
	}()
}

// Refresh fetches the table and passes it to OnBoard.
func (r *Reporter) Refresh(ctx context.Context) {
	rows, err := r.client.Top(ctx, r.limit)
	if err != nil {
		r.log.Warn("fetch leaderboard", "err", err)
		return
	}
	if r.OnBoard != nil {
		r.OnBoard(rows)
	}
}

// Wait blocks until in-flight submissions finish.
func (r *Reporter) Wait() {
	r.wg.Wait()
}
