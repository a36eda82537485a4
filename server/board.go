package main

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"sealdive/leaderboard"
	"sealdive/storage"
)

// Board pushes the top-N table to subscribers. Accepted submissions mark it
// dirty and the loop broadcasts at most TickRate times per second, so a burst
// of records costs one query per tick.
type Board struct {
	players *storage.Players
	conns   *ConnManager
	topN    int
	log     *slog.Logger
	dirty   atomic.Bool
	sent    atomic.Int64
}

func NewBoard(players *storage.Players, conns *ConnManager, topN int, log *slog.Logger) *Board {
	return &Board{players: players, conns: conns, topN: topN, log: log}
}

// MarkDirty schedules a broadcast on the next tick.
func (b *Board) MarkDirty() {
	b.dirty.Store(true)
}

// Message returns the current table as a push message.
func (b *Board) Message(ctx context.Context) (leaderboard.BoardMsg, error) {
	top, err := b.players.Top(ctx, b.topN)
	if err != nil {
		return leaderboard.BoardMsg{}, err
	}
	return leaderboard.BoardMsg{Type: leaderboard.MsgBoard, Rows: rowsOf(top)}, nil
}

// Greet sends the current table to a new subscriber.
func (b *Board) Greet(ctx context.Context, c *Conn) {
	msg, err := b.Message(ctx)
	if err != nil {
		b.log.ErrorContext(ctx, "read leaderboard", "err", err)
		return
	}
	_ = c.Send(msg)
}

// Run broadcasts on a fixed tick until ctx ends.
func (b *Board) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()
	b.log.InfoContext(ctx, "board loop started", "rate", TickRate)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if b.dirty.Swap(false) {
				b.broadcast(ctx)
			}
		}
	}
}

func (b *Board) broadcast(ctx context.Context) {
	msg, err := b.Message(ctx)
	if err != nil {
		b.log.ErrorContext(ctx, "read leaderboard", "err", err)
		b.dirty.Store(true)
		return
	}
	for _, c := range b.conns.Snapshot() {
		if err := c.Send(msg); err != nil {
			b.log.DebugContext(ctx, "push failed", "conn", c.ID, "err", err)
			c.Close()
		}
	}
	b.sent.Add(1)
}

// Broadcasts is the number of table pushes so far.
func (b *Board) Broadcasts() int64 {
	return b.sent.Load()
}
