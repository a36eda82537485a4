package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Player is one leaderboard row.
type Player struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	BestTime  float64   `json:"best_time"`
	BestScore int       `json:"best_score"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Players is the server-side player table.
type Players struct {
	db *sql.DB
}

const playerColumns = `id, nickname, best_time, best_score, updated_at`

func scanPlayer(row interface{ Scan(...any) error }) (Player, error) {
	var (
		p       Player
		updated int64
	)
	if err := row.Scan(&p.ID, &p.Nickname, &p.BestTime, &p.BestScore, &updated); err != nil {
		return Player{}, err
	}
	p.UpdatedAt = time.UnixMilli(updated).UTC()
	return p, nil
}

func (ps *Players) FindByNickname(ctx context.Context, nickname string) (Player, error) {
	return ps.findOne(ctx, `SELECT `+playerColumns+` FROM players WHERE nickname = ?`, nickname)
}

func (ps *Players) Find(ctx context.Context, id string) (Player, error) {
	return ps.findOne(ctx, `SELECT `+playerColumns+` FROM players WHERE id = ?`, id)
}

func (ps *Players) findOne(ctx context.Context, q string, arg string) (Player, error) {
	p, err := scanPlayer(ps.db.QueryRowContext(ctx, q, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return Player{}, ErrNotFound
	}
	if err != nil {
		return Player{}, fmt.Errorf("find player: %w", err)
	}
	return p, nil
}

// Create inserts a player with no record yet. A taken nickname yields ErrDuplicate.
func (ps *Players) Create(ctx context.Context, id, nickname string) (Player, error) {
	now := time.Now().UTC()
	_, err := ps.db.ExecContext(ctx,
		`INSERT INTO players (id, nickname, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, nickname, now.UnixMilli(), now.UnixMilli())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return Player{}, ErrDuplicate
		}
		return Player{}, fmt.Errorf("create player: %w", err)
	}
	return Player{ID: id, Nickname: nickname, UpdatedAt: time.UnixMilli(now.UnixMilli()).UTC()}, nil
}

// SubmitBest raises the player's record to t only if t beats the stored one.
// It reports whether the row changed; an unknown id yields ErrNotFound.
func (ps *Players) SubmitBest(ctx context.Context, id string, t float64, score int) (bool, error) {
	res, err := ps.db.ExecContext(ctx,
		`UPDATE players SET best_time = ?, best_score = ?, updated_at = ?
		 WHERE id = ? AND best_time < ?`,
		t, score, time.Now().UnixMilli(), id, t)
	if err != nil {
		return false, fmt.Errorf("submit best: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("submit best: %w", err)
	}
	if n > 0 {
		return true, nil
	}
	if _, err := ps.Find(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

// Top returns up to n players ordered by best time, longest first.
// Players without a record are left out.
func (ps *Players) Top(ctx context.Context, n int) ([]Player, error) {
	rows, err := ps.db.QueryContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE best_time > 0
		 ORDER BY best_time DESC, updated_at ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("top players: %w", err)
	}
	defer rows.Close()

	var out []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("top players: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
