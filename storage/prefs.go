package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

const (
	keyBestTime = "best_time"
	keyPlayerID = "player_id"
	keyNickname = "nickname"
)

// Prefs stores the local best time and the registered identity under fixed keys.
type Prefs struct {
	db *sql.DB
}

func (p *Prefs) get(key string) (string, error) {
	var v string
	err := p.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return v, nil
}

func (p *Prefs) set(e execer, key, value string) error {
	_, err := e.Exec(`INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// BestTime returns the stored best time, or 0 when none was saved.
func (p *Prefs) BestTime() (float64, error) {
	v, err := p.get(keyBestTime)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parse best time %q: %w", v, err)
	}
	return f, nil
}

func (p *Prefs) SetBestTime(t float64) error {
	return p.set(p.db, keyBestTime, strconv.FormatFloat(t, 'f', -1, 64))
}

// LoadBest and SaveBest make Prefs the game's best-time store.
func (p *Prefs) LoadBest() (float64, error) { return p.BestTime() }

func (p *Prefs) SaveBest(t float64) error { return p.SetBestTime(t) }

// Identity returns the registered player id and nickname, or ErrNotFound.
func (p *Prefs) Identity() (id, nickname string, err error) {
	if id, err = p.get(keyPlayerID); err != nil {
		return "", "", err
	}
	if nickname, err = p.get(keyNickname); err != nil {
		return "", "", err
	}
	return id, nickname, nil
}

// SetIdentity writes both halves of the identity atomically.
func (p *Prefs) SetIdentity(id, nickname string) error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := p.set(tx, keyPlayerID, id); err != nil {
		return err
	}
	if err := p.set(tx, keyNickname, nickname); err != nil {
		return err
	}
	return tx.Commit()
}
