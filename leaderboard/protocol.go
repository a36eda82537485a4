// Package leaderboard is the client side of the remote best-time table and
// the wire types the leaderboard server shares with it.
package leaderboard

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// REST endpoints (JSON bodies):
//   POST /api/players               {"nickname":"kelp"}            → Player (found or created)
//   POST /api/players/{id}/scores   {"time":61.2,"score":7}        → {"changed":true}
//   GET  /api/leaderboard?limit=10                                  → [Row]
//
// Push channel, GET /ws. The server sends the current table on connect and
// again whenever an accepted submission changes it:
//   {"t":"l","l":[Row,...]}

// MaxNickname is the longest nickname in runes.
const MaxNickname = 16

// ErrBadNickname means the nickname is empty after trimming.
var ErrBadNickname = errors.New("leaderboard: nickname must not be empty")

// MsgBoard is the push message type carrying the table.
const MsgBoard = "l"

// Player is a registered identity with its record.
type Player struct {
	ID        string  `json:"id"`
	Nickname  string  `json:"nickname"`
	BestTime  float64 `json:"best_time"`
	BestScore int     `json:"best_score"`
}

// Row is one public leaderboard line. It carries no player id.
type Row struct {
	Nickname  string  `json:"nickname"`
	BestTime  float64 `json:"best_time"`
	BestScore int     `json:"best_score"`
}

type RegisterRequest struct {
	Nickname string `json:"nickname"`
}

type SubmitRequest struct {
	Time  float64 `json:"time"`
	Score int     `json:"score"`
}

type SubmitResponse struct {
	Changed bool `json:"changed"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BoardMsg is the push message. {"t":"l","l":[rows]}
type BoardMsg struct {
	Type string `json:"t"`
	Rows []Row  `json:"l"`
}

// NormalizeNickname trims surrounding space and cuts the name to MaxNickname runes.
func NormalizeNickname(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNickname {
		s = strings.TrimSpace(string([]rune(s)[:MaxNickname]))
	}
	if s == "" {
		return "", ErrBadNickname
	}
	return s, nil
}
