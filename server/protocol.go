package main

import (
	"encoding/json"
	"net/http"

	"sealdive/leaderboard"
	"sealdive/storage"
)

// Wire types are shared with the client in package leaderboard.
// This file holds the server-side conversions and reply helpers.

// rowOf strips the player id for public display.
func rowOf(p storage.Player) leaderboard.Row {
	return leaderboard.Row{Nickname: p.Nickname, BestTime: p.BestTime, BestScore: p.BestScore}
}

func rowsOf(ps []storage.Player) []leaderboard.Row {
	rows := make([]leaderboard.Row, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, rowOf(p))
	}
	return rows
}

func playerOf(p storage.Player) leaderboard.Player {
	return leaderboard.Player{ID: p.ID, Nickname: p.Nickname, BestTime: p.BestTime, BestScore: p.BestScore}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, leaderboard.ErrorResponse{Error: msg})
}
