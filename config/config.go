// Package config reads settings from the environment, after loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissing = errors.New("config: variable not set")

// Client configures the terminal game.
type Client struct {
	DBPath         string // SEALDIVE_DB
	LeaderboardURL string // SEALDIVE_LEADERBOARD_URL, "off" disables the leaderboard
	LogPath        string // SEALDIVE_LOG
	Seed           uint64 // SEALDIVE_SEED, 0 picks one from the clock
	Mute           bool   // SEALDIVE_MUTE
	Nick           string // SEALDIVE_NICK
	RecordPath     string // SEALDIVE_RECORD
	TopN           int    // SEALDIVE_TOP_N
}

// Server configures the leaderboard server.
type Server struct {
	Addr       string        // SEALDIVE_ADDR
	DBPath     string        // SEALDIVE_SERVER_DB
	TopN       int           // SEALDIVE_TOP_N
	IPCooldown time.Duration // SEALDIVE_IP_COOLDOWN, seconds
	TrustProxy bool          // SEALDIVE_TRUST_PROXY, key rate limits on X-Forwarded-For
}

// Load reads files (default ".env") into the environment. Variables already set win,
// and a missing file is not an error.
func Load(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// GetEnv returns the value of key, or ErrMissing when it is unset or empty.
func GetEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%s: %w", key, ErrMissing)
	}
	return v, nil
}

// GetEnvDefault returns the value of key, or def when it is unset or empty.
func GetEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v, err := GetEnv(key)
	if errors.Is(err, ErrMissing) {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getUint(key string, def uint64) (uint64, error) {
	v, err := GetEnv(key)
	if errors.Is(err, ErrMissing) {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, def bool) (bool, error) {
	v, err := GetEnv(key)
	if errors.Is(err, ErrMissing) {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// LoadClient reads the client settings.
func LoadClient() (Client, error) {
	c := Client{
		DBPath:         GetEnvDefault("SEALDIVE_DB", "sealdive.db"),
		LeaderboardURL: GetEnvDefault("SEALDIVE_LEADERBOARD_URL", "http://localhost:8080"),
		LogPath:        GetEnvDefault("SEALDIVE_LOG", "sealdive.log"),
		Nick:           os.Getenv("SEALDIVE_NICK"),
		RecordPath:     os.Getenv("SEALDIVE_RECORD"),
	}
	var err error
	if c.Seed, err = getUint("SEALDIVE_SEED", 0); err != nil {
		return Client{}, err
	}
	if c.Mute, err = getBool("SEALDIVE_MUTE", false); err != nil {
		return Client{}, err
	}
	if c.TopN, err = getInt("SEALDIVE_TOP_N", 10); err != nil {
		return Client{}, err
	}
	return c, nil
}

// LoadServer reads the server settings.
func LoadServer() (Server, error) {
	s := Server{
		Addr:   GetEnvDefault("SEALDIVE_ADDR", ":8080"),
		DBPath: GetEnvDefault("SEALDIVE_SERVER_DB", "leaderboard.db"),
	}
	var err error
	if s.TopN, err = getInt("SEALDIVE_TOP_N", 10); err != nil {
		return Server{}, err
	}
	cooldown, err := getInt("SEALDIVE_IP_COOLDOWN", 30)
	if err != nil {
		return Server{}, err
	}
	s.IPCooldown = time.Duration(cooldown) * time.Second
	if s.TrustProxy, err = getBool("SEALDIVE_TRUST_PROXY", false); err != nil {
		return Server{}, err
	}
	return s, nil
}
