package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// ErrNotFound is returned when the server does not know the player id.
var ErrNotFound = errors.New("leaderboard: player not found")

// StatusError is a non-2xx reply.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("leaderboard: %d %s", e.Code, e.Message)
}

// Client talks to a leaderboard server.
type Client struct {
	base string
	http *http.Client
}

// NewClient targets the server at base, e.g. "http://localhost:8080".
// A nil hc gets a client with a 10 second timeout.
func NewClient(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{base: strings.TrimRight(base, "/"), http: hc}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var e ErrorResponse
		json.NewDecoder(resp.Body).Decode(&e)
		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusBadRequest:
			if e.Error == ErrBadNickname.Error() {
				return ErrBadNickname
			}
		}
		return &StatusError{Code: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}

// RegisterOrFind returns the player with this nickname, creating it if needed.
func (c *Client) RegisterOrFind(ctx context.Context, nickname string) (Player, error) {
	nick, err := NormalizeNickname(nickname)
	if err != nil {
		return Player{}, err
	}
	var p Player
	err = c.do(ctx, http.MethodPost, "/api/players", RegisterRequest{Nickname: nick}, &p)
	return p, err
}

// Submit offers a result. The server keeps it only if it beats the stored record,
// so a stale local best never overwrites a better remote one.
func (c *Client) Submit(ctx context.Context, id string, t float64, score int) (bool, error) {
	var r SubmitResponse
	err := c.do(ctx, http.MethodPost, "/api/players/"+url.PathEscape(id)+"/scores",
		SubmitRequest{Time: t, Score: score}, &r)
	return r.Changed, err
}

// Top returns up to n rows, best time first.
func (c *Client) Top(ctx context.Context, n int) ([]Row, error) {
	var rows []Row
	err := c.do(ctx, http.MethodGet, "/api/leaderboard?limit="+strconv.Itoa(n), nil, &rows)
	return rows, err
}

// Subscribe streams table updates to fn until ctx ends or the connection drops.
func (c *Client) Subscribe(ctx context.Context, fn func([]Row)) error {
	u, err := url.Parse(c.base + "/ws")
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", u, err)
	}
	stop := context.AfterFunc(ctx, func() { ws.Close() })
	defer stop()
	defer ws.Close()

	for {
		var msg BoardMsg
		if err := ws.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read board: %w", err)
		}
		if msg.Type == MsgBoard {
			fn(msg.Rows)
		}
	}
}
