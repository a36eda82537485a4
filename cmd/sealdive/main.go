// Command sealdive is the terminal seal survival game.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"sealdive/audio"
	"sealdive/config"
	"sealdive/game"
	"sealdive/leaderboard"
	"sealdive/render"
	"sealdive/replay"
	"sealdive/storage"
)

// FrameInterval is the redraw period; ticks run at game.TickRate regardless.
const FrameInterval = time.Second / 30

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sealdive:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Load(); err != nil {
		return err
	}
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	// The screen owns stdout and stderr, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	log := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	prefs := db.Prefs()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cols, rows := screen.Size()
	w, h := render.Viewport{Cols: cols, Rows: rows}.WorldSize()

	scene := render.NewScene(game.NewWorld(w, h), seed+1)
	view := render.NewRenderer(screen, scene)

	var (
		cues  game.Cues = audio.Silent{}
		sound *audio.Player
	)
	if sound, err = audio.NewPlayer(0.8); err != nil {
		log.Warn("audio unavailable", "err", err)
		sound = nil
	} else {
		defer sound.Close()
		sound.SetMuted(cfg.Mute)
		view.SetMuted(cfg.Mute)
		cues = sound
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	opts := game.Options{
		Rand:        game.NewRand(seed),
		Cues:        cues,
		Effects:     scene,
		Environment: scene,
		Best:        prefs,
		Logger:      log,
	}

	var reporter *leaderboard.Reporter
	if cfg.LeaderboardURL != "off" {
		client := leaderboard.NewClient(cfg.LeaderboardURL, nil)
		reporter = leaderboard.NewReporter(client, cfg.TopN, log)
		reporter.OnBoard = func(rows []leaderboard.Row) { view.SetBoard(boardRows(rows)) }
		opts.Scoreboard = reporter
		defer reporter.Wait()

		eg.Go(func() error {
			identify(ctx, client, prefs, reporter, view, cfg.Nick, log)
			reporter.Refresh(ctx)
			return nil
		})
		eg.Go(func() error {
			err := client.Subscribe(ctx, func(rows []leaderboard.Row) { view.SetBoard(boardRows(rows)) })
			if err != nil && ctx.Err() == nil {
				log.Warn("leaderboard push unavailable", "err", err)
			}
			return nil
		})
	}

	g := game.New(w, h, opts)

	var rec *replay.Recorder
	if cfg.RecordPath != "" {
		if rec, err = replay.Create(cfg.RecordPath, replay.Header{Seed: seed, Width: w, Height: h}); err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Warn("close recording", "err", err)
			}
		}()
	}

	a := &app{
		sess:   replay.NewSession(g, rec),
		screen: screen,
		view:   view,
		scene:  scene,
		in:     render.NewInput(),
		now:    time.Now,
		quit:   cancel,
	}
	if sound != nil {
		a.sound = sound
	}
	sched := game.NewScheduler(a)
	log.Info("sealdive started", "seed", seed, "cols", cols, "rows", rows)

	events := make(chan tcell.Event, 32)
	go pumpEvents(ctx, screen.PollEvent, events)

	eg.Go(func() error {
		err := sched.Run(ctx, FrameInterval)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				sched.Post(func() { a.handle(ev) })
			}
		}
	})

	err = eg.Wait()
	log.Info("sealdive stopped", "ticks", sched.Ticks(), "err", err)
	return err
}

// identify loads the saved identity or registers nick, and files results under it.
func identify(ctx context.Context, c *leaderboard.Client, prefs *storage.Prefs, r *leaderboard.Reporter,
	view *render.Renderer, nick string, log *slog.Logger) {
	id, saved, err := prefs.Identity()
	switch {
	case err == nil:
		r.SetPlayer(id)
		view.SetNote(saved)
		return
	case !errors.Is(err, storage.ErrNotFound):
		log.Warn("read identity", "err", err)
		return
	case nick == "":
		log.Info("no nickname set; results stay local")
		return
	}

	p, err := c.RegisterOrFind(ctx, nick)
	if err != nil {
		log.Warn("register nickname", "nickname", nick, "err", err)
		view.SetNote("network error")
		return
	}
	if err := prefs.SetIdentity(p.ID, p.Nickname); err != nil {
		log.Warn("save identity", "err", err)
	}
	r.SetPlayer(p.ID)
	view.SetNote(p.Nickname)
	log.Info("registered", "id", p.ID, "nickname", p.Nickname)
}
