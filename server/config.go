package main

import "time"

// Server tuning. Addresses, paths and limits that vary per deployment come from
// the environment (see config.LoadServer).
const (
	APIPrefix     = "/api"
	WebSocketPath = "/ws"

	// Board loop
	TickRate = 4 // table broadcasts per second at most

	// Subscribers
	MaxSubscribers = 500
	WriteWait      = 5 * time.Second
	PongWait       = 60 * time.Second
	PingPeriod     = PongWait * 9 / 10
	ReadLimit      = 512 // subscribers send nothing but control frames

	// Requests
	MaxBodyBytes = 1 << 10
	MaxTopN      = 100
	MaxTime      = 24 * 60 * 60 // seconds; longer results are rejected
)
