package model

import "context"

// Pinger is a backend that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status reports backend liveness.
type Status struct {
	Redis bool
	DB    bool
}

// Stats holds record counts.
type Stats struct {
	Users int64
	Files int64
}
