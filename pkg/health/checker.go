// Package health implements the liveness and readiness probes.
package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a whole readiness probe.
const DefaultTimeout = 5 * time.Second

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

func Up() Result { return Result{Status: StatusUp} }

func Down(err error) Result { return Result{Status: StatusDown, Message: err.Error()} }

// Checker probes one dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}
