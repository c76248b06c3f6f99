package health

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Registry holds the checkers consulted by the readiness probe.
type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// Register adds a checker. It must not be called once probes are served.
func (r *Registry) Register(c Checker) {
	r.checkers = append(r.checkers, c)
}

type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll runs every checker concurrently; the service is up only when
// all of them are.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	if len(r.checkers) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(r.checkers))
	g, gctx := errgroup.WithContext(ctx)
	for i, checker := range r.checkers {
		g.Go(func() error {
			res := checker.Check(gctx)
			results[i] = CheckResult{Name: checker.Name(), Status: res.Status, Message: res.Message}
			return nil
		})
	}
	_ = g.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status == StatusDown {
			overall = StatusDown
			break
		}
	}
	return ReadinessResponse{Status: overall, Checks: results}
}
