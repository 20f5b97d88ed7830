// Package health exposes liveness and readiness probes for the API process.
// Readiness aggregates per-dependency checks; a single StatusDown dependency
// marks the whole process not ready.
package health

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Checker probes one external dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}

type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
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

type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// CheckAll probes every registered dependency concurrently and aggregates the
// results. Checkers never return errors; a failed probe is a StatusDown result.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	results := make([]CheckResult, len(r.checkers))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range r.checkers {
		g.Go(func() error {
			res := c.Check(gctx)
			results[i] = CheckResult{Name: c.Name(), Status: res.Status, Message: res.Message}
			return nil
		})
	}
	_ = g.Wait()

	status := StatusUp
	for _, res := range results {
		if res.Status == StatusDown {
			status = StatusDown
			break
		}
	}
	return ReadinessResponse{Status: status, Checks: results}
}
