package page

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"
)

// Branch is a single named fetch of a join. Run writes its result into a destination
// owned by this branch only.
type Branch struct {
	Name string
	Run  func(ctx context.Context) error
}

// Outcome is the result of a single branch
type Outcome struct {
	Name string
	Err  error
}

// Join runs all branches concurrently and waits for every one of them. A failing branch
// neither cancels nor fails the others; its error is reported in the outcome at the same index.
func Join(ctx context.Context, branches ...Branch) []Outcome {
	res := make([]Outcome, len(branches))
	var g errgroup.Group
	for i, b := range branches {
		res[i].Name = b.Name
		g.Go(func() error {
			res[i].Err = b.Run(ctx)
			return nil
		})
	}
	_ = g.Wait() // branches never return errors to the group
	return res
}

// Warnings logs failed branches and returns them as human-readable warnings, nil if all succeeded
func Warnings(outcomes []Outcome) []string {
	var res []string
	for _, o := range outcomes {
		if o.Err == nil {
			continue
		}
		lgr.Printf("[WARN] %s unavailable: %v", o.Name, o.Err)
		res = append(res, fmt.Sprintf("%s unavailable: %v", o.Name, o.Err))
	}
	return res
}
