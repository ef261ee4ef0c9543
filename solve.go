// SPDX-License-Identifier: MIT
package lpviz

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lpviz/centralpath"
	"github.com/katalvlaran/lpviz/ipm"
	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/pdhg"
	"github.com/katalvlaran/lpviz/polytope"
	"github.com/katalvlaran/lpviz/simplex"
)

// Options carries per-engine options; a nil field means that engine's
// DefaultOptions().
type Options struct {
	Simplex     *simplex.Options
	IPM         *ipm.Options
	PDHG        *pdhg.Options
	CentralPath *centralpath.Options
}

// Solve runs one engine on p. The returned Result is non-nil for every known
// Method, also alongside a fatal error; it is nil only with ErrUnknownMethod.
func Solve(p *polytope.Problem, m Method, opts *Options) (*lp.Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	switch m {
	case Simplex:
		res, err := simplex.Solve(p, opts.Simplex)
		return &res.Result, err
	case IPM:
		res, err := ipm.Solve(p, opts.IPM)
		return &res.Result, err
	case PDHG:
		res, err := pdhg.Solve(p, opts.PDHG)
		return &res.Result, err
	case CentralPath:
		res, err := centralpath.Solve(p, opts.CentralPath)
		return &res.Result, err
	default:
		return nil, fmt.Errorf("lpviz.Solve: %v: %w", m, ErrUnknownMethod)
	}
}

// Outcome is one engine's result within SolveAll.
type Outcome struct {
	Result *lp.Result
	Err    error
}

// SolveAll runs every engine on p concurrently, one goroutine per engine,
// and waits for all of them. Engines only read p, so sharing it is safe.
func SolveAll(p *polytope.Problem, opts *Options) map[Method]Outcome {
	var (
		methods  = Methods()
		outcomes = make([]Outcome, len(methods))
		wg       sync.WaitGroup
	)
	for i, m := range methods {
		wg.Add(1)
		go func(i int, m Method) {
			defer wg.Done()
			res, err := Solve(p, m, opts)
			outcomes[i] = Outcome{Result: res, Err: err}
		}(i, m)
	}
	wg.Wait()

	out := make(map[Method]Outcome, len(methods))
	for i, m := range methods {
		out[m] = outcomes[i]
	}

	return out
}
