// Package batch cleans many independent PBM files concurrently.
//
// Each Job reads its own input into its own grid.Bit, runs unblack.Unblack,
// and writes its own output, so no two goroutines ever share a grid.
// Concurrency is bounded by an errgroup limit; the first failure cancels
// jobs that have not started yet.
//
// Inputs and outputs ending in ".zst" are zstd-framed (see pbm.Open).
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pbmclean/pbm"
	"github.com/katalvlaran/pbmclean/unblack"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("batch: invalid option supplied")

// Job names one input file and the file its cleaned image goes to.
type Job struct {
	In, Out string
}

// Report is the outcome of one Job.
type Report struct {
	Job

	// Cleared is the number of black pixels Unblack removed.
	Cleared int

	// Remaining is the number of black pixels left in the output.
	Remaining int
}

// Option configures Run.
type Option func(*Options)

// Options holds Run's tunables.
type Options struct {
	// Workers bounds the number of jobs in flight.
	Workers int

	err error
}

// DefaultOptions returns Workers = runtime.NumCPU().
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// WithWorkers sets the concurrency limit; n must be > 0.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be > 0 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// Run processes jobs with at most Workers in flight and returns one Report
// per job, in job order. On the first failure it stops scheduling new jobs
// and returns that failure, prefixed with the failing input path.
func Run(ctx context.Context, jobs []Job, opts ...Option) ([]Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	reports := make([]Report, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, job := range jobs {
		i, job := i, job // per-iteration copies (go 1.21 loop semantics)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := clean(job)
			if err != nil {
				return fmt.Errorf("batch: %s: %w", job.In, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// clean runs one job end to end.
func clean(job Job) (rep Report, err error) {
	rep.Job = job

	in, err := pbm.Open(job.In)
	if err != nil {
		return rep, err
	}
	bm, err := pbm.ReadBit(in)
	_ = in.Close()
	if err != nil {
		return rep, err
	}

	if rep.Cleared, err = unblack.Unblack(bm); err != nil {
		return rep, err
	}
	rep.Remaining = bm.Count()

	out, err := pbm.Create(job.Out)
	if err != nil {
		return rep, err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return rep, pbm.WriteBit(out, bm)
}
