package sweep

import (
	"context"
	"sync"
)

// RunParallel executes the sweep with one goroutine per point. Each
// point is an independent closed-form analysis, so no coordination is
// needed beyond the result slice. Cancellation leaves untouched points
// with ctx.Err().
func RunParallel(ctx context.Context, cfg Config) ([]Point, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	vals := cfg.values()
	points := make([]Point, len(vals))

	var wg sync.WaitGroup
	for i, v := range vals {
		wg.Add(1)
		go func(idx int, val float64) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				points[idx] = Point{Value: val, Err: err}
				return
			}

			res, err := cfg.analyzeAt(val)
			points[idx] = Point{Value: val, Result: res, Err: err}
		}(i, v)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return points, err
	}
	return points, nil
}
