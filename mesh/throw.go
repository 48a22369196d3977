package mesh

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors up through the geometric predicates would add a ton of
// complexity to code that is otherwise pure math. Instead, the predicates
// panic, and Insert recovers to convert the panic into a reported anomaly for
// the offending point before moving on to the next one.

// Sentinel causes for the three anomaly kinds. Callers can test a reported
// error with errors.Is.
var (
	// The point locator exhausted its queue without finding a containing
	// cell. The bounding triangle should make this impossible, so it signals
	// an invariant breach; the point is skipped rather than inserted.
	ErrLocationFailure = errors.New("point location failed")

	// Collinear or coincident vertices drove a predicate's denominator to
	// zero. Detected before dividing, so NaN never propagates.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// Two points sharing a planar position but differing in elevation are
	// explicitly unsupported.
	ErrCoincidentPoint = errors.New("coincident planar position")
)

// A concrete wrapper rather than an interface: the recover below must only
// catch anomalies thrown by fatalf. A bare `error` type would also swallow
// runtime errors from genuine bugs and report them as skipped points.
type meshError struct {
	err error
}

// Panic with a meshError wrapping the given sentinel.
func fatalf(cause error, format string, args ...interface{}) {
	panic(meshError{errors.Wrapf(cause, format, args...)})
}

func recoverMeshError(r interface{}) error {
	if r != nil {
		if thrown, ok := r.(meshError); ok {
			return thrown.err
		}
		panic(r)
	}
	return nil
}

// A skipped point and the anomaly that caused it.
type PointError struct {
	Point *Point
	Err   error
}

// InsertError aggregates the anomalies from a single Insert call. The mesh
// remains valid; only the listed points were dropped.
type InsertError struct {
	Skipped []PointError
}

func (e *InsertError) Error() string {
	if len(e.Skipped) == 1 {
		return "skipped 1 point: " + e.Skipped[0].Err.Error()
	}
	return fmt.Sprintf("skipped %d points, first: %v", len(e.Skipped), e.Skipped[0].Err)
}

func (e *InsertError) Unwrap() []error {
	errs := make([]error, len(e.Skipped))
	for i, s := range e.Skipped {
		errs[i] = s.Err
	}
	return errs
}
