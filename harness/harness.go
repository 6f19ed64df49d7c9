// Package harness wraps solver functions with timing and structured
// reporting. It is reporting glue only: the wrapped result and error pass
// through unchanged.
package harness

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taridan/mtsp/mtsp"
)

// SolveFunc is any mTSP solver entry point with the canonical signature.
type SolveFunc func(cost [][]float64, opts mtsp.Options) (mtsp.Result, error)

// Timed runs fn, measures the wall-clock duration, and logs the solver
// name, elapsed time, objective and routes through log (the logrus standard
// logger when log is nil). The triple from fn is returned untouched.
func Timed(log *logrus.Logger, name string, fn SolveFunc, cost [][]float64, opts mtsp.Options) (mtsp.Result, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	start := time.Now()
	res, err := fn(cost, opts)
	elapsed := time.Since(start)

	fields := logrus.Fields{
		"solver":  name,
		"elapsed": elapsed.Round(time.Millisecond).String(),
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Error("solve failed")

		return res, err
	}

	fields["status"] = res.Status.String()
	fields["objective"] = res.Cost
	fields["routes"] = res.Routes
	log.WithFields(fields).Info("solve finished")

	return res, err
}
