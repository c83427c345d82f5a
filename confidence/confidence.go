package confidence

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrLevelOutOfRange indicates a confidence level outside the exclusive
	// interval (0,100), or a non-finite level.
	ErrLevelOutOfRange = errors.New("confidence: level must be in (0,100) exclusive")

	// ErrBadSigma indicates a non-positive or non-finite sigma multiplier.
	ErrBadSigma = errors.New("confidence: sigma must be positive and finite")
)

// stdNormal is the standard normal distribution used for all conversions.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Sigma converts a two-sided confidence level in percent to its z-score:
// the number of standard deviations covering that probability mass.
//
//	Sigma(68.27) ≈ 1.0, Sigma(95) ≈ 1.96, Sigma(99.73) ≈ 3.0
//
// The target quantile is 1-(1-p)/2, so both tails are excluded evenly.
//
// Errors: ErrLevelOutOfRange for non-finite levels or levels ≤0 or ≥100.
func Sigma(level float64) (float64, error) {
	if !isFinite(level) || level <= 0 || level >= 100 {
		return 0, ErrLevelOutOfRange
	}

	p := level / 100

	return stdNormal.Quantile(1 - (1-p)/2), nil
}

// Level converts a z-score back to its two-sided confidence level in
// percent: Level(1.96) ≈ 95. Inverse of Sigma within floating-point
// tolerance.
//
// Errors: ErrBadSigma for non-finite or non-positive sigma.
func Level(sigma float64) (float64, error) {
	if !isFinite(sigma) || sigma <= 0 {
		return 0, ErrBadSigma
	}

	tail := 1 - stdNormal.CDF(sigma)

	return (1 - 2*tail) * 100, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
