package dfc

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// CorrPValue returns the two-sided p-value for observing Pearson
// correlation r over n timepoints under the null of no coupling, using
// the t distribution with n-2 degrees of freedom.
func CorrPValue(r float64, n int) float64 {
	if n <= 2 || math.IsNaN(r) || math.Abs(r) > 1 {
		return math.NaN()
	}
	if r == 1 || r == -1 {
		return 0
	}

	t := r * math.Sqrt(float64(n-2)/((1-r)*(1+r)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}

	return 2 * dist.Survival(math.Abs(t))
}
