package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestResult is the outcome of a two-sample comparison. Valid is false
// when either sample is too small (or too degenerate) to test; the other
// fields must then be ignored.
type TTestResult struct {
	T     float64 `json:"t_statistic"`
	P     float64 `json:"p_value"`
	DF    float64 `json:"degrees_of_freedom"`
	N1    int     `json:"n1"`
	N2    int     `json:"n2"`
	Valid bool    `json:"valid"`
}

// WelchTTest runs Welch's unequal-variance two-sample t-test of x against y.
// Degrees of freedom follow the Welch-Satterthwaite equation and the
// two-sided p-value comes from the Student's-t CDF. Both samples need at
// least two values. With 2-vs-3 samples the p-value is a coarse
// significance signal, not a rigorous inference.
func WelchTTest(x, y []float64) TTestResult {
	res := TTestResult{N1: len(x), N2: len(y), P: 1}
	if len(x) < 2 || len(y) < 2 {
		return res
	}

	n1 := float64(len(x))
	n2 := float64(len(y))
	mean1, _ := mstats.Mean(x)
	mean2, _ := mstats.Mean(y)
	var1, _ := mstats.SampleVariance(x)
	var2, _ := mstats.SampleVariance(y)

	sq := var1/n1 + var2/n2
	if sq <= 0 {
		// Both samples are constant. Equal means carry no signal (t=0,
		// p=1); unequal constant means cannot be tested.
		if mean1 == mean2 {
			res.Valid = true
			res.DF = n1 + n2 - 2
		}
		return res
	}

	se := math.Sqrt(sq)
	res.T = (mean1 - mean2) / se
	res.DF = sq * sq / (math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1))

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: res.DF}
	res.P = 2 * tDist.CDF(-math.Abs(res.T))
	res.Valid = true
	return res
}
