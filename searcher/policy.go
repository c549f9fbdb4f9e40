package searcher

import "math"

type uct struct {
	exploration float64
	logN        float64
}

func newUCT(exploration float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{exploration: exploration, logN: math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + C*sqrt(ln(N)/n)
	return q/n + u.exploration*math.Sqrt(u.logN/n)
}
