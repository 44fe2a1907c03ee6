package stats

import "math"

// Penta counts the results of game pairs, two games with colours swapped,
// from one player's point of view.
type Penta struct {
	LL int `yaml:"loss-loss"`
	LD int `yaml:"loss-draw"`
	DD int `yaml:"draw-draw"` // win-loss pairs count as draw-draw
	WD int `yaml:"win-draw"`
	WW int `yaml:"win-win"`
}

// Pairs returns the number of pairs counted.
func (penta Penta) Pairs() int {
	return penta.LL + penta.LD + penta.DD + penta.WD + penta.WW
}

// Add counts a pair whose two game scores, each 1, 0 or -1, sum to sum.
func (penta *Penta) Add(sum int) {
	switch {
	case sum <= -2:
		penta.LL++
	case sum == -1:
		penta.LD++
	case sum == 0:
		penta.DD++
	case sum == 1:
		penta.WD++
	default:
		penta.WW++
	}
}

// probabilities returns the measured pair probabilities with a prior of
// half a pair in every bucket.
func (penta Penta) probabilities() (ll, ld, dd, wd, ww, n float64) {
	n = float64(penta.Pairs()) + 2.5 // total number of pairs

	ll = (float64(penta.LL) + 0.5) / n // measured loss-loss probability
	ld = (float64(penta.LD) + 0.5) / n // measured loss-draw probability
	dd = (float64(penta.DD) + 0.5) / n // measured win-loss/draw-draw probability
	wd = (float64(penta.WD) + 0.5) / n // measured win-draw probability
	ww = (float64(penta.WW) + 0.5) / n // measured win-win probability
	return
}

// variance returns the variance of a pair's score around mu.
func variance(ll, ld, dd, wd, ww, mu float64) float64 {
	return ww*math.Pow(1-mu, 2) +
		wd*math.Pow(0.75-mu, 2) +
		dd*math.Pow(0.50-mu, 2) +
		ld*math.Pow(0.25-mu, 2) +
		ll*math.Pow(0.00-mu, 2)
}

// Elo calculates the best fit elo for the pairs using a pentanomial model,
// along with its p < 0.05 lower and upper bounds.
func (penta Penta) Elo() (muMin float64, mu float64, muMax float64) {
	ll, ld, dd, wd, ww, n := penta.probabilities()

	// empirical mean of random variable
	mu = ww + 0.75*wd + 0.5*dd + 0.25*ld

	// standard deviation of the random variable
	sigma := math.Sqrt(variance(ll, ld, dd, wd, ww, mu)) / math.Sqrt(n)

	return bounds(mu, sigma)
}

// SPRT returns the log-likelihood ratio comparing the fit of the elo0 and
// elo1 hypotheses (normalized elo) to the pairs.
func (penta Penta) SPRT(elo0, elo1 float64) (llr float64) {
	ll, ld, dd, wd, ww, n := penta.probabilities()

	// empirical mean of random variable
	mu := ww + 0.75*wd + 0.5*dd + 0.25*ld

	// standard deviation (multiplied by sqrt of N) of the random variable
	r := math.Sqrt(variance(ll, ld, dd, wd, ww, mu))

	// convert elo bounds to score
	mu0 := nEloToScore(elo0, r)
	mu1 := nEloToScore(elo1, r)

	// deviation to the score bounds
	r0 := variance(ll, ld, dd, wd, ww, mu0)
	r1 := variance(ll, ld, dd, wd, ww, mu1)

	if r0 == 0 || r1 == 0 {
		return 0
	}

	// log-likelihood ratio (llr)
	// note: this is not the exact llr formula but rather a simplified yet
	// very accurate approximation. see http://hardy.uhasselt.be/Fishtest/support_MLE_multinomial.pdf
	return 0.5 * n * math.Log(r0/r1)
}
