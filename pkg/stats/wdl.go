package stats

import "math"

// WDL counts the results of single games from one player's point of view.
type WDL struct {
	Wins   int `yaml:"wins"`
	Draws  int `yaml:"draws"`
	Losses int `yaml:"losses"`
}

// Games returns the number of games counted.
func (wdl WDL) Games() int {
	return wdl.Wins + wdl.Draws + wdl.Losses
}

// Score returns the points scored, a win being one and a draw a half.
func (wdl WDL) Score() float64 {
	return float64(wdl.Wins) + float64(wdl.Draws)/2
}

// probabilities returns the measured result probabilities with a
// Dirichlet([0.5, 0.5, 0.5]) prior.
func (wdl WDL) probabilities() (w, d, l, n float64) {
	n = float64(wdl.Games()) + 1.5 // total number of games

	w = (float64(wdl.Wins) + 0.5) / n   // measured win probability
	d = (float64(wdl.Draws) + 0.5) / n  // measured draw probability
	l = (float64(wdl.Losses) + 0.5) / n // measured loss probability
	return w, d, l, n
}

// Elo returns the likely elo difference along with its p < 0.05 lower and
// upper bounds.
func (wdl WDL) Elo() (muMin float64, mu float64, muMax float64) {
	w, d, l, n := wdl.probabilities()

	// empirical mean of random variable
	mu = w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(n)

	return bounds(mu, sigma)
}

// SPRT returns the log-likelihood ratio of the hypotheses that the elo
// difference is elo1 (H1) rather than elo0 (H0), using a trinomial model.
func (wdl WDL) SPRT(elo0, elo1 float64) (llr float64) {
	w, d, l, n := wdl.probabilities()
	_, dlo := wdlToElo(w, d, l)

	w0, d0, l0 := eloToWDL(elo0, dlo) // elo0 WDL probabilities
	w1, d1, l1 := eloToWDL(elo1, dlo) // elo1 WDL probabilities

	// log-likelihood ratio (llr)
	return n * (w*math.Log(w1/w0) +
		d*math.Log(d1/d0) +
		l*math.Log(l1/l0))
}
