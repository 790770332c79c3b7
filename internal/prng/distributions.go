package prng

import "math"

// Normal draws a standard-normal value via Box-Muller, consuming exactly
// two uniform draws from the stream.
func (s *Stream) Normal() float64 {
	u1 := s.Float64()
	if u1 <= 0 {
		u1 = 1e-12
	}
	u2 := s.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// TruncatedNormal draws from a normal(mean, sd) distribution rejected to
// [lo, hi], as used throughout §4.6 (count, HP, speed, cadence, start
// latents). Rejection sampling is the standard construction for a
// truncated normal and stays fully deterministic given the stream's
// state; after maxAttempts rejected draws it returns the mean clamped
// into [lo, hi] rather than loop forever on a pathological (mean, sd, lo,
// hi) combination.
func (s *Stream) TruncatedNormal(mean, sd, lo, hi float64) float64 {
	const maxAttempts = 64
	for i := 0; i < maxAttempts; i++ {
		v := mean + s.Normal()*sd
		if v >= lo && v <= hi {
			return v
		}
	}
	return clamp(mean, lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Poisson draws from a Poisson(lambda) distribution via Knuth's
// multiplicative algorithm (§4.6 stage 5, species count latent).
func (s *Stream) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		k++
		p *= s.Float64()
		if p <= l {
			return k - 1
		}
	}
}

// gamma draws from a Gamma(shape, 1) distribution for shape >= 1 via the
// Marsaglia-Tsang method, the standard rejection construction used to
// build Dirichlet draws from independent Gammas.
func (s *Stream) gamma(shape float64) float64 {
	if shape < 1 {
		// Boost by one and correct, the standard trick for shape < 1.
		u := s.Float64()
		return s.gamma(shape+1) * math.Pow(u, 1/shape)
	}
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		x := s.Normal()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := s.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// Dirichlet draws a length-k vector from Dirichlet(alpha, alpha, ..., alpha)
// via independent Gamma(alpha,1) draws normalized to sum 1 (§4.6 stage 7).
func (s *Stream) Dirichlet(alpha float64, k int) []float64 {
	out := make([]float64, k)
	var total float64
	for i := 0; i < k; i++ {
		out[i] = s.gamma(alpha)
		total += out[i]
	}
	if total <= 0 {
		for i := range out {
			out[i] = 1.0 / float64(k)
		}
		return out
	}
	for i := range out {
		out[i] /= total
	}
	return out
}

// BivariateTruncatedNormal draws (x, y) from a bivariate normal with the
// given means, equal standard deviations sigma, and correlation rho,
// constructed via the standard Cholesky decomposition of a 2x2
// correlation matrix (§4.6 stage 6, species centres). The draw itself is
// not truncated: no bound is applied to x or y here. The wave generator
// clamps the exponentiated hp/speed multipliers into range afterwards.
func (s *Stream) BivariateTruncatedNormal(meanX, meanY, sigma, rho float64) (float64, float64) {
	z1 := s.Normal()
	z2 := s.Normal()
	x := meanX + sigma*z1
	y := meanY + sigma*(rho*z1+math.Sqrt(1-rho*rho)*z2)
	return x, y
}
