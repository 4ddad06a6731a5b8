package transition

import "math"

// Easing maps linear progress t in [0, 1] onto an eased position.
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return clamp(t)
}

// OutExpo decelerates exponentially towards the end.
func OutExpo(t float64) float64 {
	t = clamp(t)
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float64) float64 {
	t = clamp(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// ByName returns the easing registered under name, or OutExpo if unknown.
func ByName(name string) Easing {
	switch name {
	case "linear":
		return Linear
	case "inOutQuad":
		return InOutQuad
	default:
		return OutExpo
	}
}

func clamp(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
