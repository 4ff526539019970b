package fish

import "math"

type WeightClass int

const (
	WeightTiny WeightClass = iota
	WeightModest
	WeightAverage
	WeightBig
	WeightHuge
	WeightEnormous
)

func (c WeightClass) String() string {
	switch c {
	case WeightTiny:
		return "tiny"
	case WeightModest:
		return "modest"
	case WeightAverage:
		return "average"
	case WeightBig:
		return "big"
	case WeightHuge:
		return "huge"
	default:
		return "enormous"
	}
}

func KgPercentile(sp Species, kg float64) float64 {
	if sp.MaxKg <= sp.MinKg {
		return 0
	}

	x := (kg - sp.MinKg) / (sp.MaxKg - sp.MinKg)
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	k := sp.KgBias
	if k <= 0 {
		k = 1
	}
	return math.Pow(x, 1.0/k) // CDF
}

func ClassFromPercentile(p float64) WeightClass {
	switch {
	case p < 0.08:
		return WeightTiny
	case p < 0.25:
		return WeightModest
	case p < 0.70:
		return WeightAverage
	case p < 0.90:
		return WeightBig
	case p < 0.97:
		return WeightHuge
	default:
		return WeightEnormous
	}
}

func WeightClassFor(sp Species, kg float64) WeightClass {
	return ClassFromPercentile(KgPercentile(sp, kg))
}
