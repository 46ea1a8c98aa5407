package calculator

import (
	"gonum.org/v1/gonum/floats"

	"ppdmap/model"
)

// TotalFlux sums an intensity map over all pixels.
func TotalFlux(intensity model.Field) float64 {
	return floats.Sum(intensity.Vals)
}

func Summarize(f model.Field) model.Summary {
	if len(f.Vals) == 0 {
		return model.Summary{}
	}
	return model.Summary{
		Min: model.Float(floats.Min(f.Vals)),
		Max: model.Float(floats.Max(f.Vals)),
		Sum: model.Float(floats.Sum(f.Vals)),
	}
}
