package calculator

import (
	"math"

	"ppdmap/model"
)

// 逐像素映射，结果写入新分配的平面
func mapField(src model.Field, fn func(v float64) float64) model.Field {
	out := model.NewField(src.Dim)
	forEachRow(src.Dim, func(i int) {
		in, o := src.Row(i), out.Row(i)
		for j := range in {
			o[j] = fn(in[j])
		}
	})
	return out
}

// 两个平面逐像素合并
func zipFields(a, b model.Field, fn func(x, y float64) float64) model.Field {
	out := model.NewField(a.Dim)
	forEachRow(a.Dim, func(i int) {
		ra, rb, o := a.Row(i), b.Row(i), out.Row(i)
		for j := range ra {
			o[j] = fn(ra[j], rb[j])
		}
	})
	return out
}

// Radius returns the euclidean distance of every pixel from the grid origin.
func Radius(grid model.Grid) model.Field {
	return zipFields(grid.XX, grid.YY, func(x, y float64) float64 {
		return math.Sqrt(x*x + y*y)
	})
}

// ConstTemperature is the equilibrium temperature of an optically thin flat
// disk irradiated by a star. Diverges at zero radius.
func ConstTemperature(radius model.Field, stellarRadius, stellarTemperature float64) model.Field {
	return mapField(radius, func(r float64) float64 {
		return stellarTemperature * math.Sqrt(stellarRadius/(2.0*r))
	})
}

func TemperaturePowerLaw(radius model.Field, innerTemp, innerRadius, q float64) model.Field {
	return mapField(radius, func(r float64) float64 {
		return innerTemp * math.Pow(r/innerRadius, -q)
	})
}

func SurfaceDensity(radius model.Field, innerRadius, innerSigma, p float64) model.Field {
	return mapField(radius, func(r float64) float64 {
		return innerSigma * math.Pow(r/innerRadius, -p)
	})
}

// AzimuthalModulation 方位角亮度调制 a*cos(θ-φ)，θ 为像素相对 x 轴的四象限角
func AzimuthalModulation(grid model.Grid, a, phi float64) model.Field {
	return zipFields(grid.XX, grid.YY, func(x, y float64) float64 {
		return a * math.Cos(math.Atan2(y, x)-phi)
	})
}

// OpticalThickness 光学厚度 1-exp(-Σκ)
func OpticalThickness(sigma model.Field, opacity float64) model.Field {
	return mapField(sigma, func(s float64) float64 {
		return 1.0 - math.Exp(-s*opacity)
	})
}
