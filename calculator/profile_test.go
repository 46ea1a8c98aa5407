package calculator

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"ppdmap/model"
)

func fieldOf(vals ...float64) model.Field {
	dim := int(math.Sqrt(float64(len(vals))))
	return model.Field{Dim: dim, Vals: vals}
}

func TestTemperaturePowerLawAtInnerRadius(t *testing.T) {
	innerRadius, innerTemp := 0.5, 1500.0
	radius := fieldOf(innerRadius, innerRadius, innerRadius, innerRadius)
	for _, q := range []float64{0, 0.5, 0.75, 1.3, -2} {
		temp := TemperaturePowerLaw(radius, innerTemp, innerRadius, q)
		for k, v := range temp.Vals {
			if v != innerTemp {
				t.Errorf("q = %g: T[%d] = %g, want %g", q, k, v, innerTemp)
			}
		}
	}
}

func TestTemperaturePowerLawFalloff(t *testing.T) {
	temp := TemperaturePowerLaw(fieldOf(1, 2, 4, 8), 1000, 1, 0.5)
	want := []float64{1000, 1000 / math.Sqrt2, 500, 500 / math.Sqrt2}
	if !floats.EqualApprox(temp.Vals, want, 1e-12) {
		t.Errorf("T = %v, want %v", temp.Vals, want)
	}
}

func TestConstTemperature(t *testing.T) {
	stellarRadius, stellarTemp := 0.0558, 7800.0
	temp := ConstTemperature(fieldOf(stellarRadius/2, stellarRadius*2, stellarRadius*8, 0), stellarRadius, stellarTemp)
	want := []float64{stellarTemp, stellarTemp / 2, stellarTemp / 4}
	if !floats.EqualApprox(temp.Vals[:3], want, 1e-12) {
		t.Errorf("T = %v, want %v", temp.Vals[:3], want)
	}
	if !math.IsInf(temp.Vals[3], 1) {
		t.Errorf("T at zero radius = %g, want +Inf", temp.Vals[3])
	}
}

func TestSurfaceDensity(t *testing.T) {
	innerRadius, innerSigma := 0.5, 1e-3
	sigma := SurfaceDensity(fieldOf(innerRadius, 2, 8, 0.125), innerRadius, innerSigma, 0.5)
	want := []float64{innerSigma, innerSigma / 2, innerSigma / 4, innerSigma * 2}
	if !floats.EqualApprox(sigma.Vals, want, 1e-15) {
		t.Errorf("sigma = %v, want %v", sigma.Vals, want)
	}
}

func TestAzimuthalModulation(t *testing.T) {
	grid := NewGrid(4, 1, 0, 1, false)
	a := 0.5
	cases := []struct {
		phi  float64
		i, j int
		want float64
	}{
		{0, 2, 3, a},               // (1, 0)
		{0, 2, 1, -a},              // (-1, 0)
		{math.Pi / 2, 2, 3, 0},     // 正交
		{math.Pi / 2, 3, 2, a},     // (0, 1)
		{math.Pi / 4, 3, 3, a},     // (1, 1)
		{0, 0, 0, -a / math.Sqrt2}, // (-2, -2)
	}
	for _, c := range cases {
		mod := AzimuthalModulation(grid, a, c.phi)
		if got := mod.At(c.i, c.j); !scalar.EqualWithinAbs(got, c.want, 1e-12) {
			t.Errorf("phi = %g: M[%d][%d] = %g, want %g", c.phi, c.i, c.j, got, c.want)
		}
	}
}

func TestOpticalThicknessLimits(t *testing.T) {
	sigma := fieldOf(1, 10, 100, 1000)
	thin := OpticalThickness(sigma, 1e-300)
	for k, v := range thin.Vals {
		if v < 0 || v > 1e-12 {
			t.Errorf("kappa -> 0: tau[%d] = %g, want ~0", k, v)
		}
	}
	thick := OpticalThickness(sigma, 1e6)
	for k, v := range thick.Vals {
		if v != 1 {
			t.Errorf("sigma*kappa -> inf: tau[%d] = %g, want 1", k, v)
		}
	}
}

func TestOpticalThicknessMonotonic(t *testing.T) {
	sigma := fieldOf(0, 0.1, 0.5, 1, 2, 5, 10, 12, 15)
	tau := OpticalThickness(sigma, 1)
	if tau.Vals[0] != 0 {
		t.Errorf("tau at zero density = %g", tau.Vals[0])
	}
	for k := 1; k < len(tau.Vals); k++ {
		if tau.Vals[k] <= tau.Vals[k-1] {
			t.Errorf("tau not increasing at %d: %g <= %g", k, tau.Vals[k], tau.Vals[k-1])
		}
	}
}
