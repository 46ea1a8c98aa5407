package calculator

import (
	"testing"
)

func TestLinspace(t *testing.T) {
	cases := []struct {
		start, stop float64
		dim         int
		factor      float64
		want        []float64
	}{
		{-0.5, 0.5, 2, 2, []float64{-1, 0}},
		{0, 1, 4, 1, []float64{0, 0.25, 0.5, 0.75}},
		{-0.5, 0.5, 4, 4, []float64{-2, -1, 0, 1}},
		{3, 7, 1, 2, []float64{6}},
	}
	for _, c := range cases {
		got := Linspace(c.start, c.stop, c.dim, c.factor)
		if len(got) != c.dim {
			t.Fatalf("Linspace(%g, %g, %d, %g): len %d", c.start, c.stop, c.dim, c.factor, len(got))
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Linspace(%g, %g, %d, %g)[%d] = %g, want %g",
					c.start, c.stop, c.dim, c.factor, i, got[i], c.want[i])
			}
		}
	}
}

// stop 不在轴上
func TestLinspaceExcludesStop(t *testing.T) {
	start, stop, factor := -1.5, 2.5, 3.0
	for _, dim := range []int{2, 3, 10, 128} {
		axis := Linspace(start, stop, dim, factor)
		if axis[0] != start*factor {
			t.Errorf("dim %d: first = %g, want %g", dim, axis[0], start*factor)
		}
		last := (start + float64(dim-1)*((stop-start)/float64(dim))) * factor
		if axis[dim-1] != last {
			t.Errorf("dim %d: last = %g, want %g", dim, axis[dim-1], last)
		}
		if axis[dim-1] >= stop*factor {
			t.Errorf("dim %d: last = %g reaches stop %g", dim, axis[dim-1], stop*factor)
		}
	}
}
