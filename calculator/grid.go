package calculator

import (
	"math"

	"ppdmap/model"
)

type MeshAxis int

const (
	RowAxis MeshAxis = iota // 值随行号变化
	ColAxis                 // 值随列号变化
)

// Meshgrid broadcasts a 1-D axis into a dim x dim plane.
func Meshgrid(axis []float64, along MeshAxis) model.Field {
	dim := len(axis)
	mesh := model.NewField(dim)
	forEachRow(dim, func(i int) {
		row := mesh.Row(i)
		for j := range row {
			if along == RowAxis {
				row[j] = axis[i]
			} else {
				row[j] = axis[j]
			}
		}
	})
	return mesh
}

// NewGrid builds the pixel coordinate planes over [-0.5, 0.5) * dim * pixelSize.
//
// With elliptic set, xx is rotated by pa first and the rotated xx is then used
// to compute yy, which is afterwards compressed by elong. This is not a plain
// rotation matrix; existing model images depend on the ordering.
func NewGrid(dim int, pixelSize, pa, elong float64, elliptic bool) model.Grid {
	x := Linspace(-0.5, 0.5, dim, float64(dim)*pixelSize)
	grid := model.Grid{
		XX: Meshgrid(x, ColAxis),
		YY: Meshgrid(x, RowAxis),
	}

	if elliptic {
		cos, sin := math.Cos(pa), math.Sin(pa)
		forEachRow(dim, func(i int) {
			xx, yy := grid.XX.Row(i), grid.YY.Row(i)
			for j := range xx {
				xx[j] = xx[j]*cos - yy[j]*sin
				yy[j] = (xx[j]*sin + yy[j]*cos) / elong
			}
		})
	}
	return grid
}
