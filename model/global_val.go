package model

import "gonum.org/v1/gonum/mat"

// CGS 物理常数，进程内只读
const (
	C      = 2.99792458e+10 // 光速 cm/s
	C2     = 8.98755179e+20 // 光速平方 cm²/s²
	H      = 6.62607015e-27 // 普朗克常数 erg s
	Kb     = 1.380649e-16   // 玻尔兹曼常数 erg/K
	BBToJy = 1.0e+23        // 辐亮度到 Jy 的换算系数
)

// Field is a dim x dim plane stored row-major. Every producing function
// allocates a fresh one.
type Field struct {
	Dim  int       `json:"dim"`
	Vals []float64 `json:"vals"`
}

func NewField(dim int) Field {
	return Field{Dim: dim, Vals: make([]float64, dim*dim)}
}

// At returns the value at row i, column j.
func (f Field) At(i, j int) float64 {
	return f.Vals[i*f.Dim+j]
}

func (f Field) Set(i, j int, v float64) {
	f.Vals[i*f.Dim+j] = v
}

// Row returns row i without copying.
func (f Field) Row(i int) []float64 {
	return f.Vals[i*f.Dim : (i+1)*f.Dim]
}

// Dense wraps the field as a gonum matrix. The matrix shares the field's
// backing slice.
func (f Field) Dense() *mat.Dense {
	return mat.NewDense(f.Dim, f.Dim, f.Vals)
}

// Transpose returns a new field holding the transpose of f.
func (f Field) Transpose() Field {
	out := NewField(f.Dim)
	out.Dense().Copy(f.Dense().T())
	return out
}

// Grid 为像素的 x、y 坐标平面
type Grid struct {
	XX Field `json:"xx"`
	YY Field `json:"yy"`
}
