package calculator

// Linspace 生成 dim 个等间距点，步长为 (stop-start)/dim，不含 stop
func Linspace(start, stop float64, dim int, factor float64) []float64 {
	step := (stop - start) / float64(dim)
	axis := make([]float64, dim)
	for i := 0; i < dim; i++ {
		axis[i] = (start + float64(i)*step) * factor
	}
	return axis
}
