package kernels

// MatMul computes dst = a @ b where a is row-major [m][k], b is row-major
// [k][n] and dst is row-major [m][n]. Accumulation is float32 throughout,
// matching what the kernel under test does after upcasting its inputs.
func MatMul(dst, a, b []float32, m, k, n int) {
	if m <= 0 || k <= 0 || n <= 0 {
		return
	}
	if len(dst) < m*n || len(a) < m*k || len(b) < k*n {
		return
	}
	for i := 0; i < m; i++ {
		arow := a[i*k : i*k+k]
		drow := dst[i*n : i*n+n]
		for j := 0; j < n; j++ {
			var sum float32
			for l := 0; l < k; l++ {
				sum += arow[l] * b[l*n+j]
			}
			drow[j] = sum
		}
	}
}

// AddBias adds bias to every row of the row-major rows×cols matrix dst,
// indexed by column.
func AddBias(dst, bias []float32, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	if len(dst) < rows*cols || len(bias) < cols {
		return
	}
	for r := 0; r < rows; r++ {
		row := dst[r*cols : r*cols+cols]
		for c := 0; c < cols; c++ {
			row[c] += bias[c]
		}
	}
}

// LeakyReLU applies f(x) = x for x >= 0, x*alpha otherwise, elementwise.
// dst and src may alias.
func LeakyReLU(dst, src []float32, alpha float32) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		v := src[i]
		if v < 0 {
			v *= alpha
		}
		dst[i] = v
	}
}
