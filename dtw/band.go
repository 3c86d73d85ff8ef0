package dtw

// Band returns the admissible 1-based column range [j1, j2] of row i for
// series of lengths nx and ny under window half-width w.
//
//	w == -1:  j1 = 1, j2 = ny
//	otherwise j1 = max(ceil(i·ny/nx − w), 1)
//	          j2 = min(floor(i·ny/nx + w), ny)
//
// The ratio is evaluated with exact integer floor/ceil division of
// (i·ny ∓ w·nx) by nx, so band edges never drift with floating rounding.
// Only the lower edge is raised to 1 and only the upper edge is lowered to ny;
// a row whose band holds no integer column comes back with j1 > j2 and is
// skipped by the fill.
//
// Any w >= ny already admits the whole row, so such windows return [1, ny]
// before w·nx is formed and cannot overflow.
//
// nx must be positive; callers reject empty series first.
func Band(i, nx, ny, w int) (j1, j2 int) {
	if w < 0 || w >= ny {
		return 1, ny
	}
	j1 = ceilDiv(i*ny-w*nx, nx)
	j2 = floorDiv(i*ny+w*nx, nx)
	if j1 < 1 {
		j1 = 1
	}
	if j2 > ny {
		j2 = ny
	}

	return j1, j2
}

// floorDiv returns ⌊a/b⌋ for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}

	return q
}

// ceilDiv returns ⌈a/b⌉ for b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}

	return q
}
