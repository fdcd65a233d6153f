package hal

// plotLine walks a Bresenham line from (x0,y0) to (x1,y1) inclusive.
func plotLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clipLine clips a segment to [0,w)x[0,h) (Liang-Barsky). It reports false
// when nothing of the segment is visible.
func clipLine(x0, y0, x1, y1, w, h int) (int, int, int, int, bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	fx0, fy0 := float64(x0), float64(y0)
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, fx0},
		{dx, float64(w-1) - fx0},
		{-dy, fy0},
		{dy, float64(h-1) - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	cx0 := int(fx0 + t0*dx + 0.5)
	cy0 := int(fy0 + t0*dy + 0.5)
	cx1 := int(fx0 + t1*dx + 0.5)
	cy1 := int(fy0 + t1*dy + 0.5)
	return cx0, cy0, cx1, cy1, true
}
