package wiregl

// View describes the screen and the clip volume shared by every renderer.
type View struct {
	W, H int

	Near Scalar
	Far  Scalar

	// ViewDistance scales the perspective divide (field-of-view proxy).
	ViewDistance Scalar
}

// ProjectWith maps a camera-space point onto a w*h screen with its origin at
// the center and y pointing up. z must be positive; z == 0 maps to the center.
func ProjectWith(x, y, z, viewDistance Scalar, w, h int) (sx, sy Scalar) {
	cx := Scalar(w) / 2
	cy := Scalar(h) / 2
	if z == 0 {
		return cx, cy
	}
	px := viewDistance * x / z
	py := viewDistance * y / z
	return cx + px, cy - py
}

// Project maps v onto the screen. Callers must have validated v.Z > Near.
func (v View) Project(p Vec3) (sx, sy Scalar) {
	return ProjectWith(p.X, p.Y, p.Z, v.ViewDistance, v.W, v.H)
}

// ProjectClamped projects p with its depth clamped to the near plane, so it is
// safe for edge endpoints that drifted behind the camera.
func (v View) ProjectClamped(p Vec3) (sx, sy Scalar) {
	if p.Z < v.Near {
		p.Z = v.Near
	}
	return v.Project(p)
}

// Visible reports whether p is beyond the near plane.
func (v View) Visible(p Vec3) bool { return p.Z > v.Near }

// ScreenPoint converts projected coordinates to pixels.
func ScreenPoint(sx, sy Scalar) Point {
	return Point{X: floorInt(sx), Y: floorInt(sy)}
}

// OnScreen reports whether the pixel lies inside the view rectangle.
func (v View) OnScreen(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < v.W && p.Y < v.H
}

// HalfExtent returns the camera-space half width and half height of the
// screen rectangle projected out to depth z.
func (v View) HalfExtent(z Scalar) (hx, hy Scalar) {
	if v.ViewDistance == 0 {
		return 0, 0
	}
	return Scalar(v.W) / 2 * z / v.ViewDistance, Scalar(v.H) / 2 * z / v.ViewDistance
}

func floorInt(v Scalar) int {
	i := int(v)
	if Scalar(i) > v {
		i--
	}
	return i
}
