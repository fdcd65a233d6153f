package wiregl

// Scalar is the numeric type used for world coordinates.
type Scalar = float32

// Vec3 is a camera-space vector. Z grows away from the viewer.
type Vec3 struct {
	X, Y, Z Scalar
}

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Point is an integer screen coordinate.
type Point struct {
	X, Y int
}

// Rect is a screen-space axis-aligned bounding box.
type Rect struct {
	MinX, MinY Scalar
	MaxX, MaxY Scalar
	valid      bool
}

// Extend grows the box to include (x, y).
func (r *Rect) Extend(x, y Scalar) {
	if !r.valid {
		r.MinX, r.MaxX = x, x
		r.MinY, r.MaxY = y, y
		r.valid = true
		return
	}
	if x < r.MinX {
		r.MinX = x
	}
	if x > r.MaxX {
		r.MaxX = x
	}
	if y < r.MinY {
		r.MinY = y
	}
	if y > r.MaxY {
		r.MaxY = y
	}
}

// Empty reports whether no point has been added.
func (r Rect) Empty() bool { return !r.valid }

// ContainsStrict reports whether p lies strictly inside the box.
func (r Rect) ContainsStrict(p Point) bool {
	if !r.valid {
		return false
	}
	x, y := Scalar(p.X), Scalar(p.Y)
	return x > r.MinX && x < r.MaxX && y > r.MinY && y < r.MaxY
}

func Clamp(v, lo, hi Scalar) Scalar {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
