package wiregl

// MaxEdges bounds the edge count of any model so per-edge state can live in
// fixed arrays.
const MaxEdges = 12

// Edge joins two vertices of a model.
type Edge struct {
	V1, V2 uint8
	Color  Color
}

// Model is static wireframe topology in entity-local space.
type Model struct {
	Vertices []Vec3
	Edges    []Edge
}

// Endpoints returns edge i translated to world space at pos.
func (m *Model) Endpoints(i int, pos Vec3) (a, b Vec3) {
	e := m.Edges[i]
	return m.Vertices[e.V1].Add(pos), m.Vertices[e.V2].Add(pos)
}

var tieGrey = RGB(0xC8, 0xD0, 0xD8)

// TieFighter is two square wing panels facing each other across the cockpit.
var TieFighter = Model{
	Vertices: []Vec3{
		// Left wing.
		{X: -20, Y: 15, Z: -15},
		{X: -20, Y: -15, Z: -15},
		{X: -20, Y: -15, Z: 15},
		{X: -20, Y: 15, Z: 15},
		// Right wing.
		{X: 20, Y: 15, Z: -15},
		{X: 20, Y: -15, Z: -15},
		{X: 20, Y: -15, Z: 15},
		{X: 20, Y: 15, Z: 15},
	},
	Edges: []Edge{
		{V1: 0, V2: 1, Color: tieGrey},
		{V1: 1, V2: 2, Color: tieGrey},
		{V1: 2, V2: 3, Color: tieGrey},
		{V1: 3, V2: 0, Color: tieGrey},
		{V1: 4, V2: 5, Color: tieGrey},
		{V1: 5, V2: 6, Color: tieGrey},
		{V1: 6, V2: 7, Color: tieGrey},
		{V1: 7, V2: 4, Color: tieGrey},
	},
}
