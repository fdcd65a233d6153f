// Package wiregl is the small fixed-function math used by the wireframe game:
// camera-space vectors, a perspective-divide projector, RGB565 colors and
// static edge-list models.
//
// Pipeline (fixed):
//
//	Model (entity-local) → translate by entity position → clamp to near plane →
//	perspective divide → screen (origin top-left, y down).
//
// Nothing here allocates; models are package-level and shared read-only by all
// instances.
package wiregl
