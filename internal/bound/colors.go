package bound

import "image/color"

// Debug colors applied by the constructors. Planes are drawn translucent.
var (
	defaultAABBColor   = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	defaultOBBColor    = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	defaultSphereColor = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	defaultPlaneColor  = color.RGBA{R: 0, G: 121, B: 241, A: 102}
)
