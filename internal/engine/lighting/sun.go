// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/flycam/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a light direction.
// Longitude is rotation around Y (0 faces +Z), latitude is elevation from the horizon.
// Returns a unit vector pointing towards the sun.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonRad := float64(math.Radians(longitude))
	latRad := float64(math.Radians(latitude))

	return math.Vec3{
		X: float32(gomath.Cos(latRad) * gomath.Sin(lonRad)),
		Y: float32(gomath.Sin(latRad)),
		Z: float32(gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}

// LightDirection is the direction light travels, from the sun into the scene.
// Shaders that use N·(-L) want this form.
func LightDirection(longitude, latitude float32) math.Vec3 {
	return SunDirection(longitude, latitude).Scale(-1)
}
