// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// SphericalEpsilon is the margin kept between Phi and the poles by MakeSafe.
const SphericalEpsilon = 1e-6

// Spherical is a point in spherical coordinates with +Y as the pole axis.
// Phi is the polar angle from +Y, and Theta is the azimuth around Y
// measured from +Z.
type Spherical struct {
	Radius float32
	Phi    float32
	Theta  float32
}

// NewSpherical returns a new [Spherical] with the given radius and angles.
func NewSpherical(radius, phi, theta float32) Spherical {
	return Spherical{Radius: radius, Phi: phi, Theta: theta}
}

// String returns a string representation of the coordinates.
func (s Spherical) String() string {
	return fmt.Sprintf("(r=%g, phi=%g, theta=%g)", s.Radius, s.Phi, s.Theta)
}

// SetFromVector3 sets the coordinates from the given Cartesian vector.
// A zero vector yields zero angles.
func (s *Spherical) SetFromVector3(v Vector3) {
	s.Radius = v.Length()
	if s.Radius == 0 {
		s.Theta = 0
		s.Phi = 0
		return
	}
	s.Theta = Atan2(v.X, v.Z)
	s.Phi = Acos(Clamp(v.Y/s.Radius, -1, 1))
}

// MakeSafe restricts Phi to lie strictly between the poles,
// by [SphericalEpsilon].
func (s *Spherical) MakeSafe() {
	s.Phi = Clamp(s.Phi, SphericalEpsilon, Pi-SphericalEpsilon)
}

// Vector3 returns the Cartesian vector for these coordinates.
func (s Spherical) Vector3() Vector3 {
	return Vector3FromSpherical(s)
}
