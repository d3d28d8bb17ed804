package math

import "math"

// Translation returns a matrix that moves points by (x, y, z). Vectors are
// unaffected because their w component is zero.
func Translation(x, y, z float64) Matrix4 {
	return Matrix4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling returns a matrix that scales each axis independently.
func Scaling(x, y, z float64) Matrix4 {
	return Matrix4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a rotation about the x axis by r radians.
func RotationX(r float64) Matrix4 {
	sin, cos := math.Sin(r), math.Cos(r)
	return Matrix4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation about the y axis by r radians.
func RotationY(r float64) Matrix4 {
	sin, cos := math.Sin(r), math.Cos(r)
	return Matrix4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation about the z axis by r radians.
func RotationZ(r float64) Matrix4 {
	sin, cos := math.Sin(r), math.Cos(r)
	return Matrix4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns a matrix where each coordinate is displaced in
// proportion to the other two.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Matrix4{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// ViewTransform returns the world-to-camera transform for an eye at from,
// looking at to, with the given up vector.
func ViewTransform(from, to, up Tuple) Matrix4 {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
