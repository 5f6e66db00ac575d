// Package vector provides the generic 2D coordinate type shared by the
// collision core, the screen manager and the game-object layer.
package vector

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of component types a Vector2D can hold.
type Number interface {
	constraints.Signed | constraints.Float
}

// Vector2D is an immutable-by-value 2D vector. All operations return new values.
type Vector2D[T Number] struct {
	X T
	Y T
}

func New[T Number](x, y T) Vector2D[T] {
	return Vector2D[T]{X: x, Y: y}
}

// Zero returns {0, 0}.
func Zero[T Number]() Vector2D[T] { return Vector2D[T]{} }

// Right returns the unit X axis {1, 0}.
func Right[T Number]() Vector2D[T] { return Vector2D[T]{X: 1} }

// Up returns the unit Y axis {0, 1}.
func Up[T Number]() Vector2D[T] { return Vector2D[T]{Y: 1} }

// Convert changes the component type, truncating when converting floats to integers.
func Convert[U, T Number](v Vector2D[T]) Vector2D[U] {
	return Vector2D[U]{X: U(v.X), Y: U(v.Y)}
}

func (v Vector2D[T]) Add(o Vector2D[T]) Vector2D[T] { return Vector2D[T]{v.X + o.X, v.Y + o.Y} }

func (v Vector2D[T]) Sub(o Vector2D[T]) Vector2D[T] { return Vector2D[T]{v.X - o.X, v.Y - o.Y} }

// Mul multiplies both components by a scalar.
func (v Vector2D[T]) Mul(s T) Vector2D[T] { return Vector2D[T]{v.X * s, v.Y * s} }

// Div divides both components by a scalar. Dividing by zero follows the
// semantics of T (Inf/NaN for floats, a runtime panic for integers).
func (v Vector2D[T]) Div(s T) Vector2D[T] { return Vector2D[T]{v.X / s, v.Y / s} }

// Scale multiplies component-wise.
func (v Vector2D[T]) Scale(o Vector2D[T]) Vector2D[T] { return Vector2D[T]{v.X * o.X, v.Y * o.Y} }

func (v Vector2D[T]) Negate() Vector2D[T] { return Vector2D[T]{-v.X, -v.Y} }

// Abs returns the component-wise absolute value.
func (v Vector2D[T]) Abs() Vector2D[T] {
	if v.X < 0 {
		v.X = -v.X
	}
	if v.Y < 0 {
		v.Y = -v.Y
	}
	return v
}

func (v Vector2D[T]) Dot(o Vector2D[T]) T { return v.X*o.X + v.Y*o.Y }

func (v Vector2D[T]) LengthSquared() T { return v.X*v.X + v.Y*v.Y }

func (v Vector2D[T]) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

func (v Vector2D[T]) Distance(o Vector2D[T]) float64 {
	return v.Sub(o).Length()
}

// Normalize returns a unit-length copy. The zero vector normalizes to itself.
func (v Vector2D[T]) Normalize() Vector2D[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector2D[T]{X: T(float64(v.X) / l), Y: T(float64(v.Y) / l)}
}

// Perpendicular returns v rotated 90 degrees counter-clockwise.
func (v Vector2D[T]) Perpendicular() Vector2D[T] { return Vector2D[T]{-v.Y, v.X} }

func (v Vector2D[T]) Min(o Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{min(v.X, o.X), min(v.Y, o.Y)}
}

func (v Vector2D[T]) Max(o Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{max(v.X, o.X), max(v.Y, o.Y)}
}

// Clamp restricts each component to [lo, hi].
func (v Vector2D[T]) Clamp(lo, hi Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{
		X: min(max(v.X, lo.X), hi.X),
		Y: min(max(v.Y, lo.Y), hi.Y),
	}
}

func (v Vector2D[T]) Equal(o Vector2D[T]) bool { return v.X == o.X && v.Y == o.Y }

func (v Vector2D[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
