package components

import (
	"fmt"

	"handmade/internal/engine"
	"handmade/internal/vector"
)

// Scene-file type names.
const (
	TypeBoxCollider         = "box_collider"
	TypeOrientedBoxCollider = "oriented_box_collider"
	TypeSphereCollider      = "sphere_collider"
	TypePlaneCollider       = "plane_collider"
	TypeRigidbody           = "rigidbody"
)

func init() {
	engine.RegisterComponent(TypeBoxCollider, newBoxColliderFromProps, serializeBoxCollider)
	engine.RegisterComponent(TypeOrientedBoxCollider, newOrientedBoxColliderFromProps, serializeOrientedBoxCollider)
	engine.RegisterComponent(TypeSphereCollider, newSphereColliderFromProps, serializeSphereCollider)
	engine.RegisterComponent(TypePlaneCollider, newPlaneColliderFromProps, serializePlaneCollider)
	engine.RegisterComponent(TypeRigidbody, newRigidbodyFromProps, serializeRigidbody)
}

var unitSize = vector.New[float32](1, 1)

func newBoxColliderFromProps(props map[string]any) (engine.Component, error) {
	size, err := vecProp(props, "size", unitSize)
	if err != nil {
		return nil, err
	}
	if size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("size %v must not be negative", size)
	}
	b := NewBoxCollider(size.X, size.Y)
	if b.Offset, err = vecProp(props, "offset", b.Offset); err != nil {
		return nil, err
	}
	c, err := colorProp(props, "color", b.box.Color())
	if err != nil {
		return nil, err
	}
	b.box.SetColor(c)
	return b, nil
}

func serializeBoxCollider(c engine.Component) map[string]any {
	b, ok := c.(*BoxCollider)
	if !ok {
		return nil
	}
	return map[string]any{
		"size":   vecValue(b.Size),
		"offset": vecValue(b.Offset),
		"color":  ColorName(b.box.Color()),
	}
}

func newOrientedBoxColliderFromProps(props map[string]any) (engine.Component, error) {
	size, err := vecProp(props, "size", unitSize)
	if err != nil {
		return nil, err
	}
	if size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("size %v must not be negative", size)
	}
	o := NewOrientedBoxCollider(size.X, size.Y)
	if o.Offset, err = vecProp(props, "offset", o.Offset); err != nil {
		return nil, err
	}
	c, err := colorProp(props, "color", o.box.Color())
	if err != nil {
		return nil, err
	}
	o.box.SetColor(c)
	return o, nil
}

func serializeOrientedBoxCollider(c engine.Component) map[string]any {
	o, ok := c.(*OrientedBoxCollider)
	if !ok {
		return nil
	}
	return map[string]any{
		"size":   vecValue(o.Size),
		"offset": vecValue(o.Offset),
		"color":  ColorName(o.box.Color()),
	}
}

func newSphereColliderFromProps(props map[string]any) (engine.Component, error) {
	radius, err := floatProp(props, "radius", 0.5)
	if err != nil {
		return nil, err
	}
	if radius < 0 {
		return nil, fmt.Errorf("radius %v must not be negative", radius)
	}
	s := NewSphereCollider(radius)
	if s.Offset, err = vecProp(props, "offset", s.Offset); err != nil {
		return nil, err
	}
	c, err := colorProp(props, "color", s.sphere.Color())
	if err != nil {
		return nil, err
	}
	s.sphere.SetColor(c)
	return s, nil
}

func serializeSphereCollider(c engine.Component) map[string]any {
	s, ok := c.(*SphereCollider)
	if !ok {
		return nil
	}
	return map[string]any{
		"radius": float64(s.Radius),
		"offset": vecValue(s.Offset),
		"color":  ColorName(s.sphere.Color()),
	}
}

func newPlaneColliderFromProps(props map[string]any) (engine.Component, error) {
	angle, err := floatProp(props, "angle", 0)
	if err != nil {
		return nil, err
	}
	tolerance, err := floatProp(props, "tolerance", 0)
	if err != nil {
		return nil, err
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("tolerance %v must not be negative", tolerance)
	}
	p := NewPlaneCollider(angle)
	p.SetTolerance(tolerance)
	c, err := colorProp(props, "color", p.plane.Color())
	if err != nil {
		return nil, err
	}
	p.plane.SetColor(c)
	return p, nil
}

func serializePlaneCollider(c engine.Component) map[string]any {
	p, ok := c.(*PlaneCollider)
	if !ok {
		return nil
	}
	return map[string]any{
		"angle":     float64(p.Angle),
		"tolerance": float64(p.plane.Tolerance()),
		"color":     ColorName(p.plane.Color()),
	}
}

func newRigidbodyFromProps(props map[string]any) (engine.Component, error) {
	r := NewRigidbody()
	var err error
	if r.Velocity, err = vecProp(props, "velocity", r.Velocity); err != nil {
		return nil, err
	}
	if r.AngularVelocity, err = floatProp(props, "angular_velocity", 0); err != nil {
		return nil, err
	}
	if v, ok := props["kinematic"]; ok {
		k, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("kinematic: expected a bool, got %T", v)
		}
		r.IsKinematic = k
	}
	return r, nil
}

func serializeRigidbody(c engine.Component) map[string]any {
	r, ok := c.(*Rigidbody)
	if !ok {
		return nil
	}
	props := map[string]any{
		"velocity":         vecValue(r.Velocity),
		"angular_velocity": float64(r.AngularVelocity),
	}
	if r.IsKinematic {
		props["kinematic"] = true
	}
	return props
}
