package core

import "github.com/go-gl/mathgl/mgl64"

// PointLight emits coloured light in all directions from a single position
type PointLight struct {
	Position  mgl64.Vec3
	Intensity float64
	Color     Color
}

// NewPointLight creates a white point light
func NewPointLight(position mgl64.Vec3, intensity float64) PointLight {
	return NewColoredPointLight(position, intensity, White)
}

// NewColoredPointLight creates a point light with the given colour
func NewColoredPointLight(position mgl64.Vec3, intensity float64, color Color) PointLight {
	return PointLight{Position: position, Intensity: intensity, Color: color}
}
