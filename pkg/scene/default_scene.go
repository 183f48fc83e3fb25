package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	defaultEye   = mgl64.Vec3{0, 0, -50}
	defaultLight = core.NewColoredPointLight(mgl64.Vec3{-20, 0, -20}, 2.0, core.NewColor(94, 85, 64))
)

// NewDefaultScene creates six spheres of mixed colour and reflectiveness
// lit by a warm point light
func NewDefaultScene(viewport mgl64.Vec2) *Scene {
	return NewBuilder(viewport).
		LookAt(defaultEye, mgl64.Vec3{0, 0, 0}).
		Light(defaultLight).
		AddSphere(mgl64.Vec3{0, 0, 0}, 6.0, geometry.NewShapeProperties(core.Red, 0.5)).
		AddSphere(mgl64.Vec3{-8, 0, -8}, 2.5, geometry.MatteGrey()).
		AddSphere(mgl64.Vec3{-5.5, -10, -8}, 2.5, geometry.NewShapeProperties(core.NewColor(255, 215, 0), 0)).
		AddSphere(mgl64.Vec3{0, 9, -15}, 1.75, geometry.NewShapeProperties(core.NewColor(255, 0, 255), 0)).
		AddSphere(mgl64.Vec3{8, 8, -8}, 5.0, geometry.NewShapeProperties(core.Green, 0.85)).
		AddSphere(mgl64.Vec3{-20, 9.5, 25}, 20.0, geometry.NewShapeProperties(core.NewColor(235, 243, 246), 0.35)).
		Build()
}

// NewSingleSphereScene creates one matte grey sphere at the origin
func NewSingleSphereScene(viewport mgl64.Vec2) *Scene {
	return NewBuilder(viewport).
		LookAt(defaultEye, mgl64.Vec3{0, 0, 0}).
		Light(defaultLight).
		AddSphere(mgl64.Vec3{0, 0, 0}, 6.0, geometry.MatteGrey()).
		Build()
}

// NewMirrorsScene places two fully reflective spheres either side of a
// matte one so reflections bounce until the depth limit
func NewMirrorsScene(viewport mgl64.Vec2) *Scene {
	return NewBuilder(viewport).
		LookAt(mgl64.Vec3{0, 12, -45}, mgl64.Vec3{0, 0, 0}).
		Light(core.NewPointLight(mgl64.Vec3{0, 30, -30}, 1.5)).
		AddSphere(mgl64.Vec3{-9, 0, 0}, 6.0, geometry.Shiny()).
		AddSphere(mgl64.Vec3{9, 0, 0}, 6.0, geometry.Shiny()).
		AddSphere(mgl64.Vec3{0, -2, -6}, 2.0, geometry.NewShapeProperties(core.NewColor(255, 140, 0), 0)).
		Build()
}
