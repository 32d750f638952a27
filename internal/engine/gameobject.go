package engine

import (
	"sync/atomic"

	"spincube/internal/linear"
)

type Transform struct {
	Position linear.Vec3
	Rotation linear.Vec3 // Euler angles in radians, XYZ order
	Scale    linear.Vec3
}

// Matrix returns the model matrix: translate * rotate * scale.
func (t Transform) Matrix() linear.Mat4 {
	return linear.TRS(t.Position, t.Rotation, t.Scale)
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Transform  Transform
	Active     bool
	Scene      *Scene
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: linear.V3(1, 1, 1),
		},
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float64) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}
