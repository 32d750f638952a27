package components

import (
	"spincube/internal/engine"
	"spincube/internal/linear"
)

// DefaultSpinStep is the per-tick rotation, in radians, of a freshly built cube.
var DefaultSpinStep = linear.V3(0.01, 0.01, 0)

// Spinner adds Step to its GameObject's rotation once per Update.
// deltaTime is ignored and the angles are never wrapped.
type Spinner struct {
	engine.BaseComponent
	Step  linear.Vec3
	Ticks uint64
}

func NewSpinner(step linear.Vec3) *Spinner {
	return &Spinner{Step: step}
}

func (s *Spinner) Update(deltaTime float64) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	s.Ticks++
	g.Transform.Rotation = g.Transform.Rotation.Add(s.Step)
}

func init() {
	engine.RegisterScript("Spinner", spinnerFactory, spinnerSerializer, spinnerApplier)
}

func spinnerFactory(props map[string]any) engine.Component {
	s := NewSpinner(DefaultSpinStep)
	for name, value := range props {
		spinnerApplier(s, name, value)
	}
	return s
}

func spinnerSerializer(c engine.Component) map[string]any {
	s, ok := c.(*Spinner)
	if !ok {
		return nil
	}
	return map[string]any{
		"step":  s.Step.Array(),
		"ticks": s.Ticks,
	}
}

func spinnerApplier(c engine.Component, propName string, value any) bool {
	s, ok := c.(*Spinner)
	if !ok {
		return false
	}
	switch propName {
	case "step":
		v, ok := toVec3(value)
		if !ok {
			return false
		}
		s.Step = v
		return true
	case "ticks":
		switch n := value.(type) {
		case uint64:
			s.Ticks = n
		case float64:
			if n < 0 {
				return false
			}
			s.Ticks = uint64(n)
		default:
			return false
		}
		return true
	}

	f, ok := value.(float64)
	if !ok {
		return false
	}
	switch propName {
	case "stepX":
		s.Step.X = f
	case "stepY":
		s.Step.Y = f
	case "stepZ":
		s.Step.Z = f
	default:
		return false
	}
	return true
}

// toVec3 accepts a [3]float64 or a decoded JSON array of three numbers.
func toVec3(value any) (linear.Vec3, bool) {
	switch v := value.(type) {
	case [3]float64:
		return linear.V3(v[0], v[1], v[2]), true
	case []any:
		if len(v) != 3 {
			return linear.Vec3{}, false
		}
		var arr [3]float64
		for i := range arr {
			f, ok := v[i].(float64)
			if !ok {
				return linear.Vec3{}, false
			}
			arr[i] = f
		}
		return linear.V3(arr[0], arr[1], arr[2]), true
	}
	return linear.Vec3{}, false
}
