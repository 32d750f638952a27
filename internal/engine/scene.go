package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Drawables returns every visible drawable component in scene order.
func (s *Scene) Drawables() []Drawable {
	var result []Drawable
	for _, g := range s.GameObjects {
		if !g.Active {
			continue
		}
		for _, c := range g.components {
			if d, ok := c.(Drawable); ok && d.Visible() {
				result = append(result, d)
			}
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float64) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
