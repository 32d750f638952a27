package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"

	"golang.org/x/image/colornames"

	"spincube/internal/components"
	"spincube/internal/config"
	"spincube/internal/engine"
	"spincube/internal/geometry"
	"spincube/internal/linear"
	"spincube/internal/logging"
)

var ErrUnknownScript = errors.New("world: unknown script")

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	UID        uint64            `json:"uid"`
	Name       string            `json:"name"`
	Position   [3]float64        `json:"position"`
	Rotation   [3]float64        `json:"rotation"`
	Scale      [3]float64        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type cameraDef struct {
	Type   string     `json:"type"`
	FOV    float64    `json:"fov"`
	Aspect float64    `json:"aspect"`
	Near   float64    `json:"near"`
	Far    float64    `json:"far"`
	Target [3]float64 `json:"target"`
}

type meshRendererDef struct {
	Type     string     `json:"type"`
	Mesh     string     `json:"mesh"`
	MeshSize [3]float64 `json:"meshSize"`
	Color    string     `json:"color"`
	Hidden   bool       `json:"hidden,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Color mapping ---

var nameByColor map[color.RGBA]string

func init() {
	nameByColor = make(map[color.RGBA]string, len(colornames.Map))
	// Several names share a value (aqua/cyan); keep the first in sorted order.
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		if _, ok := nameByColor[c]; !ok {
			nameByColor[c] = name
		}
	}
}

func lookupColorName(c color.RGBA) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// --- Saving ---

// Snapshot captures the scene as it stands between frames.
func (w *World) Snapshot() SceneFile {
	w.mu.Lock()
	defer w.mu.Unlock()

	sf := SceneFile{Name: w.Scene.Name}
	for _, g := range w.Scene.GameObjects {
		t := g.Transform
		objDef := ObjectDef{
			UID:      g.UID,
			Name:     g.Name,
			Position: t.Position.Array(),
			Rotation: t.Rotation.Array(),
			Scale:    t.Scale.Array(),
		}
		for _, c := range g.Components() {
			if raw := serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}
		sf.Objects = append(sf.Objects, objDef)
	}
	return sf
}

// SaveScene writes Snapshot as indented JSON.
func (w *World) SaveScene(path string) error {
	data, err := json.MarshalIndent(w.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// ComponentTypes lists the "type" of each serialized component of o.
func (o ObjectDef) ComponentTypes() []string {
	types := make([]string, 0, len(o.Components))
	for _, raw := range o.Components {
		var h componentHeader
		if err := json.Unmarshal(raw, &h); err == nil {
			types = append(types, h.Type)
		}
	}
	return types
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.Camera:
		def = cameraDef{
			Type:   "Camera",
			FOV:    comp.FOV,
			Aspect: comp.Aspect,
			Near:   comp.Near,
			Far:    comp.Far,
			Target: comp.Target.Array(),
		}

	case *components.MeshRenderer:
		def = meshRendererDef{
			Type:     "MeshRenderer",
			Mesh:     comp.Shape.Kind,
			MeshSize: comp.Shape.Size.Array(),
			Color:    lookupColorName(comp.Color),
			Hidden:   comp.Hidden,
		}

	default:
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}

// --- Loading ---

// LoadScene reads a scene file written by SaveScene.
func LoadScene(path string) (SceneFile, error) {
	var sf SceneFile
	data, err := os.ReadFile(path)
	if err != nil {
		return sf, fmt.Errorf("read scene: %w", err)
	}
	if err := json.Unmarshal(data, &sf); err != nil {
		return sf, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return sf, nil
}

// Restore applies a saved scene to the world's objects, matched by name.
// Transforms are copied, and component settings are applied to the
// matching components. Objects the world does not have are skipped.
// A saved script the object lacks is created through the script registry.
// The camera keeps the aspect of the mounted surface.
func (w *World) Restore(sf SceneFile) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	log := logging.Logger()

	for _, def := range sf.Objects {
		g := w.Scene.FindByName(def.Name)
		if g == nil {
			log.Warn("scene object not in world, skipped", "name", def.Name)
			continue
		}
		g.Transform.Position = vec3(def.Position)
		g.Transform.Rotation = vec3(def.Rotation)
		g.Transform.Scale = vec3(def.Scale)

		for _, raw := range def.Components {
			if err := restoreComponent(g, raw); err != nil {
				return fmt.Errorf("restore %s: %w", def.Name, err)
			}
		}
	}
	log.Info("scene restored", "name", sf.Name, "objects", len(sf.Objects))
	return nil
}

func restoreComponent(g *engine.GameObject, raw json.RawMessage) error {
	var h componentHeader
	if err := json.Unmarshal(raw, &h); err != nil {
		return err
	}

	switch h.Type {
	case "Camera":
		cam := engine.GetComponent[*components.Camera](g)
		if cam == nil {
			return nil
		}
		var def cameraDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		cam.FOV, cam.Near, cam.Far = def.FOV, def.Near, def.Far
		cam.Target = vec3(def.Target)

	case "MeshRenderer":
		mesh := engine.GetComponent[*components.MeshRenderer](g)
		if mesh == nil {
			return nil
		}
		var def meshRendererDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		c, err := config.ParseColor(def.Color)
		if err != nil {
			return err
		}
		if def.Mesh != geometry.KindBox {
			return fmt.Errorf("unsupported mesh %q", def.Mesh)
		}
		shape, err := geometry.Box(def.MeshSize[0], def.MeshSize[1], def.MeshSize[2])
		if err != nil {
			return err
		}
		mesh.Shape, mesh.Color, mesh.Hidden = shape, c, def.Hidden

	case "Script":
		var def scriptDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		return restoreScript(g, def)
	}
	return nil
}

func restoreScript(g *engine.GameObject, def scriptDef) error {
	for _, c := range g.Components() {
		if name, _, ok := engine.SerializeScript(c); ok && name == def.Name {
			for prop, value := range def.Props {
				if !engine.ApplyScriptProperty(c, prop, value) {
					logging.Logger().Warn("script property not applied", "script", def.Name, "prop", prop)
				}
			}
			return nil
		}
	}

	c := engine.CreateScript(def.Name, def.Props)
	if c == nil {
		return fmt.Errorf("%w: %q", ErrUnknownScript, def.Name)
	}
	g.AddComponent(c)
	c.Start()
	return nil
}

func vec3(a [3]float64) linear.Vec3 {
	return linear.V3(a[0], a[1], a[2])
}
