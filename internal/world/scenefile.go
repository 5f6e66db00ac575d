package world

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	_ "handmade/internal/components" // registers the collider types
	"handmade/internal/engine"
	"handmade/internal/vector"
)

// --- YAML types ---

type SceneFile struct {
	Name    string      `yaml:"name,omitempty"`
	Objects []ObjectDef `yaml:"objects"`
}

type ObjectDef struct {
	Name       string           `yaml:"name"`
	Tags       []string         `yaml:"tags,omitempty"`
	Parent     string           `yaml:"parent,omitempty"`
	Inactive   bool             `yaml:"inactive,omitempty"`
	Position   [2]float32       `yaml:"position,flow"`
	Rotation   float32          `yaml:"rotation,omitempty"`
	Scale      *[2]float32      `yaml:"scale,omitempty,flow"`
	Components []map[string]any `yaml:"components,omitempty"`
}

var ErrSceneFormat = errors.New("invalid scene file")

// --- Loading ---

func (w *World) LoadScene(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	defer f.Close()
	return w.ReadScene(f)
}

// ReadScene decodes a scene and adds its objects to the world. Nothing is
// added when any object fails to load.
func (w *World) ReadScene(r io.Reader) error {
	var sf SceneFile
	if err := yaml.NewDecoder(r).Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse scene: %w", err)
	}

	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	byName := make(map[string]*engine.GameObject, len(sf.Objects))
	for i, def := range sf.Objects {
		g, err := buildObject(def)
		if err != nil {
			return fmt.Errorf("%w: object %d (%q): %w", ErrSceneFormat, i, def.Name, err)
		}
		objects = append(objects, g)
		if _, dup := byName[def.Name]; !dup {
			byName[def.Name] = g
		}
	}

	for i, def := range sf.Objects {
		if def.Parent == "" {
			continue
		}
		parent, ok := byName[def.Parent]
		if !ok || parent == objects[i] {
			return fmt.Errorf("%w: object %q has unknown parent %q", ErrSceneFormat, def.Name, def.Parent)
		}
		parent.AddChild(objects[i])
	}

	if sf.Name != "" {
		w.Scene.Name = sf.Name
	}
	for _, g := range objects {
		if g.Parent == nil {
			w.AddObject(g)
		}
	}
	w.logger.Info("scene loaded",
		zap.String("scene", w.Scene.Name),
		zap.Int("objects", len(objects)))
	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Active = !def.Inactive
	g.Transform.Position = vector.New(def.Position[0], def.Position[1])
	g.Transform.Rotation = def.Rotation
	// Missing scale means unit scale
	if def.Scale != nil {
		g.Transform.Scale = vector.New(def.Scale[0], def.Scale[1])
	}

	for _, raw := range def.Components {
		typ, ok := raw["type"].(string)
		if !ok {
			return nil, errors.New("component without a type")
		}
		props := make(map[string]any, len(raw))
		for k, v := range raw {
			if k != "type" {
				props[k] = v
			}
		}
		c, err := engine.CreateComponent(typ, props)
		if err != nil {
			return nil, err
		}
		g.AddComponent(c)
	}
	return g, nil
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	if err := w.WriteScene(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func (w *World) WriteScene(out io.Writer) error {
	sf := SceneFile{Name: w.Scene.Name}

	for _, g := range w.Scene.GameObjects {
		def := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Inactive: !g.Active,
			Position: [2]float32{g.Transform.Position.X, g.Transform.Position.Y},
			Rotation: g.Transform.Rotation,
		}
		if g.Parent != nil {
			def.Parent = g.Parent.Name
		}
		if s := g.Transform.Scale; s != vector.New[float32](1, 1) {
			def.Scale = &[2]float32{s.X, s.Y}
		}

		for _, c := range g.Components() {
			name, props, ok := engine.SerializeComponent(c)
			if !ok {
				continue
			}
			raw := map[string]any{"type": name}
			for k, v := range props {
				raw[k] = v
			}
			def.Components = append(def.Components, raw)
		}

		sf.Objects = append(sf.Objects, def)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(sf); err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	return nil
}
