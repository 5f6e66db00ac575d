package engine

import (
	"errors"
	"fmt"
	"slices"
)

// ComponentFactory builds a component from decoded scene-file properties.
type ComponentFactory func(props map[string]any) (Component, error)

// ComponentSerializer turns a component back into properties. It returns nil
// for components it does not own.
type ComponentSerializer func(c Component) map[string]any

type registryEntry struct {
	factory    ComponentFactory
	serializer ComponentSerializer
}

var componentRegistry = map[string]registryEntry{}

var ErrUnknownComponent = errors.New("unknown component type")

// RegisterComponent makes a component type available to scene files under
// name. Registering a name twice panics.
func RegisterComponent(name string, factory ComponentFactory, serializer ComponentSerializer) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = registryEntry{factory: factory, serializer: serializer}
}

func CreateComponent(name string, props map[string]any) (Component, error) {
	entry, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownComponent, name)
	}
	c, err := entry.factory(props)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return c, nil
}

// SerializeComponent returns (name, props, true) for registered components.
func SerializeComponent(c Component) (string, map[string]any, bool) {
	for _, name := range RegisteredComponents() {
		entry := componentRegistry[name]
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredComponents returns the registered names, sorted.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
