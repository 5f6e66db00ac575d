package engine

import (
	"errors"
	"testing"
)

type mockComponent struct {
	BaseComponent
	Speed float32
}

func mockFactory(props map[string]any) (Component, error) {
	c := &mockComponent{}
	if v, ok := props["speed"].(float64); ok {
		c.Speed = float32(v)
	}
	if _, ok := props["broken"]; ok {
		return nil, errors.New("broken prop")
	}
	return c, nil
}

func mockSerializer(c Component) map[string]any {
	m, ok := c.(*mockComponent)
	if !ok {
		return nil
	}
	return map[string]any{"speed": float64(m.Speed)}
}

func withCleanRegistry(t *testing.T) {
	saved := componentRegistry
	componentRegistry = map[string]registryEntry{}
	t.Cleanup(func() { componentRegistry = saved })
}

func TestRegisterComponent(t *testing.T) {
	withCleanRegistry(t)

	RegisterComponent("mock", mockFactory, mockSerializer)

	if _, exists := componentRegistry["mock"]; !exists {
		t.Error("component not registered")
	}
}

func TestRegisterComponentDuplicate(t *testing.T) {
	withCleanRegistry(t)

	RegisterComponent("dup", mockFactory, mockSerializer)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()

	RegisterComponent("dup", mockFactory, mockSerializer)
}

func TestCreateComponent(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("mock", mockFactory, mockSerializer)

	c, err := CreateComponent("mock", map[string]any{"speed": 2.5})
	if err != nil {
		t.Fatalf("CreateComponent: %v", err)
	}
	if m, ok := c.(*mockComponent); !ok || m.Speed != 2.5 {
		t.Errorf("unexpected component %#v", c)
	}

	if _, err := CreateComponent("missing", nil); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("expected ErrUnknownComponent, got %v", err)
	}
	if _, err := CreateComponent("mock", map[string]any{"broken": true}); err == nil {
		t.Error("expected factory error to propagate")
	}
}

func TestSerializeComponent(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("mock", mockFactory, mockSerializer)

	name, props, ok := SerializeComponent(&mockComponent{Speed: 4})
	if !ok || name != "mock" || props["speed"] != float64(4) {
		t.Errorf("got (%q, %v, %v)", name, props, ok)
	}

	if _, _, ok := SerializeComponent(&BaseComponent{}); ok {
		t.Error("unregistered component should not serialize")
	}
}

func TestRegisteredComponentsSorted(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("zeta", mockFactory, nil)
	RegisterComponent("alpha", mockFactory, nil)
	RegisterComponent("mid", mockFactory, nil)

	got := RegisteredComponents()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
