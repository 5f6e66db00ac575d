// Package shader compiles shader stages by name and links them into the
// single program used for rendering.
package shader

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"handmade/internal/logging"
)

type Kind int

const (
	Vertex Kind = iota
	Fragment
	Geometry
	kindCount
)

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	case Geometry:
		return "geometry"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// RemoveMode selects what Destroy releases.
type RemoveMode int

const (
	RemoveCustom RemoveMode = iota // the named shader only
	RemoveAll
)

var (
	ErrNotInitialized = errors.New("shader: manager not initialized")
	ErrUnknownShader  = errors.New("shader: unknown shader")
	ErrCompile        = errors.New("shader: compile failed")
	ErrLink           = errors.New("shader: link failed")
)

// Stage is a compiled shader handed to the backend for linking.
type Stage struct {
	Kind Kind
	ID   uint32
}

// Backend is the graphics API the manager drives. Locations are -1 when
// the program has no such variable.
type Backend interface {
	CompileShader(kind Kind, source string) (uint32, error)
	DeleteShader(id uint32)
	LinkProgram(stages []Stage) (uint32, error)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	AttributeLocation(program uint32, name string) int32
	SetUniformMatrix(location int32, m mgl32.Mat4)
	SetAttribute(location int32, size int32)
	EnableAttribute(location int32)
	DisableAttribute(location int32)
}

// Stats reports how many shaders of each kind are held.
type Stats struct {
	Vertex   int
	Fragment int
	Geometry int
}

type entry struct {
	id       uint32
	compiled bool
	attached bool
}

type Manager struct {
	backend Backend
	logger  *zap.Logger

	initialized bool
	program     uint32
	shaders     [kindCount]map[string]*entry
	// order keeps attachment order stable for linking.
	order []attachment
}

type attachment struct {
	kind Kind
	name string
}

func New(backend Backend, logger *zap.Logger) *Manager {
	return &Manager{
		backend: backend,
		logger:  logging.OrNop(logger).Named("shader"),
	}
}

func (m *Manager) Initialize() error {
	for k := range m.shaders {
		m.shaders[k] = make(map[string]*entry)
	}
	m.order = nil
	m.initialized = true
	return nil
}

func (m *Manager) lookup(kind Kind, name string) (*entry, error) {
	if !m.initialized {
		return nil, ErrNotInitialized
	}
	if kind < 0 || kind >= kindCount {
		return nil, fmt.Errorf("shader: invalid kind %v", kind)
	}
	e, ok := m.shaders[kind][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s shader %q", ErrUnknownShader, kind, name)
	}
	return e, nil
}

// Create reserves name for a shader of the given kind. Creating an existing
// name releases the old shader first.
func (m *Manager) Create(kind Kind, name string) error {
	if !m.initialized {
		return ErrNotInitialized
	}
	if kind < 0 || kind >= kindCount {
		return fmt.Errorf("shader: invalid kind %v", kind)
	}
	if old, ok := m.shaders[kind][name]; ok {
		m.release(kind, name, old)
	}
	m.shaders[kind][name] = &entry{}
	return nil
}

// Compile reads filename and compiles it into the shader created as name.
func (m *Manager) Compile(kind Kind, filename, name string) error {
	e, err := m.lookup(kind, name)
	if err != nil {
		return err
	}

	m.logger.Info("reading shader file", zap.Stringer("kind", kind), zap.String("file", filename))
	source, err := os.ReadFile(filename)
	if err != nil {
		m.logger.Error("shader file could not be loaded", zap.String("file", filename), zap.Error(err))
		return fmt.Errorf("read %s shader: %w", kind, err)
	}
	return m.compileSource(kind, name, e, string(source))
}

// CompileSource compiles source held in memory.
func (m *Manager) CompileSource(kind Kind, source, name string) error {
	e, err := m.lookup(kind, name)
	if err != nil {
		return err
	}
	return m.compileSource(kind, name, e, source)
}

func (m *Manager) compileSource(kind Kind, name string, e *entry, source string) error {
	if e.compiled {
		m.backend.DeleteShader(e.id)
		e.id, e.compiled = 0, false
	}
	id, err := m.backend.CompileShader(kind, source)
	if err != nil {
		m.logger.Error("shader could not be compiled",
			zap.Stringer("kind", kind), zap.String("name", name), zap.Error(err))
		return fmt.Errorf("%w: %s shader %q: %w", ErrCompile, kind, name, err)
	}
	e.id, e.compiled = id, true
	m.logger.Info("shader compiled", zap.Stringer("kind", kind), zap.String("name", name))
	return nil
}

// Attach marks a compiled shader for the next Link.
func (m *Manager) Attach(kind Kind, name string) error {
	e, err := m.lookup(kind, name)
	if err != nil {
		return err
	}
	if !e.compiled {
		return fmt.Errorf("%w: %s shader %q is not compiled", ErrUnknownShader, kind, name)
	}
	if !e.attached {
		e.attached = true
		m.order = append(m.order, attachment{kind, name})
	}
	return nil
}

func (m *Manager) Detach(kind Kind, name string) error {
	e, err := m.lookup(kind, name)
	if err != nil {
		return err
	}
	m.detach(kind, name, e)
	return nil
}

func (m *Manager) detach(kind Kind, name string, e *entry) {
	if !e.attached {
		return
	}
	e.attached = false
	for i, a := range m.order {
		if a.kind == kind && a.name == name {
			m.order = append(m.order[:i:i], m.order[i+1:]...)
			break
		}
	}
}

// Attached lists the attached shaders in attachment order.
func (m *Manager) Attached() []string {
	names := make([]string, 0, len(m.order))
	for _, a := range m.order {
		names = append(names, a.kind.String()+":"+a.name)
	}
	return names
}

// Link builds a program from the attached shaders and makes it current.
// The previous program is released only when linking succeeds.
func (m *Manager) Link() error {
	if !m.initialized {
		return ErrNotInitialized
	}
	stages := make([]Stage, 0, len(m.order))
	for _, a := range m.order {
		stages = append(stages, Stage{Kind: a.kind, ID: m.shaders[a.kind][a.name].id})
	}

	program, err := m.backend.LinkProgram(stages)
	if err != nil {
		m.logger.Error("linking failed", zap.Int("stages", len(stages)), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrLink, err)
	}
	if m.program != 0 && m.program != program {
		m.backend.DeleteProgram(m.program)
	}
	m.program = program
	m.backend.UseProgram(program)
	m.logger.Debug("program linked", zap.Uint32("program", program), zap.Int("stages", len(stages)))
	return nil
}

// Program is the current program id, 0 before the first Link.
func (m *Manager) Program() uint32 { return m.program }

func (m *Manager) Uniform(name string) int32 {
	return m.backend.UniformLocation(m.program, name)
}

func (m *Manager) Attribute(name string) int32 {
	return m.backend.AttributeLocation(m.program, name)
}

func (m *Manager) SetUniformMatrix(location int32, matrix mgl32.Mat4) {
	m.backend.SetUniformMatrix(location, matrix)
}

// SetAttribute describes location as size tightly packed floats.
func (m *Manager) SetAttribute(location, size int32) {
	m.backend.SetAttribute(location, size)
}

func (m *Manager) EnableAttribute(location int32) { m.backend.EnableAttribute(location) }

func (m *Manager) DisableAttribute(location int32) { m.backend.DisableAttribute(location) }

// Destroy releases the named shader, or every shader of kind with RemoveAll.
func (m *Manager) Destroy(kind Kind, mode RemoveMode, name string) error {
	if !m.initialized {
		return ErrNotInitialized
	}
	switch mode {
	case RemoveCustom:
		e, err := m.lookup(kind, name)
		if err != nil {
			return err
		}
		m.release(kind, name, e)
	case RemoveAll:
		if kind < 0 || kind >= kindCount {
			return fmt.Errorf("shader: invalid kind %v", kind)
		}
		for n, e := range m.shaders[kind] {
			m.release(kind, n, e)
		}
	default:
		return fmt.Errorf("shader: invalid remove mode %d", mode)
	}
	return nil
}

func (m *Manager) release(kind Kind, name string, e *entry) {
	m.detach(kind, name, e)
	if e.compiled {
		m.backend.DeleteShader(e.id)
	}
	delete(m.shaders[kind], name)
}

// Shutdown releases every shader and the program.
func (m *Manager) Shutdown() {
	if !m.initialized {
		return
	}
	for k := range m.shaders {
		for n, e := range m.shaders[k] {
			m.release(Kind(k), n, e)
		}
	}
	if m.program != 0 {
		m.backend.DeleteProgram(m.program)
		m.program = 0
	}
	m.initialized = false
}

func (m *Manager) Stats() Stats {
	return Stats{
		Vertex:   len(m.shaders[Vertex]),
		Fragment: len(m.shaders[Fragment]),
		Geometry: len(m.shaders[Geometry]),
	}
}
