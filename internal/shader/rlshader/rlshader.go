// Package rlshader implements shader.Backend with raylib's rlgl layer.
package rlshader

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"handmade/internal/shader"
)

// OpenGL enums passed through rlgl.
const (
	glFragmentShader = 0x8B30
	glVertexShader   = 0x8B31
	glGeometryShader = 0x8DD9
	glFloat          = 0x1406
)

type Backend struct{}

var _ shader.Backend = Backend{}

func stageType(kind shader.Kind) (int32, error) {
	switch kind {
	case shader.Vertex:
		return glVertexShader, nil
	case shader.Fragment:
		return glFragmentShader, nil
	case shader.Geometry:
		return glGeometryShader, nil
	}
	return 0, fmt.Errorf("rlshader: invalid kind %v", kind)
}

// CompileShader returns rlgl's shader id. rlgl writes the compiler log to
// its own trace output.
func (Backend) CompileShader(kind shader.Kind, source string) (uint32, error) {
	typ, err := stageType(kind)
	if err != nil {
		return 0, err
	}
	id := rl.CompileShader(source, typ)
	if id == 0 {
		return 0, fmt.Errorf("rlshader: %s shader rejected by driver", kind)
	}
	return id, nil
}

// DeleteShader is a no-op: rlgl frees shader stages together with the
// program or the context.
func (Backend) DeleteShader(uint32) {}

// LinkProgram links one vertex and one fragment stage. rlgl has no entry
// point for linking geometry stages.
func (Backend) LinkProgram(stages []shader.Stage) (uint32, error) {
	var vertex, fragment uint32
	for _, s := range stages {
		switch s.Kind {
		case shader.Vertex:
			if vertex != 0 {
				return 0, errors.New("rlshader: more than one vertex stage")
			}
			vertex = s.ID
		case shader.Fragment:
			if fragment != 0 {
				return 0, errors.New("rlshader: more than one fragment stage")
			}
			fragment = s.ID
		case shader.Geometry:
			return 0, errors.New("rlshader: geometry stages are not supported")
		}
	}
	if vertex == 0 || fragment == 0 {
		return 0, errors.New("rlshader: a vertex and a fragment stage are required")
	}

	program := rl.LoadShaderProgram(vertex, fragment)
	if program == 0 {
		return 0, errors.New("rlshader: driver rejected program")
	}
	return program, nil
}

func (Backend) UseProgram(program uint32) { rl.EnableShader(program) }

func (Backend) DeleteProgram(program uint32) { rl.UnloadShaderProgram(program) }

func (Backend) UniformLocation(program uint32, name string) int32 {
	return rl.GetLocationUniform(program, name)
}

func (Backend) AttributeLocation(program uint32, name string) int32 {
	return rl.GetLocationAttrib(program, name)
}

func (Backend) SetUniformMatrix(location int32, m mgl32.Mat4) {
	rl.SetUniformMatrix(location, Matrix(m))
}

func (Backend) SetAttribute(location, size int32) {
	if location < 0 {
		return
	}
	rl.SetVertexAttribute(uint32(location), size, glFloat, false, 0, 0)
}

func (Backend) EnableAttribute(location int32) {
	if location >= 0 {
		rl.EnableVertexAttribute(uint32(location))
	}
}

func (Backend) DisableAttribute(location int32) {
	if location >= 0 {
		rl.DisableVertexAttribute(uint32(location))
	}
}

// Matrix converts a column-major mathgl matrix to raylib's layout, where
// field Mi holds element i of the column-major array.
func Matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
