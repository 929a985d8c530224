// Package shader provides OpenGL shader program compilation and
// uniform/attribute resolution.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrUnresolvedSymbol reports a uniform or attribute name absent from a
// linked program. Hitting it at init is a fatal configuration error.
var ErrUnresolvedSymbol = errors.New("unresolved shader symbol")

// CompileError carries the GL compiler log for a failed shader stage.
type CompileError struct {
	Stage string // "vertex" or "fragment"
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the GL linker log for a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("linking shader program: %s", e.Log)
}

// Program is a linked vertex+fragment shader pair. The raw shader stage
// objects are released during construction; the linked program retains
// everything needed to draw.
type Program struct {
	name string
	id   uint32
}

// NewProgram compiles and links a program from GLSL sources. The stage
// objects are deleted on every exit path, and a failed link does not
// leak the partially created program.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := compileStage(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(id)
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("program %s: %w", name, &LinkError{Log: log})
	}

	return &Program{name: name, id: id}, nil
}

// compileStage compiles a single shader stage, capturing the info log
// on failure.
func compileStage(source string, stageType uint32, stage string) (uint32, error) {
	id := gl.CreateShader(stageType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(id, logLen, nil, &log[0])
		gl.DeleteShader(id)
		return 0, &CompileError{Stage: stage, Log: strings.TrimRight(string(log), "\x00\n")}
	}

	return id, nil
}

func programLog(id uint32) string {
	var logLen int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
	log := make([]byte, logLen+1)
	gl.GetProgramInfoLog(id, logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

// Name returns the program's diagnostic name.
func (p *Program) Name() string {
	return p.name
}

// Uniform resolves a uniform location by name.
func (p *Program) Uniform(name string) (int32, error) {
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("%w: uniform %q in program %s", ErrUnresolvedSymbol, name, p.name)
	}
	return loc, nil
}

// Attrib resolves a vertex attribute location by name.
func (p *Program) Attrib(name string) (uint32, error) {
	loc := gl.GetAttribLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("%w: attribute %q in program %s", ErrUnresolvedSymbol, name, p.name)
	}
	return uint32(loc), nil
}

// Use activates the program. Exactly one program may be active at a
// time; the caller brackets activation with StopUsing.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// StopUsing deactivates any active program.
func (p *Program) StopUsing() {
	gl.UseProgram(0)
}

// Destroy releases the linked program.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
