package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/sreejithr/openage/internal/engine/render/shaders"
	"github.com/sreejithr/openage/internal/engine/shader"
	"github.com/sreejithr/openage/internal/engine/texture"
	"github.com/sreejithr/openage/internal/meta"
)

// plainTextureProgram samples one texture with tile or sprite
// coordinates. Used for terrain base layers and non-team sprites.
type plainTextureProgram struct {
	prog *shader.Program

	mvp int32
	tex int32

	position uint32
	texCoord uint32
}

func newPlainTextureProgram() (*plainTextureProgram, error) {
	prog, err := shader.NewProgram("maptexture",
		shaders.MapTextureVertexShader, shaders.MapTextureFragmentShader)
	if err != nil {
		return nil, err
	}

	p := &plainTextureProgram{prog: prog}
	if err := resolve(prog,
		uniform{"mvp", &p.mvp},
		uniform{"tex", &p.tex},
	); err != nil {
		prog.Destroy()
		return nil, err
	}
	if err := resolveAttribs(prog,
		attrib{"position", &p.position},
		attrib{"tex_coordinates", &p.texCoord},
	); err != nil {
		prog.Destroy()
		return nil, err
	}

	prog.Use()
	gl.Uniform1i(p.tex, 0)
	prog.StopUsing()

	return p, nil
}

// teamColorProgram samples like the plain program but recolors texels
// at the marker alpha with the per-player color table.
type teamColorProgram struct {
	prog *shader.Program

	mvp          int32
	tex          int32
	playerNumber int32
	alphaMarker  int32
	playerColor  int32

	position uint32
	texCoord uint32
}

func newTeamColorProgram(colors []meta.PlayerColor) (*teamColorProgram, error) {
	prog, err := shader.NewProgram("teamcolors",
		shaders.MapTextureVertexShader, shaders.TeamColorsFragmentShader)
	if err != nil {
		return nil, err
	}

	p := &teamColorProgram{prog: prog}
	if err := resolve(prog,
		uniform{"mvp", &p.mvp},
		uniform{"tex", &p.tex},
		uniform{"player_number", &p.playerNumber},
		uniform{"alpha_marker", &p.alphaMarker},
		uniform{"player_color", &p.playerColor},
	); err != nil {
		prog.Destroy()
		return nil, err
	}
	if err := resolveAttribs(prog,
		attrib{"position", &p.position},
		attrib{"tex_coordinates", &p.texCoord},
	); err != nil {
		prog.Destroy()
		return nil, err
	}

	// The color table is uploaded once; it is immutable after init.
	flat := make([]float32, 0, len(colors)*4)
	for _, c := range colors {
		flat = append(flat, c.R, c.G, c.B, c.A)
	}

	prog.Use()
	gl.Uniform1i(p.tex, 0)
	gl.Uniform1f(p.alphaMarker, float32(texture.AlphaMarker)/255.0)
	if len(flat) > 0 {
		gl.Uniform4fv(p.playerColor, int32(len(colors)), &flat[0])
	}
	prog.StopUsing()

	return p, nil
}

// alphaMaskProgram composites an overlay texture through a blend mask's
// alpha channel; show_mask visualizes the raw mask instead.
type alphaMaskProgram struct {
	prog *shader.Program

	mvp         int32
	baseTexture int32
	maskTexture int32
	showMask    int32

	position  uint32
	baseCoord uint32
	maskCoord uint32
}

func newAlphaMaskProgram() (*alphaMaskProgram, error) {
	prog, err := shader.NewProgram("alphamask",
		shaders.AlphaMaskVertexShader, shaders.AlphaMaskFragmentShader)
	if err != nil {
		return nil, err
	}

	p := &alphaMaskProgram{prog: prog}
	if err := resolve(prog,
		uniform{"mvp", &p.mvp},
		uniform{"base_texture", &p.baseTexture},
		uniform{"mask_texture", &p.maskTexture},
		uniform{"show_mask", &p.showMask},
	); err != nil {
		prog.Destroy()
		return nil, err
	}
	if err := resolveAttribs(prog,
		attrib{"position", &p.position},
		attrib{"base_tex_coordinates", &p.baseCoord},
		attrib{"mask_tex_coordinates", &p.maskCoord},
	); err != nil {
		prog.Destroy()
		return nil, err
	}

	prog.Use()
	gl.Uniform1i(p.baseTexture, 0)
	gl.Uniform1i(p.maskTexture, 1)
	prog.StopUsing()

	return p, nil
}

type uniform struct {
	name string
	loc  *int32
}

type attrib struct {
	name string
	loc  *uint32
}

func resolve(prog *shader.Program, uniforms ...uniform) error {
	for _, u := range uniforms {
		loc, err := prog.Uniform(u.name)
		if err != nil {
			return err
		}
		*u.loc = loc
	}
	return nil
}

func resolveAttribs(prog *shader.Program, attribs ...attrib) error {
	for _, a := range attribs {
		loc, err := prog.Attrib(a.name)
		if err != nil {
			return err
		}
		*a.loc = loc
	}
	return nil
}
