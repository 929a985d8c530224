// Package render drives the GPU shader pipeline that composites
// terrain base textures, blend masks and team-colored sprites into a
// frame.
package render

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/sreejithr/openage/internal/engine/camera"
	"github.com/sreejithr/openage/internal/engine/terrain"
	"github.com/sreejithr/openage/internal/engine/texture"
	"github.com/sreejithr/openage/internal/logger"
	"github.com/sreejithr/openage/internal/meta"
	"github.com/sreejithr/openage/pkg/math"
)

// Pipeline errors.
var (
	ErrNotInitialized = errors.New("pipeline is not initialized")
	ErrMissingMask    = errors.New("blend mode has no mask for shape")
)

// ImageLoader resolves texture paths to decoded images. Satisfied by
// assets.Manager.
type ImageLoader interface {
	LoadImage(path string) (*image.RGBA, error)
}

// Config holds pipeline settings.
type Config struct {
	ShowBlendMasks bool // draw raw masks instead of blended overlays
}

type state int

const (
	stateUninitialized state = iota
	stateInitialized
	stateDestroyed
)

// Pipeline owns the three shader programs, the terrain and mask
// textures and the per-frame draw ordering: base tiles first, then
// blend overlays, then sprites. All calls must come from the GL thread.
type Pipeline struct {
	state    state
	terr     *terrain.Terrain
	cam      *camera.Camera
	showMask bool

	plain *plainTextureProgram
	team  *teamColorProgram
	amask *alphaMaskProgram

	terrainTextures []*texture.Texture                            // by terrain type id
	maskTextures    []map[terrain.ShapeCode]*texture.Texture // by blend mode id

	// One streaming quad per draw call: 6 vertices of (pos, uv) for the
	// plain and team programs, (pos, base uv, mask uv) for alpha mask.
	plainVAO uint32
	teamVAO  uint32
	quadVBO  uint32
	maskVAO  uint32
	maskVBO  uint32
}

// New builds the pipeline: compiles and links the three programs,
// uploads the player color table, and loads every terrain base texture
// and blend mask texture. Any failure is fatal and releases whatever
// was created so far.
func New(terr *terrain.Terrain, cam *camera.Camera, colors []meta.PlayerColor,
	loader ImageLoader, cfg Config) (*Pipeline, error) {

	p := &Pipeline{
		terr:     terr,
		cam:      cam,
		showMask: cfg.ShowBlendMasks,
	}

	ok := false
	defer func() {
		if !ok {
			p.release()
		}
	}()

	var err error
	if p.plain, err = newPlainTextureProgram(); err != nil {
		return nil, err
	}
	if p.team, err = newTeamColorProgram(colors); err != nil {
		return nil, err
	}
	if p.amask, err = newAlphaMaskProgram(); err != nil {
		return nil, err
	}

	if err := p.loadTerrainTextures(loader); err != nil {
		return nil, err
	}
	if err := p.loadMaskTextures(loader); err != nil {
		return nil, err
	}

	p.createBuffers()

	p.state = stateInitialized
	logger.Sugar.Debugf("pipeline initialized: %d terrain textures, %d blend modes",
		len(p.terrainTextures), len(p.maskTextures))

	ok = true
	return p, nil
}

func (p *Pipeline) loadTerrainTextures(loader ImageLoader) error {
	types := p.terr.Types()
	p.terrainTextures = make([]*texture.Texture, len(types))
	for _, tt := range types {
		img, err := loader.LoadImage(tt.Texture)
		if err != nil {
			return fmt.Errorf("terrain type %d: %w", tt.ID, err)
		}
		tex, err := texture.FromImage(img, false)
		if err != nil {
			return fmt.Errorf("terrain type %d: %w", tt.ID, err)
		}
		p.terrainTextures[tt.ID] = tex
	}
	return nil
}

func (p *Pipeline) loadMaskTextures(loader ImageLoader) error {
	modes := p.terr.Modes()
	p.maskTextures = make([]map[terrain.ShapeCode]*texture.Texture, len(modes))
	for _, mode := range modes {
		masks := make(map[terrain.ShapeCode]*texture.Texture, len(mode.Masks))
		for shape, path := range mode.Masks {
			img, err := loader.LoadImage(path)
			if err != nil {
				return fmt.Errorf("blend mode %d shape %v: %w", mode.ID, shape, err)
			}
			tex, err := texture.FromImage(img, false)
			if err != nil {
				return fmt.Errorf("blend mode %d shape %v: %w", mode.ID, shape, err)
			}
			masks[shape] = tex
		}
		p.maskTextures[mode.ID] = masks
	}
	return nil
}

func (p *Pipeline) createBuffers() {
	// Plain/team quad: interleaved position + tex coords, streamed per
	// draw. The two programs share the vertex layout but resolve their
	// own attribute locations, so each gets a VAO over the same VBO.
	gl.GenBuffers(1, &p.quadVBO)

	gl.GenVertexArrays(1, &p.plainVAO)
	gl.BindVertexArray(p.plainVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.quadVBO)
	gl.VertexAttribPointerWithOffset(p.plain.position, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(p.plain.position)
	gl.VertexAttribPointerWithOffset(p.plain.texCoord, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(p.plain.texCoord)

	gl.GenVertexArrays(1, &p.teamVAO)
	gl.BindVertexArray(p.teamVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.quadVBO)
	gl.VertexAttribPointerWithOffset(p.team.position, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(p.team.position)
	gl.VertexAttribPointerWithOffset(p.team.texCoord, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(p.team.texCoord)

	// Alpha mask quad: position + base uv + mask uv
	gl.GenBuffers(1, &p.maskVBO)
	gl.GenVertexArrays(1, &p.maskVAO)
	gl.BindVertexArray(p.maskVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.maskVBO)
	gl.VertexAttribPointerWithOffset(p.amask.position, 2, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(p.amask.position)
	gl.VertexAttribPointerWithOffset(p.amask.baseCoord, 2, gl.FLOAT, false, 6*4, 2*4)
	gl.EnableVertexAttribArray(p.amask.baseCoord)
	gl.VertexAttribPointerWithOffset(p.amask.maskCoord, 2, gl.FLOAT, false, 6*4, 4*4)
	gl.EnableVertexAttribArray(p.amask.maskCoord)

	gl.BindVertexArray(0)
}

// DrawTerrain draws the visible grid region: every base tile with the
// plain texture program, then every blend overlay with the alpha mask
// program. Base draws for a tile always precede its overlays; this
// ordering is a pipeline invariant, not a performance choice.
func (p *Pipeline) DrawTerrain() error {
	if p.state != stateInitialized {
		return ErrNotInitialized
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	vp := p.cam.ViewProjection()
	n := p.terr.Size()

	// Pass 1: base textures
	p.plain.prog.Use()
	gl.UniformMatrix4fv(p.plain.mvp, 1, false, vp.Ptr())
	gl.BindVertexArray(p.plainVAO)
	gl.ActiveTexture(gl.TEXTURE0)

	for ne := 0; ne < n; ne++ {
		for se := 0; se < n; se++ {
			pos := terrain.TilePos{NE: ne, SE: se}
			if !p.tileVisible(pos) {
				continue
			}
			typ, err := p.terr.TypeAt(pos)
			if err != nil {
				return err
			}
			gl.BindTexture(gl.TEXTURE_2D, p.terrainTextures[typ.ID].ID())
			p.streamQuad(p.quadVBO, TileTopLeft(pos), TileWidth, TileHeight)
			gl.DrawArrays(gl.TRIANGLES, 0, 6)
		}
	}
	p.plain.prog.StopUsing()

	// Pass 2: blend overlays, ascending winner priority per tile
	p.amask.prog.Use()
	gl.UniformMatrix4fv(p.amask.mvp, 1, false, vp.Ptr())
	if p.showMask {
		gl.Uniform1i(p.amask.showMask, 1)
	} else {
		gl.Uniform1i(p.amask.showMask, 0)
	}
	gl.BindVertexArray(p.maskVAO)

	for ne := 0; ne < n; ne++ {
		for se := 0; se < n; se++ {
			pos := terrain.TilePos{NE: ne, SE: se}
			if !p.tileVisible(pos) {
				continue
			}
			overlays, err := p.terr.BlendsAt(pos)
			if err != nil {
				return err
			}
			for _, o := range overlays {
				mask, err := p.maskTexture(o.ModeID, o.Shape)
				if err != nil {
					return err
				}
				p.terrainTextures[o.TypeID].Bind(0)
				mask.Bind(1)
				p.streamMaskQuad(TileTopLeft(pos), TileWidth, TileHeight)
				gl.DrawArrays(gl.TRIANGLES, 0, 6)
			}
		}
	}
	p.amask.prog.StopUsing()

	gl.BindVertexArray(0)
	return nil
}

// maskTexture looks up a blend mask, falling back to the edges-only
// shape when the exact corner combination is not in the mode's set.
func (p *Pipeline) maskTexture(modeID int, shape terrain.ShapeCode) (*texture.Texture, error) {
	masks := p.maskTextures[modeID]
	if tex, ok := masks[shape]; ok {
		return tex, nil
	}
	if tex, ok := masks[shape.EdgesOnly()]; ok {
		return tex, nil
	}
	return nil, fmt.Errorf("%w: mode %d shape %v", ErrMissingMask, modeID, shape)
}

// DrawSprite draws a sprite with its top-left corner at a world
// position. Player-colored textures go through the team color program
// with the owning player's index; everything else uses the plain
// program.
func (p *Pipeline) DrawSprite(tex *texture.Texture, topLeft math.Vec2, player int) error {
	if p.state != stateInitialized {
		return ErrNotInitialized
	}
	if player < 0 || player >= meta.MaxPlayerColors {
		return fmt.Errorf("player index %d out of range", player)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	vp := p.cam.ViewProjection()
	w, h := tex.Size()

	if tex.PlayerColored() {
		p.team.prog.Use()
		gl.UniformMatrix4fv(p.team.mvp, 1, false, vp.Ptr())
		gl.Uniform1i(p.team.playerNumber, int32(player))
		gl.BindVertexArray(p.teamVAO)
	} else {
		p.plain.prog.Use()
		gl.UniformMatrix4fv(p.plain.mvp, 1, false, vp.Ptr())
		gl.BindVertexArray(p.plainVAO)
	}

	tex.Bind(0)
	p.streamQuad(p.quadVBO, topLeft, float32(w), float32(h))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	return nil
}

// tileVisible culls tiles whose bounding quad misses the camera view.
func (p *Pipeline) tileVisible(pos terrain.TilePos) bool {
	tl := TileTopLeft(pos)
	cam := p.cam.Position()
	w, h := p.cam.Size()
	return tl.X+TileWidth >= cam.X && tl.X <= cam.X+float32(w) &&
		tl.Y+TileHeight >= cam.Y && tl.Y <= cam.Y+float32(h)
}

// streamQuad uploads two triangles of (pos, uv) for a w x h quad.
func (p *Pipeline) streamQuad(vbo uint32, topLeft math.Vec2, w, h float32) {
	x, y := topLeft.X, topLeft.Y
	verts := [...]float32{
		x, y, 0, 0,
		x, y + h, 0, 1,
		x + w, y + h, 1, 1,
		x, y, 0, 0,
		x + w, y + h, 1, 1,
		x + w, y, 1, 0,
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STREAM_DRAW)
}

// streamMaskQuad uploads two triangles of (pos, base uv, mask uv).
// Overlay and mask share the tile's texture space.
func (p *Pipeline) streamMaskQuad(topLeft math.Vec2, w, h float32) {
	x, y := topLeft.X, topLeft.Y
	verts := [...]float32{
		x, y, 0, 0, 0, 0,
		x, y + h, 0, 1, 0, 1,
		x + w, y + h, 1, 1, 1, 1,
		x, y, 0, 0, 0, 0,
		x + w, y + h, 1, 1, 1, 1,
		x + w, y, 1, 0, 1, 0,
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, p.maskVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STREAM_DRAW)
}

// Destroy releases all GPU resources owned by the pipeline. The caller
// guarantees no further draw calls will reference them. Destroyed is
// terminal.
func (p *Pipeline) Destroy() {
	if p.state == stateDestroyed {
		return
	}
	p.release()
	p.state = stateDestroyed
}

func (p *Pipeline) release() {
	for _, tex := range p.terrainTextures {
		if tex != nil {
			tex.Destroy()
		}
	}
	p.terrainTextures = nil
	for _, masks := range p.maskTextures {
		for _, tex := range masks {
			tex.Destroy()
		}
	}
	p.maskTextures = nil

	if p.plain != nil {
		p.plain.prog.Destroy()
		p.plain = nil
	}
	if p.team != nil {
		p.team.prog.Destroy()
		p.team = nil
	}
	if p.amask != nil {
		p.amask.prog.Destroy()
		p.amask = nil
	}

	if p.plainVAO != 0 {
		gl.DeleteVertexArrays(1, &p.plainVAO)
		p.plainVAO = 0
	}
	if p.teamVAO != 0 {
		gl.DeleteVertexArrays(1, &p.teamVAO)
		p.teamVAO = 0
	}
	if p.maskVAO != 0 {
		gl.DeleteVertexArrays(1, &p.maskVAO)
		p.maskVAO = 0
	}
	if p.quadVBO != 0 {
		gl.DeleteBuffers(1, &p.quadVBO)
		p.quadVBO = 0
	}
	if p.maskVBO != 0 {
		gl.DeleteBuffers(1, &p.maskVBO)
		p.maskVBO = 0
	}
}
