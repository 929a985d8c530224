// Package texture wraps decoded images as GPU-sampleable surfaces.
package texture

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// AlphaMarker is the reserved alpha value flagging pixels to be
// recolored with the owning player's team color.
const AlphaMarker = 254

// Texture owns GPU image storage. Lifetime is tied to whichever
// subsystem created it.
type Texture struct {
	id            uint32
	width, height int32
	playerColored bool
}

// FromImage uploads an RGBA image to the GPU. playerColored marks
// textures whose alpha channel carries team tint markers.
func FromImage(img *image.RGBA, playerColored bool) (*Texture, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image %dx%d", w, h)
	}

	t := &Texture{
		width:         int32(w),
		height:        int32(h),
		playerColored: playerColored,
	}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		t.width, t.height,
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	// Pixel-art textures: no filtering across texels, no wrapping
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t, nil
}

// ID returns the GL texture name.
func (t *Texture) ID() uint32 {
	return t.id
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (int32, int32) {
	return t.width, t.height
}

// PlayerColored reports whether the texture's alpha channel carries
// team tint markers.
func (t *Texture) PlayerColored() bool {
	return t.playerColored
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Destroy releases the GPU storage.
func (t *Texture) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
