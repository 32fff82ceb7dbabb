package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/planet-atmosphere/internal/engine/texture"
	"github.com/Faultbox/planet-atmosphere/internal/logger"
)

// Texture is a GPU texture handle with its bind target.
type Texture struct {
	ID     uint32
	Target uint32
}

// Bind activates texture unit and binds the texture to it.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// UploadTexture2D uploads an RGBA image as a mipmapped, repeating 2D texture.
func UploadTexture2D(img *image.RGBA) (*Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("upload texture: empty image")
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(w), int32(h),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &texID)
		return nil, fmt.Errorf("upload texture: gl error 0x%x", code)
	}
	return &Texture{ID: texID, Target: gl.TEXTURE_2D}, nil
}

// UploadCubemap uploads six decoded faces. On any GL error the partially
// built texture is deleted.
func UploadCubemap(cm *texture.Cubemap) (*Texture, error) {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	for i, face := range cm.Faces {
		if face == nil {
			gl.DeleteTextures(1, &texID)
			return nil, fmt.Errorf("upload cubemap: face %s missing", texture.CubeFace(i))
		}
		size := int32(face.Bounds().Dx())
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			size, size, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&face.Pix[0]))
		if code := gl.GetError(); code != gl.NO_ERROR {
			gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
			gl.DeleteTextures(1, &texID)
			return nil, fmt.Errorf("upload cubemap face %s: gl error 0x%x", texture.CubeFace(i), code)
		}
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	logger.Debug("cubemap uploaded", zap.Uint32("texture", texID), zap.Int("size", cm.Size))
	return &Texture{ID: texID, Target: gl.TEXTURE_CUBE_MAP}, nil
}

// LoadCubemap decodes and uploads six face files. Nothing is created on
// the GPU unless all faces decode.
func LoadCubemap(paths [6]string) (*Texture, error) {
	cm, err := texture.DecodeCubemap(paths)
	if err != nil {
		return nil, err
	}
	return UploadCubemap(cm)
}

// LoadTexture2D decodes and uploads a single image file. Rows go up
// top-first, so v=0 (the sphere's north pole) samples the image's top row.
func LoadTexture2D(path string) (*Texture, error) {
	img, err := texture.DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return UploadTexture2D(img)
}
