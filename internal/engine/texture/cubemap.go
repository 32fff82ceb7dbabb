package texture

import (
	"fmt"
	"image"
)

// CubeFace indexes the six faces in GL upload order
// (TEXTURE_CUBE_MAP_POSITIVE_X + i).
type CubeFace int

const (
	FacePositiveX CubeFace = iota
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
	FacePositiveZ
	FaceNegativeZ
)

var faceNames = [6]string{"+x", "-x", "+y", "-y", "+z", "-z"}

func (f CubeFace) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return fmt.Sprintf("face(%d)", int(f))
	}
	return faceNames[f]
}

// Cubemap holds six decoded faces of equal square size.
type Cubemap struct {
	Faces [6]*image.RGBA
	Size  int
}

// DecodeCubemap decodes all six face files. Either every face decodes and
// matches in size, or an error is returned and no faces are kept.
func DecodeCubemap(paths [6]string) (*Cubemap, error) {
	var cm Cubemap
	for i, path := range paths {
		img, err := DecodeImage(path)
		if err != nil {
			return nil, fmt.Errorf("cubemap face %s: %w", CubeFace(i), err)
		}

		b := img.Bounds()
		if b.Dx() != b.Dy() {
			return nil, fmt.Errorf("cubemap face %s: not square (%dx%d)", CubeFace(i), b.Dx(), b.Dy())
		}
		if i == 0 {
			cm.Size = b.Dx()
		} else if b.Dx() != cm.Size {
			return nil, fmt.Errorf("cubemap face %s: size %d, want %d", CubeFace(i), b.Dx(), cm.Size)
		}
		cm.Faces[i] = img
	}
	return &cm, nil
}
