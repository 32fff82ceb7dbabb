package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types handled by DecodeTGA.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("tga: pixel data truncated")

// DecodeTGA decodes an uncompressed or RLE true-color TGA (24 or 32 bpp).
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, errors.New("tga: header too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, errors.New("tga: color-mapped images not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		height:      height,
		stride:      bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = d.raw()
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

// tgaDecoder writes BGR(A) source pixels into img in scan order.
type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	pos         int
	written     int
	width       int
	height      int
	stride      int
	topToBottom bool
}

func (d *tgaDecoder) total() int {
	return d.width * d.height
}

func (d *tgaDecoder) next() (color.RGBA, error) {
	if d.pos+d.stride > len(d.src) {
		return color.RGBA{}, errTGATruncated
	}
	p := d.src[d.pos : d.pos+d.stride]
	d.pos += d.stride

	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.stride == 4 {
		c.A = p[3]
	}
	return c, nil
}

// put stores c at the next scan position; TGA rows are bottom-up unless the
// descriptor says otherwise.
func (d *tgaDecoder) put(c color.RGBA) {
	x := d.written % d.width
	y := d.written / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.written++
}

func (d *tgaDecoder) raw() error {
	for d.written < d.total() {
		c, err := d.next()
		if err != nil {
			return err
		}
		d.put(c)
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	for d.written < d.total() {
		if d.pos >= len(d.src) {
			return errTGATruncated
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, err := d.next()
			if err != nil {
				return err
			}
			for i := 0; i < count && d.written < d.total(); i++ {
				d.put(c)
			}
			continue
		}

		for i := 0; i < count && d.written < d.total(); i++ {
			c, err := d.next()
			if err != nil {
				return err
			}
			d.put(c)
		}
	}
	return nil
}
