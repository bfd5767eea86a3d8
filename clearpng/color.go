package clearpng

import (
	"image"
	"image/color"
)

// BackgroundThreshold is the channel value that R, G, and B
// must all exceed for a pixel to count as background.
const BackgroundThreshold = 240

// TransparentBackground is written over every background
// pixel.
var TransparentBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

// IsBackground reports whether c is near-white.
// Alpha is ignored.
func IsBackground(c color.NRGBA) bool {
	return c.R > BackgroundThreshold && c.G > BackgroundThreshold &&
		c.B > BackgroundThreshold
}

// ToNRGBA copies img into a non-premultiplied 8-bit RGBA
// image with the same bounds.
//
// Images without an alpha channel come out fully opaque.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	res := image.NewNRGBA(bounds)
	switch src := img.(type) {
	case *image.NRGBA:
		// Row by row, since src may be a sub-image with a
		// larger stride.
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := src.PixOffset(bounds.Min.X, y)
			j := res.PixOffset(bounds.Min.X, y)
			copy(res.Pix[j:j+bounds.Dx()*4], src.Pix[i:i+bounds.Dx()*4])
		}
	case *image.NRGBA64:
		// Keep the high byte of each big-endian channel.
		// Going through RGBA() would premultiply and lose
		// color precision at low alpha.
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := src.PixOffset(bounds.Min.X, y)
			j := res.PixOffset(bounds.Min.X, y)
			for x := 0; x < bounds.Dx()*4; x++ {
				res.Pix[j+x] = src.Pix[i+x*2]
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				res.SetNRGBA(x, y, color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
			}
		}
	}
	return res
}

// MakeBackgroundTransparent replaces every background pixel
// of img with TransparentBackground, in place.
// All other pixels are left exactly as they are.
//
// It returns the number of replaced pixels.
func MakeBackgroundTransparent(img *image.NRGBA) int {
	var count int
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if IsBackground(img.NRGBAAt(x, y)) {
				img.SetNRGBA(x, y, TransparentBackground)
				count++
			}
		}
	}
	return count
}
