package waveform

import (
	"fmt"
	"image/color"
)

// ColorFormat identifies the channel layout of a Color.
type ColorFormat int

const (
	// FormatScalar is a single intensity channel, one byte per pixel.
	FormatScalar ColorFormat = iota + 1

	// FormatRGBA is four channels in r, g, b, a order, four bytes per pixel.
	FormatRGBA
)

// String returns the format name.
func (f ColorFormat) String() string {
	switch f {
	case FormatScalar:
		return "scalar"
	case FormatRGBA:
		return "rgba"
	default:
		return "unset"
	}
}

// Color is a pixel value tagged with its format. The zero Color has no
// format and is rejected by Config.Validate.
type Color struct {
	format ColorFormat
	px     [4]byte
}

// Scalar returns a single-channel color.
func Scalar(v uint8) Color {
	return Color{format: FormatScalar, px: [4]byte{v}}
}

// RGBA returns a four-channel color. Channels are stored as given, without
// premultiplication.
func RGBA(r, g, b, a uint8) Color {
	return Color{format: FormatRGBA, px: [4]byte{r, g, b, a}}
}

// FromColor converts an image/color value: color.Gray becomes a Scalar,
// everything else a non-premultiplied RGBA.
func FromColor(c color.Color) Color {
	if g, ok := c.(color.Gray); ok {
		return Scalar(g.Y)
	}
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// Format returns the channel layout.
func (c Color) Format() ColorFormat {
	return c.format
}

// Channels returns the bytes per pixel, or 0 for the zero Color.
func (c Color) Channels() int {
	switch c.format {
	case FormatScalar:
		return scalarChannels
	case FormatRGBA:
		return rgbaChannels
	default:
		return 0
	}
}

// Bytes returns the pixel stamp written for this color.
func (c Color) Bytes() []byte {
	return append([]byte(nil), c.px[:c.Channels()]...)
}

// String formats the color for logs.
func (c Color) String() string {
	switch c.format {
	case FormatScalar:
		return fmt.Sprintf("scalar(%d)", c.px[0])
	case FormatRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.px[0], c.px[1], c.px[2], c.px[3])
	default:
		return "unset"
	}
}

// Consistent reports whether a and b share one pixel format.
func Consistent(a, b Color) bool {
	return a.Channels() == b.Channels()
}
