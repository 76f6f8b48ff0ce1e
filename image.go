package waveform

import (
	"image"
)

// RenderImage renders r into an image.Image backed by the rendered bytes:
// *image.NRGBA for RGBA colors, *image.Gray for scalar colors.
// A zero-area shape returns nil without error.
func (b *BinnedRenderer[T]) RenderImage(r TimeRange, width, height int) (image.Image, error) {
	pix, err := b.Render(r, width, height)
	if err != nil || pix == nil {
		return nil, err
	}
	return wrapImage(pix, width, height, b.config.Format()), nil
}

// RenderImage renders r with the selected bin size. See
// BinnedRenderer.RenderImage.
func (m *MultiRenderer[T]) RenderImage(r TimeRange, width, height int) (image.Image, error) {
	pix, err := m.Render(r, width, height)
	if err != nil || pix == nil {
		return nil, err
	}
	return wrapImage(pix, width, height, m.config.Format()), nil
}

func wrapImage(pix []byte, width, height int, format ColorFormat) image.Image {
	rect := image.Rect(0, 0, width, height)
	if format == FormatScalar {
		return &image.Gray{Pix: pix, Stride: width * scalarChannels, Rect: rect}
	}
	return &image.NRGBA{Pix: pix, Stride: width * rgbaChannels, Rect: rect}
}
