package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WritePPM encodes an image in the plain-text P3 PPM format: a "P3" header,
// the image dimensions, the maximum channel value 255, then one "R G B" line
// per pixel, rows top-to-bottom and columns left-to-right.
func WritePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA() returns 16-bit channels; scale back to 8-bit
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
