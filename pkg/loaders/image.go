package loaders

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// WritePPM encodes the frame buffer as a binary (P6) PPM image. Channels
// are clamped and quantized by renderer.Quantize.
func WritePPM(w io.Writer, fb *renderer.FrameBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	row := make([]byte, fb.Width*3)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.RGBA(x, y)
			row[x*3+0] = c.R
			row[x*3+1] = c.G
			row[x*3+2] = c.B
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("failed to write PPM row %d: %w", y, err)
		}
	}
	return bw.Flush()
}

// SavePPM writes the frame buffer to a PPM file
func SavePPM(filename string, fb *renderer.FrameBuffer) error {
	return saveFile(filename, fb, WritePPM)
}

// SavePNG writes the frame buffer to a PNG file
func SavePNG(filename string, fb *renderer.FrameBuffer) error {
	return saveFile(filename, fb, func(w io.Writer, fb *renderer.FrameBuffer) error {
		return png.Encode(w, fb.Image())
	})
}

func saveFile(filename string, fb *renderer.FrameBuffer, encode func(io.Writer, *renderer.FrameBuffer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := encode(file, fb); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return file.Close()
}
