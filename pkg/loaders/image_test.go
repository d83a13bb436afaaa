package loaders

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

func createTestFrameBuffer() *renderer.FrameBuffer {
	fb := renderer.NewFrameBuffer(2, 2)
	fb.SetColor(0, 1, core.NewColor(1, 0, 0))   // top-left
	fb.SetColor(1, 1, core.NewColor(0, 2, 0))   // top-right, over-exposed
	fb.SetColor(0, 0, core.NewColor(0, 0, 0.5)) // bottom-left
	fb.SetColor(1, 0, core.NewColor(-1, 0, 0))  // bottom-right, negative
	return fb
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, createTestFrameBuffer()); err != nil {
		t.Fatalf("WritePPM() error = %v", err)
	}

	header := "P6\n2 2\n255\n"
	expected := append([]byte(header),
		255, 0, 0, 0, 255, 0, // top row
		0, 0, 128, 0, 0, 0, // bottom row
	)
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("WritePPM() = %v, want %v", buf.Bytes(), expected)
	}
}

func TestSavePPMAndPNG(t *testing.T) {
	dir := t.TempDir()
	fb := createTestFrameBuffer()

	ppmPath := filepath.Join(dir, "out.ppm")
	if err := SavePPM(ppmPath, fb); err != nil {
		t.Fatalf("SavePPM() error = %v", err)
	}
	data, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("P6\n2 2\n255\n")) {
		t.Errorf("Unexpected PPM header %q", data[:11])
	}

	pngPath := filepath.Join(dir, "out.png")
	if err := SavePNG(pngPath, fb); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	file, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	r, g, b, _ := img.At(1, 0).RGBA()
	if r != 0 || g != 0xffff || b != 0 {
		t.Errorf("Expected clamped green at top-right, got %d %d %d", r, g, b)
	}
}

func TestSavePPM_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.ppm")
	if err := SavePPM(path, createTestFrameBuffer()); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}
