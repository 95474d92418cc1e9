package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func pngDataURI(w, h int) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(createTestPNG(w, h))
}

func TestParseDataURI(t *testing.T) {
	raw := createTestPNG(10, 10)
	encoded := base64.StdEncoding.EncodeToString(raw)

	// With and without the data: prefix.
	for _, input := range []string{"data:image/png;base64," + encoded, encoded} {
		data, err := ParseDataURI(input)
		if err != nil {
			t.Fatalf("ParseDataURI: %v", err)
		}
		if !bytes.Equal(data, raw) {
			t.Error("decoded bytes do not match original")
		}
	}

	if _, err := ParseDataURI("!!not base64!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestPrepareNormalizesToPNG(t *testing.T) {
	jpegURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(createTestJPEG(100, 100))
	result, err := Prepare(jpegURI)
	if err != nil {
		t.Fatalf("Prepare JPEG: %v", err)
	}
	if result.MIME != "image/png" {
		t.Errorf("expected image/png, got %s", result.MIME)
	}
	if !strings.HasPrefix(result.DataURI(), "data:image/png;base64,") {
		t.Errorf("unexpected data URI prefix: %.40s", result.DataURI())
	}
}

func TestPrepareDownscale(t *testing.T) {
	result, err := Prepare(pngDataURI(2048, 1024))
	if err != nil {
		t.Fatalf("Prepare large image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %dx%d, got %dx%d", MaxDimension, MaxDimension, bounds.Dx(), bounds.Dy())
	}
	if bounds.Dx() != 1024 || bounds.Dy() != 512 {
		t.Errorf("aspect ratio not preserved: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestPrepareSmallImageNotUpscaled(t *testing.T) {
	result, err := Prepare(pngDataURI(50, 50))
	if err != nil {
		t.Fatalf("Prepare small image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestPrepareInvalidFormat(t *testing.T) {
	textURI := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("not an image"))
	if _, err := Prepare(textURI); err == nil {
		t.Error("expected error for non-image data")
	}

	// GIF magic bytes are sniffed and rejected even if labelled PNG.
	gifURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("GIF89a..."))
	if _, err := Prepare(gifURI); err == nil {
		t.Error("expected error for GIF")
	}
}
