package image

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid PNG and returns its path.
func writeTestPNG(t *testing.T, dir, name string, c color.RGBA) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, solidImage(4, 4, c)); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "solid.png", color.RGBA{R: 10, G: 20, B: 30, A: 255})

	loader := NewFileLoader()
	img, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("loaded image is %v, want 4x4", img.Bounds())
	}
}

func TestFileLoaderLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: filepath.Join(dir, "nope.png")},
		{name: "directory", path: dir},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loader.Load(tt.path); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestFileLoaderRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-an-image.png")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := NewFileLoader().Load(path); err == nil {
		t.Error("Load() accepted a non-image file")
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	valid := writeTestPNG(t, dir, "valid.png", color.RGBA{A: 255})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid file", path: valid},
		{name: "directory", path: dir},
		{name: "http url", path: "https://example.com/a.png"},
		{name: "empty", path: "", wantErr: true},
		{name: "missing", path: filepath.Join(dir, "gone.png"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImagePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScanDirectoryForImages(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png", color.RGBA{A: 255})
	writeTestPNG(t, dir, "b.png", color.RGBA{A: 255})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("failed to make subdir: %v", err)
	}

	files, err := ScanDirectoryForImages(dir)
	if err != nil {
		t.Fatalf("ScanDirectoryForImages() error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("found %d images, want 2: %v", len(files), files)
	}
}

func TestScanDirectoryForImagesEmpty(t *testing.T) {
	if _, err := ScanDirectoryForImages(t.TempDir()); err == nil {
		t.Error("ScanDirectoryForImages() succeeded on an empty directory")
	}
}
