package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
)

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantExt string
	}{
		{name: "png extension", url: "https://example.com/a.png", wantExt: ".png"},
		{name: "query parameters stripped", url: "https://example.com/a.jpg?w=100", wantExt: ".jpg"},
		{name: "no extension defaults to jpg", url: "https://example.com/image", wantExt: ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateFilename(tt.url)
			if !strings.HasSuffix(got, tt.wantExt) {
				t.Errorf("generateFilename(%q) = %q, want suffix %q", tt.url, got, tt.wantExt)
			}
		})
	}

	// Same URL must always map to the same filename.
	if generateFilename("https://example.com/a.png") != generateFilename("https://example.com/a.png") {
		t.Error("generateFilename is not deterministic")
	}
}

func TestDownloadAndCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	opts := CacheOptions{CacheDir: t.TempDir()}
	url := server.URL + "/wallpaper.png"

	path, err := DownloadAndCache(context.Background(), url, opts)
	if err != nil {
		t.Fatalf("DownloadAndCache() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read cached file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("cached content = %q, want %q", data, "image-bytes")
	}

	// Second call must reuse the cached file without another request.
	again, err := DownloadAndCache(context.Background(), url, opts)
	if err != nil {
		t.Fatalf("DownloadAndCache() second call error: %v", err)
	}
	if again != path {
		t.Errorf("cached path changed: %q vs %q", again, path)
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want 1", hits.Load())
	}
}

func TestDownloadAndCacheRejectsNonHTTP(t *testing.T) {
	if _, err := DownloadAndCache(context.Background(), "ftp://example.com/a.png", CacheOptions{}); err == nil {
		t.Error("DownloadAndCache() accepted a non-HTTP URL")
	}
}
