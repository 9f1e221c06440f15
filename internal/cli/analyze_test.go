package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/swatch/internal/colour"
)

func testAnalysis() analysis {
	palette := &colour.Palette{
		Swatches: []colour.Swatch{
			{RGB: colour.RGB{R: 255}, Hex: "#ff0000", Count: 60, Weight: 0.6},
			{RGB: colour.RGB{B: 255}, Hex: "#0000ff", Count: 40, Weight: 0.4},
		},
	}
	return analysis{
		Path:       "wallpaper.png",
		Iterations: 3,
		Converged:  true,
		Report:     colour.NewReport(palette),
		Swatches:   palette.Swatches,
	}
}

func TestFormatAnalysisReport(t *testing.T) {
	got, err := formatAnalysis(testAnalysis(), "report", false)
	if err != nil {
		t.Fatalf("formatAnalysis() error: %v", err)
	}
	want := "Primary: #ff0000, Secondary: #0000ff\n"
	if got != want {
		t.Errorf("formatAnalysis() = %q, want %q", got, want)
	}
}

func TestFormatAnalysisHex(t *testing.T) {
	got, err := formatAnalysis(testAnalysis(), "hex", false)
	if err != nil {
		t.Fatalf("formatAnalysis() error: %v", err)
	}
	if got != "#ff0000\n#0000ff\n" {
		t.Errorf("formatAnalysis() = %q", got)
	}
}

func TestFormatAnalysisJSON(t *testing.T) {
	got, err := formatAnalysis(testAnalysis(), "json", false)
	if err != nil {
		t.Fatalf("formatAnalysis() error: %v", err)
	}

	var decoded analysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(got)), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Path != "wallpaper.png" || !decoded.Converged || len(decoded.Swatches) != 2 {
		t.Errorf("decoded analysis = %+v", decoded)
	}
}

func TestFormatAnalysisUnsupported(t *testing.T) {
	if _, err := formatAnalysis(testAnalysis(), "yaml", false); err == nil {
		t.Error("formatAnalysis() accepted an unsupported format")
	}
}
