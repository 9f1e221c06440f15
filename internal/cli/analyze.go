package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/cluster"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
)

var (
	// Analyze command flags
	analyzeClusters      int
	analyzeTolerance     float64
	analyzeMaxIterations int
	analyzeSeed          int64
	analyzeSeeding       string
	analyzeQuality       string
	analyzeFormat        string
	analyzeOutput        string
	analyzeShowPreview   bool
	analyzeWorkers       int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <image|directory|url>",
	Short: "Extract the dominant colours of an image",
	Long: `Analyze an image and report its dominant colours.

Pixels are clustered in colour space with k-means; the largest clusters'
average colours come back ranked by population, as primary, secondary
and tertiary colours. Directories are analyzed image by image on a
worker pool.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Report the three dominant colours of a wallpaper
  swatch analyze wallpaper.jpg

  # Faster, coarser analysis of a large image
  swatch analyze --quality low wallpaper.png

  # Reproducible run with a fixed RNG seed, as JSON
  swatch analyze --seed 42 --format json wallpaper.jpg

  # Analyze every image in a directory with 8 workers
  swatch analyze --workers 8 ~/Pictures/wallpapers

  # Show colour previews in the terminal
  swatch analyze --preview wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeClusters, "clusters", "c", 3, "number of colour clusters (K)")
	analyzeCmd.Flags().Float64Var(&analyzeTolerance, "tolerance", 2.55, "total centroid movement at which the run converges")
	analyzeCmd.Flags().IntVar(&analyzeMaxIterations, "max-iterations", 256, "hard cap on refinement iterations")
	analyzeCmd.Flags().Int64Var(&analyzeSeed, "seed", -1, "RNG seed for reproducible runs (negative: time-based)")
	analyzeCmd.Flags().StringVar(&analyzeSeeding, "seeding", "stratified", "initial centroid strategy (stratified, uniform)")
	analyzeCmd.Flags().StringVar(&analyzeQuality, "quality", "standard", "downscale level before analysis (low, medium, high, standard)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "report", "output format (report, hex, json)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output file (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeShowPreview, "preview", false, "show colour previews in terminal")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", runtime.NumCPU(), "concurrent analyses for directory input")
}

// analysis is the result of analyzing one image.
type analysis struct {
	Path       string          `json:"path"`
	Iterations int             `json:"iterations"`
	Converged  bool            `json:"converged"`
	Report     colour.Report   `json:"report"`
	Swatches   []colour.Swatch `json:"swatches"`
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := newLogger(cmd)

	if err := image.ValidateImagePath(path); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	quality, err := image.ParseQuality(analyzeQuality)
	if err != nil {
		return err
	}

	cfg := cluster.Config{
		Clusters:      analyzeClusters,
		Tolerance:     analyzeTolerance,
		MaxIterations: analyzeMaxIterations,
		Seeding:       cluster.Seeding(analyzeSeeding),
		Seed:          analyzeSeed,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Directory input fans out over a worker pool.
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return runAnalyzeDir(cmd, logger, path, cfg, quality)
	}

	result, err := analyzeOne(cmd, logger, path, cfg, quality)
	if err != nil {
		return err
	}

	output, err := formatAnalysis(result, analyzeFormat, analyzeShowPreview)
	if err != nil {
		return err
	}
	return writeOutput(output)
}

// analyzeOne loads, downscales and clusters a single image.
func analyzeOne(cmd *cobra.Command, logger hclog.Logger, path string, cfg cluster.Config, quality image.Quality) (analysis, error) {
	loader := image.NewSmartLoader()
	img, err := loader.Load(path)
	if err != nil {
		return analysis{}, fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "path", path, "width", bounds.Dx(), "height", bounds.Dy())

	img = image.Resize(img, quality)
	samples := image.Samples(img)
	logger.Debug("samples extracted", "count", len(samples), "quality", quality)

	engine, err := cluster.New(cfg)
	if err != nil {
		return analysis{}, fmt.Errorf("failed to create engine: %w", err)
	}

	res, err := engine.Run(cmd.Context(), samples)
	if err != nil {
		return analysis{}, fmt.Errorf("clustering failed: %w", err)
	}

	if !res.Converged {
		logger.Warn("clustering hit the iteration cap without converging; colours may be approximate",
			"path", path, "iterations", res.Iterations)
	} else {
		logger.Debug("clustering converged", "path", path, "iterations", res.Iterations)
	}

	palette := colour.FromResult(res, cfg.Clusters)
	return analysis{
		Path:       path,
		Iterations: res.Iterations,
		Converged:  res.Converged,
		Report:     colour.NewReport(palette),
		Swatches:   palette.Swatches,
	}, nil
}

// runAnalyzeDir analyzes every image in a directory concurrently.
// Results print in directory order regardless of completion order.
func runAnalyzeDir(cmd *cobra.Command, logger hclog.Logger, dir string, cfg cluster.Config, quality image.Quality) error {
	paths, err := image.ScanDirectoryForImages(dir)
	if err != nil {
		return err
	}

	workers := analyzeWorkers
	if workers < 1 {
		workers = 1
	}
	logger.Debug("analyzing directory", "dir", dir, "images", len(paths), "workers", workers)

	type slot struct {
		result analysis
		err    error
	}
	slots := make([]slot, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := analyzeOne(cmd, logger, paths[i], cfg, quality)
				slots[i] = slot{result: result, err: err}
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var out strings.Builder
	failures := 0
	for i, s := range slots {
		if s.err != nil {
			failures++
			logger.Error("analysis failed", "path", paths[i], "error", s.err)
			continue
		}
		formatted, err := formatAnalysis(s.result, analyzeFormat, analyzeShowPreview)
		if err != nil {
			return err
		}
		if analyzeFormat == "report" {
			out.WriteString(fmt.Sprintf("%s: %s", s.result.Path, formatted))
		} else {
			out.WriteString(formatted)
		}
	}

	if err := writeOutput(out.String()); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d images failed to analyze", failures, len(paths))
	}
	return nil
}

// formatAnalysis renders one analysis in the requested format.
func formatAnalysis(a analysis, format string, showPreview bool) (string, error) {
	switch format {
	case "report":
		out := a.Report.String() + "\n"
		if showPreview && colour.SupportsANSIColours() {
			labels := []string{"Primary", "Secondary", "Tertiary"}
			for i, s := range a.Swatches {
				if i >= len(labels) {
					break
				}
				out += colour.FormatSwatchWithLabel(s, labels[i], 8) + "\n"
			}
		}
		return out, nil
	case "hex":
		out := ""
		for _, s := range a.Swatches {
			if showPreview && colour.SupportsANSIColours() {
				out += colour.FormatSwatchWithPreview(s, 8) + "\n"
			} else {
				out += s.Hex + "\n"
			}
		}
		return out, nil
	case "json":
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: report, hex, json)", format)
	}
}

// writeOutput writes to the --output file when given, stdout otherwise.
func writeOutput(output string) error {
	if analyzeOutput == "" {
		fmt.Print(output)
		return nil
	}
	if err := os.WriteFile(analyzeOutput, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
