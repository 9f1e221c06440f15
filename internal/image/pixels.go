package image

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/swatch/internal/cluster"
)

// Quality controls how aggressively an image is downscaled before its
// pixels are extracted. Each level is a linear scale factor applied to
// both dimensions, trading clustering accuracy for throughput.
type Quality string

const (
	QualityLow      Quality = "low"
	QualityMedium   Quality = "medium"
	QualityHigh     Quality = "high"
	QualityStandard Quality = "standard"
)

// scaleFactor returns the per-dimension scale for a quality level.
func (q Quality) scaleFactor() float64 {
	switch q {
	case QualityLow:
		return 0.10
	case QualityMedium:
		return 0.25
	case QualityHigh:
		return 0.50
	default:
		return 1.0
	}
}

// ParseQuality converts a user-supplied string to a Quality level.
func ParseQuality(s string) (Quality, error) {
	switch Quality(strings.ToLower(s)) {
	case QualityLow:
		return QualityLow, nil
	case QualityMedium:
		return QualityMedium, nil
	case QualityHigh:
		return QualityHigh, nil
	case QualityStandard, "":
		return QualityStandard, nil
	default:
		return "", fmt.Errorf("unknown quality level: %s (valid: low, medium, high, standard)", s)
	}
}

// Resize scales the image by the quality level's factor using a
// bilinear kernel. Standard quality returns the image unchanged. The
// result never shrinks below one pixel per dimension.
func Resize(img image.Image, q Quality) image.Image {
	factor := q.scaleFactor()
	if factor >= 1.0 {
		return img
	}

	bounds := img.Bounds()
	w := max(int(float64(bounds.Dx())*factor), 1)
	h := max(int(float64(bounds.Dy())*factor), 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img, bounds, draw.Src, nil)
	return dst
}

// Samples extracts every pixel of the image as a 4-channel clustering
// sample in row-major order. This is the single place where channel
// values are converted to the canonical [0, 255] range; nothing
// downstream rescales.
func Samples(img image.Image) []cluster.Sample {
	bounds := img.Bounds()
	samples := make([]cluster.Sample, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels; shift down to 8-bit once.
			samples = append(samples, cluster.Sample{
				R: float64(r >> 8),
				G: float64(g >> 8),
				B: float64(b >> 8),
				A: float64(a >> 8),
			})
		}
	}
	return samples
}
