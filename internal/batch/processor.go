package batch

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"quaternion-go/internal/mathutil"
	"quaternion-go/internal/model"
	"quaternion-go/internal/postprocess"
	"quaternion-go/internal/raster"
)

// Config holds all shared resources for a turntable run.
// Meshes are read concurrently and must not be modified during Run.
type Config struct {
	OutputDir   string
	Format      string
	Meshes      []model.Mesh
	Base        mathutil.Quaternion // orientation before the turntable spin
	Axis        mathutil.Vector3    // unit spin axis
	Frames      int
	RenderSize  int
	Supersample int
	Workers     int
	Caption     bool
	Progress    bool // print a rate line every 2s
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame       int
	Image       string // path relative to OutputDir
	Orientation mathutil.Quaternion
	Success     bool
	Error       string
}

// FrameOrientation returns the orientation of frame n: a turn of 2πn/Frames
// about the spin axis composed after the base orientation.
func FrameOrientation(cfg Config, n int) mathutil.Quaternion {
	angle := 2 * math.Pi * float64(n) / float64(cfg.Frames)
	spin := mathutil.FromAxisAngle(cfg.Axis, angle)
	return mathutil.Multiply(spin, cfg.Base)
}

// Run renders all frames using a worker pool.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range frameChan {
				results[n] = renderFrame(cfg, n)
				processed.Add(1)
			}
		}()
	}

	for n := 0; n < total; n++ {
		frameChan <- n
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, n int) Result {
	q := FrameOrientation(cfg, n)
	res := Result{
		Frame:       n,
		Image:       fmt.Sprintf("frame_%03d.%s", n, cfg.Format),
		Orientation: q,
	}

	img := raster.RenderMeshes(cfg.Meshes, q, cfg.RenderSize, cfg.Supersample)

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}
	if cfg.Caption {
		postprocess.Caption(img, q.String())
	}

	if err := writeFrame(filepath.Join(cfg.OutputDir, res.Image), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// writeFrame encodes img to path. A failed Close is reported like a failed
// encode, since buffered bytes may not have reached the file.
func writeFrame(path string, img image.Image, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("batch: close %s: %w", path, err)
	}
	return nil
}
