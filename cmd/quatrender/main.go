package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"quaternion-go/internal/batch"
	"quaternion-go/internal/config"
	"quaternion-go/internal/model"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Frame format: webp, png or tga (default: webp)")
	modelName := flag.String("model", "", "Model to render: cube or axes (default: cube)")
	axis := flag.String("axis", "", "Turntable axis as x,y,z (default: 0,1,0)")
	euler := flag.String("euler", "", "Base orientation as roll,pitch,yaw in degrees")
	frames := flag.Int("frames", 0, "Number of frames in one full turn (default: 12)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	caption := flag.Bool("caption", false, "Print the frame quaternion onto each image")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	err := cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		Format:      *format,
		Model:       *modelName,
		Axis:        *axis,
		Euler:       *euler,
		Frames:      *frames,
		RenderSize:  *size,
		Supersample: *supersample,
		Workers:     *workers,
		Caption:     *caption,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	meshes, err := model.ByName(cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	base := cfg.BaseOrientation()

	fmt.Printf("Quaternion turntable → %s\n", cfg.Format)
	fmt.Printf("Model: %s, Frames: %d, Workers: %d\n", cfg.Model, cfg.Frames, cfg.Workers)
	fmt.Printf("Base: %v, Axis: %v\n", base, cfg.AxisVector())
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		Meshes:      meshes,
		Base:        base,
		Axis:        cfg.AxisVector(),
		Frames:      cfg.Frames,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Caption:     cfg.Caption,
		Progress:    true,
	})

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Image, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
