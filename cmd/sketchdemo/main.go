// Command sketchdemo replays a gesture script against a sketch session and
// writes the resulting frame to an image file.
//
// Usage:
//
//	sketchdemo [-script steps.yaml] [-output sketch.png] [-scale 2] [-v]
//
// Without -script a built-in demo is rendered. The output format follows the
// file extension: .png, .bmp, .tif or .tiff.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/script"
)

//go:embed demo.yaml
var demoScript []byte

func main() {
	var (
		scriptPath = flag.String("script", "", "gesture script (YAML); built-in demo when empty")
		output     = flag.String("output", "sketch.png", "output file (.png, .bmp, .tif)")
		scale      = flag.Int("scale", 1, "integer upscale factor")
		verbose    = flag.Bool("v", false, "log every step")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*scriptPath, *output, *scale); err != nil {
		log.Fatalf("sketchdemo: %v", err)
	}
	log.Printf("Sketch saved to %s\n", *output)
}

func run(scriptPath, output string, scale int) error {
	sc, err := loadScript(scriptPath)
	if err != nil {
		return err
	}

	s, err := sc.NewSession()
	if err != nil {
		return err
	}
	if err := sc.Apply(s); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := encode(f, output, upscale(s.Frame(), scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadScript(path string) (*script.Script, error) {
	if path == "" {
		return script.Parse(demoScript)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := script.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}
