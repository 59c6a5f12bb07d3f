// Command chromixdemo renders a chromix mixing dish to a PNG and samples
// mixed colors from it.
//
// With no input it builds a demo dish; -palettes loads a palette document
// (JSON) instead, and -config applies a TOML configuration file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/chromix"
)

func main() {
	var (
		width    = flag.Int("width", 400, "image width")
		height   = flag.Int("height", 400, "image height")
		output   = flag.String("output", "dish.png", "output PNG file")
		palettes = flag.String("palettes", "", "palette document JSON to load")
		confPath = flag.String("config", "", "TOML config file")
		sample   = flag.String("sample", "", "sample point as x,y")
		export   = flag.String("export", "", "write the palette document JSON here")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		chromix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := chromix.DefaultConfig()
	if *confPath != "" {
		var err error
		cfg, err = chromix.LoadConfig(*confPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	opts = append(opts, chromix.WithSampleHandler(func(c chromix.RGB) {
		fmt.Printf("sampled %s\n", c.Hex())
	}))

	s := chromix.NewSession(opts...)

	if *palettes != "" {
		loadPalettes(s, *palettes)
	} else {
		buildDemoDish(s, *width, *height)
	}

	if *sample != "" {
		p, err := parsePoint(*sample)
		if err != nil {
			log.Fatalf("Bad -sample: %v", err)
		}
		if _, ok := s.Sample(p); !ok {
			fmt.Printf("no coverage at %v,%v\n", p.X, p.Y)
		}
	}

	pm := s.Render(*width, *height)
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Dish saved to %s (%dx%d)", *output, *width, *height)

	if *export != "" {
		s.SavePalette("demo", true)
		data, err := chromix.EncodeDocuments(s.Documents())
		if err != nil {
			log.Fatalf("Failed to encode palettes: %v", err)
		}
		if err := os.WriteFile(*export, data, 0o644); err != nil {
			log.Fatalf("Failed to write palettes: %v", err)
		}
		log.Printf("Palettes exported to %s", *export)
	}
}

// loadPalettes reads a palette document file and selects its first palette.
func loadPalettes(s *chromix.Session, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read palettes: %v", err)
	}
	docs, err := chromix.DecodeDocuments(data)
	if err != nil {
		log.Fatalf("Failed to decode palettes: %v", err)
	}
	if len(docs) == 0 {
		log.Fatal("Palette document is empty")
	}
	for _, doc := range docs {
		p := chromix.PaletteFromDocument(doc)
		s.Store().AddPalette(p.Name(), p.Blobs(), false)
	}
	if err := s.SwitchPalette(0); err != nil {
		log.Fatalf("Failed to select palette: %v", err)
	}
	log.Printf("Loaded %d palette(s) from %s", len(docs), path)
}

// buildDemoDish fills the session with a simple three-blob mix.
func buildDemoDish(s *chromix.Session, w, h int) {
	cx, cy := float64(w)/2, float64(h)/2
	r := float64(min(w, h)) / 8
	s.AddBlob(chromix.Pt(cx-r, cy), chromix.RGB{R: 0.9, G: 0.2, B: 0.1}, r)
	s.AddBlob(chromix.Pt(cx+r, cy), chromix.RGB{R: 0.1, G: 0.3, B: 0.9}, r)
	s.AddBlob(chromix.Pt(cx, cy+r), chromix.RGB{R: 0.95, G: 0.85, B: 0.2}, r)
}

// parsePoint parses "x,y" into a Point.
func parsePoint(arg string) (chromix.Point, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return chromix.Point{}, fmt.Errorf("want x,y, got %q", arg)
	}
	var x, y float64
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[0]), "%g", &x); err != nil {
		return chromix.Point{}, err
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[1]), "%g", &y); err != nil {
		return chromix.Point{}, err
	}
	return chromix.Pt(x, y), nil
}
