// Command raytracer renders one of the built-in scenes to a PNG file,
// wiring pkg/scenes, pkg/scene, pkg/renderer and pkg/sink together.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/net/websocket"

	"github.com/example/gotracer/pkg/renderer"
	"github.com/example/gotracer/pkg/scene"
	"github.com/example/gotracer/pkg/scenes"
	"github.com/example/gotracer/pkg/sink"
)

func main() {
	sceneType := flag.String("scene", "cornell", "Scene type: 'cornell', 'cylinder', 'cone', or 'spheregrid'")
	output := flag.String("out", "render.png", "Output PNG file path")
	maxDepth := flag.Int("depth", 4, "Maximum recursion depth")
	samples := flag.Int("samples", 16, "Samples per indirect integral (N)")
	subPixel := flag.Int("subpixel", 2, "Sub-pixel division factor (k); k^2 passes")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = auto)")
	preview := flag.String("preview", "", "Address to serve a live websocket preview on (e.g. ':8080'); when set, streams the render to whatever client connects to /render instead of writing a PNG")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("gotracer - recursive path-tracing renderer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cornell    - Cornell box with four colored cubes and a ceiling light")
		fmt.Println("  cylinder   - Ground plane with assorted capped cylinders")
		fmt.Println("  cone       - Ground plane with a tall cone and a short, wide cone")
		fmt.Println("  spheregrid - Grid of specular spheres on a ground plane")
		return
	}

	fmt.Println("Starting gotracer...")

	s, width0, height0 := buildScene(*sceneType)
	if *width > 0 {
		width0 = *width
	}
	if *height > 0 {
		height0 = *height
	}

	config := renderer.Config{
		MaxDepth:   *maxDepth,
		Samples:    *samples,
		SubPixel:   *subPixel,
		NumWorkers: *workers,
	}

	if *preview != "" {
		servePreview(*preview, s, width0, height0, config)
		return
	}

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	framebuffer := sink.NewPNGSink(width0, height0, file)
	r := renderer.New(s, framebuffer, config, renderer.NewDefaultLogger())
	stats := r.Render()

	fmt.Printf("render complete: %d pixels, %d passes, %d total samples\n",
		stats.TotalPixels, stats.TotalPasses, stats.TotalSamples)
	fmt.Printf("saved to %s\n", *output)
}

// servePreview serves a single progressive-render websocket endpoint at
// /render on addr: each connecting client gets its own render of s into a
// sink.WebSocketSink, streaming one binary RGBA frame per completed row
// of every pass instead of writing the PNG file above.
func servePreview(addr string, s *scene.Scene, width, height int, config renderer.Config) {
	fmt.Printf("serving live preview on %s/render\n", addr)
	http.Handle("/render", websocket.Handler(func(ws *websocket.Conn) {
		defer ws.Close()
		framebuffer := sink.NewWebSocketSink(width, height, ws)
		r := renderer.New(s, framebuffer, config, renderer.NewDefaultLogger())
		stats := r.Render()
		fmt.Printf("preview render complete: %d pixels, %d passes, %d total samples\n",
			stats.TotalPixels, stats.TotalPasses, stats.TotalSamples)
	}))
	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("preview server error: %v\n", err)
		os.Exit(1)
	}
}

// buildScene selects a built-in scene by name, returning it along with
// its suggested image dimensions.
func buildScene(name string) (*scene.Scene, int, int) {
	switch name {
	case "cylinder":
		return scenes.CylinderTestScene(), 400, 225
	case "cone":
		return scenes.ConeTestScene(), 400, 225
	case "spheregrid":
		return scenes.SphereGridScene(10), 800, 450
	case "cornell":
		return scenes.CornellBox(), 600, 600
	default:
		fmt.Printf("unknown scene %q, using cornell\n", name)
		return scenes.CornellBox(), 600, 600
	}
}
