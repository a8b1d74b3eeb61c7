// Command canvasdemo builds a retained scene, drags one shape and renders
// the result through a registered surface.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/stateful"
	_ "github.com/gogpu/stateful/fgsurface"
	_ "github.com/gogpu/stateful/ggsurface"
	"github.com/gogpu/stateful/layout"
	"github.com/gogpu/stateful/trace"
)

type textureRegistrar interface {
	RegisterTexture(img image.Image) stateful.TextureID
}

func main() {
	var (
		width   = flag.Int("width", 480, "image width")
		height  = flag.Int("height", 360, "image height")
		surface = flag.String("surface", "gg", "surface to render with")
		output  = flag.String("output", "canvas.png", "output file")
		drag    = flag.Float64("drag", 60, "horizontal drag distance applied to the marker")
		commit  = flag.Bool("commit", false, "commit the drag into the marker geometry")
		dump    = flag.Bool("trace", false, "print the draw commands instead of rendering")
		verbose = flag.Bool("v", false, "log canvas activity")
	)
	flag.Parse()

	if *verbose {
		stateful.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	name := *surface
	if *dump {
		name = "trace"
	}
	s, err := stateful.NewSurface(name, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create surface: %v (available: %v)", err, stateful.Surfaces())
	}

	w := layout.NewWindow("demo", s, layout.WithOrigin(stateful.V(10, 10)), layout.WithSpacing(10))
	header := stateful.New(float64(*width-20), 40)
	scene := stateful.New(float64(*width-20), float64(*height-70))
	buildHeader(header)
	marker := buildScene(scene, s)

	// The marker is lifted to the top while it moves.
	scene.DragStart(marker, 10)
	scene.DragUpdate(marker, *drag, 0)
	if *commit {
		scene.DragCommit(marker, *drag, 0)
	}

	w.Begin()
	header.Draw(w, "header", true)
	scene.Draw(w, "scene", true)

	if ts, ok := s.(*trace.Surface); ok {
		for _, c := range ts.Commands() {
			fmt.Println(c)
		}
		return
	}

	img, ok := s.(stateful.ImageSurface)
	if !ok {
		log.Fatalf("Surface %q does not produce images", name)
	}
	if err := img.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Canvas saved to %s (%dx%d, %d primitives)\n", *output, *width, *height, header.Len()+scene.Len())
}

func buildHeader(c *stateful.Canvas) {
	size := c.Size()
	c.RectFilledMultiColor(stateful.V(0, 0), size,
		stateful.Hex("#1e3a5f"), stateful.Hex("#3c6e91"),
		stateful.Hex("#3c6e91"), stateful.Hex("#1e3a5f"))
	c.Text(stateful.V(12, 12), stateful.White, "stateful canvas demo")
}

// buildScene fills c with a small scene and returns the handle of the
// shape the demo drags.
func buildScene(c *stateful.Canvas, s stateful.Surface) stateful.Handle {
	size := c.Size()
	c.RectFilled(stateful.V(0, 0), size, stateful.RGB(245, 245, 240), stateful.Rounding(8, stateful.CornersAll))
	c.Rect(stateful.V(0, 0), size, stateful.RGB(60, 60, 60), stateful.Rounding(8, stateful.CornersAll), stateful.Thickness(2))

	// Grid on layer -1 so everything else covers it.
	for x := 40.0; x < size.X; x += 40 {
		c.Line(stateful.V(x, 0), stateful.V(x, size.Y), stateful.RGBA(0, 0, 0, 30), stateful.Layer(-1))
	}

	c.CircleFilled(stateful.V(80, 80), 40, stateful.RGBA(230, 60, 60, 200), stateful.Segments(48))
	c.NgonFilled(stateful.V(180, 90), 36, stateful.RGBA(60, 160, 90, 200), 6)
	c.TriangleFilled(stateful.V(250, 130), stateful.V(310, 40), stateful.V(370, 130), stateful.RGBA(60, 90, 200, 200))
	c.BezierCubic(stateful.V(20, 200), stateful.V(120, 120), stateful.V(240, 280), stateful.V(400, 180),
		stateful.RGB(200, 120, 0), stateful.Thickness(3))
	c.Polyline([]stateful.Vec2{{X: 20, Y: 240}, {X: 60, Y: 220}, {X: 100, Y: 250}, {X: 140, Y: 210}},
		stateful.RGB(90, 90, 90), false, stateful.Thickness(2))
	c.FontText(stateful.DefaultFont, 14, stateful.V(200, 220), stateful.RGB(30, 30, 30),
		"Shapes stay in the list between frames and can be dragged across layers.",
		stateful.WrapWidth(size.X-220))

	if r, ok := s.(textureRegistrar); ok {
		tex := r.RegisterTexture(checkerboard(16, 4))
		c.ImageRounded(tex, stateful.V(20, 130), stateful.V(100, 190), 10)
	}

	return c.CircleFilled(stateful.V(60, 160), 14, stateful.RGB(250, 200, 0))
}

func checkerboard(size, cells int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	for y := range size {
		for x := range size {
			c := color.NRGBA{R: 40, G: 40, B: 40, A: 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
