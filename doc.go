// Package stateful provides a retained drawing list on top of an
// immediate-mode renderer.
//
// # Overview
//
// Immediate-mode UIs redraw everything every frame. A [Canvas] instead
// keeps a set of primitives (lines, rectangles, circles, text, images and
// caller-defined shapes) that persist across frames until erased. Each
// frame, [Canvas.Draw] replays the visible primitives into the host's
// [Surface], back to front by layer.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/stateful"
//	    "github.com/gogpu/stateful/layout"
//	    _ "github.com/gogpu/stateful/ggsurface" // registers "gg"
//	)
//
//	s := stateful.MustSurface("gg", 640, 480)
//	win := layout.NewWindow("main", s)
//
//	c := stateful.New(300, 200)
//	c.RectFilled(stateful.V(0, 0), stateful.V(300, 200), stateful.Hex("#202020"))
//	dot := c.CircleFilled(stateful.V(50, 50), 10, stateful.White, stateful.Layer(1))
//
//	c.Draw(win, "scene", true)
//
//	// Later frames: move the dot without touching its geometry.
//	c.DragStart(dot, 2)
//	c.DragUpdate(dot, 20, 0)
//
// # Handles
//
// Every add call returns a [Handle]. A handle stays valid until its
// primitive is erased or the canvas cleared; erased slots are reused by
// later adds, lowest first. Use a handle to hide, mutate, erase or drag
// the primitive.
//
// # Layers
//
// Primitives draw in ascending layer order; within a layer, in handle
// order. The layer is taken from the [Layer] option or the canvas default
// set with [Canvas.SetLayer]. Ordering scans the whole list once per layer
// between the lowest and the highest, so keep layers dense.
//
// # Dragging
//
// [Canvas.DragStart] lifts a primitive to a display layer and
// [Canvas.DragUpdate] moves it by an absolute offset without touching its
// geometry. [Canvas.DragEnd] snaps it back; [Canvas.DragCommit] makes the
// move permanent.
//
// # Errors
//
// Handle misuse and drag state violations are programming errors and
// panic. The panic value is an error wrapping one of the exported Err
// values, so it can be classified with errors.Is after recover.
//
// # Surfaces
//
// Surface implementations register themselves by name with
// [RegisterSurface]:
//   - ggsurface: software rasterizer over github.com/gogpu/gg ("gg")
//   - fgsurface: software rasterizer over github.com/fogleman/gg ("fogleman")
//   - trace: records calls for inspection ("trace")
package stateful
