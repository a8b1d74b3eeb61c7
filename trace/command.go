// Package trace provides a Surface that records the calls it receives
// instead of rasterizing them, and a Frame fake to drive canvases with.
//
// Traces make compositor behavior inspectable: tests assert on the exact
// command sequence a canvas emits, and the demo prints it with -trace.
//
// # Example
//
//	s := trace.New(640, 480)
//	f := trace.NewFrame(s)
//	c := stateful.New(200, 100)
//	c.Line(stateful.V(0, 0), stateful.V(50, 50), stateful.White)
//	c.Draw(f, "canvas", true)
//	for _, cmd := range s.Commands() {
//	    fmt.Println(cmd)
//	}
package trace

import (
	"fmt"
	"strings"

	"github.com/gogpu/stateful"
)

// CommandType identifies the Surface method a Command records.
type CommandType uint8

const (
	// Shape commands
	CmdLine                 CommandType = iota // AddLine
	CmdRect                                    // AddRect
	CmdRectFilled                              // AddRectFilled
	CmdRectFilledMultiColor                    // AddRectFilledMultiColor
	CmdQuad                                    // AddQuad
	CmdQuadFilled                              // AddQuadFilled
	CmdTriangle                                // AddTriangle
	CmdTriangleFilled                          // AddTriangleFilled
	CmdCircle                                  // AddCircle
	CmdCircleFilled                            // AddCircleFilled
	CmdNgon                                    // AddNgon
	CmdNgonFilled                              // AddNgonFilled
	CmdPolyline                                // AddPolyline
	CmdConvexPolyFilled                        // AddConvexPolyFilled
	CmdBezierCubic                             // AddBezierCubic

	// Text commands
	CmdText     // AddText
	CmdFontText // AddFontText

	// Image commands
	CmdImage        // AddImage
	CmdImageQuad    // AddImageQuad
	CmdImageRounded // AddImageRounded

	// Clip commands
	CmdPushClip // PushClipRect
	CmdPopClip  // PopClipRect
)

var commandTypeNames = [...]string{
	CmdLine:                 "Line",
	CmdRect:                 "Rect",
	CmdRectFilled:           "RectFilled",
	CmdRectFilledMultiColor: "RectFilledMultiColor",
	CmdQuad:                 "Quad",
	CmdQuadFilled:           "QuadFilled",
	CmdTriangle:             "Triangle",
	CmdTriangleFilled:       "TriangleFilled",
	CmdCircle:               "Circle",
	CmdCircleFilled:         "CircleFilled",
	CmdNgon:                 "Ngon",
	CmdNgonFilled:           "NgonFilled",
	CmdPolyline:             "Polyline",
	CmdConvexPolyFilled:     "ConvexPolyFilled",
	CmdBezierCubic:          "BezierCubic",
	CmdText:                 "Text",
	CmdFontText:             "FontText",
	CmdImage:                "Image",
	CmdImageQuad:            "ImageQuad",
	CmdImageRounded:         "ImageRounded",
	CmdPushClip:             "PushClip",
	CmdPopClip:              "PopClip",
}

// String returns the Surface method name without its Add prefix.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", t)
}

// Command is one recorded Surface call. Only the fields the call carries
// are set; Points holds the call's positions in argument order.
type Command struct {
	Type CommandType

	Points []stateful.Vec2
	UVs    []stateful.Vec2
	Colors []stateful.Color

	Radius    float64
	Thickness float64
	Rounding  float64
	Corners   stateful.Corners
	Segments  int
	Closed    bool

	Text      string
	Font      stateful.FontID
	Size      float64
	WrapWidth float64
	FineClip  *stateful.Rect

	Texture stateful.TextureID

	// Rect is the rectangle passed to PushClipRect.
	Rect      stateful.Rect
	Intersect bool

	// Clip is the clip in effect when the command was recorded.
	Clip stateful.Rect
}

// Color returns the first color of the command, or Transparent.
func (c Command) Color() stateful.Color {
	if len(c.Colors) == 0 {
		return stateful.Transparent
	}
	return c.Colors[0]
}

// String formats the command on one line for logs and the demo.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Type.String())
	switch c.Type {
	case CmdPushClip:
		fmt.Fprintf(&b, " %s intersect=%t", fmtRect(c.Rect), c.Intersect)
	case CmdPopClip:
	default:
		for _, p := range c.Points {
			fmt.Fprintf(&b, " (%g,%g)", p.X, p.Y)
		}
		if c.Radius != 0 {
			fmt.Fprintf(&b, " r=%g", c.Radius)
		}
		if c.Text != "" {
			fmt.Fprintf(&b, " %q", c.Text)
		}
		for _, col := range c.Colors {
			fmt.Fprintf(&b, " #%08x", uint32(col))
		}
	}
	fmt.Fprintf(&b, " clip=%s", fmtRect(c.Clip))
	return b.String()
}

func fmtRect(r stateful.Rect) string {
	return fmt.Sprintf("[%g,%g %g,%g]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
