package trace

import (
	"sync"

	"github.com/gogpu/stateful"
)

func init() {
	stateful.RegisterSurface("trace", func(w, h int) (stateful.Surface, error) {
		return New(w, h), nil
	})
}

// Surface records every call as a Command. It tracks the clip stack the
// way a rasterizing surface would, so each command carries the clip it was
// issued under.
//
// Surface is safe for concurrent use.
type Surface struct {
	mu       sync.Mutex
	bounds   stateful.Rect
	clips    []stateful.Rect
	commands []Command
}

var _ stateful.Surface = (*Surface)(nil)

// New creates a trace surface of the given pixel size. The size is the
// initial clip.
func New(width, height int) *Surface {
	return &Surface{bounds: stateful.R(0, 0, float64(width), float64(height))}
}

// Commands returns a copy of the recorded commands.
func (s *Surface) Commands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Command(nil), s.commands...)
}

// Types returns the recorded command types, clip commands included.
func (s *Surface) Types() []CommandType {
	s.mu.Lock()
	defer s.mu.Unlock()
	types := make([]CommandType, len(s.commands))
	for i, c := range s.commands {
		types[i] = c.Type
	}
	return types
}

// Shapes returns the recorded commands without clip pushes and pops.
func (s *Surface) Shapes() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Command
	for _, c := range s.commands {
		if c.Type != CmdPushClip && c.Type != CmdPopClip {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets the recorded commands and the clip stack, as at the start
// of a new frame.
func (s *Surface) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = s.commands[:0]
	s.clips = s.clips[:0]
}

// ClipDepth returns the number of pushed clip rectangles.
func (s *Surface) ClipDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clips)
}

func (s *Surface) clip() stateful.Rect {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return s.bounds
}

func (s *Surface) record(c Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Clip = s.clip()
	s.commands = append(s.commands, c)
}

func (s *Surface) PushClipRect(r stateful.Rect, intersect bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	eff := r
	if intersect {
		eff = r.Intersect(s.clip())
	}
	s.clips = append(s.clips, eff)
	s.commands = append(s.commands, Command{Type: CmdPushClip, Rect: r, Intersect: intersect, Clip: eff})
}

func (s *Surface) PopClipRect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
	s.commands = append(s.commands, Command{Type: CmdPopClip, Clip: s.clip()})
}

func points(p ...stateful.Vec2) []stateful.Vec2 { return p }

func colors(c ...stateful.Color) []stateful.Color { return c }

func (s *Surface) AddLine(p0, p1 stateful.Vec2, col stateful.Color, thickness float64) {
	s.record(Command{Type: CmdLine, Points: points(p0, p1), Colors: colors(col), Thickness: thickness})
}

func (s *Surface) AddRect(min, max stateful.Vec2, col stateful.Color, rounding float64, corners stateful.Corners, thickness float64) {
	s.record(Command{
		Type: CmdRect, Points: points(min, max), Colors: colors(col),
		Rounding: rounding, Corners: corners, Thickness: thickness,
	})
}

func (s *Surface) AddRectFilled(min, max stateful.Vec2, col stateful.Color, rounding float64, corners stateful.Corners) {
	s.record(Command{Type: CmdRectFilled, Points: points(min, max), Colors: colors(col), Rounding: rounding, Corners: corners})
}

func (s *Surface) AddRectFilledMultiColor(min, max stateful.Vec2, upperLeft, upperRight, bottomRight, bottomLeft stateful.Color) {
	s.record(Command{
		Type: CmdRectFilledMultiColor, Points: points(min, max),
		Colors: colors(upperLeft, upperRight, bottomRight, bottomLeft),
	})
}

func (s *Surface) AddQuad(p0, p1, p2, p3 stateful.Vec2, col stateful.Color, thickness float64) {
	s.record(Command{Type: CmdQuad, Points: points(p0, p1, p2, p3), Colors: colors(col), Thickness: thickness})
}

func (s *Surface) AddQuadFilled(p0, p1, p2, p3 stateful.Vec2, col stateful.Color) {
	s.record(Command{Type: CmdQuadFilled, Points: points(p0, p1, p2, p3), Colors: colors(col)})
}

func (s *Surface) AddTriangle(p0, p1, p2 stateful.Vec2, col stateful.Color, thickness float64) {
	s.record(Command{Type: CmdTriangle, Points: points(p0, p1, p2), Colors: colors(col), Thickness: thickness})
}

func (s *Surface) AddTriangleFilled(p0, p1, p2 stateful.Vec2, col stateful.Color) {
	s.record(Command{Type: CmdTriangleFilled, Points: points(p0, p1, p2), Colors: colors(col)})
}

func (s *Surface) AddCircle(center stateful.Vec2, radius float64, col stateful.Color, segments int, thickness float64) {
	s.record(Command{
		Type: CmdCircle, Points: points(center), Radius: radius, Colors: colors(col),
		Segments: segments, Thickness: thickness,
	})
}

func (s *Surface) AddCircleFilled(center stateful.Vec2, radius float64, col stateful.Color, segments int) {
	s.record(Command{Type: CmdCircleFilled, Points: points(center), Radius: radius, Colors: colors(col), Segments: segments})
}

func (s *Surface) AddNgon(center stateful.Vec2, radius float64, col stateful.Color, segments int, thickness float64) {
	s.record(Command{
		Type: CmdNgon, Points: points(center), Radius: radius, Colors: colors(col),
		Segments: segments, Thickness: thickness,
	})
}

func (s *Surface) AddNgonFilled(center stateful.Vec2, radius float64, col stateful.Color, segments int) {
	s.record(Command{Type: CmdNgonFilled, Points: points(center), Radius: radius, Colors: colors(col), Segments: segments})
}

func (s *Surface) AddText(pos stateful.Vec2, col stateful.Color, text string) {
	s.record(Command{Type: CmdText, Points: points(pos), Colors: colors(col), Text: text, Font: stateful.DefaultFont})
}

func (s *Surface) AddFontText(font stateful.FontID, size float64, pos stateful.Vec2, col stateful.Color, text string, wrapWidth float64, fineClip *stateful.Rect) {
	c := Command{
		Type: CmdFontText, Points: points(pos), Colors: colors(col), Text: text,
		Font: font, Size: size, WrapWidth: wrapWidth,
	}
	if fineClip != nil {
		r := *fineClip
		c.FineClip = &r
	}
	s.record(c)
}

// AddPolyline copies points; the caller reuses the slice.
func (s *Surface) AddPolyline(pts []stateful.Vec2, col stateful.Color, closed bool, thickness float64) {
	s.record(Command{
		Type: CmdPolyline, Points: append([]stateful.Vec2(nil), pts...), Colors: colors(col),
		Closed: closed, Thickness: thickness,
	})
}

// AddConvexPolyFilled copies points; the caller reuses the slice.
func (s *Surface) AddConvexPolyFilled(pts []stateful.Vec2, col stateful.Color) {
	s.record(Command{Type: CmdConvexPolyFilled, Points: append([]stateful.Vec2(nil), pts...), Colors: colors(col)})
}

func (s *Surface) AddBezierCubic(p0, p1, p2, p3 stateful.Vec2, col stateful.Color, thickness float64, segments int) {
	s.record(Command{
		Type: CmdBezierCubic, Points: points(p0, p1, p2, p3), Colors: colors(col),
		Thickness: thickness, Segments: segments,
	})
}

func (s *Surface) AddImage(tex stateful.TextureID, min, max, uvMin, uvMax stateful.Vec2, col stateful.Color) {
	s.record(Command{Type: CmdImage, Texture: tex, Points: points(min, max), UVs: points(uvMin, uvMax), Colors: colors(col)})
}

func (s *Surface) AddImageQuad(tex stateful.TextureID, p0, p1, p2, p3, uv0, uv1, uv2, uv3 stateful.Vec2, col stateful.Color) {
	s.record(Command{
		Type: CmdImageQuad, Texture: tex,
		Points: points(p0, p1, p2, p3), UVs: points(uv0, uv1, uv2, uv3), Colors: colors(col),
	})
}

func (s *Surface) AddImageRounded(tex stateful.TextureID, min, max, uvMin, uvMax stateful.Vec2, col stateful.Color, rounding float64, corners stateful.Corners) {
	s.record(Command{
		Type: CmdImageRounded, Texture: tex, Points: points(min, max), UVs: points(uvMin, uvMax),
		Colors: colors(col), Rounding: rounding, Corners: corners,
	})
}
