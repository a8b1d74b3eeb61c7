package stateful

// Line is a straight segment.
type Line struct {
	Attrs
	P0, P1    Vec2
	Color     Color
	Thickness float64
}

func (l *Line) Draw(s Surface, o Vec2) {
	s.AddLine(l.P0.Add(o), l.P1.Add(o), l.Color, l.Thickness)
}

func (l *Line) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	l.P0, l.P1 = l.P0.Add(d), l.P1.Add(d)
}

// Rectangle is a stroked axis-aligned rectangle.
type Rectangle struct {
	Attrs
	Min, Max  Vec2
	Color     Color
	Rounding  float64
	Corners   Corners
	Thickness float64
}

func (r *Rectangle) Draw(s Surface, o Vec2) {
	s.AddRect(r.Min.Add(o), r.Max.Add(o), r.Color, r.Rounding, r.Corners, r.Thickness)
}

func (r *Rectangle) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	r.Min, r.Max = r.Min.Add(d), r.Max.Add(d)
}

// RectangleFilled is a filled axis-aligned rectangle.
type RectangleFilled struct {
	Attrs
	Min, Max Vec2
	Color    Color
	Rounding float64
	Corners  Corners
}

func (r *RectangleFilled) Draw(s Surface, o Vec2) {
	s.AddRectFilled(r.Min.Add(o), r.Max.Add(o), r.Color, r.Rounding, r.Corners)
}

func (r *RectangleFilled) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	r.Min, r.Max = r.Min.Add(d), r.Max.Add(d)
}

// RectangleMultiColor is a filled rectangle with a color per corner,
// interpolated across the interior.
type RectangleMultiColor struct {
	Attrs
	Min, Max                                       Vec2
	UpperLeft, UpperRight, BottomRight, BottomLeft Color
}

func (r *RectangleMultiColor) Draw(s Surface, o Vec2) {
	s.AddRectFilledMultiColor(r.Min.Add(o), r.Max.Add(o), r.UpperLeft, r.UpperRight, r.BottomRight, r.BottomLeft)
}

func (r *RectangleMultiColor) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	r.Min, r.Max = r.Min.Add(d), r.Max.Add(d)
}

// Quad is a stroked quadrilateral.
type Quad struct {
	Attrs
	P0, P1, P2, P3 Vec2
	Color          Color
	Thickness      float64
}

func (q *Quad) Draw(s Surface, o Vec2) {
	s.AddQuad(q.P0.Add(o), q.P1.Add(o), q.P2.Add(o), q.P3.Add(o), q.Color, q.Thickness)
}

func (q *Quad) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	q.P0, q.P1, q.P2, q.P3 = q.P0.Add(d), q.P1.Add(d), q.P2.Add(d), q.P3.Add(d)
}

// QuadFilled is a filled quadrilateral.
type QuadFilled struct {
	Attrs
	P0, P1, P2, P3 Vec2
	Color          Color
}

func (q *QuadFilled) Draw(s Surface, o Vec2) {
	s.AddQuadFilled(q.P0.Add(o), q.P1.Add(o), q.P2.Add(o), q.P3.Add(o), q.Color)
}

func (q *QuadFilled) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	q.P0, q.P1, q.P2, q.P3 = q.P0.Add(d), q.P1.Add(d), q.P2.Add(d), q.P3.Add(d)
}

// Triangle is a stroked triangle.
type Triangle struct {
	Attrs
	P0, P1, P2 Vec2
	Color      Color
	Thickness  float64
}

func (t *Triangle) Draw(s Surface, o Vec2) {
	s.AddTriangle(t.P0.Add(o), t.P1.Add(o), t.P2.Add(o), t.Color, t.Thickness)
}

func (t *Triangle) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	t.P0, t.P1, t.P2 = t.P0.Add(d), t.P1.Add(d), t.P2.Add(d)
}

// TriangleFilled is a filled triangle.
type TriangleFilled struct {
	Attrs
	P0, P1, P2 Vec2
	Color      Color
}

func (t *TriangleFilled) Draw(s Surface, o Vec2) {
	s.AddTriangleFilled(t.P0.Add(o), t.P1.Add(o), t.P2.Add(o), t.Color)
}

func (t *TriangleFilled) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	t.P0, t.P1, t.P2 = t.P0.Add(d), t.P1.Add(d), t.P2.Add(d)
}

// Circle is a stroked circle approximated with Segments segments
// (0 lets the surface choose).
type Circle struct {
	Attrs
	Center    Vec2
	Radius    float64
	Color     Color
	Segments  int
	Thickness float64
}

func (c *Circle) Draw(s Surface, o Vec2) {
	s.AddCircle(c.Center.Add(o), c.Radius, c.Color, c.Segments, c.Thickness)
}

func (c *Circle) Translate(dx, dy float64) { c.Center = c.Center.Add(Vec2{dx, dy}) }

// CircleFilled is a filled circle.
type CircleFilled struct {
	Attrs
	Center   Vec2
	Radius   float64
	Color    Color
	Segments int
}

func (c *CircleFilled) Draw(s Surface, o Vec2) {
	s.AddCircleFilled(c.Center.Add(o), c.Radius, c.Color, c.Segments)
}

func (c *CircleFilled) Translate(dx, dy float64) { c.Center = c.Center.Add(Vec2{dx, dy}) }

// Ngon is a stroked regular polygon with Segments sides.
type Ngon struct {
	Attrs
	Center    Vec2
	Radius    float64
	Color     Color
	Segments  int
	Thickness float64
}

func (n *Ngon) Draw(s Surface, o Vec2) {
	s.AddNgon(n.Center.Add(o), n.Radius, n.Color, n.Segments, n.Thickness)
}

func (n *Ngon) Translate(dx, dy float64) { n.Center = n.Center.Add(Vec2{dx, dy}) }

// NgonFilled is a filled regular polygon with Segments sides.
type NgonFilled struct {
	Attrs
	Center   Vec2
	Radius   float64
	Color    Color
	Segments int
}

func (n *NgonFilled) Draw(s Surface, o Vec2) {
	s.AddNgonFilled(n.Center.Add(o), n.Radius, n.Color, n.Segments)
}

func (n *NgonFilled) Translate(dx, dy float64) { n.Center = n.Center.Add(Vec2{dx, dy}) }

// Polyline is an open or closed sequence of stroked segments.
type Polyline struct {
	Attrs
	Points    []Vec2
	Color     Color
	Closed    bool
	Thickness float64

	adjusted []Vec2
}

func (p *Polyline) Draw(s Surface, o Vec2) {
	p.adjusted = translatePoints(p.adjusted, p.Points, o)
	s.AddPolyline(p.adjusted, p.Color, p.Closed, p.Thickness)
}

func (p *Polyline) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	for i := range p.Points {
		p.Points[i] = p.Points[i].Add(d)
	}
}

// ConvexPolyFilled is a filled convex polygon. Anti-aliased filling on some
// surfaces requires clockwise point order.
type ConvexPolyFilled struct {
	Attrs
	Points []Vec2
	Color  Color

	adjusted []Vec2
}

func (p *ConvexPolyFilled) Draw(s Surface, o Vec2) {
	p.adjusted = translatePoints(p.adjusted, p.Points, o)
	s.AddConvexPolyFilled(p.adjusted, p.Color)
}

func (p *ConvexPolyFilled) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	for i := range p.Points {
		p.Points[i] = p.Points[i].Add(d)
	}
}

// BezierCubic is a stroked cubic Bézier curve from P0 to P3 with control
// points P1 and P2. Segments of 0 lets the surface tessellate adaptively.
type BezierCubic struct {
	Attrs
	P0, P1, P2, P3 Vec2
	Color          Color
	Thickness      float64
	Segments       int
}

func (b *BezierCubic) Draw(s Surface, o Vec2) {
	s.AddBezierCubic(b.P0.Add(o), b.P1.Add(o), b.P2.Add(o), b.P3.Add(o), b.Color, b.Thickness, b.Segments)
}

func (b *BezierCubic) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	b.P0, b.P1, b.P2, b.P3 = b.P0.Add(d), b.P1.Add(d), b.P2.Add(d), b.P3.Add(d)
}
