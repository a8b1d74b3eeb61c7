// Package ggsurface implements stateful.Surface on the gogpu/gg software
// rasterizer.
//
// Importing the package registers it as "gg":
//
//	import _ "github.com/gogpu/stateful/ggsurface"
//
//	s := stateful.MustSurface("gg", 640, 480)
//
// Paths are rasterized by a *gg.Context into a scratch pixmap sized to the
// shape bounds and composited source-over into the frame, clipped to the
// current clip rectangle. Text goes through gg's text package, images
// through golang.org/x/image/draw.
package ggsurface
