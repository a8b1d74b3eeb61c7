// Package fgsurface implements stateful.Surface on fogleman/gg.
//
// Importing the package registers it as "fogleman":
//
//	import _ "github.com/gogpu/stateful/fgsurface"
//
//	s := stateful.MustSurface("fogleman", 640, 480)
//
// The clip stack is kept as pixel rectangles and applied to the context
// as its clipping mask, which every fogleman/gg draw call honors. Text is
// set in Go Mono through golang/freetype unless another font is given.
package fgsurface
