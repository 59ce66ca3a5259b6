package chartkit

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes a static snapshot of the scene to w as an SVG document of
// the given size. Transitions are settled first so the snapshot shows final
// geometry. Groups carry the node Class as their class attribute and bound
// keys as data-key, so the document mirrors the scene tree.
func (s *Scene) WriteSVG(w io.Writer, width, height int) error {
	s.Settle()
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height, `font-family="monospace" font-size="11px"`)
	if s.ClearColor.A > 0 {
		canvas.Rect(0, 0, width, height, svgFill(s.ClearColor, 1))
	}
	writeSVGNode(canvas, s.root)
	canvas.End()
	return ew.err
}

func writeSVGNode(canvas *svg.SVG, n *Node) {
	if !n.Visible {
		return
	}
	wt := n.worldTransform
	switch n.Type {
	case NodeTypeShape:
		if n.Shape == nil {
			break
		}
		d := n.Shape.path()
		if d == "" {
			break
		}
		canvas.Gtransform(svgMatrix(wt))
		canvas.Path(d, svgAttrs(n)+` `+svgQuote("style", svgFill(n.Color, n.worldAlpha)))
		canvas.Gend()
	case NodeTypeText:
		if n.Label == "" {
			break
		}
		canvas.Gtransform(svgMatrix(wt))
		anchor := "start"
		switch n.Align {
		case TextAlignCenter:
			anchor = "middle"
		case TextAlignRight:
			anchor = "end"
		}
		canvas.Text(0, 0, n.Label, svgQuote("text-anchor", anchor)+` dy=".35em" `+svgQuote("style", svgFill(n.Color, n.worldAlpha)))
		canvas.Gend()
	}
	if len(n.children) == 0 {
		return
	}
	if attrs := svgAttrs(n); attrs != "" {
		canvas.Group(attrs)
		defer canvas.Gend()
	}
	for _, c := range n.children {
		writeSVGNode(canvas, c)
	}
}

func svgMatrix(m [6]float64) string {
	return fmt.Sprintf("matrix(%.6g %.6g %.6g %.6g %.6g %.6g)", m[0], m[1], m[2], m[3], m[4], m[5])
}

func svgFill(c Color, alpha float64) string {
	a := clamp01(c.A * alpha)
	if a >= 1 {
		return "fill:" + c.Hex()
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.3g", c.Hex(), a)
}

// svgAttrs returns class and data-key attributes for n, or "".
func svgAttrs(n *Node) string {
	var parts []string
	if n.Class != "" {
		parts = append(parts, svgQuote("class", n.Class))
	}
	if n.Key != "" {
		parts = append(parts, svgQuote("data-key", n.Key))
	}
	return strings.Join(parts, " ")
}

var svgEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func svgQuote(attr, value string) string {
	return attr + `="` + svgEscaper.Replace(value) + `"`
}

// errWriter remembers the first write error so the svg calls, which do not
// return errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
