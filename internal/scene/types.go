package scene

import "errors"

var (
	// ErrSyntax is returned for shape text that cannot be parsed.
	ErrSyntax = errors.New("shape syntax error")
	// ErrUnknownShape is returned for an unknown keyword or demo name.
	ErrUnknownShape = errors.New("unknown shape")
)

// Kind names the rasterizer a shape is drawn with.
type Kind int

const (
	KindLine Kind = iota // either Bresenham variant, picked from the slope
	KindLineShallow
	KindLineSteep
	KindCircle
	KindEllipse
)

var kindKeywords = map[Kind]string{
	KindLine:        "LINE",
	KindLineShallow: "SHALLOW",
	KindLineSteep:   "STEEP",
	KindCircle:      "CIRCLE",
	KindEllipse:     "ELLIPSE",
}

func (k Kind) String() string {
	if s, ok := kindKeywords[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// arity is the number of parameters a kind takes.
func (k Kind) arity() int {
	n := 0
	for _, g := range k.groups() {
		n += g
	}
	return n
}

// groups is the size of each comma-separated group in the text form.
func (k Kind) groups() []int {
	if k == KindCircle {
		return []int{2, 1}
	}
	return []int{2, 2}
}

// Primitive is how the collaborator connects a shape's vertices.
type Primitive int

const (
	PrimitivePoints Primitive = iota
	PrimitiveLineStrip
)

func (p Primitive) String() string {
	if p == PrimitiveLineStrip {
		return "line strip"
	}
	return "points"
}

// defaultPrimitive draws lines as a connected strip and curves as loose
// points.
func defaultPrimitive(k Kind) Primitive {
	switch k {
	case KindLine, KindLineShallow, KindLineSteep:
		return PrimitiveLineStrip
	default:
		return PrimitivePoints
	}
}
