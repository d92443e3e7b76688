package scene

import "fmt"

// Demo is one of the built-in teaching programs.
type Demo struct {
	ID    string
	Title string
	Shape Shape
}

// DemoViewport is the pixel size the built-in demos are laid out for.
const DemoViewport = 800

var demos = []Demo{
	{
		ID:    "line-shallow",
		Title: "Bresenham Line |m| < 1",
		Shape: Shape{Name: "line-shallow", Kind: KindLineShallow, Primitive: PrimitiveLineStrip, Params: []float64{100, 100, 500, 500}},
	},
	{
		ID:    "line-steep",
		Title: "Bresenham Line |m| > 1",
		Shape: Shape{Name: "line-steep", Kind: KindLineSteep, Primitive: PrimitiveLineStrip, Params: []float64{200, 100, 400, 700}},
	},
	{
		ID:    "circle",
		Title: "Midpoint Circle Drawing",
		Shape: Shape{Name: "circle", Kind: KindCircle, Primitive: PrimitivePoints, Params: []float64{400, 400, 200}},
	},
	{
		ID:    "ellipse",
		Title: "Midpoint Ellipse Drawing",
		Shape: Shape{Name: "ellipse", Kind: KindEllipse, Primitive: PrimitivePoints, Params: []float64{400, 400, 200, 150}},
	},
}

// Demos returns the built-in demos in menu order.
func Demos() []Demo {
	out := make([]Demo, len(demos))
	copy(out, demos)
	return out
}

// LookupDemo finds a built-in demo by ID.
func LookupDemo(id string) (Demo, error) {
	for _, d := range demos {
		if d.ID == id {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("demo %q: %w", id, ErrUnknownShape)
}
