package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/math/f32"

	"rasterlab/internal/raster"
	"rasterlab/internal/viewport"
)

// Shape describes one rasterized figure in pixel units.
//
// Params are x0 y0 x1 y1 for lines, cx cy r for circles and cx cy rx ry for
// ellipses.
type Shape struct {
	Name      string
	Kind      Kind
	Primitive Primitive
	Params    []float64
}

// Result is a rasterized shape. Notes[i] describes how Points[i] was produced.
type Result struct {
	Points [][2]float64
	Notes  []string
}

// MaxCoord bounds the absolute value of every shape parameter.
const MaxCoord = 1 << 16

// Validate checks the parameter count, the coordinate bound and the
// rasterizer preconditions without producing points.
func (s Shape) Validate() error {
	if _, ok := kindKeywords[s.Kind]; !ok {
		return fmt.Errorf("kind %d: %w", s.Kind, ErrUnknownShape)
	}
	if len(s.Params) != s.Kind.arity() {
		return fmt.Errorf("%s takes %d parameters, got %d: %w", s.Kind, s.Kind.arity(), len(s.Params), ErrSyntax)
	}
	for _, v := range s.Params {
		if !(math.Abs(v) <= MaxCoord) {
			return fmt.Errorf("parameter %g outside [-%d, %d]: %w", v, MaxCoord, MaxCoord, raster.ErrInvalidArgument)
		}
	}
	if s.Kind == KindEllipse {
		return raster.CheckEllipse(s.Params[0], s.Params[1], s.Params[2], s.Params[3])
	}
	ip, err := integers(s.Params)
	if err != nil {
		return err
	}
	switch s.Kind {
	case KindLineShallow:
		return raster.CheckShallow(ip[0], ip[1], ip[2], ip[3])
	case KindLineSteep:
		return raster.CheckSteep(ip[0], ip[1], ip[2], ip[3])
	case KindCircle:
		return raster.CheckCircle(ip[2])
	}
	return nil
}

// Rasterize runs the rasterizer for the shape's kind.
func (s Shape) Rasterize() (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	switch s.Kind {
	case KindLine, KindLineShallow, KindLineSteep:
		ip, err := integers(s.Params)
		if err != nil {
			return Result{}, err
		}
		var pts []raster.Point
		regime := raster.Classify(ip[0], ip[1], ip[2], ip[3])
		switch s.Kind {
		case KindLineShallow:
			regime = raster.Shallow
			pts, err = raster.LineShallow(ip[0], ip[1], ip[2], ip[3])
		case KindLineSteep:
			regime = raster.Steep
			pts, err = raster.LineSteep(ip[0], ip[1], ip[2], ip[3])
		default:
			pts = raster.Line(ip[0], ip[1], ip[2], ip[3])
		}
		if err != nil {
			return Result{}, err
		}
		return fromPoints(pts, func(int) string { return regime.String() }), nil
	case KindCircle:
		ip, err := integers(s.Params)
		if err != nil {
			return Result{}, err
		}
		pts, err := raster.Circle(ip[0], ip[1], ip[2])
		if err != nil {
			return Result{}, err
		}
		return fromPoints(pts, func(i int) string { return "octant " + strconv.Itoa(i%8+1) }), nil
	case KindEllipse:
		tagged, err := raster.EllipseRegions(s.Params[0], s.Params[1], s.Params[2], s.Params[3])
		if err != nil {
			return Result{}, err
		}
		res := Result{
			Points: make([][2]float64, len(tagged)),
			Notes:  make([]string, len(tagged)),
		}
		for i, p := range tagged {
			res.Points[i] = [2]float64{p.X, p.Y}
			res.Notes[i] = "region " + strconv.Itoa(int(p.Region))
		}
		return res, nil
	}
	return Result{}, fmt.Errorf("kind %d: %w", s.Kind, ErrUnknownShape)
}

// Vertices rasterizes the shape and normalizes it for a square viewport.
func (s Shape) Vertices(size int) ([]f32.Vec2, error) {
	res, err := s.Rasterize()
	if err != nil {
		return nil, err
	}
	return viewport.Vertices(res.Points, size), nil
}

// String formats the shape in the text form accepted by Parse.
func (s Shape) String() string {
	nums := make([]string, len(s.Params))
	for i, v := range s.Params {
		nums[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	var groups []string
	for i := 0; i < len(nums); i += 2 {
		groups = append(groups, strings.Join(nums[i:min(i+2, len(nums))], " "))
	}
	return s.Kind.String() + "(" + strings.Join(groups, ", ") + ")"
}

func integers(vs []float64) ([]int, error) {
	out := make([]int, len(vs))
	for i, v := range vs {
		if v != math.Trunc(v) || math.Abs(v) > MaxCoord {
			return nil, fmt.Errorf("parameter %g is not an integer: %w", v, raster.ErrInvalidArgument)
		}
		out[i] = int(v)
	}
	return out, nil
}

func fromPoints(pts []raster.Point, note func(i int) string) Result {
	res := Result{
		Points: make([][2]float64, len(pts)),
		Notes:  make([]string, len(pts)),
	}
	for i, p := range pts {
		res.Points[i] = [2]float64{float64(p.X), float64(p.Y)}
		res.Notes[i] = note(i)
	}
	return res
}
