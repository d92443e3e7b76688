package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Parse reads a single shape description such as
//
//	LINE(100 100, 500 500)
//	STEEP(200 100, 400 700)
//	CIRCLE(400 400, 200)
//	ELLIPSE(400 400, 200 150)
//
// Keywords are case-insensitive and lines starting with '#' are ignored.
// Lines and ellipses take two groups of two numbers, circles a centre pair
// and a radius. The shape is validated, not rasterized, before Parse returns.
func Parse(text string) (Shape, error) {
	var stmts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stmts = append(stmts, line)
	}
	s := strings.Join(stmts, " ")
	if s == "" {
		return Shape{}, fmt.Errorf("empty shape: %w", ErrSyntax)
	}

	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return Shape{}, fmt.Errorf("%q: expected KIND(...): %w", s, ErrSyntax)
	}
	if rest := strings.TrimSpace(s[j+1:]); rest != "" {
		return Shape{}, fmt.Errorf("trailing text %q, one shape per description: %w", rest, ErrSyntax)
	}
	kw := strings.ToUpper(strings.TrimSpace(s[:i]))
	kind, ok := kindFromKeyword(kw)
	if !ok {
		return Shape{}, fmt.Errorf("%q: %w", kw, ErrUnknownShape)
	}

	body := s[i+1 : j]
	if strings.ContainsAny(body, "()") {
		return Shape{}, fmt.Errorf("nested parentheses in %q: %w", body, ErrSyntax)
	}
	var params []float64
	tups := strings.Split(body, ",")
	want := kind.groups()
	if len(tups) != len(want) {
		return Shape{}, fmt.Errorf("%s takes %d coordinate groups, got %d: %w", kind, len(want), len(tups), ErrSyntax)
	}
	for gi, tup := range tups {
		fields := strings.Fields(tup)
		if len(fields) == 0 {
			return Shape{}, fmt.Errorf("empty coordinate group in %q: %w", body, ErrSyntax)
		}
		if len(fields) != want[gi] {
			return Shape{}, fmt.Errorf("%s group %d takes %d numbers, got %q: %w", kind, gi+1, want[gi], strings.TrimSpace(tup), ErrSyntax)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Shape{}, fmt.Errorf("bad number %q: %w", f, ErrSyntax)
			}
			params = append(params, v)
		}
	}

	shape := Shape{
		Name:      strings.ToLower(kw),
		Kind:      kind,
		Primitive: defaultPrimitive(kind),
		Params:    params,
	}
	if err := shape.Validate(); err != nil {
		return Shape{}, err
	}
	return shape, nil
}

// Load parses the shape description stored at path.
func Load(path string) (Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Shape{}, err
	}
	s, err := Parse(string(data))
	if err != nil {
		return Shape{}, fmt.Errorf("%s: %w", path, err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return s, nil
}

func kindFromKeyword(kw string) (Kind, bool) {
	for k, s := range kindKeywords {
		if s == kw {
			return k, true
		}
	}
	return 0, false
}
