package document

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/measure"
	"github.com/matzehuels/stacklayout/pkg/style"
	"github.com/matzehuels/stacklayout/pkg/tree"
	"github.com/matzehuels/stacklayout/pkg/view"
)

// Compile builds a layout tree from el. Text elements measure with m; a nil
// m measures in terminal cells.
func Compile(el *Element, m measure.Measurer) (*tree.Node, error) {
	if m == nil {
		m = measure.Cell{}
	}
	return compile(el, m, "root")
}

// Compile builds the layout tree for the document's root element.
func (d *Document) Compile(m measure.Measurer) (*tree.Node, error) {
	return Compile(d.Root, m)
}

func compile(el *Element, m measure.Measurer, path string) (*tree.Node, error) {
	if el == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: missing element", path)
	}

	n, err := compileContent(el, m, path)
	if err != nil {
		return nil, err
	}

	insets, ok, err := parseInsets(el.Padding)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: padding", path)
	}
	if !ok {
		return n, nil
	}
	return tree.New(view.NewPadding(marker(n.Content), insets)).Append(n), nil
}

// marker returns a fresh stack matching c's arrangement, so the Padding and
// the node it wraps never share a frame.
func marker(c view.Content) view.Content {
	if c.Arrangement() == view.Horizontal {
		return view.NewHStack()
	}
	return view.NewVStack()
}

func compileContent(el *Element, m measure.Measurer, path string) (*tree.Node, error) {
	kind := strings.ToLower(el.Kind)
	if kind != KindText && (el.Text != "" || el.Font != "" || el.Color != "") {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: text, font and color only apply to text elements", path)
	}

	switch kind {
	case KindVStack, KindHStack:
		var c view.Content = view.NewVStack()
		if kind == KindHStack {
			c = view.NewHStack()
		}
		n := tree.New(c)
		for i, child := range el.Children {
			cn, err := compile(child, m, fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			n.Append(cn)
		}
		return n, nil

	case KindText:
		if len(el.Children) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: text elements cannot have children", path)
		}
		if err := errors.ValidateText(el.Text); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", path)
		}
		mods, err := modifiers(el, path)
		if err != nil {
			return nil, err
		}
		return tree.New(view.NewText(el.Text, m, mods...)), nil

	case KindDivider:
		if len(el.Children) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: dividers cannot have children", path)
		}
		return tree.New(view.NewDivider()), nil
	}

	return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: unknown kind %q", path, el.Kind)
}

func modifiers(el *Element, path string) ([]style.Modifier, error) {
	var mods []style.Modifier
	if el.Font != "" {
		f, ok := style.FontByName(el.Font)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: unknown font %q", path, el.Font)
		}
		mods = append(mods, style.WithFont(f))
	}
	if el.Color != "" {
		c, err := style.ParseColor(el.Color)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: color", path)
		}
		mods = append(mods, style.WithColor(c))
	}
	return mods, nil
}

// parseInsets accepts the shapes TOML and JSON decoders produce for a
// padding value: one number, or four numbers.
func parseInsets(v any) (geom.EdgeInsets, bool, error) {
	if v == nil {
		return geom.EdgeInsets{}, false, nil
	}
	if n, ok, err := toInt(v); ok {
		if err != nil {
			return geom.EdgeInsets{}, false, err
		}
		if err := errors.ValidateInsets(n, n, n, n); err != nil {
			return geom.EdgeInsets{}, false, err
		}
		return geom.Uniform(n), true, nil
	}

	var list []any
	switch vs := v.(type) {
	case []any:
		list = vs
	case []int64:
		for _, x := range vs {
			list = append(list, x)
		}
	default:
		return geom.EdgeInsets{}, false, fmt.Errorf("want a number or [top, leading, bottom, trailing], got %T", v)
	}
	if len(list) != 4 {
		return geom.EdgeInsets{}, false, fmt.Errorf("want 4 values, got %d", len(list))
	}
	var e [4]int
	for i, x := range list {
		n, ok, err := toInt(x)
		if !ok {
			return geom.EdgeInsets{}, false, fmt.Errorf("value %d is %T, not a number", i, x)
		}
		if err != nil {
			return geom.EdgeInsets{}, false, err
		}
		e[i] = n
	}
	if err := errors.ValidateInsets(e[0], e[1], e[2], e[3]); err != nil {
		return geom.EdgeInsets{}, false, err
	}
	return geom.EdgeInsets{Top: e[0], Leading: e[1], Bottom: e[2], Trailing: e[3]}, true, nil
}

// toInt reports whether v is numeric, and an error if it is not integral.
func toInt(v any) (int, bool, error) {
	switch n := v.(type) {
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, true, fmt.Errorf("%v is not a whole number", n)
		}
		return int(n), true, nil
	}
	return 0, false, nil
}
