// Package template compiles JSON template documents into maker trees.
//
// A document is ordinary JSON. An object carrying a "$gen" key is a
// generator spec; its other keys are that generator's options. An object
// without "$gen" compiles to a shape (its keys sorted, so a document's key
// order never affects derivation), an array compiles to a tuple, and any
// other value passes through as a literal.
//
//	{
//	  "name": {"$gen": "petname"},
//	  "age": {"$gen": "int", "min": 18, "max": 99},
//	  "tags": {"$gen": "times", "min": 1, "max": 3, "of": {"$gen": "word"}}
//	}
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/mkeeler/fixture-data/combine"
	"github.com/mkeeler/fixture-data/gen/binary"
	"github.com/mkeeler/fixture-data/gen/chars"
	"github.com/mkeeler/fixture-data/gen/dates"
	"github.com/mkeeler/fixture-data/gen/netaddr"
	"github.com/mkeeler/fixture-data/gen/numbers"
	"github.com/mkeeler/fixture-data/gen/words"
	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

const genKey = "$gen"

// ReadFile parses and compiles a template document from disk.
func ReadFile(path string) (maker.Maker, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading template: %w", err)
	}
	return Parse(raw)
}

// Parse parses and compiles a JSON template document.
func Parse(raw []byte) (maker.Maker, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding template: %w", err)
	}
	return Compile(doc)
}

// Compile turns a decoded document into a Maker. Every problem in the
// document is reported, not just the first.
func Compile(doc any) (maker.Maker, error) {
	v, err := compileNode("$", doc)
	if err != nil {
		return nil, err
	}
	if !v.IsMaker() {
		lit := v.Literal()
		return maker.Func(func(_ identity.ID) (any, error) { return lit, nil }), nil
	}
	return v.Maker(), nil
}

func compileNode(path string, node any) (maker.Value, error) {
	switch n := node.(type) {
	case map[string]any:
		if kind, ok := n[genKey].(string); ok {
			return compileGen(path, kind, n)
		}
		return compileShape(path, n)
	case []any:
		return compileTuple(path, n)
	default:
		return maker.Lit(node), nil
	}
}

func compileShape(path string, node map[string]any) (maker.Value, error) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs *multierror.Error
	fields := make([]combine.Field, 0, len(keys))
	for _, k := range keys {
		v, err := compileNode(path+"."+k, node[k])
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		fields = append(fields, combine.Field{Key: k, Value: v})
	}
	if err := errs.ErrorOrNil(); err != nil {
		return maker.Value{}, err
	}
	return maker.Gen(combine.ShapeMaker(fields)), nil
}

func compileTuple(path string, node []any) (maker.Value, error) {
	var errs *multierror.Error
	values := make([]maker.Value, 0, len(node))
	for i, elem := range node {
		v, err := compileNode(fmt.Sprintf("%s[%d]", path, i), elem)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		values = append(values, v)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return maker.Value{}, err
	}
	return maker.Gen(combine.TupleMaker(values)), nil
}

func compileGen(path, kind string, spec map[string]any) (maker.Value, error) {
	o := &optReader{path: path, spec: spec}

	var m maker.Maker
	switch kind {
	case "int":
		m = numbers.NewIntGenerator(
			numbers.WithIntMin(o.int64Or("min", 0)),
			numbers.WithIntMax(o.int64Or("max", numbers.Unbounded)),
		)
	case "float":
		m = numbers.NewFloatGenerator(
			numbers.WithFloatMin(o.floatOr("min", 0)),
			numbers.WithFloatMax(o.floatOr("max", 1<<53-1)),
		)
	case "bool":
		m = numbers.NewBoolGenerator()
	case "date":
		m = dates.NewDateStringGenerator(
			dates.WithMin(o.timeOr("min", dates.DefaultMin)),
			dates.WithMax(o.timeOr("max", dates.DefaultMax)),
			dates.WithLayout(o.stringOr("layout", dates.DefaultLayout)),
		)
	case "char":
		m = chars.NewCharGenerator()
	case "word":
		m = words.NewWordGenerator(
			words.WithCapitalize(o.boolOr("capitalize", true)),
			words.WithUnicode(o.boolOr("unicode", true)),
			words.WithMinSyllables(o.int64Or("minSyllables", 2)),
			words.WithMaxSyllables(o.int64Or("maxSyllables", 4)),
		)
	case "words":
		m = words.NewWordsGenerator(
			words.WithMinWords(o.int64Or("min", 2)),
			words.WithMaxWords(o.int64Or("max", 3)),
		)
	case "sentence":
		m = words.NewSentenceGenerator(
			words.WithSentenceMinWords(o.int64Or("min", 4)),
			words.WithSentenceMaxWords(o.int64Or("max", 12)),
		)
	case "paragraph":
		m = words.NewParagraphGenerator(
			words.WithMinSentences(o.int64Or("min", 2)),
			words.WithMaxSentences(o.int64Or("max", 5)),
		)
	case "petname":
		m = words.NewPetNameGenerator(
			words.WithPetNameWords(o.int64Or("words", 2)),
			words.WithSeparator(o.stringOr("separator", "-")),
		)
	case "uuid":
		m = binary.NewUUIDGenerator()
	case "base64":
		m = binary.NewBase64Generator(
			binary.WithMinSize(o.int64Or("min", 16)),
			binary.WithMaxSize(o.int64Or("max", 64)),
		)
	case "ip":
		m = netaddr.NewIPGenerator()
	case "oneof":
		values, err := o.values("of")
		if err != nil {
			return maker.Value{}, err
		}
		m = combine.OneOfMaker(values)
	case "someof":
		values, err := o.values("of")
		if err != nil {
			return maker.Value{}, err
		}
		m = combine.SomeOfMaker(o.countRange(), values)
	case "times":
		of, ok := spec["of"]
		if !ok {
			return maker.Value{}, fmt.Errorf("template %s: times requires \"of\"", path)
		}
		v, err := compileNode(path+".of", of)
		if err != nil {
			return maker.Value{}, err
		}
		m = combine.TimesMaker(o.countRange(), v)
	case "join":
		values, err := o.values("of")
		if err != nil {
			return maker.Value{}, err
		}
		m = combine.JoinMaker(combine.Separator(o.stringOr("sep", "")), values)
	case "weighted":
		entries, err := o.weightedEntries()
		if err != nil {
			return maker.Value{}, err
		}
		m = combine.OneOfWeightedMaker(entries)
	default:
		return maker.Value{}, fmt.Errorf("template %s: unknown generator kind %q", path, kind)
	}

	if err := o.errs.ErrorOrNil(); err != nil {
		return maker.Value{}, err
	}
	return maker.Gen(m), nil
}

// optReader pulls typed options out of a generator spec, collecting every
// type mismatch instead of stopping at the first.
type optReader struct {
	path string
	spec map[string]any
	errs *multierror.Error
}

func (o *optReader) int64Or(key string, def int64) int64 {
	raw, ok := o.spec[key]
	if !ok {
		return def
	}
	f, ok := raw.(float64)
	if !ok || f != float64(int64(f)) {
		o.errs = multierror.Append(o.errs,
			fmt.Errorf("template %s: option %q must be an integer, got %v", o.path, key, raw))
		return def
	}
	return int64(f)
}

func (o *optReader) floatOr(key string, def float64) float64 {
	raw, ok := o.spec[key]
	if !ok {
		return def
	}
	f, ok := raw.(float64)
	if !ok {
		o.errs = multierror.Append(o.errs,
			fmt.Errorf("template %s: option %q must be a number, got %v", o.path, key, raw))
		return def
	}
	return f
}

func (o *optReader) stringOr(key, def string) string {
	raw, ok := o.spec[key]
	if !ok {
		return def
	}
	s, ok := raw.(string)
	if !ok {
		o.errs = multierror.Append(o.errs,
			fmt.Errorf("template %s: option %q must be a string, got %v", o.path, key, raw))
		return def
	}
	return s
}

func (o *optReader) boolOr(key string, def bool) bool {
	raw, ok := o.spec[key]
	if !ok {
		return def
	}
	b, ok := raw.(bool)
	if !ok {
		o.errs = multierror.Append(o.errs,
			fmt.Errorf("template %s: option %q must be a boolean, got %v", o.path, key, raw))
		return def
	}
	return b
}

func (o *optReader) timeOr(key string, def time.Time) time.Time {
	raw, ok := o.spec[key]
	if !ok {
		return def
	}
	s, ok := raw.(string)
	if !ok {
		o.errs = multierror.Append(o.errs,
			fmt.Errorf("template %s: option %q must be a date string, got %v", o.path, key, raw))
		return def
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		o.errs = multierror.Append(o.errs,
			fmt.Errorf("template %s: option %q: %w", o.path, key, err))
		return def
	}
	return t
}

// countRange reads either a fixed "count" or a "min"/"max" pair.
func (o *optReader) countRange() combine.CountRange {
	if _, ok := o.spec["count"]; ok {
		return combine.Exactly(o.int64Or("count", 1))
	}
	return combine.Between(o.int64Or("min", 1), o.int64Or("max", 1))
}

func (o *optReader) values(key string) ([]maker.Value, error) {
	raw, ok := o.spec[key]
	if !ok {
		return nil, fmt.Errorf("template %s: missing %q list", o.path, key)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("template %s: %q must be a list", o.path, key)
	}

	var errs *multierror.Error
	values := make([]maker.Value, 0, len(list))
	for i, elem := range list {
		v, err := compileNode(fmt.Sprintf("%s.%s[%d]", o.path, key, i), elem)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		values = append(values, v)
	}
	return values, errs.ErrorOrNil()
}

// weightedEntries reads "of": a list of {"p": probability, "of": node}
// objects; "p" may be omitted to share the remainder.
func (o *optReader) weightedEntries() ([]combine.Weighted, error) {
	raw, ok := o.spec["of"]
	if !ok {
		return nil, fmt.Errorf("template %s: missing \"of\" list", o.path)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("template %s: \"of\" must be a list", o.path)
	}

	var errs *multierror.Error
	entries := make([]combine.Weighted, 0, len(list))
	for i, elem := range list {
		entryPath := fmt.Sprintf("%s.of[%d]", o.path, i)
		obj, ok := elem.(map[string]any)
		if !ok {
			errs = multierror.Append(errs,
				fmt.Errorf("template %s: weighted entry must be an object", entryPath))
			continue
		}
		v, err := compileNode(entryPath+".of", obj["of"])
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if rawP, ok := obj["p"]; ok {
			p, ok := rawP.(float64)
			if !ok {
				errs = multierror.Append(errs,
					fmt.Errorf("template %s: \"p\" must be a number, got %v", entryPath, rawP))
				continue
			}
			entries = append(entries, combine.Weight(p, v))
		} else {
			entries = append(entries, combine.Unweighted(v))
		}
	}
	return entries, errs.ErrorOrNil()
}
