package memo

import (
	"cmp"
	"encoding/json"
	"fmt"
	"pipekit/fn"
	"reflect"
	"slices"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// maxKeyDepth bounds the nesting walked when normalizing composite arguments.
const maxKeyDepth = 64

// stableJSON serializes json.Marshaler arguments.
var stableJSON = jsoniter.Config{
	SortMapKeys:            true,
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// Keyer lets an argument choose its own cache key.
type Keyer interface {
	MemoKey() string
}

// KeyFunc turns call arguments into a cache key.
type KeyFunc func(positional []any, keywords []fn.Keyword) (string, error)

// ArgsKey is the default KeyFunc. Two calls get the same key when their positional
// arguments are equal in order and their keyword arguments are equal regardless of
// order.
//
// Every value is encoded together with its dynamic type, so 1, int64(1) and 1.0
// differ, also inside slices and maps of interfaces. Maps are encoded in key order and
// pointers by the value they point to. A Keyer supplies its own key, and a
// json.Marshaler is serialized through its JSON form.
//
// Arguments that cannot be encoded faithfully fail with ErrUnhashableArguments:
// functions, channels, unsafe pointers, cyclic values, and structs with unexported
// fields that are neither a Keyer nor a json.Marshaler.
func ArgsKey(positional []any, keywords []fn.Keyword) (string, error) {
	var b strings.Builder
	for i, a := range positional {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := encodeArg(&b, a); err != nil {
			return "", fmt.Errorf("argument %d: %w", i, err)
		}
	}

	if len(keywords) > 0 {
		kws := slices.Clone(keywords)
		// later keywords win, as in a call
		slices.SortStableFunc(kws, func(a, b fn.Keyword) int { return cmp.Compare(a.Name, b.Name) })
		kws = compactKeywords(kws)

		b.WriteByte(';')
		for i, kw := range kws {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(kw.Name)
			b.WriteByte('=')
			if err := encodeArg(&b, kw.Value); err != nil {
				return "", fmt.Errorf("keyword %q: %w", kw.Name, err)
			}
		}
	}
	return b.String(), nil
}

// compactKeywords keeps the last of each run of equally named keywords.
func compactKeywords(kws []fn.Keyword) []fn.Keyword {
	out := kws[:0]
	for i, kw := range kws {
		if i+1 < len(kws) && kws[i+1].Name == kw.Name {
			continue
		}
		out = append(out, kw)
	}
	return out
}

func encodeArg(b *strings.Builder, a any) error {
	e := keyEncoder{b: b, path: make(map[uintptr]struct{})}
	return e.encode(reflect.ValueOf(a), 0)
}

var (
	keyerType     = reflect.TypeFor[Keyer]()
	marshalerType = reflect.TypeFor[json.Marshaler]()
)

// keyEncoder writes a canonical, typed form of a value. Every node carries its
// dynamic type, so values held in interfaces cannot collide across types.
// path holds the references on the way down, to detect cycles.
type keyEncoder struct {
	b    *strings.Builder
	path map[uintptr]struct{}
}

func (e *keyEncoder) encode(v reflect.Value, depth int) error {
	if depth > maxKeyDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrUnhashableArguments, maxKeyDepth)
	}
	if !v.IsValid() {
		e.b.WriteString("nil")
		return nil
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			e.b.WriteString("nil")
			return nil
		}
		return e.encode(v.Elem(), depth+1)
	}

	t := v.Type()
	if v.CanInterface() && !(v.Kind() == reflect.Pointer && v.IsNil()) {
		switch {
		case t.Implements(keyerType):
			fmt.Fprintf(e.b, "%s{%q}", t, v.Interface().(Keyer).MemoKey())
			return nil
		case t.Implements(marshalerType):
			s, err := stableJSON.MarshalToString(v.Interface())
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrUnhashableArguments, t, err)
			}
			fmt.Fprintf(e.b, "%s%s", t, s)
			return nil
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		fmt.Fprintf(e.b, "%s(%t)", t, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fmt.Fprintf(e.b, "%s(%d)", t, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		fmt.Fprintf(e.b, "%s(%d)", t, v.Uint())
	case reflect.Float32, reflect.Float64:
		fmt.Fprintf(e.b, "%s(%s)", t, strconv.FormatFloat(v.Float(), 'g', -1, t.Bits()))
	case reflect.Complex64, reflect.Complex128:
		fmt.Fprintf(e.b, "%s%v", t, v.Complex())
	case reflect.String:
		fmt.Fprintf(e.b, "%s(%q)", t, v.String())

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Errorf("%w: %s", ErrUnhashableArguments, t)

	case reflect.Pointer:
		if v.IsNil() {
			fmt.Fprintf(e.b, "%s(nil)", t)
			return nil
		}
		return e.ref(v, func() error {
			e.b.WriteByte('&')
			return e.encode(v.Elem(), depth+1)
		})

	case reflect.Slice:
		if v.IsNil() {
			fmt.Fprintf(e.b, "%s(nil)", t)
			return nil
		}
		return e.ref(v, func() error { return e.elems(v, depth) })

	case reflect.Array:
		return e.elems(v, depth)

	case reflect.Map:
		if v.IsNil() {
			fmt.Fprintf(e.b, "%s(nil)", t)
			return nil
		}
		return e.ref(v, func() error { return e.entries(v, depth) })

	case reflect.Struct:
		fmt.Fprintf(e.b, "%s{", t)
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				return fmt.Errorf("%w: %s has unexported field %s", ErrUnhashableArguments, t, f.Name)
			}
			if i > 0 {
				e.b.WriteByte(',')
			}
			e.b.WriteString(f.Name)
			e.b.WriteByte(':')
			if err := e.encode(v.Field(i), depth+1); err != nil {
				return err
			}
		}
		e.b.WriteByte('}')

	default:
		return fmt.Errorf("%w: %s", ErrUnhashableArguments, t)
	}
	return nil
}

// ref encodes a pointer, slice or map, failing if it is already on the path.
// Empty slices may share an address with their neighbours and are never cycles.
func (e *keyEncoder) ref(v reflect.Value, body func() error) error {
	p := v.Pointer()
	if _, seen := e.path[p]; seen && (v.Kind() != reflect.Slice || v.Len() > 0) {
		return fmt.Errorf("%w: cyclic %s", ErrUnhashableArguments, v.Type())
	}
	e.path[p] = struct{}{}
	defer delete(e.path, p)
	return body()
}

func (e *keyEncoder) elems(v reflect.Value, depth int) error {
	fmt.Fprintf(e.b, "%s[", v.Type())
	for i := range v.Len() {
		if i > 0 {
			e.b.WriteByte(',')
		}
		if err := e.encode(v.Index(i), depth+1); err != nil {
			return err
		}
	}
	e.b.WriteByte(']')
	return nil
}

// entries writes map entries sorted by their encoded keys.
func (e *keyEncoder) entries(v reflect.Value, depth int) error {
	type entry struct{ k, v string }
	out := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k, err := e.sub(iter.Key(), depth+1)
		if err != nil {
			return err
		}
		val, err := e.sub(iter.Value(), depth+1)
		if err != nil {
			return err
		}
		out = append(out, entry{k, val})
	}
	slices.SortFunc(out, func(a, b entry) int { return cmp.Compare(a.k, b.k) })

	fmt.Fprintf(e.b, "%s{", v.Type())
	for i, en := range out {
		if i > 0 {
			e.b.WriteByte(',')
		}
		e.b.WriteString(en.k)
		e.b.WriteByte(':')
		e.b.WriteString(en.v)
	}
	e.b.WriteByte('}')
	return nil
}

func (e *keyEncoder) sub(v reflect.Value, depth int) (string, error) {
	outer := e.b
	var b strings.Builder
	e.b = &b
	err := e.encode(v, depth)
	e.b = outer
	return b.String(), err
}
