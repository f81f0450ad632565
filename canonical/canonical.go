// Package canonical turns arbitrary structured values into a stable byte
// encoding. Two structurally equal values always encode to the same bytes,
// regardless of map key declaration or insertion order, so the encoding can
// serve as a hashing identity for a value.
//
// The encoding is type-tagged and length-prefixed: the number 1, the string
// "1" and the boolean true can never collide.
package canonical

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
)

var (
	// ErrUnsupported is returned when a value contains something outside the
	// supported structural domain (functions, channels, complex numbers, ...).
	ErrUnsupported = errors.New("value cannot be canonically encoded")

	// ErrCycle is returned when a value references itself, directly or
	// through any number of containers.
	ErrCycle = errors.New("value contains a cyclic reference")
)

// Type tags. Each value is encoded as its tag byte followed by a
// tag-specific payload.
const (
	tagNull   = 'z'
	tagFalse  = 'f'
	tagTrue   = 't'
	tagInt    = 'i' // 8 byte big endian two's complement
	tagUint   = 'u' // 8 byte big endian, only for values above MaxInt64
	tagFloat  = 'd' // 8 byte IEEE 754 bits
	tagString = 's' // 8 byte length prefix + raw bytes
	tagList   = 'l' // 8 byte count prefix + encoded elements
	tagMap    = 'm' // 8 byte count prefix + sorted (key, value) pairs
)

// Marshal encodes v canonically. The supported domain is: nil, booleans,
// strings, all integer and float kinds, and arbitrarily nested slices,
// arrays, and maps with string keys (pointers and interfaces are followed).
func Marshal(v any) ([]byte, error) {
	e := encoder{seen: make(map[uintptr]struct{})}
	if err := e.encode(reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	return e.buf, nil
}

type encoder struct {
	buf  []byte
	seen map[uintptr]struct{}
}

func (e *encoder) encode(rv reflect.Value) error {
	if !rv.IsValid() {
		e.buf = append(e.buf, tagNull)
		return nil
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			e.buf = append(e.buf, tagNull)
			return nil
		}
		if rv.Kind() == reflect.Pointer {
			return e.guarded(rv.Pointer(), rv.Elem())
		}
		return e.encode(rv.Elem())

	case reflect.Bool:
		if rv.Bool() {
			e.buf = append(e.buf, tagTrue)
		} else {
			e.buf = append(e.buf, tagFalse)
		}
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buf = append(e.buf, tagInt)
		e.putUint64(uint64(rv.Int()))
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			e.buf = append(e.buf, tagUint)
		} else {
			// Same tag as the signed kinds so int(1) and uint(1) agree.
			e.buf = append(e.buf, tagInt)
		}
		e.putUint64(u)
		return nil

	case reflect.Float32, reflect.Float64:
		// Non-finite values are permitted; their bit patterns are stable.
		e.buf = append(e.buf, tagFloat)
		e.putUint64(math.Float64bits(rv.Float()))
		return nil

	case reflect.String:
		e.buf = append(e.buf, tagString)
		s := rv.String()
		e.putUint64(uint64(len(s)))
		e.buf = append(e.buf, s...)
		return nil

	case reflect.Slice:
		if rv.IsNil() {
			e.buf = append(e.buf, tagNull)
			return nil
		}
		return e.guarded(rv.Pointer(), rv)

	case reflect.Array:
		return e.encodeList(rv)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("%w: map keyed by %s", ErrUnsupported, rv.Type().Key())
		}
		if rv.IsNil() {
			e.buf = append(e.buf, tagNull)
			return nil
		}
		return e.guarded(rv.Pointer(), rv)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, rv.Kind())
	}
}

// guarded encodes a container value while tracking its address so that a
// cyclic reference fails instead of recursing forever.
func (e *encoder) guarded(addr uintptr, rv reflect.Value) error {
	if _, ok := e.seen[addr]; ok {
		return ErrCycle
	}
	e.seen[addr] = struct{}{}
	defer delete(e.seen, addr)

	switch rv.Kind() {
	case reflect.Slice:
		return e.encodeList(rv)
	case reflect.Map:
		return e.encodeMap(rv)
	default:
		return e.encode(rv)
	}
}

func (e *encoder) encodeList(rv reflect.Value) error {
	e.buf = append(e.buf, tagList)
	e.putUint64(uint64(rv.Len()))
	for i := 0; i < rv.Len(); i++ {
		if err := e.encode(rv.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encodeMap(rv reflect.Value) error {
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	e.buf = append(e.buf, tagMap)
	e.putUint64(uint64(len(keys)))
	for _, k := range keys {
		e.buf = append(e.buf, tagString)
		e.putUint64(uint64(len(k)))
		e.buf = append(e.buf, k...)
		if err := e.encode(rv.MapIndex(reflect.ValueOf(k))); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) putUint64(u uint64) {
	e.buf = binary.BigEndian.AppendUint64(e.buf, u)
}
