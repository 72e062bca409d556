// Package fingerprint computes canonical structural digests of arbitrary
// values.
//
// The digest is used as the identity key by the set operations in seq and
// the grouping operations in funcs: two values receive the same key exactly
// when they are structurally equal (same shape and same scalar leaves),
// including nested sequences and maps. A stringified key
// (fmt.Sprintf("%v")) is not good enough here because distinct structures
// can render identically: []any{"1 2"} and []any{1, 2} both print as
// "[1 2]".
//
// Scalars are normalized before hashing: every integer width collapses to
// int64, floats that hold integral values hash identically to the matching
// integer, so 2, int8(2) and 2.0 share a key, matching the loosely typed
// sequences this library operates on.
package fingerprint

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// Tags separating value kinds inside the hash stream. Distinct tags keep
// e.g. the string "true" apart from the bool true.
const (
	tagNil    = 0x00
	tagBool   = 0x01
	tagInt    = 0x02
	tagFloat  = 0x03
	tagString = 0x04
	tagSeq    = 0x05
	tagMap    = 0x06
	tagOther  = 0x07
)

// Key returns the canonical digest of v as a raw 32-byte string, suitable
// for use as a map key.
func Key(v any) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for oversized keys; nil never does.
		panic(err)
	}
	w := writer{h: h}
	w.value(v)
	return string(h.Sum(nil))
}

// Equal reports whether a and b are structurally equal under Key.
func Equal(a, b any) bool { return Key(a) == Key(b) }

type writer struct {
	h interface{ Write(p []byte) (int, error) }
}

func (w writer) raw(p []byte) { _, _ = w.h.Write(p) }

func (w writer) tag(t byte) { w.raw([]byte{t}) }

func (w writer) u64(n uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	w.raw(buf[:])
}

func (w writer) str(s string) {
	w.u64(uint64(len(s)))
	w.raw([]byte(s))
}

func (w writer) value(v any) {
	if v == nil {
		w.tag(tagNil)
		return
	}
	switch x := v.(type) {
	case bool:
		w.tag(tagBool)
		if x {
			w.u64(1)
		} else {
			w.u64(0)
		}
		return
	case string:
		w.tag(tagString)
		w.str(x)
		return
	case int:
		w.integer(int64(x))
		return
	case int8:
		w.integer(int64(x))
		return
	case int16:
		w.integer(int64(x))
		return
	case int32:
		w.integer(int64(x))
		return
	case int64:
		w.integer(x)
		return
	case uint:
		w.unsigned(uint64(x))
		return
	case uint8:
		w.integer(int64(x))
		return
	case uint16:
		w.integer(int64(x))
		return
	case uint32:
		w.integer(int64(x))
		return
	case uint64:
		w.unsigned(x)
		return
	case float32:
		w.float(float64(x))
		return
	case float64:
		w.float(x)
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		w.tag(tagSeq)
		w.u64(uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			w.value(rv.Index(i).Interface())
		}
	case reflect.Map:
		// Entries are hashed in a deterministic order: each entry is
		// digested independently, the digests sorted, then folded in.
		w.tag(tagMap)
		w.u64(uint64(rv.Len()))
		entries := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, Key([]any{
				iter.Key().Interface(),
				iter.Value().Interface(),
			}))
		}
		sort.Strings(entries)
		for _, e := range entries {
			w.str(e)
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			w.tag(tagNil)
			return
		}
		w.value(rv.Elem().Interface())
	default:
		w.tag(tagOther)
		w.str(fmt.Sprintf("%T:%v", v, v))
	}
}

func (w writer) integer(n int64) {
	w.tag(tagInt)
	w.u64(uint64(n))
}

// unsigned folds uint64s that fit in int64 into the integer space so that
// uint64(2) and int(2) share a key; the overflow range keeps its own tag.
func (w writer) unsigned(n uint64) {
	if n <= math.MaxInt64 {
		w.integer(int64(n))
		return
	}
	w.tag(tagOther)
	w.str(fmt.Sprintf("uint64:%d", n))
}

func (w writer) float(f float64) {
	// Integral floats hash as integers: 2.0 == 2.
	if f == math.Trunc(f) && !math.IsInf(f, 0) &&
		f >= math.MinInt64 && f <= math.MaxInt64 {
		w.integer(int64(f))
		return
	}
	w.tag(tagFloat)
	w.u64(math.Float64bits(f))
}
