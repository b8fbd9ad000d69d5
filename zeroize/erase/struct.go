package erase

import (
	"errors"
	"reflect"
	"unsafe"

	"github.com/LerianStudio/lib-zeroize/zeroize"
	"github.com/LerianStudio/lib-zeroize/zeroize/wipe"
)

// ErrNotStructPointer is returned when a reflection entry point is given a
// target that is not a non-nil pointer to a struct.
var ErrNotStructPointer = errors.New("target must be a non-nil pointer to a struct")

// Fields tagged `erase:"skip"` are excluded from aggregate erasure.
const (
	tagKey  = "erase"
	tagSkip = "skip"
)

type structConfig struct {
	skip          map[string]bool
	padding       bool
	sensitiveOnly bool
}

// StructOption configures Struct.
type StructOption func(*structConfig)

// SkipFields excludes the named top-level fields from erasure. Fields at any
// depth can alternatively carry the `erase:"skip"` tag. The default with no
// exclusions is to erase everything.
func SkipFields(names ...string) StructOption {
	return func(cfg *structConfig) {
		if cfg.skip == nil {
			cfg.skip = make(map[string]bool, len(names))
		}

		for _, name := range names {
			cfg.skip[name] = true
		}
	}
}

// WithPadding also overwrites alignment gaps between consecutive fields and
// trailing padding, at every nesting level. Padding can hold a bitwise copy
// of a secret when the compiler reuses stack or register slots.
func WithPadding() StructOption {
	return func(cfg *structConfig) {
		cfg.padding = true
	}
}

func sensitiveOnly() StructOption {
	return func(cfg *structConfig) {
		cfg.sensitiveOnly = true
	}
}

// Struct erases every field of the struct at target in declaration order,
// recursing into nested structs, arrays, slices, and non-nil pointers.
// Fields whose address implements zeroize.Erasable delegate to their own
// Erase. Unexported fields are erased like exported ones.
//
// Fields that cannot be erased are left alone: maps, channels, funcs, and
// interfaces without an Erasable dynamic value are opaque. A plain string
// field is reset to "" but its backing bytes are not wiped, because Go
// string data may alias read-only or shared storage; hold secret text in a
// Buffer, String, or []byte field instead.
//
// The only error is a target that is not a non-nil pointer to a struct;
// erasure itself cannot fail and is idempotent.
func Struct(target any, opts ...StructOption) error {
	var cfg structConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	v, err := structValue(target)
	if err != nil {
		return err
	}

	eraseStruct(v, &cfg, true)

	return nil
}

func structValue(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, ErrNotStructPointer
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, ErrNotStructPointer
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, ErrNotStructPointer
	}

	return v, nil
}

// eraseStruct walks v's fields in declaration order. v must be addressable.
func eraseStruct(v reflect.Value, cfg *structConfig, top bool) {
	t := v.Type()
	base := v.Addr().UnsafePointer()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if cfg.padding && i+1 < t.NumField() {
			end := field.Offset + field.Type.Size()
			if next := t.Field(i + 1).Offset; next > end {
				wipe.Span(unsafe.Add(base, end), next-end)
			}
		}

		if field.Tag.Get(tagKey) == tagSkip {
			continue
		}

		if top && cfg.skip[field.Name] {
			continue
		}

		// reflect.NewAt yields a settable view even for unexported fields.
		fv := reflect.NewAt(field.Type, unsafe.Add(base, field.Offset)).Elem()

		if cfg.sensitiveOnly {
			if !isSensitiveName(field.Name) {
				// Still descend into nested structs that may hold
				// sensitive fields of their own, without erasing
				// anything else here.
				descendSensitive(fv, cfg)

				continue
			}

			// A sensitive name covers the whole field: its subtree is
			// erased unconditionally, aggregate or not.
			sub := *cfg
			sub.sensitiveOnly = false
			eraseValue(fv, &sub)

			continue
		}

		eraseValue(fv, cfg)
	}

	if cfg.padding && t.NumField() > 0 {
		last := t.Field(t.NumField() - 1)
		end := last.Offset + last.Type.Size()

		if t.Size() > end {
			wipe.Span(unsafe.Add(base, end), t.Size()-end)
		}
	}
}

// descendSensitive walks into nested structs looking for sensitive field
// names, leaving everything else untouched.
func descendSensitive(v reflect.Value, cfg *structConfig) {
	switch v.Kind() {
	case reflect.Struct:
		eraseStruct(v, cfg, false)
	case reflect.Pointer:
		if !v.IsNil() && v.Elem().Kind() == reflect.Struct {
			eraseStruct(v.Elem(), cfg, false)
		}
	default:
	}
}

// eraseValue erases a single addressable value according to its kind.
func eraseValue(v reflect.Value, cfg *structConfig) {
	if v.CanAddr() {
		if er, ok := v.Addr().Interface().(zeroize.Erasable); ok {
			er.Erase()

			return
		}
	}

	switch v.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		wipe.Span(v.Addr().UnsafePointer(), v.Type().Size())
	case reflect.String:
		// Backing bytes are not wiped; see Struct.
		v.SetString("")
	case reflect.Array:
		eraseArray(v, cfg)
	case reflect.Slice:
		eraseSlice(v, cfg)
	case reflect.Pointer:
		if !v.IsNil() {
			eraseValue(v.Elem(), cfg)
		}
	case reflect.Struct:
		eraseStruct(v, cfg, false)
	case reflect.Interface:
		// The interface is the nearest Go shape to a variant aggregate:
		// erase the currently-active value when it carries the capability.
		if !v.IsNil() {
			if er, ok := v.Interface().(zeroize.Erasable); ok {
				er.Erase()
			}
		}
	default:
		// map, chan, func, unsafe.Pointer: opaque, no safe erasure.
	}
}

func eraseArray(v reflect.Value, cfg *structConfig) {
	if v.Len() == 0 {
		return
	}

	if isRawKind(v.Type().Elem().Kind()) {
		wipe.Span(v.Addr().UnsafePointer(), v.Type().Size())

		return
	}

	for i := 0; i < v.Len(); i++ {
		eraseValue(v.Index(i), cfg)
	}
}

func eraseSlice(v reflect.Value, cfg *structConfig) {
	if v.IsNil() || v.Cap() == 0 {
		return
	}

	elem := v.Type().Elem()
	if isRawKind(elem.Kind()) {
		// Pointer-free elements: wipe the whole backing array, spare
		// capacity included. Length is preserved, contents become zero.
		wipe.Span(v.UnsafePointer(), uintptr(v.Cap())*elem.Size())

		return
	}

	for i := 0; i < v.Len(); i++ {
		eraseValue(v.Index(i), cfg)
	}
}

// isRawKind reports whether values of kind k are pointer-free and can be
// erased by a raw overwrite of their storage.
func isRawKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
