package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/lingEric/exceltool/pkg/exceltool/coerce"
)

// TagName is the struct tag key read by FromStruct.
//
//	type Student struct {
//		_      struct{} `excel:"export" title:"Student roster"`
//		Name   string   `excel:"name=name,import=0"`
//		Grades []int    `excel:"name=grades,width=800,getter=GradeString"`
//	}
//
// Recognized options: name (export header), width, import (0-based cell),
// getter and setter (method names), translate.
const TagName = "excel"

// TitleTag holds the title on the export marker field.
const TitleTag = "title"

var (
	cache sync.Map // reflect.Type -> *Schema[T]
	group singleflight.Group
)

// Of returns the tag-derived schema for T, extracting it on first use.
// Concurrent first calls share one extraction; the first stored schema
// wins and is returned to every later caller.
func Of[T any]() (*Schema[T], error) {
	t := reflect.TypeFor[T]()
	if v, ok := cache.Load(t); ok {
		return v.(*Schema[T]), nil
	}
	v, err, _ := group.Do(fmt.Sprintf("%v@%p", t, t), func() (any, error) {
		if v, ok := cache.Load(t); ok {
			return v, nil
		}
		s, err := FromStruct[T]()
		if err != nil {
			return nil, err
		}
		actual, _ := cache.LoadOrStore(t, s)
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Schema[T]), nil
}

type tagSpec struct {
	name      string
	exported  bool
	width     int
	importIdx int
	imported  bool
	getter    string
	setter    string
	translate bool
}

// FromStruct extracts a schema from the excel tags of T without caching.
func FromStruct[T any]() (*Schema[T], error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, newError[T]("", ErrNotStruct)
	}

	var (
		title      string
		exportable bool
		cols       []Column[T]
	)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup(TagName)
		if !ok || tag == "-" {
			continue
		}

		if sf.Name == "_" {
			if tag != "export" {
				return nil, newError[T]("_", fmt.Errorf("%w: marker field expects %q, got %q", ErrBadTag, "export", tag))
			}
			exportable = true
			title = sf.Tag.Get(TitleTag)
			continue
		}
		if !sf.IsExported() {
			return nil, newError[T](sf.Name, ErrUnexportedField)
		}

		spec, err := parseTag(tag)
		if err != nil {
			return nil, newError[T](sf.Name, err)
		}
		col, err := tagColumn[T](t, sf, spec)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return assemble[T](title, exportable, nil, cols)
}

func parseTag(tag string) (tagSpec, error) {
	spec := tagSpec{importIdx: NoImport}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		switch key {
		case "translate":
			spec.translate = true
		case "name":
			spec.exported = true
			spec.name = value
		case "width":
			w, err := strconv.Atoi(value)
			if err != nil {
				return spec, fmt.Errorf("%w: width %q", ErrBadTag, value)
			}
			spec.width = w
		case "import":
			n, err := strconv.Atoi(value)
			if err != nil {
				return spec, fmt.Errorf("%w: import %q", ErrBadTag, value)
			}
			if n < 0 {
				return spec, fmt.Errorf("%w: %d", ErrNegativeImportIndex, n)
			}
			spec.imported = true
			spec.importIdx = n
		case "getter":
			spec.getter = value
		case "setter":
			spec.setter = value
		default:
			return spec, fmt.Errorf("%w: unknown option %q", ErrBadTag, key)
		}
		if !hasValue && key != "translate" {
			return spec, fmt.Errorf("%w: option %q needs a value", ErrBadTag, key)
		}
	}
	return spec, nil
}

// tagColumn builds a column whose accessors go through reflection on the
// field index resolved here, once.
func tagColumn[T any](t reflect.Type, sf reflect.StructField, spec tagSpec) (Column[T], error) {
	idx := sf.Index
	col := Column[T]{
		Name:         spec.name,
		Width:        spec.width,
		Translatable: spec.translate,
		ImportIndex:  spec.importIdx,
		Field:        sf.Name,
		Type:         sf.Type,
		exported:     spec.exported,
		read: func(rec *T) any {
			return reflect.ValueOf(rec).Elem().FieldByIndex(idx).Interface()
		},
		assign: func(rec *T, r coerce.Result) error {
			f := reflect.ValueOf(rec).Elem().FieldByIndex(idx)
			return assignValue(f, r.Value)
		},
	}
	if col.Width <= 0 {
		col.Width = DefaultWidth
	}

	pt := reflect.PointerTo(t)
	if spec.getter != "" {
		m, ok := pt.MethodByName(spec.getter)
		if !ok || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			return col, newError[T](sf.Name, fmt.Errorf("%w: getter %s must take no arguments and return one value", ErrMethod, spec.getter))
		}
		col.override = func(rec *T) any {
			return m.Func.Call([]reflect.Value{reflect.ValueOf(rec)})[0].Interface()
		}
	}
	if spec.setter != "" {
		setter, err := methodSetter[T](pt, spec.setter)
		if err != nil {
			return col, newError[T](sf.Name, err)
		}
		col.setter = setter
	}
	return col, nil
}

var errorType = reflect.TypeFor[error]()

// methodSetter wraps a method of shape func(*T, V) or func(*T, V) error.
func methodSetter[T any](pt reflect.Type, name string) (func(*T, coerce.Result) error, error) {
	m, ok := pt.MethodByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: setter %s not found", ErrMethod, name)
	}
	mt := m.Type
	if mt.NumIn() != 2 || mt.NumOut() > 1 || (mt.NumOut() == 1 && mt.Out(0) != errorType) {
		return nil, fmt.Errorf("%w: setter %s must take one argument and return nothing or an error", ErrMethod, name)
	}
	param := mt.In(1)
	return func(rec *T, r coerce.Result) error {
		v := reflect.ValueOf(r.Value)
		if !v.IsValid() {
			v = reflect.Zero(param)
		}
		if !v.Type().AssignableTo(param) {
			return fmt.Errorf("%w: %v into setter %s(%v)", ErrAssign, v.Type(), name, param)
		}
		out := m.Func.Call([]reflect.Value{reflect.ValueOf(rec), v})
		if len(out) == 1 && !out[0].IsNil() {
			return out[0].Interface().(error)
		}
		return nil
	}, nil
}

func assignValue(f reflect.Value, value any) error {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		f.Set(reflect.Zero(f.Type()))
		return nil
	}
	if !v.Type().AssignableTo(f.Type()) {
		return fmt.Errorf("%w: %v into %v", ErrAssign, v.Type(), f.Type())
	}
	f.Set(v)
	return nil
}
