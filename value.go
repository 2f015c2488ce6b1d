package glidejson

import (
	"fmt"
	"strconv"
)

// Type is the tag of a Value's current payload.
type Type int

// The seven shapes a Value can take.
const (
	Null Type = iota
	Error
	Boolean
	Number
	String
	Array
	Object
	numTypes
)

var typeNames = [numTypes]string{
	Error:   "error",
	Null:    "null",
	Boolean: "boolean",
	Number:  "number",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "unknown"
	}
	return typeNames[t]
}

// Value is a tagged union holding exactly one of the shapes documented
// on Type: Error(message), Null, Boolean(bool), Number(lexical text),
// String(UTF-8 bytes), Array([]*Value) or Object(*OrderedMap). A fresh
// zero Value is Null, matching the "fresh default value is Null"
// invariant.
//
// Assignment between two Values of the same tag only needs to copy the
// relevant payload field; assignment across tags replaces payload and
// tag together. Go's garbage collector retires the "double dispatch on
// assignment" and "shared/ref-counted key storage" concerns the
// original C++ implementation carried for this reason.
type Value struct {
	typ Type

	errMsg string
	b      bool
	num    string // preserved lexical form of a JSON number
	str    string
	arr    []*Value
	obj    *OrderedMap
}

// NewNull returns a Value of kind Null. Equivalent to new(Value).
func NewNull() *Value { return &Value{typ: Null} }

// NewError returns a Value of kind Error carrying msg as its diagnostic.
func NewError(msg string) *Value { return &Value{typ: Error, errMsg: msg} }

// NewBoolean returns a Value of kind Boolean.
func NewBoolean(b bool) *Value { return &Value{typ: Boolean, b: b} }

// NewNumber returns a Value of kind Number. text must already match
// the JSON number grammar; NewNumber does not validate it (use Parse
// for that) since it exists to let callers build trees directly.
func NewNumber(text string) *Value { return &Value{typ: Number, num: text} }

// NewInt returns a Value of kind Number from an integer.
func NewInt(n int64) *Value { return &Value{typ: Number, num: strconv.FormatInt(n, 10)} }

// NewFloat returns a Value of kind Number from a float64, formatted in
// the shortest form that round-trips.
func NewFloat(f float64) *Value { return &Value{typ: Number, num: strconv.FormatFloat(f, 'g', -1, 64)} }

// NewString returns a Value of kind String. s must be well-formed
// UTF-8; callers parsing untrusted bytes should go through
// EncodeString/Parse instead of constructing directly.
func NewString(s string) *Value { return &Value{typ: String, str: s} }

// NewArray returns a Value of kind Array wrapping elems. The slice is
// taken by reference, not copied.
func NewArray(elems ...*Value) *Value {
	if elems == nil {
		elems = []*Value{}
	}
	return &Value{typ: Array, arr: elems}
}

// NewObject returns a Value of kind Object wrapping an empty OrderedMap.
func NewObject() *Value {
	return &Value{typ: Object, obj: NewOrderedMap()}
}

// Type reports the current tag.
func (v *Value) Type() Type {
	if v == nil {
		return Null
	}
	return v.typ
}

func (v *Value) IsNull() bool    { return v.Type() == Null }
func (v *Value) IsError() bool   { return v.Type() == Error }
func (v *Value) IsBoolean() bool { return v.Type() == Boolean }
func (v *Value) IsNumber() bool  { return v.Type() == Number }
func (v *Value) IsString() bool  { return v.Type() == String }
func (v *Value) IsArray() bool   { return v.Type() == Array }
func (v *Value) IsObject() bool  { return v.Type() == Object }

func (v *Value) NotNull() bool    { return !v.IsNull() }
func (v *Value) NotError() bool   { return !v.IsError() }
func (v *Value) NotBoolean() bool { return !v.IsBoolean() }
func (v *Value) NotNumber() bool  { return !v.IsNumber() }
func (v *Value) NotString() bool  { return !v.IsString() }
func (v *Value) NotArray() bool   { return !v.IsArray() }
func (v *Value) NotObject() bool  { return !v.IsObject() }

func wrongType(want Type, v *Value) error {
	return fmt.Errorf("%w: want %s, have %s", ErrType, want, v.Type())
}

// AsError returns the diagnostic message of an Error value.
func (v *Value) AsError() (string, error) {
	if !v.IsError() {
		return "", wrongType(Error, v)
	}
	return v.errMsg, nil
}

// AsBoolean returns the payload of a Boolean value.
func (v *Value) AsBoolean() (bool, error) {
	if !v.IsBoolean() {
		return false, wrongType(Boolean, v)
	}
	return v.b, nil
}

// AsNumber returns the preserved lexical form of a Number value. The
// text always matches the JSON number grammar; it is never normalized.
func (v *Value) AsNumber() (string, error) {
	if !v.IsNumber() {
		return "", wrongType(Number, v)
	}
	return v.num, nil
}

// AsString returns the payload of a String value.
func (v *Value) AsString() (string, error) {
	if !v.IsString() {
		return "", wrongType(String, v)
	}
	return v.str, nil
}

// AsArray returns the backing slice of an Array value. Mutating the
// returned slice's elements mutates the Value.
func (v *Value) AsArray() ([]*Value, error) {
	if !v.IsArray() {
		return nil, wrongType(Array, v)
	}
	return v.arr, nil
}

// AsObject returns the backing OrderedMap of an Object value.
func (v *Value) AsObject() (*OrderedMap, error) {
	if !v.IsObject() {
		return nil, wrongType(Object, v)
	}
	return v.obj, nil
}

// Int64 parses a Number's lexical form as a base-10 integer. It never
// mutates the stored text; conversion is always computed on demand, as
// spec'd for the out-of-scope "numeric conversion helpers" layer.
func (v *Value) Int64() (int64, error) {
	text, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(text, 10, 64)
}

// Uint64 parses a Number's lexical form as a base-10 unsigned integer.
func (v *Value) Uint64() (uint64, error) {
	text, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(text, 10, 64)
}

// Float64 parses a Number's lexical form as a float64.
func (v *Value) Float64() (float64, error) {
	text, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(text, 64)
}

// ToNull replaces the payload and tag atomically, turning v into Null.
func (v *Value) ToNull() { *v = Value{typ: Null} }

// ToBoolean replaces the payload and tag atomically.
func (v *Value) ToBoolean(b bool) { *v = Value{typ: Boolean, b: b} }

// ToNumber replaces the payload and tag atomically.
func (v *Value) ToNumber(text string) { *v = Value{typ: Number, num: text} }

// ToString replaces the payload and tag atomically.
func (v *Value) ToString(s string) { *v = Value{typ: String, str: s} }

// ToArray replaces the payload and tag atomically.
func (v *Value) ToArray(elems []*Value) {
	if elems == nil {
		elems = []*Value{}
	}
	*v = Value{typ: Array, arr: elems}
}

// ToObject replaces the payload and tag atomically, installing m (or a
// fresh OrderedMap if m is nil) as the backing store.
func (v *Value) ToObject(m *OrderedMap) {
	if m == nil {
		m = NewOrderedMap()
	}
	*v = Value{typ: Object, obj: m}
}

// Index is a fluent accessor for array members: returns the element at
// i, or a Null value if v is not an Array or i is out of range, never
// failing with an error.
func (v *Value) Index(i int) *Value {
	if !v.IsArray() || i < 0 || i >= len(v.arr) {
		return NewNull()
	}
	return v.arr[i]
}

// Key is a fluent accessor for object members: returns the value at k,
// or a Null value if v is not an Object or k is absent.
func (v *Value) Key(k string) *Value {
	if !v.IsObject() {
		return NewNull()
	}
	if val, ok := v.obj.Get(k); ok {
		return val
	}
	return NewNull()
}

// Len reports the number of elements in an Array or Object, and 0 for
// any other kind.
func (v *Value) Len() int {
	switch v.Type() {
	case Array:
		return len(v.arr)
	case Object:
		return v.obj.Size()
	default:
		return 0
	}
}
