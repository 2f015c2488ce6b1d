package glidejson

import "strings"

// JSON Emitter (C7). Walks a *Value tree and renders it back to JSON
// text, using EncodeString for every string literal (so emitted output
// is always syntactically valid and UTF-8-clean regardless of what a
// caller stuffed into a String value by hand) and the Number's
// preserved lexical text verbatim, never round-tripping it through a
// float.

// IndentStyle selects one of MarshalIndent's four pretty-printing
// variants: a unit of indentation (space or tab) crossed with a line
// terminator (LF or CRLF), matching spec.md section 4.7.
type IndentStyle struct {
	Unit string // one level of indentation, e.g. "  " or "\t"
	EOL  string // line terminator, e.g. "\n" or "\r\n"
}

var (
	// IndentSpacesLF is two spaces per level, LF line endings.
	IndentSpacesLF = IndentStyle{Unit: "  ", EOL: "\n"}
	// IndentTabsLF is one tab per level, LF line endings.
	IndentTabsLF = IndentStyle{Unit: "\t", EOL: "\n"}
	// IndentSpacesCRLF is two spaces per level, CRLF line endings.
	IndentSpacesCRLF = IndentStyle{Unit: "  ", EOL: "\r\n"}
	// IndentTabsCRLF is one tab per level, CRLF line endings.
	IndentTabsCRLF = IndentStyle{Unit: "\t", EOL: "\r\n"}
)

// Marshal renders v as compact JSON text: no whitespace between
// tokens other than what a string literal itself contains.
func Marshal(v *Value) string {
	var out strings.Builder
	emitCompact(&out, v)
	return out.String()
}

// MarshalIndent renders v as JSON text indented per style, with one
// member or element per line.
func MarshalIndent(v *Value, style IndentStyle) string {
	var out strings.Builder
	emitIndented(&out, v, style, 0)
	return out.String()
}

func emitCompact(out *strings.Builder, v *Value) {
	switch v.Type() {
	case Error:
		// An Error value has no JSON representation; emit it as a
		// string carrying its diagnostic rather than panic, since
		// Marshal has no error return (spec.md section 4.7).
		out.WriteString(EncodeString([]byte(v.errMsg)))
	case Null:
		out.WriteString("null")
	case Boolean:
		if v.b {
			out.WriteString("true")
		} else {
			out.WriteString("false")
		}
	case Number:
		out.WriteString(v.num)
	case String:
		out.WriteString(EncodeString([]byte(v.str)))
	case Array:
		out.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				out.WriteByte(',')
			}
			emitCompact(out, e)
		}
		out.WriteByte(']')
	case Object:
		out.WriteByte('{')
		first := true
		v.obj.Range(func(k string, val *Value) bool {
			if !first {
				out.WriteByte(',')
			}
			first = false
			out.WriteString(EncodeString([]byte(k)))
			out.WriteByte(':')
			emitCompact(out, val)
			return true
		})
		out.WriteByte('}')
	}
}

func emitIndented(out *strings.Builder, v *Value, style IndentStyle, depth int) {
	switch v.Type() {
	case Array:
		if len(v.arr) == 0 {
			out.WriteString("[]")
			return
		}
		out.WriteByte('[')
		out.WriteString(style.EOL)
		for i, e := range v.arr {
			writeIndent(out, style, depth+1)
			emitIndented(out, e, style, depth+1)
			if i < len(v.arr)-1 {
				out.WriteByte(',')
			}
			out.WriteString(style.EOL)
		}
		writeIndent(out, style, depth)
		out.WriteByte(']')
	case Object:
		if v.obj.Size() == 0 {
			out.WriteString("{}")
			return
		}
		out.WriteByte('{')
		out.WriteString(style.EOL)
		keys := v.obj.Keys()
		for i, k := range keys {
			val, _ := v.obj.Get(k)
			writeIndent(out, style, depth+1)
			out.WriteString(EncodeString([]byte(k)))
			out.WriteString(": ")
			emitIndented(out, val, style, depth+1)
			if i < len(keys)-1 {
				out.WriteByte(',')
			}
			out.WriteString(style.EOL)
		}
		writeIndent(out, style, depth)
		out.WriteByte('}')
	default:
		emitCompact(out, v)
	}
}

func writeIndent(out *strings.Builder, style IndentStyle, depth int) {
	for i := 0; i < depth; i++ {
		out.WriteString(style.Unit)
	}
}
