package glidejson

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrimitives(t *testing.T) {
	for _, test := range []struct {
		input string
		typ   Type
	}{
		{`null`, Null},
		{`true`, Boolean},
		{`false`, Boolean},
		{`0`, Number},
		{`-0`, Number},
		{`42`, Number},
		{`-17.5`, Number},
		{`1e10`, Number},
		{`1.5E-3`, Number},
		{`"hello"`, String},
		{`[]`, Array},
		{`{}`, Object},
	} {
		v, err := ParseString(test.input)
		require.NoErrorf(t, err, "input %q", test.input)
		assert.Equalf(t, test.typ, v.Type(), "input %q", test.input)
	}
}

func TestParseNumberPreservesLexicalText(t *testing.T) {
	for _, text := range []string{"0", "-0", "42", "-17.500", "1e10", "1.5E-3", "100000000000000000000"} {
		v, err := ParseString(text)
		require.NoError(t, err)
		got, err := v.AsNumber()
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
}

func TestParseStringEscapes(t *testing.T) {
	v, err := ParseString(`"a\"b\\c\/d\be\ff\ng\rh\ti"`)
	require.NoError(t, err)
	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "a\"b\\c/d\be\ff\ng\rh\ti", s)
}

func TestParseUnicodeEscape(t *testing.T) {
	v, err := ParseString("\"\\u0041\\u00e9\\u65e5\"")
	require.NoError(t, err)
	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "Aé日", s)
}

func TestParseSurrogatePairEscape(t *testing.T) {
	// U+1F600 GRINNING FACE, written as a \uXXXX UTF-16 surrogate pair
	// instead of raw UTF-8. Per spec.md's strict-rejection resolution,
	// this library does not reassemble surrogate pairs: both halves are
	// rejected outright.
	_, err := ParseString(`"\ud83d\ude00"`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseLoneSurrogateEscapeRejected(t *testing.T) {
	_, err := ParseString(`"\ud800"`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseRawMultiByteUTF8InString(t *testing.T) {
	v, err := ParseString("\"caf\xc3\xa9\"")
	require.NoError(t, err)
	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "café", s)
}

func TestParseRejectsIllFormedUTF8InString(t *testing.T) {
	_, err := ParseString("\"\xc0\x80\"")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseNestedArrayAndObject(t *testing.T) {
	v, err := ParseString(`{"name": "The Beatles", "members": [{"name": "John"}, {"name": "Paul"}]}`)
	require.NoError(t, err)

	name, err := v.Key("name").AsString()
	require.NoError(t, err)
	assert.Equal(t, "The Beatles", name)

	assert.Equal(t, 2, v.Key("members").Len())

	first, err := v.Key("members").Index(0).Key("name").AsString()
	require.NoError(t, err)
	assert.Equal(t, "John", first)
}

func TestParseObjectPreservesKeyOrder(t *testing.T) {
	v, err := ParseString(`{"z": 1, "a": 2, "m": 3}`)
	require.NoError(t, err)
	obj, err := v.AsObject()
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestParseWhitespaceVariety(t *testing.T) {
	v, err := ParseString(" \t\r\n{ \"a\" : 1 ,\n\"b\":2}\t")
	require.NoError(t, err)
	n, err := v.Key("a").Int64()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestParseRejectsTrailingCommaInArray(t *testing.T) {
	_, err := ParseString(`[1, 2,]`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseRejectsTrailingCommaInObject(t *testing.T) {
	_, err := ParseString(`{"a": 1,}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseRejectsComments(t *testing.T) {
	_, err := ParseString("{\"a\": 1 /* comment */}")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseRejectsUnbalancedContainers(t *testing.T) {
	for _, input := range []string{`[1, 2`, `{"a": 1`, `[1, 2}`, `{"a":1]`, `]`, `}`} {
		_, err := ParseString(input)
		assert.Errorf(t, err, "input %q", input)
	}
}

func TestParseRejectsLeadingZero(t *testing.T) {
	_, err := ParseString(`01`)
	require.Error(t, err)
}

func TestParseRejectsBareControlCharInString(t *testing.T) {
	_, err := ParseString("\"a\nb\"")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseReportsOffsetOfFailure(t *testing.T) {
	_, err := ParseString(`{"a": tru}`)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Greater(t, perr.Offset, 0)
}

func TestParseReader(t *testing.T) {
	v, err := ParseReader(strings.NewReader(`[1, 2, 3]`))
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
}

func TestParseArrayTreeMatchesHandBuiltValue(t *testing.T) {
	// Deep structural comparison of a whole parsed *Value tree against
	// a hand-built one, where reflect.DeepEqual would choke on Value's
	// unexported fields.
	got, err := ParseString(`[1, "two", true, null, [3, 4]]`)
	require.NoError(t, err)

	want := NewArray(
		NewNumber("1"),
		NewString("two"),
		NewBoolean(true),
		NewNull(),
		NewArray(NewNumber("3"), NewNumber("4")),
	)

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Value{})); diff != "" {
		t.Errorf("parsed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReturnsErrorValueOnFailure(t *testing.T) {
	v, err := ParseString(`{not json}`)
	require.Error(t, err)
	assert.True(t, v.IsError())
	msg, merr := v.AsError()
	require.NoError(t, merr)
	assert.NotEmpty(t, msg)
}
