package glidejson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64EncodeRFC4648Vectors(t *testing.T) {
	// The classic test vectors from RFC 4648 section 10.
	for _, test := range []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"f", "Zg=="},
		{"fo", "Zm8="},
		{"foo", "Zm9v"},
		{"foob", "Zm9vYg=="},
		{"fooba", "Zm9vYmE="},
		{"foobar", "Zm9vYmFy"},
	} {
		assert.Equal(t, test.expected, Base64Encode([]byte(test.input)))
	}
}

func TestBase64DecodeRFC4648Vectors(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Zg==", "f"},
		{"Zm8=", "fo"},
		{"Zm9v", "foo"},
		{"Zm9vYg==", "foob"},
		{"Zm9vYmE=", "fooba"},
		{"Zm9vYmFy", "foobar"},
	} {
		out, err := Base64Decode(test.input)
		require.NoError(t, err)
		assert.Equal(t, test.expected, string(out))
	}
}

func TestBase64DecodeAcceptsUnpadded(t *testing.T) {
	out, err := Base64Decode("Zm9vYmE")
	require.NoError(t, err)
	assert.Equal(t, "fooba", string(out))
}

func TestBase64DecodeRejectsInvalidChars(t *testing.T) {
	_, err := Base64Decode("Zm9v!g==")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBase64Invalid)
}

func TestBase64DecodeRejectsBadLength(t *testing.T) {
	_, err := Base64Decode("Z") // length%4==1 is impossible to pad
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBase64Invalid)
}

func TestBase64DecodeRejectsNonZeroPaddingBits(t *testing.T) {
	// "Zg==" decodes cleanly to "f"; flipping the low bits of the
	// second char produces a quantum whose unused bits aren't zero,
	// which the strict decoder must reject rather than silently mask.
	_, err := Base64Decode("Zh==")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBase64Invalid)
}

func TestBase64RoundTrip(t *testing.T) {
	for _, input := range [][]byte{
		nil,
		{0x00},
		{0x00, 0x01, 0x02, 0x03, 0x04},
		[]byte("the quick brown fox jumps over the lazy dog"),
	} {
		encoded := Base64Encode(input)
		decoded, err := Base64Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, len(input), len(decoded))
		assert.Equal(t, string(input), string(decoded))
	}
}
