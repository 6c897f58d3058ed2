package cborwire_test

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/arraywire"
	"github.com/rawbytedev/arraywire/pkg/cborwire"
)

func TestRoundTrip(t *testing.T) {
	var arr [64]uint32
	for i := range arr {
		arr[i] = uint32(i)
	}

	var buf bytes.Buffer
	require.NoError(t, arraywire.Serialize(cborwire.NewSerializer(&buf), arr))

	var out [64]uint32
	require.NoError(t, arraywire.Deserialize(cborwire.NewDeserializer(buf.Bytes()), &out))
	assert.Equal(t, arr, out)
}

// Flat output must match cbor.Marshal of the equivalent slice: same array
// header, same element encodings.
func TestFlatMatchesNativeEncoding(t *testing.T) {
	arr := [4]uint32{1, 2, 3, 500}

	var buf bytes.Buffer
	require.NoError(t, arraywire.Serialize(cborwire.NewSerializer(&buf), arr))

	native, err := cbor.Marshal([]uint32{1, 2, 3, 500})
	require.NoError(t, err)
	assert.Equal(t, native, buf.Bytes())
}

func TestNestedMatchesHandWritten(t *testing.T) {
	hand, err := cbor.Marshal([][]uint32{{1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	nested := [2][3]uint32{{1, 1, 1}, {1, 1, 1}}
	require.NoError(t, arraywire.Serialize(cborwire.NewSerializer(&buf), nested))
	assert.Equal(t, hand, buf.Bytes())

	buf.Reset()
	vecced := [][3]uint32{{1, 1, 1}, {1, 1, 1}}
	require.NoError(t, arraywire.Serialize(cborwire.NewSerializer(&buf), vecced))
	assert.Equal(t, hand, buf.Bytes())
}

func TestShortInput(t *testing.T) {
	short := make([]uint32, 15)
	for i := range short {
		short[i] = 1
	}
	b, err := cbor.Marshal(short)
	require.NoError(t, err)

	var out [16]uint32
	err = arraywire.Deserialize(cborwire.NewDeserializer(b), &out)
	var lm *arraywire.LengthMismatchError
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 16, lm.Want)
	assert.Equal(t, 15, lm.Got)
}

func TestDecodeNonArray(t *testing.T) {
	b, err := cbor.Marshal("not an array")
	require.NoError(t, err)

	var out [4]uint32
	err = arraywire.Deserialize(cborwire.NewDeserializer(b), &out)
	require.Error(t, err)
}
