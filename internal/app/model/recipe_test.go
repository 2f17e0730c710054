package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_ValueEncodesJSON(t *testing.T) {
	value, err := StringArray{"salt", "water"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["salt","water"]`, string(value.([]byte)))

	value, err = StringArray(nil).Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(value.([]byte)))
}

func TestStringArray_ScanRoundTrip(t *testing.T) {
	var items StringArray
	require.NoError(t, items.Scan([]byte(`["salt","water"]`)))
	assert.Equal(t, StringArray{"salt", "water"}, items)

	require.NoError(t, items.Scan(`["tuz"]`))
	assert.Equal(t, StringArray{"tuz"}, items)
}

// stored rows with hand-edited or corrupt payloads must keep loading
func TestStringArray_ScanLenientOnBadPayloads(t *testing.T) {
	var items StringArray

	require.NoError(t, items.Scan([]byte(`not json`)))
	assert.Equal(t, StringArray{}, items)

	require.NoError(t, items.Scan([]byte(`{"a":1}`)))
	assert.Equal(t, StringArray{}, items)

	require.NoError(t, items.Scan(nil))
	assert.Equal(t, StringArray{}, items)

	assert.Error(t, items.Scan(42))
}

func TestStringArray_ScanDropsBlankEntries(t *testing.T) {
	var items StringArray
	require.NoError(t, items.Scan([]byte(`["salt","  ","","water"]`)))
	assert.Equal(t, StringArray{"salt", "water"}, items)
}
