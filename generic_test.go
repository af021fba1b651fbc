package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshal(t *testing.T) {
	in := newRecord(99, "99")

	data, err := Marshal(in)
	require.NoError(t, err)
	assert.Len(t, data, 23)

	out := newRecord(0, "0")
	require.NoError(t, Unmarshal(data, out))
	assert.True(t, in.equal(out))
}

func TestUnmarshalTrailingData(t *testing.T) {
	data, err := Marshal(uint16(7))
	require.NoError(t, err)

	var v uint16
	err = Unmarshal(append(data, 0x00), &v)
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestSaveLoadPass(t *testing.T) {
	var flushes int
	store := NewStoreSize(32).WithFlush(func([]byte) error {
		flushes++
		return nil
	})

	// A second save pass overwrites the first from the origin.
	require.NoError(t, Save(store, newRecord(1, "first pass")))
	require.NoError(t, Save(store, newRecord(2, "second")))
	assert.Equal(t, 2, flushes)
	assert.Equal(t, 23, store.Len())

	out := newRecord(0, "")
	require.NoError(t, Load(store, out))
	assert.Equal(t, uint32(2), out.I)
	assert.Equal(t, "second", out.Text.String())

	assert.ErrorIs(t, Save(nil, out), ErrNilChannel)
	assert.ErrorIs(t, Load(nil, out), ErrNilChannel)
}
