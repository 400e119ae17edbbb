package localstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriavirtual/pkg/errors"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestReadMissingKeyYieldsEmpty(t *testing.T) {
	store := NewMemStore()

	records, err := Read[[]record](store, "records")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	store := NewMemStore()

	in := []record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	require.NoError(t, store.WriteAll("records", in))

	out, err := Read[[]record](store, "records")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCorruptBlobReturnsStorageCorrupt(t *testing.T) {
	store := NewMemStore()

	f, err := store.fs.Create("records.json")
	require.NoError(t, err)
	_, err = f.Write([]byte("{not json"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = Read[[]record](store, "records")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "STORAGE_CORRUPT"))
}

func TestReadOrEmptyRecoversFromCorruptBlob(t *testing.T) {
	store := NewMemStore()

	f, err := store.fs.Create("records.json")
	require.NoError(t, err)
	_, err = f.Write([]byte("]["))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	records := ReadOrEmpty[[]record](store, "records")
	assert.Empty(t, records)
}

func TestMutateCreatesCollectionOnFirstWrite(t *testing.T) {
	store := NewMemStore()

	err := Mutate(store, "records", func(rs []record) ([]record, error) {
		return append(rs, record{ID: "1", Name: "only"}), nil
	})
	require.NoError(t, err)

	out, err := Read[[]record](store, "records")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "only", out[0].Name)
}

func TestMutateErrorLeavesCollectionUntouched(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.WriteAll("records", []record{{ID: "1"}}))

	err := Mutate(store, "records", func(rs []record) ([]record, error) {
		return nil, errors.Conflict("no")
	})
	require.Error(t, err)

	out, err := Read[[]record](store, "records")
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestDeleteMissingKeyIsNoError(t *testing.T) {
	store := NewMemStore()
	assert.NoError(t, store.Delete("never-written"))
}

func TestMutateMapCollection(t *testing.T) {
	store := NewMemStore()

	err := Mutate(store, "by-owner", func(m map[string][]record) (map[string][]record, error) {
		if m == nil {
			m = make(map[string][]record)
		}
		m["a@x.com"] = append(m["a@x.com"], record{ID: "1"})
		return m, nil
	})
	require.NoError(t, err)

	m, err := Read[map[string][]record](store, "by-owner")
	require.NoError(t, err)
	assert.Len(t, m["a@x.com"], 1)
}
