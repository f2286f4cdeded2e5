// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeai-labs/edgeledger/kv"
)

func TestMemStore(t *testing.T) {
	store, err := kv.NewMem()
	require.NoError(t, err)
	defer store.Close()

	key := []byte("key")

	_, err = store.Get(key)
	assert.True(t, store.IsNotFound(err))

	require.NoError(t, store.Put(key, []byte("value")))
	v, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), v)

	has, err := store.Has(key)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, store.Delete(key))
	has, err = store.Has(key)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestBatch(t *testing.T) {
	store, err := kv.NewMem()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put([]byte("gone"), []byte("x")))

	batch := store.NewBatch()
	require.NoError(t, batch.Put([]byte("a"), []byte("1")))
	require.NoError(t, batch.Put([]byte("b"), []byte("2")))
	require.NoError(t, batch.Delete([]byte("gone")))
	assert.Equal(t, 3, batch.Len())

	// nothing lands before Write
	has, err := store.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, batch.Write())

	v, err := store.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	has, err = store.Has([]byte("gone"))
	require.NoError(t, err)
	assert.False(t, has)
}
