package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGetString(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("deeplink.command", "processor-2"))

	assert.Equal(t, "processor-2", store.GetString("deeplink.command"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetString_NonString(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("n", 5))

	val, ok := store.Get("n")
	assert.True(t, ok)
	assert.Equal(t, 5, val)
	assert.Equal(t, "", store.GetString("n"))
}

func TestConfigStore_All_ReturnsCopy(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("a", "1"))

	all := store.All()
	all["a"] = "changed"
	all["b"] = "new"

	assert.Equal(t, "1", store.GetString("a"))
	_, ok := store.Get("b")
	assert.False(t, ok)
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("key", "value")
			_ = store.GetString("key")
			_ = store.All()
		}()
	}
	wg.Wait()
}
