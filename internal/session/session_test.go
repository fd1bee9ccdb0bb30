package session

import (
	"sync"
	"testing"

	"silent-auction-client/internal/domain/shared"

	"github.com/stretchr/testify/require"
)

func TestStore_EmptyByDefault(t *testing.T) {
	store := NewStore()

	user, ok := store.Get()
	require.False(t, ok)
	require.Equal(t, shared.User{}, user)
}

func TestStore_SetAndGet(t *testing.T) {
	store := NewStore()
	store.Set(shared.User{ID: "user1", Name: "Ada", Role: shared.RoleBidder})

	user, ok := store.Get()
	require.True(t, ok)
	require.Equal(t, "user1", user.ID)
	require.Equal(t, "Ada", user.Name)
}

// Get hands out copies; mutating one must not leak into the store.
func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Set(shared.User{ID: "user1", Name: "Ada"})

	first, _ := store.Get()
	first.Name = "Mallory"

	second, _ := store.Get()
	require.Equal(t, "Ada", second.Name)
}

// Set replaces the whole user; a partial edit goes read, merge, write.
func TestStore_SetReplacesWholeUser(t *testing.T) {
	store := NewStore()
	store.Set(shared.User{ID: "user1", Name: "Ada", Email: "ada@example.com"})

	store.Set(shared.User{ID: "user1", Name: "Ada L."})

	user, _ := store.Get()
	require.Equal(t, "Ada L.", user.Name)
	require.Empty(t, user.Email, "Set must not merge with the previous user")
}

func TestStore_Clear(t *testing.T) {
	store := NewStore()
	store.Set(shared.User{ID: "user1"})
	store.Clear()

	_, ok := store.Get()
	require.False(t, ok)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	store.Set(shared.User{ID: "user1"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Set(shared.User{ID: "user1", Name: "Ada"})
		}()
		go func() {
			defer wg.Done()
			store.Get()
		}()
	}
	wg.Wait()

	_, ok := store.Get()
	require.True(t, ok)
}
