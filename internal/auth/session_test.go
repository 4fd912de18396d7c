package auth_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskhub-io/taskhub-client/internal/auth"
)

func TestSession(t *testing.T) {
	t.Parallel()
	t.Run("holds the initial token", func(t *testing.T) {
		t.Parallel()

		session := auth.NewSession("initial")
		assert.Equal(t, "initial", session.Token())
		assert.True(t, session.Authenticated())
	})

	t.Run("starts anonymous without a token", func(t *testing.T) {
		t.Parallel()

		session := auth.NewSession("")
		assert.Empty(t, session.Token())
		assert.False(t, session.Authenticated())
	})

	t.Run("set and clear", func(t *testing.T) {
		t.Parallel()

		session := auth.NewSession("")
		session.SetToken("issued")
		assert.Equal(t, "issued", session.Token())
		assert.True(t, session.Authenticated())

		session.Clear()
		assert.Empty(t, session.Token())
		assert.False(t, session.Authenticated())
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()

		session := auth.NewSession("start")

		var wg sync.WaitGroup

		for i := 0; i < 50; i++ {
			wg.Add(2)

			go func() {
				defer wg.Done()
				session.SetToken("updated")
			}()

			go func() {
				defer wg.Done()
				_ = session.Token()
			}()
		}

		wg.Wait()
		assert.Equal(t, "updated", session.Token())
	})
}
