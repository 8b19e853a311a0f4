//go:build unit

package session_test

import (
	"strings"
	"testing"
	"time"

	"maison-storefront/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	now := time.UnixMilli(1726000000000)
	key := session.NewKey(now)

	t.Run("carries the session prefix and millisecond timestamp", func(t *testing.T) {
		require.True(t, strings.HasPrefix(key, "session_1726000000000_"))
	})

	t.Run("random suffix is nine characters", func(t *testing.T) {
		parts := strings.Split(key, "_")
		require.Len(t, parts, 3)
		assert.Len(t, parts[2], 9)
	})

	t.Run("successive keys differ", func(t *testing.T) {
		other := session.NewKey(now)
		assert.NotEqual(t, key, other)
	})
}
