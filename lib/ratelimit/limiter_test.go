package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiter(t *testing.T) {
	t.Run(`batas percobaan check`, func(t *testing.T) {
		limiter := NewLimiter(3, time.Minute)
		require.Equal(t, true, limiter.Allow("10.0.0.1"))
		require.Equal(t, true, limiter.Allow("10.0.0.1"))
		require.Equal(t, true, limiter.Allow("10.0.0.1"))
		require.Equal(t, false, limiter.Allow("10.0.0.1"))
	})

	t.Run(`kunci terpisah dihitung terpisah check`, func(t *testing.T) {
		limiter := NewLimiter(1, time.Minute)
		require.Equal(t, true, limiter.Allow("10.0.0.1"))
		require.Equal(t, true, limiter.Allow("10.0.0.2"))
		require.Equal(t, false, limiter.Allow("10.0.0.1"))
	})

	t.Run(`reset menghapus riwayat check`, func(t *testing.T) {
		limiter := NewLimiter(1, time.Minute)
		require.Equal(t, true, limiter.Allow("10.0.0.1"))
		require.Equal(t, false, limiter.Allow("10.0.0.1"))
		limiter.Reset("10.0.0.1")
		require.Equal(t, true, limiter.Allow("10.0.0.1"))
	})

	t.Run(`jendela geser kedaluwarsa check`, func(t *testing.T) {
		limiter := NewLimiter(1, time.Minute)
		current := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return current }
		require.Equal(t, true, limiter.Allow("10.0.0.1"))
		require.Equal(t, false, limiter.Allow("10.0.0.1"))
		current = current.Add(2 * time.Minute)
		require.Equal(t, true, limiter.Allow("10.0.0.1"))
	})
}
