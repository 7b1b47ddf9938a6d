package permohonan

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewNomorRegistrasi(t *testing.T) {
	t.Run(`format nomor registrasi check`, func(t *testing.T) {
		nomor := newNomorRegistrasi()
		parts := strings.Split(nomor, "-")
		require.Equal(t, 3, len(parts))
		require.Equal(t, "PPID", parts[0])
		require.Equal(t, time.Now().Format("20060102"), parts[1])
		require.Equal(t, 8, len(parts[2]))
		require.Equal(t, strings.ToUpper(parts[2]), parts[2])
	})

	t.Run(`nomor registrasi unik check`, func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			nomor := newNomorRegistrasi()
			require.False(t, seen[nomor])
			seen[nomor] = true
		}
	})
}
