package notification

import (
	"testing"

	notificationstore "ppid-backend/lib/notification/store"
	"ppid-backend/models"

	"github.com/stretchr/testify/require"
)

func TestCountActionable(t *testing.T) {
	t.Run(`pemohon bicara terakhir dihitung check`, func(t *testing.T) {
		threads := []notificationstore.ThreadState{
			{EntityID: "a", LastAuthorRole: models.RolePemohon},
		}
		require.Equal(t, 1, CountActionable(threads))
	})

	t.Run(`petugas bicara terakhir tidak dihitung check`, func(t *testing.T) {
		threads := []notificationstore.ThreadState{
			{EntityID: "a", LastAuthorRole: models.RolePpidPelaksana},
			{EntityID: "b", LastAuthorRole: models.RolePpidUtama},
		}
		require.Equal(t, 0, CountActionable(threads))
	})

	t.Run(`entitas tanpa tanggapan tidak dihitung check`, func(t *testing.T) {
		threads := []notificationstore.ThreadState{
			{EntityID: "a", LastAuthorRole: ""},
		}
		require.Equal(t, 0, CountActionable(threads))
	})

	t.Run(`campuran dihitung per entitas check`, func(t *testing.T) {
		threads := []notificationstore.ThreadState{
			{EntityID: "a", LastAuthorRole: models.RolePemohon},
			{EntityID: "b", LastAuthorRole: models.RolePpidPelaksana},
			{EntityID: "c", LastAuthorRole: models.RolePemohon},
			{EntityID: "d", LastAuthorRole: ""},
		}
		require.Equal(t, 2, CountActionable(threads))
	})

	t.Run(`idempoten tanpa penulisan check`, func(t *testing.T) {
		threads := []notificationstore.ThreadState{
			{EntityID: "a", LastAuthorRole: models.RolePemohon},
		}
		first := CountActionable(threads)
		second := CountActionable(threads)
		require.Equal(t, first, second)
	})
}
