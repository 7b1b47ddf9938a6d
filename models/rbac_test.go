package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanBeAssignee(t *testing.T) {
	t.Run(`hanya pelaksana dan utama boleh ditunjuk check`, func(t *testing.T) {
		require.True(t, RolePpidPelaksana.CanBeAssignee())
		require.True(t, RolePpidUtama.CanBeAssignee())
		require.False(t, RoleAdmin.CanBeAssignee())
		require.False(t, RoleAtasanPpid.CanBeAssignee())
		require.False(t, RolePemohon.CanBeAssignee())
	})
}

func TestCanAssign(t *testing.T) {
	t.Run(`pelaksana tidak boleh meneruskan check`, func(t *testing.T) {
		require.True(t, RoleAdmin.CanAssign())
		require.True(t, RolePpidUtama.CanAssign())
		require.True(t, RoleAtasanPpid.CanAssign())
		require.False(t, RolePpidPelaksana.CanAssign())
		require.False(t, RolePemohon.CanAssign())
	})
}

func TestCanManageOfficers(t *testing.T) {
	t.Run(`hanya admin mengelola petugas check`, func(t *testing.T) {
		require.True(t, RoleAdmin.CanManageOfficers())
		require.False(t, RolePpidUtama.CanManageOfficers())
		require.False(t, RoleAtasanPpid.CanManageOfficers())
	})
}

func TestCanExport(t *testing.T) {
	t.Run(`pemohon tidak boleh mengunduh register check`, func(t *testing.T) {
		require.True(t, RolePpidUtama.CanExport())
		require.True(t, RoleAdmin.CanExport())
		require.False(t, RolePemohon.CanExport())
	})
}

func TestRoleToHuman(t *testing.T) {
	t.Run(`role dikenal check`, func(t *testing.T) {
		require.Equal(t, "PPID Pelaksana", RolePpidPelaksana.ToHuman())
	})
	t.Run(`role tak dikenal dikembalikan apa adanya check`, func(t *testing.T) {
		require.Equal(t, "LAINNYA", UserRole("LAINNYA").ToHuman())
	})
}
