package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermohonanLifecycle(t *testing.T) {
	t.Run(`alur normal check`, func(t *testing.T) {
		require.Equal(t, true, PermohonanStatusDiajukan.IsAllowChange(PermohonanStatusDiteruskan))
		require.Equal(t, true, PermohonanStatusDiteruskan.IsAllowChange(PermohonanStatusDiproses))
		require.Equal(t, true, PermohonanStatusDiproses.IsAllowChange(PermohonanStatusSelesai))
	})

	t.Run(`penolakan dari setiap status non-terminal check`, func(t *testing.T) {
		require.Equal(t, true, PermohonanStatusDiajukan.IsAllowChange(PermohonanStatusDitolak))
		require.Equal(t, true, PermohonanStatusDiteruskan.IsAllowChange(PermohonanStatusDitolak))
		require.Equal(t, true, PermohonanStatusDiproses.IsAllowChange(PermohonanStatusDitolak))
	})

	t.Run(`status terminal tidak dapat diubah check`, func(t *testing.T) {
		require.Equal(t, false, PermohonanStatusSelesai.IsAllowChange(PermohonanStatusDiproses))
		require.Equal(t, false, PermohonanStatusSelesai.IsAllowChange(PermohonanStatusDiajukan))
		require.Equal(t, false, PermohonanStatusDitolak.IsAllowChange(PermohonanStatusDiteruskan))
		require.Equal(t, true, PermohonanStatusSelesai.IsTerminal())
		require.Equal(t, true, PermohonanStatusDitolak.IsTerminal())
	})

	t.Run(`lompatan status tidak diizinkan check`, func(t *testing.T) {
		require.Equal(t, false, PermohonanStatusDiajukan.IsAllowChange(PermohonanStatusDiproses))
		require.Equal(t, false, PermohonanStatusDiproses.IsAllowChange(PermohonanStatusDiajukan))
		require.Equal(t, false, PermohonanStatusDiteruskan.IsAllowChange(PermohonanStatusDiajukan))
	})

	t.Run(`status dengan petugas wajib check`, func(t *testing.T) {
		require.Equal(t, true, PermohonanStatusDiteruskan.NeedAssignee())
		require.Equal(t, true, PermohonanStatusDiproses.NeedAssignee())
		require.Equal(t, false, PermohonanStatusDiajukan.NeedAssignee())
	})
}

func TestKeberatanLifecycle(t *testing.T) {
	t.Run(`alur normal check`, func(t *testing.T) {
		require.Equal(t, true, KeberatanStatusDiajukan.IsAllowChange(KeberatanStatusDiteruskan))
		require.Equal(t, true, KeberatanStatusDiteruskan.IsAllowChange(KeberatanStatusDitanggapi))
		require.Equal(t, true, KeberatanStatusDitanggapi.IsAllowChange(KeberatanStatusSelesai))
	})

	t.Run(`tanggapan petugas memicu transisi check`, func(t *testing.T) {
		require.Equal(t, true, KeberatanStatusDiajukan.NeedResponseTransition())
		require.Equal(t, true, KeberatanStatusDiteruskan.NeedResponseTransition())
		require.Equal(t, false, KeberatanStatusDitanggapi.NeedResponseTransition())
		require.Equal(t, false, KeberatanStatusSelesai.NeedResponseTransition())
	})

	t.Run(`status terminal tidak dapat diubah check`, func(t *testing.T) {
		require.Equal(t, false, KeberatanStatusSelesai.IsAllowChange(KeberatanStatusDitanggapi))
		require.Equal(t, false, KeberatanStatusDitolak.IsAllowChange(KeberatanStatusDiajukan))
	})
}

func TestRbac(t *testing.T) {
	t.Run(`penunjukan petugas check`, func(t *testing.T) {
		require.Equal(t, true, RolePpidPelaksana.CanBeAssignee())
		require.Equal(t, true, RolePpidUtama.CanBeAssignee())
		require.Equal(t, false, RoleAdmin.CanBeAssignee())
		require.Equal(t, false, RoleAtasanPpid.CanBeAssignee())
		require.Equal(t, false, RolePemohon.CanBeAssignee())
	})

	t.Run(`persetujuan akun pemohon check`, func(t *testing.T) {
		require.Equal(t, true, RoleAdmin.CanApprovePemohon())
		require.Equal(t, true, RolePpidUtama.CanApprovePemohon())
		require.Equal(t, false, RolePpidPelaksana.CanApprovePemohon())
		require.Equal(t, false, RolePemohon.CanApprovePemohon())
	})

	t.Run(`role petugas check`, func(t *testing.T) {
		require.Equal(t, true, RoleAdmin.IsOfficer())
		require.Equal(t, true, RoleAtasanPpid.IsOfficer())
		require.Equal(t, false, RolePemohon.IsOfficer())
		require.Equal(t, false, UserRole("admin").IsOfficer())
	})
}
