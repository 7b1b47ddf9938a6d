package models

// Satu fungsi otorisasi per operasi, bukan pembandingan string yang
// tersebar di tiap call site.

// CanBeAssignee melaporkan apakah akun dengan role ini boleh menjadi
// petugas yang ditunjuk untuk permohonan/keberatan.
func (r UserRole) CanBeAssignee() bool {
	return r == RolePpidPelaksana || r == RolePpidUtama
}

// CanAssign melaporkan apakah role ini boleh meneruskan (menunjuk petugas).
func (r UserRole) CanAssign() bool {
	return r == RoleAdmin || r == RolePpidUtama || r == RoleAtasanPpid
}

// CanProcess melaporkan apakah role ini boleh memproses entitas yang
// ditugaskan kepadanya (Diteruskan -> Diproses, menanggapi, menutup).
func (r UserRole) CanProcess() bool {
	return r == RolePpidPelaksana || r == RolePpidUtama
}

// CanClose melaporkan apakah role ini boleh menutup entitas (Selesai/Ditolak).
func (r UserRole) CanClose() bool {
	return r == RolePpidPelaksana || r == RolePpidUtama || r == RoleAtasanPpid
}

// CanApprovePemohon melaporkan apakah role ini boleh menyetujui akun pemohon.
func (r UserRole) CanApprovePemohon() bool {
	return r == RoleAdmin || r == RolePpidUtama
}

// CanManageOfficers melaporkan apakah role ini boleh mengelola akun petugas.
func (r UserRole) CanManageOfficers() bool {
	return r == RoleAdmin
}

// CanExport melaporkan apakah role ini boleh mengunduh register permohonan.
func (r UserRole) CanExport() bool {
	return r.IsOfficer()
}
