package models

type UserRole string

const (
	RolePemohon       UserRole = "PEMOHON"
	RoleAdmin         UserRole = "ADMIN"
	RolePpidUtama     UserRole = "PPID_UTAMA"
	RolePpidPelaksana UserRole = "PPID_PELAKSANA"
	RoleAtasanPpid    UserRole = "ATASAN_PPID"
)

var roleHumanName = map[UserRole]string{
	RolePemohon:       "Pemohon",
	RoleAdmin:         "Admin",
	RolePpidUtama:     "PPID Utama",
	RolePpidPelaksana: "PPID Pelaksana",
	RoleAtasanPpid:    "Atasan PPID",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsOfficer() bool {
	switch r {
	case RoleAdmin, RolePpidUtama, RolePpidPelaksana, RoleAtasanPpid:
		return true
	}
	return false
}

func (r UserRole) IsValidOfficerRole() bool {
	return r.IsOfficer()
}

const SystemUser = "Sistem"
