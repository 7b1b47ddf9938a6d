package models

type PermohonanStatus string

const (
	PermohonanStatusDiajukan   PermohonanStatus = "DIAJUKAN"
	PermohonanStatusDiteruskan PermohonanStatus = "DITERUSKAN"
	PermohonanStatusDiproses   PermohonanStatus = "DIPROSES"
	PermohonanStatusSelesai    PermohonanStatus = "SELESAI"
	PermohonanStatusDitolak    PermohonanStatus = "DITOLAK"
)

var permohonanStatusHumanName = map[PermohonanStatus]string{
	PermohonanStatusDiajukan:   "Diajukan",
	PermohonanStatusDiteruskan: "Diteruskan",
	PermohonanStatusDiproses:   "Diproses",
	PermohonanStatusSelesai:    "Selesai",
	PermohonanStatusDitolak:    "Ditolak",
}

func (s PermohonanStatus) ToHuman() string {
	if human, exist := permohonanStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s PermohonanStatus) IsValid() bool {
	_, exist := permohonanStatusHumanName[s]
	return exist
}

func (s PermohonanStatus) IsTerminal() bool {
	return s == PermohonanStatusSelesai || s == PermohonanStatusDitolak
}

// graf transisi; Selesai/Ditolak dapat dicapai dari semua status non-terminal
var permohonanTransitions = map[PermohonanStatus][]PermohonanStatus{
	PermohonanStatusDiajukan:   {PermohonanStatusDiteruskan, PermohonanStatusSelesai, PermohonanStatusDitolak},
	PermohonanStatusDiteruskan: {PermohonanStatusDiproses, PermohonanStatusSelesai, PermohonanStatusDitolak},
	PermohonanStatusDiproses:   {PermohonanStatusSelesai, PermohonanStatusDitolak},
	PermohonanStatusSelesai:    {},
	PermohonanStatusDitolak:    {},
}

// IsAllowChange melaporkan apakah transisi status diizinkan oleh graf siklus hidup.
func (s PermohonanStatus) IsAllowChange(newStatus PermohonanStatus) bool {
	for _, allowed := range permohonanTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// NeedAssignee melaporkan apakah status mensyaratkan petugas yang ditunjuk.
func (s PermohonanStatus) NeedAssignee() bool {
	return s == PermohonanStatusDiteruskan || s == PermohonanStatusDiproses
}
