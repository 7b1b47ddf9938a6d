package models

type KeberatanStatus string

const (
	KeberatanStatusDiajukan   KeberatanStatus = "DIAJUKAN"
	KeberatanStatusDiteruskan KeberatanStatus = "DITERUSKAN"
	KeberatanStatusDitanggapi KeberatanStatus = "DITANGGAPI"
	KeberatanStatusSelesai    KeberatanStatus = "SELESAI"
	KeberatanStatusDitolak    KeberatanStatus = "DITOLAK"
)

var keberatanStatusHumanName = map[KeberatanStatus]string{
	KeberatanStatusDiajukan:   "Diajukan",
	KeberatanStatusDiteruskan: "Diteruskan",
	KeberatanStatusDitanggapi: "Ditanggapi",
	KeberatanStatusSelesai:    "Selesai",
	KeberatanStatusDitolak:    "Ditolak",
}

func (s KeberatanStatus) ToHuman() string {
	if human, exist := keberatanStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s KeberatanStatus) IsValid() bool {
	_, exist := keberatanStatusHumanName[s]
	return exist
}

func (s KeberatanStatus) IsTerminal() bool {
	return s == KeberatanStatusSelesai || s == KeberatanStatusDitolak
}

var keberatanTransitions = map[KeberatanStatus][]KeberatanStatus{
	KeberatanStatusDiajukan:   {KeberatanStatusDiteruskan, KeberatanStatusDitanggapi, KeberatanStatusSelesai, KeberatanStatusDitolak},
	KeberatanStatusDiteruskan: {KeberatanStatusDitanggapi, KeberatanStatusSelesai, KeberatanStatusDitolak},
	KeberatanStatusDitanggapi: {KeberatanStatusSelesai, KeberatanStatusDitolak},
	KeberatanStatusSelesai:    {},
	KeberatanStatusDitolak:    {},
}

func (s KeberatanStatus) IsAllowChange(newStatus KeberatanStatus) bool {
	for _, allowed := range keberatanTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s KeberatanStatus) NeedAssignee() bool {
	return s == KeberatanStatusDiteruskan
}

// NeedResponseTransition melaporkan apakah tanggapan petugas memicu
// transisi otomatis ke Ditanggapi.
func (s KeberatanStatus) NeedResponseTransition() bool {
	return s == KeberatanStatusDiajukan || s == KeberatanStatusDiteruskan
}
