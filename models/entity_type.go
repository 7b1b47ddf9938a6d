package models

// EntityType membedakan dua entitas yang melewati siklus hidup.
type EntityType string

const (
	EntityPermohonan EntityType = "PERMOHONAN"
	EntityKeberatan  EntityType = "KEBERATAN"
)

func (e EntityType) IsValid() bool {
	return e == EntityPermohonan || e == EntityKeberatan
}
