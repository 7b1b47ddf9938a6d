package notificationstore

import (
	"ppid-backend/models"

	"gorm.io/gorm"
)

// ThreadState memotret satu entitas yang ditugaskan beserta role penulis
// tanggapan terakhirnya. Kosong bila belum ada tanggapan.
type ThreadState struct {
	EntityID       string
	LastAuthorRole models.UserRole
}

type Provider interface {
	PermohonanThreads(officerID string) (list []ThreadState, err error)
	KeberatanThreads(officerID string) (list []ThreadState, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) PermohonanThreads(officerID string) (list []ThreadState, err error) {
	list = []ThreadState{}
	err = i.db.
		Raw(`select p.id as entity_id,
		            coalesce((select t.author_role from tanggapans t
		                      where t.permohonan_id = p.id
		                      order by t.created_at desc limit 1), '') as last_author_role
		     from permohonans p
		     where p.assigned_officer_id = ?`, officerID).
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) KeberatanThreads(officerID string) (list []ThreadState, err error) {
	list = []ThreadState{}
	err = i.db.
		Raw(`select k.id as entity_id,
		            coalesce((select t.author_role from tanggapans t
		                      where t.keberatan_id = k.id
		                      order by t.created_at desc limit 1), '') as last_author_role
		     from keberatans k
		     where k.assigned_officer_id = ?`, officerID).
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
