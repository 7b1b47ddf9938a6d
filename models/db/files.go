package dbmodels

import filesapimodels "ppid-backend/models/api/files"

type FileStorage struct {
	BaseModel
	Name        string
	OwnerID     string `gorm:"type:varchar(36);index"` // pemilik unggahan (pemohon/petugas)
	ContentType string
}

func (f FileStorage) ToModel() filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		OwnerID:     f.OwnerID,
		ContentType: f.ContentType,
	}
}
