package filestorage

import (
	"bytes"
	"context"
	"io"

	"ppid-backend/config"
	"ppid-backend/db"
	filesdbstorage "ppid-backend/lib/file-storage/store"
	dbmodels "ppid-backend/models/db"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	UploadLampiran(ctx context.Context, ownerID, fileName, contentType string, fileReader io.Reader, fileSize int64) (id string, err error)
	GetFile(ctx context.Context, fileID string) (rec *dbmodels.FileStorage, body []byte, err error)
	GetOwnerFiles(ownerID string) ([]dbmodels.FileStorage, error)
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client:  s3client,
		fileStore: filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	s3client  *minio.Client
	fileStore filesdbstorage.Provider
}

// UploadLampiran menyimpan metadata berkas di basis data lalu mengunggah
// isinya ke object storage dengan id rekaman sebagai nama objek.
func (i impl) UploadLampiran(ctx context.Context, ownerID, fileName, contentType string, fileReader io.Reader, fileSize int64) (id string, err error) {
	rec := dbmodels.FileStorage{
		Name:        fileName,
		OwnerID:     ownerID,
		ContentType: contentType,
	}
	id, err = i.fileStore.SaveFile(rec)
	if err != nil {
		return "", errors.Wrap(err, "gagal menyimpan metadata berkas")
	}
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, id, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "gagal mengunggah berkas ke object storage")
	}
	log.
		WithField("file_id", id).
		WithField("owner_id", ownerID).
		Info("lampiran tersimpan")
	return id, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) (rec *dbmodels.FileStorage, body []byte, err error) {
	rec, err = i.fileStore.GetByID(fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, nil
	}
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "gagal mengambil berkas dari object storage")
	}
	defer obj.Close()
	buf := bytes.Buffer{}
	_, err = io.Copy(&buf, obj)
	if err != nil {
		return nil, nil, errors.Wrap(err, "gagal membaca isi berkas")
	}
	return rec, buf.Bytes(), nil
}

func (i impl) GetOwnerFiles(ownerID string) ([]dbmodels.FileStorage, error) {
	return i.fileStore.GetListByOwner(ownerID)
}
