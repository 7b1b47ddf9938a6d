package xlsexport

import (
	"bytes"

	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportPermohonanRegister(list []dbmodels.Permohonan) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var registerHeaders = []string{"Nomor", "Tanggal", "Pemohon", "Rincian Informasi", "Tujuan", "Cara Memperoleh", "Status", "Petugas"}

// ExportPermohonanRegister menyusun register permohonan informasi
// dalam format xlsx sesuai ketentuan daftar informasi publik.
func (i impl) ExportPermohonanRegister(list []dbmodels.Permohonan) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("gagal menutup berkas xlsx")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, registerHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "gagal menulis baris judul xlsx")
	}
	if len(list) != 0 {
		row, err = writeRegisterData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "gagal menulis tabel data xlsx")
		}
	}
	f.SetSheetName(sheet, "Register Permohonan")
	return f.WriteToBuffer()
}

func writeRegisterData(f *excelize.File, sheet string, list []dbmodels.Permohonan, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(registerHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Nomor"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.NomorRegistrasi); err != nil {
			return row, err
		}

		// "Tanggal"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
			return row, err
		}

		// "Pemohon"
		col++
		if item.Pemohon != nil {
			if err := writeColumn(f, sheet, col, row, item.Pemohon.Nama); err != nil {
				return row, err
			}
		}

		// "Rincian Informasi"
		col++
		if err := writeColumn(f, sheet, col, row, item.Rincian); err != nil {
			return row, err
		}

		// "Tujuan"
		col++
		if err := writeColumn(f, sheet, col, row, item.Tujuan); err != nil {
			return row, err
		}

		// "Cara Memperoleh"
		col++
		if err := writeColumn(f, sheet, col, row, item.CaraMemperoleh); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Petugas"
		col++
		if item.AssignedOfficer != nil {
			if err := writeColumn(f, sheet, col, row, item.AssignedOfficer.Nama); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
