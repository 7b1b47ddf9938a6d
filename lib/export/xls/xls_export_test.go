package xlsexport

import (
	"bytes"
	"testing"
	"time"

	"ppid-backend/models"
	dbmodels "ppid-backend/models/db"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportPermohonanRegister(t *testing.T) {
	exporter := impl{}
	list := []dbmodels.Permohonan{
		{
			BaseModel:       dbmodels.BaseModel{ID: "id-1", CreatedAt: time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)},
			NomorRegistrasi: "PPID-20260803-AB12CD34",
			Rincian:         "Salinan laporan keuangan 2025",
			Tujuan:          "Penelitian",
			CaraMemperoleh:  "Soft copy via email",
			Status:          models.PermohonanStatusDiproses,
			Pemohon:         &dbmodels.Pemohon{Nama: "Budi Santoso"},
			AssignedOfficer: &dbmodels.Officer{Nama: "Siti Rahma"},
		},
	}

	buf, err := exporter.ExportPermohonanRegister(list)
	require.Nil(t, err)
	require.NotNil(t, buf)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.Nil(t, err)
	defer f.Close()

	sheet := "Register Permohonan"
	t.Run(`baris judul check`, func(t *testing.T) {
		val, err := f.GetCellValue(sheet, "A1")
		require.Nil(t, err)
		require.Equal(t, "Nomor", val)
		val, err = f.GetCellValue(sheet, "H1")
		require.Nil(t, err)
		require.Equal(t, "Petugas", val)
	})

	t.Run(`baris data check`, func(t *testing.T) {
		val, err := f.GetCellValue(sheet, "A2")
		require.Nil(t, err)
		require.Equal(t, "PPID-20260803-AB12CD34", val)
		val, err = f.GetCellValue(sheet, "C2")
		require.Nil(t, err)
		require.Equal(t, "Budi Santoso", val)
		val, err = f.GetCellValue(sheet, "G2")
		require.Nil(t, err)
		require.Equal(t, models.PermohonanStatusDiproses.ToHuman(), val)
		val, err = f.GetCellValue(sheet, "H2")
		require.Nil(t, err)
		require.Equal(t, "Siti Rahma", val)
	})
}

func TestExportPermohonanRegisterEmpty(t *testing.T) {
	exporter := impl{}
	buf, err := exporter.ExportPermohonanRegister(nil)
	require.Nil(t, err)
	require.NotNil(t, buf)
}
