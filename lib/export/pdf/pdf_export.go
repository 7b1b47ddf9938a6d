package pdfexport

import (
	"bytes"
	"fmt"

	dbmodels "ppid-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type Provider interface {
	GenerateTandaBukti(rec dbmodels.Permohonan) (pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// GenerateTandaBukti membuat tanda bukti penerimaan permohonan
// informasi dalam format pdf untuk diunduh pemohon.
func (i impl) GenerateTandaBukti(rec dbmodels.Permohonan) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateTandaBukti panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, "TANDA BUKTI PERMOHONAN INFORMASI", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	_, lineHt := pdf.GetFontSize()
	lineHt += 3

	writeRow(pdf, lineHt, "Nomor Registrasi", rec.NomorRegistrasi)
	writeRow(pdf, lineHt, "Tanggal Pengajuan", rec.CreatedAt.Format("02.01.2006 15:04"))
	if rec.Pemohon != nil {
		writeRow(pdf, lineHt, "Nama Pemohon", rec.Pemohon.Nama)
		writeRow(pdf, lineHt, "NIK", rec.Pemohon.Nik)
	}
	writeRow(pdf, lineHt, "Rincian Informasi", rec.Rincian)
	writeRow(pdf, lineHt, "Tujuan Penggunaan", rec.Tujuan)
	writeRow(pdf, lineHt, "Cara Memperoleh", rec.CaraMemperoleh)
	writeRow(pdf, lineHt, "Status", rec.Status.ToHuman())

	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, lineHt, "Simpan tanda bukti ini. Nomor registrasi digunakan untuk menelusuri status permohonan dan mengajukan keberatan.", "", "L", false)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *fpdf.Fpdf, lineHt float64, label, value string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(60, lineHt, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, lineHt, fmt.Sprintf(": %s", value), "", "L", false)
}
