package eligibility

import (
	"time"

	"ppid-backend/lib/workcal"
)

// Evaluator menentukan apakah sebuah permohonan sudah cukup lama
// menunggu sehingga pemohon berhak mengajukan keberatan.
type Provider interface {
	CanFileObjection(requestCreatedAt, now time.Time) (Result, error)
}

type Result struct {
	Eligible    bool
	WorkingDays int
}

var Instance Provider

func NewHandler(calendar *workcal.Calendar, statutoryDays int) {
	Instance = impl{
		calendar:      calendar,
		statutoryDays: statutoryDays,
	}
}

func NewInstance(calendar *workcal.Calendar, statutoryDays int) Provider {
	return impl{
		calendar:      calendar,
		statutoryDays: statutoryDays,
	}
}

type impl struct {
	calendar      *workcal.Calendar
	statutoryDays int
}

// CanFileObjection: keberatan dapat diajukan setelah jendela tanggapan
// menurut undang-undang terlampaui. Batas bersifat inklusif: tepat
// statutoryDays hari kerja sudah memenuhi syarat.
func (i impl) CanFileObjection(requestCreatedAt, now time.Time) (Result, error) {
	workingDays, err := i.calendar.WorkingDaysBetween(requestCreatedAt, now)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Eligible:    workingDays >= i.statutoryDays,
		WorkingDays: workingDays,
	}, nil
}
