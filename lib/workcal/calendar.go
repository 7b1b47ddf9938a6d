package workcal

import (
	"time"

	"ppid-backend/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Calendar menghitung hari kerja: Senin-Jumat di luar daftar hari libur.
// Daftar libur diinjeksi dari konfigurasi, bukan ditanam di kode.
type Calendar struct {
	holidays map[string]struct{}
}

const dateLayout = "2006-01-02"

var Instance *Calendar

func NewCalendar(holidayDates []string) *Calendar {
	holidays := make(map[string]struct{}, len(holidayDates))
	for _, value := range holidayDates {
		day, err := time.Parse(dateLayout, value)
		if err != nil {
			log.WithField("holiday", value).Warn("tanggal libur tidak valid, dilewati")
			continue
		}
		holidays[day.Format(dateLayout)] = struct{}{}
	}
	return &Calendar{holidays: holidays}
}

func Init(holidayDates []string) {
	Instance = NewCalendar(holidayDates)
}

// WorkingDaysBetween menghitung jumlah hari kerja dari start sampai end
// inklusif. Jam diabaikan: kedua tanggal dipotong ke tengah malam sebelum
// dibandingkan. start setelah end menghasilkan ErrInvalidRange.
func (c *Calendar) WorkingDaysBetween(start, end time.Time) (int, error) {
	startDay := truncateToDate(start)
	endDay := truncateToDate(end)
	if startDay.After(endDay) {
		return 0, errors.Wrapf(models.ErrInvalidRange, "%s > %s", startDay.Format(dateLayout), endDay.Format(dateLayout))
	}
	count := 0
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if c.IsWorkingDay(day) {
			count++
		}
	}
	return count, nil
}

// IsWorkingDay: hari kerja adalah Senin-Jumat yang tidak ada di daftar libur.
func (c *Calendar) IsWorkingDay(day time.Time) bool {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	_, isHoliday := c.holidays[truncateToDate(day).Format(dateLayout)]
	return !isHoliday
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
