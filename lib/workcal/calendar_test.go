package workcal

import (
	"testing"
	"time"

	"ppid-backend/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWorkingDaysBetween(t *testing.T) {
	cal := NewCalendar(nil)

	t.Run(`satu hari kerja dihitung inklusif check`, func(t *testing.T) {
		monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
		count, err := cal.WorkingDaysBetween(monday, monday)
		require.Nil(t, err)
		require.Equal(t, 1, count)
	})

	t.Run(`akhir pekan tidak dihitung check`, func(t *testing.T) {
		friday := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)
		nextMonday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
		// Jum, Sab, Min, Sen: 4 hari kalender, 2 hari kerja
		count, err := cal.WorkingDaysBetween(friday, nextMonday)
		require.Nil(t, err)
		require.Equal(t, 2, count)
	})

	t.Run(`hari sabtu saja menghasilkan nol check`, func(t *testing.T) {
		saturday := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
		sunday := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
		count, err := cal.WorkingDaysBetween(saturday, sunday)
		require.Nil(t, err)
		require.Equal(t, 0, count)
	})

	t.Run(`jam diabaikan, hanya tanggal kalender check`, func(t *testing.T) {
		start := time.Date(2026, 8, 24, 23, 59, 0, 0, time.UTC)
		end := time.Date(2026, 8, 25, 0, 1, 0, 0, time.UTC)
		count, err := cal.WorkingDaysBetween(start, end)
		require.Nil(t, err)
		require.Equal(t, 2, count)
	})

	t.Run(`rentang terbalik menghasilkan ErrInvalidRange check`, func(t *testing.T) {
		start := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
		_, err := cal.WorkingDaysBetween(start, end)
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrInvalidRange))
	})
}

func TestHolidays(t *testing.T) {
	cal := NewCalendar([]string{"2026-08-17"}) // Hari Kemerdekaan, jatuh di hari Senin

	t.Run(`hari libur nasional tidak dihitung check`, func(t *testing.T) {
		friday := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)
		tuesday := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
		// Jum 14, Sab, Min, Sen 17 (libur), Sel 18 -> 2 hari kerja
		count, err := cal.WorkingDaysBetween(friday, tuesday)
		require.Nil(t, err)
		require.Equal(t, 2, count)
	})

	t.Run(`tanggal libur tidak valid diabaikan check`, func(t *testing.T) {
		broken := NewCalendar([]string{"bukan-tanggal", "2026-08-17"})
		require.Equal(t, false, broken.IsWorkingDay(time.Date(2026, 8, 17, 10, 0, 0, 0, time.UTC)))
		require.Equal(t, true, broken.IsWorkingDay(time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)))
	})
}
