package eligibility

import (
	"testing"
	"time"

	"ppid-backend/lib/workcal"

	"github.com/stretchr/testify/require"
)

func TestCanFileObjection(t *testing.T) {
	cal := workcal.NewCalendar(nil)
	evaluator := NewInstance(cal, 17)

	// Senin 3 Agustus 2026; tanpa libur, 17 hari kerja inklusif berakhir
	// pada Selasa 25 Agustus 2026.
	created := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	t.Run(`tepat 17 hari kerja memenuhi syarat check`, func(t *testing.T) {
		now := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
		result, err := evaluator.CanFileObjection(created, now)
		require.Nil(t, err)
		require.Equal(t, 17, result.WorkingDays)
		require.Equal(t, true, result.Eligible)
	})

	t.Run(`16 hari kerja belum memenuhi syarat check`, func(t *testing.T) {
		now := time.Date(2026, 8, 24, 23, 0, 0, 0, time.UTC)
		result, err := evaluator.CanFileObjection(created, now)
		require.Nil(t, err)
		require.Equal(t, 16, result.WorkingDays)
		require.Equal(t, false, result.Eligible)
	})

	t.Run(`permohonan baru dibuat menghitung hari pembuatan check`, func(t *testing.T) {
		result, err := evaluator.CanFileObjection(created, created)
		require.Nil(t, err)
		require.Equal(t, 1, result.WorkingDays)
		require.Equal(t, false, result.Eligible)
	})

	t.Run(`ambang batas dapat dikonfigurasi check`, func(t *testing.T) {
		shortWindow := NewInstance(cal, 1)
		result, err := shortWindow.CanFileObjection(created, created)
		require.Nil(t, err)
		require.Equal(t, true, result.Eligible)
	})

	t.Run(`hari libur memperpanjang jendela check`, func(t *testing.T) {
		withHoliday := workcal.NewCalendar([]string{"2026-08-17"})
		evaluatorWithHoliday := NewInstance(withHoliday, 17)
		now := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
		result, err := evaluatorWithHoliday.CanFileObjection(created, now)
		require.Nil(t, err)
		require.Equal(t, 16, result.WorkingDays)
		require.Equal(t, false, result.Eligible)
	})
}
