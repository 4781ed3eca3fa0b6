package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDailyAt(t *testing.T) {
	tests := []struct {
		name    string
		at      string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "midnight", at: "00:00", hour: 0, minute: 0},
		{name: "morning", at: "06:00", hour: 6, minute: 0},
		{name: "last minute", at: "23:59", hour: 23, minute: 59},
		{name: "missing colon", at: "0600", wantErr: true},
		{name: "hour out of range", at: "24:00", wantErr: true},
		{name: "minute out of range", at: "09:60", wantErr: true},
		{name: "not a number", at: "ab:cd", wantErr: true},
		{name: "empty", at: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, err := parseDailyAt(tt.at)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, h)
			assert.Equal(t, tt.minute, m)
		})
	}
}

func TestNextDaily(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

	t.Run("later today", func(t *testing.T) {
		next := nextDaily(now, "09:00")
		assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), next)
	})

	t.Run("already passed rolls to tomorrow", func(t *testing.T) {
		next := nextDaily(now, "06:00")
		assert.Equal(t, time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC), next)
	})

	t.Run("exactly now rolls to tomorrow", func(t *testing.T) {
		next := nextDaily(now, "08:30")
		assert.Equal(t, time.Date(2026, 3, 11, 8, 30, 0, 0, time.UTC), next)
	})
}

func TestAddDaily_RejectsBadClockTime(t *testing.T) {
	s := New()
	err := s.AddDaily("bad", "25:00", func(ctx context.Context) (int, error) { return 0, nil })
	assert.Error(t, err)
	assert.Empty(t, s.jobs)
}

func TestRunDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := New()
	s.now = func() time.Time { return now }

	intervalRuns := 0
	s.AddInterval("interval", time.Hour, func(ctx context.Context) (int, error) {
		intervalRuns++
		return 1, nil
	})
	dailyRuns := 0
	require.NoError(t, s.AddDaily("daily", "06:00", func(ctx context.Context) (int, error) {
		dailyRuns++
		return 0, nil
	}))

	for _, j := range s.jobs {
		j.nextRun = initialRun(j, now)
	}

	// Interval jobs run immediately; the daily job waits for tomorrow 06:00.
	s.runDue(context.Background())
	assert.Equal(t, 1, intervalRuns)
	assert.Equal(t, 0, dailyRuns)

	// Nothing is due again until the interval elapses.
	s.runDue(context.Background())
	assert.Equal(t, 1, intervalRuns)

	now = now.Add(time.Hour)
	s.runDue(context.Background())
	assert.Equal(t, 2, intervalRuns)
	assert.Equal(t, 0, dailyRuns)

	now = time.Date(2026, 3, 11, 6, 0, 30, 0, time.UTC)
	s.runDue(context.Background())
	assert.Equal(t, 1, dailyRuns)
}

func TestRunDue_JobErrorDoesNotBlockOthers(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := New()
	s.now = func() time.Time { return now }

	s.AddInterval("failing", time.Hour, func(ctx context.Context) (int, error) {
		return 0, assert.AnError
	})
	ran := false
	s.AddInterval("healthy", time.Hour, func(ctx context.Context) (int, error) {
		ran = true
		return 0, nil
	})
	for _, j := range s.jobs {
		j.nextRun = initialRun(j, now)
	}

	s.runDue(context.Background())
	assert.True(t, ran)
	assert.Equal(t, now.Add(time.Hour), s.jobs[0].nextRun)
}

func TestStartOfDayAndEndOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 10, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), startOfDay(ts))
	assert.True(t, endOfDay(ts).Before(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, endOfDay(ts).After(ts))
}
