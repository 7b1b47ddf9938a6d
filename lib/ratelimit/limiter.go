package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter membatasi percobaan per kunci (mis. alamat IP pada login)
// dalam jendela waktu geser. Komponen diinjeksi secara eksplisit dengan
// siklus hidupnya sendiri, bukan state global proses.
type Provider interface {
	Allow(key string) bool
	Reset(key string)
}

var Instance Provider

func Init(ctx context.Context, maxAttempts int, window, cleanupInterval time.Duration) {
	limiter := NewLimiter(maxAttempts, window)
	go limiter.runJanitor(ctx, cleanupInterval)
	Instance = limiter
}

type Limiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

func NewLimiter(maxAttempts int, window time.Duration) *Limiter {
	return &Limiter{
		attempts:    map[string][]time.Time{},
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Allow mencatat satu percobaan dan melaporkan apakah masih dalam batas.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	recent := l.pruneLocked(key, now)
	if len(recent) >= l.maxAttempts {
		return false
	}
	l.attempts[key] = append(recent, now)
	return true
}

// Reset menghapus riwayat percobaan, dipanggil setelah login berhasil.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}

func (l *Limiter) pruneLocked(key string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	recent := l.attempts[key][:0]
	for _, at := range l.attempts[key] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}
	if len(recent) == 0 {
		delete(l.attempts, key)
		return nil
	}
	l.attempts[key] = recent
	return recent
}

func (l *Limiter) runJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key := range l.attempts {
				l.pruneLocked(key, now)
			}
			l.mu.Unlock()
		}
	}
}
