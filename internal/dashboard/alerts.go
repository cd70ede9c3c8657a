package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type AlertLevel string

const (
	AlertSuccess AlertLevel = "success"
	AlertError   AlertLevel = "error"
	AlertWarning AlertLevel = "warning"
	AlertInfo    AlertLevel = "info"
)

// Alert is one transient notification. Alerts auto-dismiss after the TTL;
// Active simply stops returning them.
type Alert struct {
	ID        string
	Level     AlertLevel
	Message   string
	CreatedAt time.Time
}

type alertLog struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []Alert
}

func newAlertLog(ttl time.Duration) *alertLog {
	return &alertLog{ttl: ttl}
}

func (l *alertLog) setTTL(ttl time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ttl = ttl
}

func (l *alertLog) push(level AlertLevel, message string) Alert {
	alert := Alert{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(time.Now())
	l.entries = append(l.entries, alert)
	return alert
}

// active returns the alerts that have not expired yet, oldest first.
func (l *alertLog) active() []Alert {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(time.Now())

	out := make([]Alert, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *alertLog) prune(now time.Time) {
	kept := l.entries[:0]
	for _, a := range l.entries {
		if now.Sub(a.CreatedAt) < l.ttl {
			kept = append(kept, a)
		}
	}
	l.entries = kept
}
