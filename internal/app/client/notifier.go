package client

import (
	"sync"
	"time"
)

// ToastTTL is how long a toast stays on screen.
const ToastTTL = 3 * time.Second

// Level of a toast.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Toast is one transient notification.
type Toast struct {
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier surfaces the outcome of an operation to the user.
type Notifier interface {
	Notify(level Level, message string)
}

// Toaster keeps toasts and expires them after ToastTTL.
type Toaster struct {
	mu     sync.Mutex
	toasts []Toast
	ttl    time.Duration
	now    func() time.Time
}

func NewToaster() *Toaster {
	return &Toaster{
		ttl: ToastTTL,
		now: time.Now,
	}
}

func (t *Toaster) Notify(level Level, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.toasts = append(t.toasts, Toast{Level: level, Message: message, CreatedAt: t.now()})
}

// Active returns the toasts younger than the TTL, oldest first, and drops the rest.
func (t *Toaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	kept := t.toasts[:0]
	for _, toast := range t.toasts {
		if now.Sub(toast.CreatedAt) < t.ttl {
			kept = append(kept, toast)
		}
	}
	t.toasts = kept

	out := make([]Toast, len(kept))
	copy(out, kept)
	return out
}

// Drain returns every pending toast regardless of age and clears the queue.
// One-shot commands print these once before exiting.
func (t *Toaster) Drain() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.toasts
	t.toasts = nil
	return out
}
