package notify

import (
	"context"
	"sync"

	"github.com/osse101/MartianPotato_Go/internal/domain"
)

// Recorder captures notices and display refreshes in memory. Tests and the
// console use it to inspect what a UI would have shown.
type Recorder struct {
	mu        sync.Mutex
	notices   []domain.Notice
	refreshes int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NotifyDisplayChanged(context.Context) {
	r.mu.Lock()
	r.refreshes++
	r.mu.Unlock()
}

func (r *Recorder) ShowNotice(_ context.Context, title, message string, severity domain.Severity) {
	r.mu.Lock()
	r.notices = append(r.notices, domain.Notice{Title: title, Message: message, Severity: severity})
	r.mu.Unlock()
}

// Notices returns a copy of the recorded notices in order.
func (r *Recorder) Notices() []domain.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Last returns the most recent notice, if any.
func (r *Recorder) Last() (domain.Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return domain.Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Refreshes returns how many display refreshes were requested.
func (r *Recorder) Refreshes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshes
}

// Drain returns and clears the recorded notices.
func (r *Recorder) Drain() []domain.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}
