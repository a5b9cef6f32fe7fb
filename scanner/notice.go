package scanner

import (
	"sync"
	"time"
)

// NoticeTTL is how long a scan notice stays visible before auto-dismissing.
const NoticeTTL = 3 * time.Second

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

type Notice struct {
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	Code    string    `json:"code,omitempty"`
	At      time.Time `json:"at"`
}

// NoticeBoard holds the transient scan notices for one terminal. Expired
// notices are pruned on read; there are no retry semantics.
type NoticeBoard struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	notices []Notice
}

func NewNoticeBoard() *NoticeBoard {
	return &NoticeBoard{ttl: NoticeTTL, now: time.Now}
}

func (b *NoticeBoard) Push(kind, message, code string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, Notice{Kind: kind, Message: message, Code: code, At: b.now()})
}

// Active returns the notices that have not yet expired, oldest first.
func (b *NoticeBoard) Active() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	cutoff := b.now().Add(-b.ttl)
	kept := b.notices[:0]
	for _, n := range b.notices {
		if n.At.After(cutoff) {
			kept = append(kept, n)
		}
	}
	b.notices = kept
	out := make([]Notice, len(kept))
	copy(out, kept)
	return out
}
