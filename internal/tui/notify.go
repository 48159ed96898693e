package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// notifyDuration is how long a notification stays up before auto-dismissal.
const notifyDuration = 3500 * time.Millisecond

// noticeLevel tags the severity of a notification.
type noticeLevel int

const (
	noticeSuccess noticeLevel = iota
	noticeError
	noticeInfo
)

// notification is the single-slot user message surface. Showing a new
// message supersedes the current one; the sequence number ties each
// auto-dismiss timer to the message it was armed for, so an expired timer
// can never hide a newer message.
type notification struct {
	text  string
	level noticeLevel
	seq   int
}

// Visible reports whether a message is currently shown.
func (n notification) Visible() bool {
	return n.text != ""
}

// show replaces the current notification and arms its expiry timer.
func (m *Model) show(text string, level noticeLevel) tea.Cmd {
	m.notice.seq++
	m.notice.text = text
	m.notice.level = level

	seq := m.notice.seq
	return tea.Tick(notifyDuration, func(time.Time) tea.Msg {
		return notificationExpiredMsg{seq: seq}
	})
}

// dismiss clears the slot immediately. Any pending timer becomes stale and
// its expiry is ignored by the sequence check.
func (m *Model) dismiss() {
	m.notice.text = ""
}

// expire handles a timer firing; it only clears the slot if the timer
// belongs to the message still on display.
func (m *Model) expire(seq int) {
	if m.notice.seq == seq {
		m.notice.text = ""
	}
}
