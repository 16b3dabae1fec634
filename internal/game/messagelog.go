package game

import "fmt"

// DefaultLogSize is the number of messages kept by a new MessageLog.
const DefaultLogSize = 5

// MessageLog keeps a bounded list of game messages; when full, the oldest
// message is dropped.
type MessageLog struct {
	max      int
	messages []string
}

// NewMessageLog creates a log holding at most max messages.
func NewMessageLog(max int) *MessageLog {
	if max <= 0 {
		max = DefaultLogSize
	}
	return &MessageLog{max: max}
}

// Add appends a message, discarding the oldest when over capacity.
func (l *MessageLog) Add(text string) {
	l.messages = append(l.messages, text)
	for len(l.messages) > l.max {
		l.messages = l.messages[1:]
	}
}

// Addf formats and appends a message.
func (l *MessageLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Clear removes all messages.
func (l *MessageLog) Clear() {
	l.messages = nil
}

// Messages returns a copy of the current messages, oldest first.
func (l *MessageLog) Messages() []string {
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}
