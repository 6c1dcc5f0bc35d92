package views

import "github.com/vovakirdan/tour-of-heroes/internal/messages"

// MessagesView renders the shared message log.
type MessagesView struct {
	log *messages.Log
}

// NewMessagesView wraps log.
func NewMessagesView(log *messages.Log) *MessagesView {
	return &MessagesView{log: log}
}

// Messages returns the log entries in arrival order.
func (v *MessagesView) Messages() []string {
	return v.log.Messages()
}

// Visible reports whether there is anything to show.
func (v *MessagesView) Visible() bool {
	return v.log.Len() > 0
}

// Clear empties the log.
func (v *MessagesView) Clear() {
	v.log.Clear()
}
