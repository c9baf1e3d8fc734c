package server

import (
	"fmt"
	"time"
)

// ConsoleMessage is a log line forwarded to the browser console of one session
type ConsoleMessage struct {
	Type      string    `json:"type"` // Always "console"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`    // "info", "warning", "error"
	Frame     int       `json:"frame"`    // Frame the message belongs to
	Selected  int       `json:"selected"` // Selected shape index, -1 when none
}

// WebLogger implements core.Logger for an interactive session. Messages are
// tagged with the session's current frame and selection and sent to a console channel.
// It is driven by the session goroutine only.
type WebLogger struct {
	sessionID   string
	consoleChan chan<- ConsoleMessage
	frame       int
	selected    int
}

// NewWebLogger creates a logger for a session with no frame rendered and nothing selected
func NewWebLogger(sessionID string, consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{
		sessionID:   sessionID,
		consoleChan: consoleChan,
		selected:    -1,
	}
}

// SetFrame sets the frame number attached to following messages
func (wl *WebLogger) SetFrame(frame int) {
	wl.frame = frame
}

// SetSelected sets the selected shape attached to following messages
func (wl *WebLogger) SetSelected(index int) {
	wl.selected = index
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	fmt.Printf("[%s #%d] %s", wl.sessionID, wl.frame, message)

	if wl.consoleChan == nil {
		return
	}

	// Non-blocking: a slow client loses console lines, never frames
	select {
	case wl.consoleChan <- ConsoleMessage{
		Type:      "console",
		Message:   message,
		Timestamp: time.Now(),
		Level:     "info",
		Frame:     wl.frame,
		Selected:  wl.selected,
	}:
	default:
	}
}
