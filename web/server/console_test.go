package server

import (
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-session-123", messageChan)

	logger.Printf("%s\n", "Test log message")

	select {
	case msg := <-messageChan:
		if msg.Message != "Test log message\n" {
			t.Errorf("Expected message 'Test log message\\n', got '%s'", msg.Message)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if msg.Type != "console" {
			t.Errorf("Expected type 'console', got '%s'", msg.Type)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for console message")
	}
}

func TestWebLogger_FormattedMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-session-format", messageChan)

	logger.Printf("Selected shape %d of %s\n", 3, "interactive")

	select {
	case msg := <-messageChan:
		expected := "Selected shape 3 of interactive\n"
		if msg.Message != expected {
			t.Errorf("Expected formatted message '%s', got '%s'", expected, msg.Message)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for formatted message")
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-session-789", messageChan)

	logger.Printf("Message 1\n")

	// These must not block even though the channel is full
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	if len(messageChan) != 1 {
		t.Errorf("Expected 1 buffered message, got %d", len(messageChan))
	}
	if msg := <-messageChan; msg.Message != "Message 1\n" {
		t.Errorf("Expected the first message to be kept, got '%s'", msg.Message)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("test-session-nil", nil)

	// Must not panic
	logger.Printf("Test message with nil channel\n")
}

func TestWebLogger_TagsFrameAndSelection(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-session-tags", messageChan)

	logger.Printf("before any frame\n")
	logger.SetFrame(4)
	logger.SetSelected(2)
	logger.Printf("after selecting\n")

	first, second := <-messageChan, <-messageChan
	if first.Frame != 0 || first.Selected != -1 {
		t.Errorf("Expected frame 0 and no selection, got frame %d selected %d", first.Frame, first.Selected)
	}
	if second.Frame != 4 || second.Selected != 2 {
		t.Errorf("Expected frame 4 and selected 2, got frame %d selected %d", second.Frame, second.Selected)
	}
}
