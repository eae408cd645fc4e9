package vellum

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vellumtui/vellum/signals"
)

// LogLevel is the severity of a captured log message.
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

// LogMessage is a single captured log line.
type LogMessage struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
}

// LogCapture redirects the process's stdout/stderr into a bounded,
// reactive ring buffer so a running terminal UI can surface diagnostics
// from itself or the libraries it calls without corrupting the screen.
type LogCapture struct {
	messages    signals.Accessor[[]LogMessage]
	setMessages signals.Setter[[]LogMessage]
	maxMessages int
	mu          sync.Mutex

	origStdout *os.File
	origStderr *os.File

	stdoutReader, stdoutWriter *os.File
	stderrReader, stderrWriter *os.File

	stopCh chan struct{}
}

// NewLogCapture creates a capture retaining at most maxMessages lines
// (default 1000 when maxMessages <= 0).
func NewLogCapture(maxMessages int) *LogCapture {
	if maxMessages <= 0 {
		maxMessages = 1000
	}
	messages, setMessages := signals.CreateSignal([]LogMessage{})
	return &LogCapture{
		messages:    messages,
		setMessages: setMessages,
		maxMessages: maxMessages,
	}
}

// Start redirects os.Stdout/os.Stderr through pipes read by background
// goroutines. The frame loop itself stays single-threaded; only the raw
// byte capture runs concurrently, since the captured text is written
// into LogMessage via the thread-safe signal setter, never touched
// directly by the render pipeline.
func (lc *LogCapture) Start() error {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.origStdout = os.Stdout
	lc.origStderr = os.Stderr

	var err error
	lc.stdoutReader, lc.stdoutWriter, err = os.Pipe()
	if err != nil {
		return fmt.Errorf("log capture: stdout pipe: %w", err)
	}
	lc.stderrReader, lc.stderrWriter, err = os.Pipe()
	if err != nil {
		lc.stdoutReader.Close()
		lc.stdoutWriter.Close()
		return fmt.Errorf("log capture: stderr pipe: %w", err)
	}

	os.Stdout = lc.stdoutWriter
	os.Stderr = lc.stderrWriter

	lc.stopCh = make(chan struct{})
	go lc.readPipe(lc.stdoutReader, LogLevelInfo)
	go lc.readPipe(lc.stderrReader, LogLevelError)

	return nil
}

func (lc *LogCapture) readPipe(reader *os.File, level LogLevel) {
	buf := make([]byte, 4096)
	for {
		select {
		case <-lc.stopCh:
			return
		default:
			n, err := reader.Read(buf)
			if err != nil {
				if err != io.EOF && lc.origStderr != nil {
					fmt.Fprintf(lc.origStderr, "log capture read error: %v\n", err)
				}
				return
			}
			if n > 0 {
				lc.addMessage(level, StripAnsi(string(buf[:n])))
			}
		}
	}
}

// Stop restores stdout/stderr and closes the capture pipes.
func (lc *LogCapture) Stop() {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.stopCh != nil {
		close(lc.stopCh)
		lc.stopCh = nil
	}
	if lc.origStdout != nil {
		os.Stdout = lc.origStdout
		lc.origStdout = nil
	}
	if lc.origStderr != nil {
		os.Stderr = lc.origStderr
		lc.origStderr = nil
	}
	for _, f := range []*os.File{lc.stdoutWriter, lc.stdoutReader, lc.stderrWriter, lc.stderrReader} {
		if f != nil {
			f.Close()
		}
	}
	lc.stdoutWriter, lc.stdoutReader, lc.stderrWriter, lc.stderrReader = nil, nil, nil, nil
}

func (lc *LogCapture) addMessage(level LogLevel, message string) {
	msg := LogMessage{Timestamp: time.Now(), Level: level, Message: message}
	signals.SetWith(lc.setMessages, func(prev []LogMessage) []LogMessage {
		next := append(prev, msg)
		if len(next) > lc.maxMessages {
			next = next[len(next)-lc.maxMessages:]
		}
		return next
	}, lc.messages)
}

// Log records a formatted message at the given level.
func (lc *LogCapture) Log(level LogLevel, format string, args ...any) {
	lc.addMessage(level, fmt.Sprintf(format, args...))
}

func (lc *LogCapture) Debug(format string, args ...any) { lc.Log(LogLevelDebug, format, args...) }
func (lc *LogCapture) Info(format string, args ...any)  { lc.Log(LogLevelInfo, format, args...) }
func (lc *LogCapture) Warn(format string, args ...any)  { lc.Log(LogLevelWarn, format, args...) }
func (lc *LogCapture) Error(format string, args ...any) { lc.Log(LogLevelError, format, args...) }

// Messages returns the current buffered messages, reactively.
func (lc *LogCapture) Messages() []LogMessage {
	return lc.messages()
}

// LastMessages returns at most the last n messages.
func (lc *LogCapture) LastMessages(n int) []LogMessage {
	msgs := lc.messages()
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}

// Clear discards all buffered messages.
func (lc *LogCapture) Clear() {
	lc.setMessages([]LogMessage{})
}

// FormatMessage renders msg as a single display line.
func FormatMessage(msg LogMessage) string {
	return fmt.Sprintf("[%s] %-5s %s", msg.Timestamp.Format("15:04:05.000"), msg.Level, msg.Message)
}

// WriteToOriginal writes directly to the pre-capture stdout, bypassing
// the pipe — used by the runtime to draw frames while logs are captured.
func (lc *LogCapture) WriteToOriginal(p []byte) (int, error) {
	lc.mu.Lock()
	orig := lc.origStdout
	lc.mu.Unlock()
	if orig != nil {
		return orig.Write(p)
	}
	return os.Stdout.Write(p)
}

// OriginalStdout returns the stdout file in effect before Start redirected it.
func (lc *LogCapture) OriginalStdout() *os.File {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.origStdout != nil {
		return lc.origStdout
	}
	return os.Stdout
}
