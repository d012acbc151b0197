package audit

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// SDID constants for structured data IDs (RFC5424)
// EntityKit's Private Enterprise Number is 61429
const (
	EntityKitPEN = 61429
	SDIDEntity   = "entity@61429"
	SDIDAction   = "action@61429"
)

// Syslog facility constants
const (
	FacilityUser   = 1  // LOG_USER - application messages
	FacilityLocal0 = 16 // LOG_LOCAL0 - site-local audit stream
)

// Severity levels matching syslog (RFC5424)
type Severity int

const (
	SeverityEmergency Severity = iota // 0
	SeverityAlert                     // 1
	SeverityCritical                  // 2
	SeverityError                     // 3
	SeverityWarning                   // 4
	SeverityNotice                    // 5
	SeverityInfo                      // 6
	SeverityDebug                     // 7
)

// Event represents an audit event
type Event interface {
	MessageID() string
	Message() string
	Severity() Severity
	Facility() int
	StructuredData() map[string]map[string]string
}

// Logger handles audit logging in RFC5424 syslog format
type Logger struct {
	writer   io.Writer
	hostname string
	appName  string
	pid      int
}

// NewLogger creates a new audit logger writing to stdout
func NewLogger() *Logger {
	hostname, _ := os.Hostname()
	return &Logger{
		writer:   os.Stdout,
		hostname: hostname,
		appName:  "entitykit",
		pid:      os.Getpid(),
	}
}

// SetWriter sets the output writer for the logger
func (l *Logger) SetWriter(w io.Writer) {
	l.writer = w
}

// Log writes an audit event in RFC5424 syslog format
// Format: <PRI>VERSION TIMESTAMP HOSTNAME APP-NAME PROCID MSGID SD MSG
func (l *Logger) Log(event Event) {
	pri := event.Facility()*8 + int(event.Severity())
	timestamp := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")

	sd := formatStructuredData(event.StructuredData())
	if sd == "" {
		sd = "-"
	}

	fmt.Fprintf(l.writer, "<%d>1 %s %s %s %d %s %s %s\n",
		pri, timestamp, l.hostname, l.appName, l.pid, event.MessageID(), sd, event.Message())
}

// formatStructuredData renders RFC5424 SD-ELEMENTs with deterministic
// parameter ordering.
func formatStructuredData(data map[string]map[string]string) string {
	if len(data) == 0 {
		return ""
	}

	sdids := make([]string, 0, len(data))
	for sdid := range data {
		sdids = append(sdids, sdid)
	}
	sort.Strings(sdids)

	var b strings.Builder
	for _, sdid := range sdids {
		params := data[sdid]
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("[" + sdid)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %s=%q", k, params[k]))
		}
		b.WriteString("]")
	}
	return b.String()
}
