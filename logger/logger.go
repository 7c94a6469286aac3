// Package logger is the central diagnostics log. The interpreter reports
// things that are worth knowing about but are not errors (unimplemented
// opcodes, ignored key events) and the command line decides whether to echo
// them.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// maximum number of entries kept by the central log
const maxEntries = 256

// Entry is a single line of the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string

	// number of times the entry was repeated after the first
	Repeated int
}

func (e Entry) String() string {
	if e.Repeated > 0 {
		return fmt.Sprintf("%s: %s (repeat x%d)", e.Tag, e.Detail, e.Repeated+1)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Detail)
}

type logger struct {
	crit    sync.Mutex
	max     int
	entries []Entry

	// receives new entries, not repeats
	echo func(Entry)
}

// only one log for the whole program
var central = newLogger(maxEntries)

func newLogger(max int) *logger {
	return &logger{max: max}
}

func (l *logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		l.entries[n-1].Repeated++
		l.entries[n-1].Timestamp = time.Now()
		return
	}

	e := Entry{Timestamp: time.Now(), Tag: tag, Detail: detail}
	l.entries = append(l.entries, e)
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}

	if l.echo != nil {
		l.echo(e)
	}
}

func (l *logger) clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

func (l *logger) tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if number < 0 || number > len(l.entries) {
		number = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-number:] {
		fmt.Fprintln(output, e.String())
	}
}

// Log adds an entry to the central log. An entry identical to the previous
// one only bumps its repeat count.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(tag, detail string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear removes every entry.
func Clear() {
	central.clear()
}

// Write the whole log to output.
func Write(output io.Writer) {
	central.tail(output, -1)
}

// Tail writes the last number entries to output.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho forwards new entries to a structured logger as they are logged,
// the tag going in a field of its own. A nil logger turns echoing off.
// Repeats are not echoed.
func SetEcho(output *log.Logger) {
	if output == nil {
		central.setEcho(nil)
		return
	}
	central.setEcho(func(e Entry) {
		output.Info(e.Detail, log.String("tag", e.Tag))
	})
}

func (l *logger) setEcho(f func(Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = f
}

// BorrowLog gives f the critical section and read access to the entries. f
// must not keep the slice.
func BorrowLog(f func([]Entry)) {
	central.crit.Lock()
	defer central.crit.Unlock()
	f(central.entries)
}
