package mlog

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/apex/log"
)

var levelNames = [...]string{
	log.DebugLevel: "DEBUG",
	log.InfoLevel:  "INFO",
	log.WarnLevel:  "WARN",
	log.ErrorLevel: "ERROR",
	log.FatalLevel: "FATAL",
}

// Handler writes one line per entry: level, timestamp, message, then the
// entry's fields sorted by name so log lines for the same event diff cleanly.
type Handler struct {
	mu     sync.Mutex
	writer io.Writer
}

func NewHandler(w io.Writer) *Handler {
	return &Handler{writer: w}
}

type field struct {
	name  string
	value interface{}
}

type byName []field

func (a byName) Len() int           { return len(a) }
func (a byName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byName) Less(i, j int) bool { return a[i].name < a[j].name }

func (h *Handler) HandleLog(e *log.Entry) error {
	var fields []field
	for k, v := range e.Fields {
		fields = append(fields, field{k, v})
	}
	sort.Sort(byName(fields))

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, "%5s %s %-25s", levelNames[e.Level], time.Now().Format(time.DateTime), e.Message)
	for _, f := range fields {
		_, _ = fmt.Fprintf(&b, " %s=%v", f.name, f.value)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = fmt.Fprintln(h.writer, b.String())

	return nil
}
