// Package mlog configures apex/log for the marketd daemons and tools.
package mlog

import (
	"io"

	"github.com/apex/log"
)

// Setup installs the line handler on the default logger. Unknown level names
// fall back to info.
func Setup(levelName string, w io.Writer) {
	log.SetHandler(NewHandler(w))

	level, err := log.ParseLevel(levelName)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
