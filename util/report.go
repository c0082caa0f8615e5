// Package util provides report and message utilities.
package util

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ReportItemErrors reports errors of failed catalogs after a horizontal
// line, one log line per line of message.
func ReportItemErrors(errs []error) {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	reportResultMessages(msgs, log.ErrorLevel)
}

// ReportDroppedEntries warns about message blocks dropped for lacking msgid.
func ReportDroppedEntries(path string, n int) {
	if n == 0 {
		return
	}
	reportResultMessages([]string{
		fmt.Sprintf("%s: %d message blocks without msgid are not counted", path, n),
	}, log.WarnLevel)
}

func reportResultMessages(errs []string, level log.Level) {
	var fn func(format string, args ...interface{})

	if len(errs) == 0 {
		return
	}

	switch level {
	case log.InfoLevel:
		fn = log.Printf
	case log.WarnLevel:
		fn = log.Warnf
	default:
		fn = log.Errorf
	}

	showHorizontalLine()

	for _, err := range errs {
		for _, line := range strings.Split(err, "\n") {
			fn("%s", line)
		}
	}
}

func showHorizontalLine() {
	fmt.Fprintln(os.Stderr, strings.Repeat("-", 78))
}
