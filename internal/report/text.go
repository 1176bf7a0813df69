// Package report renders and archives the outcome report of a seeding run.
//
// The text form is the program's primary output: one outcome line per record,
// in submission order. HTML and S3 archiving are optional extras.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/JonMunkholm/seeder/internal/core"
)

// WriteText writes one line per outcome, in submission order.
func WriteText(w io.Writer, rep core.Report) error {
	for _, line := range rep.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the text report as bytes.
func Text(rep core.Report) []byte {
	var buf bytes.Buffer
	_ = WriteText(&buf, rep)
	return buf.Bytes()
}
