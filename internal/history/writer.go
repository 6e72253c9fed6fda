package history

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	herrors "github.com/chazuruo/shellhist/internal/errors"
)

// Write serializes entries to w in the persisted history format, tagging the
// root element with version (the producer's application version). Command
// text is escaped, so any string round-trips through Reader unchanged; Write
// fails only when the destination does.
func Write(w io.Writer, entries []string, version string) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(xml.Header)
	fmt.Fprintf(bw, "<%s %s=\"", rootElement, versionAttribute)
	if err := xml.EscapeText(bw, []byte(version)); err != nil {
		return fmt.Errorf("%w: %w", herrors.ErrIO, err)
	}
	bw.WriteString("\">\n")
	for _, entry := range entries {
		fmt.Fprintf(bw, "\t<%s>", commandElement)
		if err := xml.EscapeText(bw, []byte(entry)); err != nil {
			return fmt.Errorf("%w: %w", herrors.ErrIO, err)
		}
		fmt.Fprintf(bw, "</%s>\n", commandElement)
	}
	fmt.Fprintf(bw, "</%s>\n", rootElement)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", herrors.ErrIO, err)
	}
	return nil
}
