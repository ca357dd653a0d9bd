package parser

import (
	"fmt"
	"strings"
)

// DeadEnd describes one reason parsing could not produce a document.
// Offset is a byte position into the input, or -1 when no position applies.
type DeadEnd struct {
	Offset  int
	Message string
}

func (d DeadEnd) String() string {
	if d.Offset >= 0 {
		return fmt.Sprintf("byte %d: %s", d.Offset, d.Message)
	}
	return d.Message
}

// DeadEndError carries the ordered dead ends of a failed parse.
// Error joins them one per line, which is the exact text the
// presentation shell displays.
type DeadEndError struct {
	DeadEnds []DeadEnd
}

func (e *DeadEndError) Error() string {
	msgs := make([]string, len(e.DeadEnds))
	for i, d := range e.DeadEnds {
		msgs[i] = d.String()
	}
	return strings.Join(msgs, "\n")
}
