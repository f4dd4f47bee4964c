// Package exacttime extracts a date/time expression from a free-form Russian
// reminder sentence and resolves it into an absolute moment relative to a
// reference "now". The remainder of the sentence is the reminder's task text.
package exacttime

import (
	"strings"
	"time"
)

// Extraction is the result of one successful extraction. Immutable; owned by
// the caller.
type Extraction struct {
	When        time.Time // resolved absolute moment
	Task        string    // input with the matched span removed, outer-trimmed
	MatchedText string    // verbatim matched substring
	Fact        *AtTime
}

// Extract finds the first temporal expression in text and resolves it
// against ref. It returns nil when nothing is recognized — that is the
// normal outcome for inputs with no temporal phrase, not an error. A zero
// ref means the current instant.
func Extract(text string, ref time.Time) *Extraction {
	if ref.IsZero() {
		ref = time.Now()
	}

	toks := Tokenize(text)
	matches := findAll(atTimeGrammar, toks)
	if len(matches) == 0 {
		return nil
	}

	m := matches[0]
	return &Extraction{
		When:        m.fact.Resolve(ref),
		Task:        strings.TrimSpace(text[:m.span.start] + text[m.span.stop:]),
		MatchedText: text[m.span.start:m.span.stop],
		Fact:        m.fact,
	}
}
