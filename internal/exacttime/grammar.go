package exacttime

import (
	"strings"
	"time"
)

// The grammar is data: a tree of rule nodes interpreted by one matcher.
// Leaves that carry a capture field write their matched value into the
// builder, which assembles the AtTime fact once a production succeeds.

type field int

const (
	fieldNone field = iota
	fieldHour
	fieldMinute
	fieldTimeOfDay
	fieldDayName
	fieldDateDay
	fieldDateMonth
	fieldDateYear
)

type ruleKind int

const (
	ruleLiteral ruleKind = iota // exact token text, case-insensitive
	ruleWord                    // word token with a given lemma
	ruleRange                   // number token within min..max
	ruleDict                    // word token whose lemma is a dictionary key
	ruleSeq                     // ordered elements, some optional
	ruleAlt                     // ordered alternatives, first full match wins
)

type rule struct {
	kind     ruleKind
	text     string         // ruleLiteral
	lemma    string         // ruleWord
	min, max int            // ruleRange
	words    map[string]int // ruleDict
	items    []element      // ruleSeq
	alts     []*rule        // ruleAlt
	capture  field          // ruleRange and ruleDict leaves
}

type element struct {
	rule     *rule
	optional bool
}

func lit(text string) *rule   { return &rule{kind: ruleLiteral, text: text} }
func word(lemma string) *rule { return &rule{kind: ruleWord, lemma: lemma} }

func ranged(min, max int, f field) *rule {
	return &rule{kind: ruleRange, min: min, max: max, capture: f}
}

func dict(words map[string]int, f field) *rule {
	return &rule{kind: ruleDict, words: words, capture: f}
}

func seq(items ...element) *rule { return &rule{kind: ruleSeq, items: items} }
func alt(alts ...*rule) *rule    { return &rule{kind: ruleAlt, alts: alts} }

func req(r *rule) element { return element{rule: r} }
func opt(r *rule) element { return element{rule: r, optional: true} }

// builder accumulates captured values while a production is being matched.
// It is snapshotted by value before speculative sub-matches, so a failed
// alternative or optional leaves no trace.
type builder struct {
	hour, minute                 int
	hasHour, hasMinute           bool
	timeOfDay                    int
	hasTimeOfDay                 bool
	dayName                      int
	hasDayName                   bool
	dateDay, dateMonth, dateYear int
	hasDate, hasDateYear         bool
}

func (b *builder) set(f field, value int) {
	switch f {
	case fieldHour:
		b.hour, b.hasHour = value, true
	case fieldMinute:
		b.minute, b.hasMinute = value, true
	case fieldTimeOfDay:
		b.timeOfDay, b.hasTimeOfDay = value, true
	case fieldDayName:
		b.dayName, b.hasDayName = value, true
	case fieldDateDay:
		b.dateDay, b.hasDate = value, true
	case fieldDateMonth:
		b.dateMonth, b.hasDate = value, true
	case fieldDateYear:
		b.dateYear, b.hasDate, b.hasDateYear = value, true, true
	}
}

// build assembles the root fact from the captured fields. A Date without an
// explicit year gets next calendar year (wall clock, not the reference
// moment — long-standing behavior, kept).
func (b *builder) build() *AtTime {
	at := &AtTime{}

	switch {
	case b.hasHour && b.hasMinute:
		at.Time = &Time{Inner: HourAndMinute{Hour: b.hour, Minute: b.minute}}
	case b.hasHour:
		at.Time = &Time{Inner: Hour{Hour: b.hour}}
	case b.hasMinute:
		at.Time = &Time{Inner: Minute{Minute: b.minute}}
	}

	if b.hasTimeOfDay {
		at.TimeOfDay = &TimeOfDayMention{Category: TimeOfDayCategory(b.timeOfDay)}
	}

	switch {
	case b.hasDate:
		year := b.dateYear
		if !b.hasDateYear {
			year = time.Now().Year() + 1
		}
		at.Day = Date{Year: year, Month: b.dateMonth, Day: b.dateDay}
	case b.hasDayName:
		at.Day = DayRef(b.dayName)
	}

	return at
}

// match attempts r against toks starting at pos. On success it returns the
// position after the consumed tokens; captures are written into b. On
// failure b is left exactly as it was.
func (r *rule) match(toks []Token, pos int, b *builder) (int, bool) {
	switch r.kind {
	case ruleLiteral:
		if pos < len(toks) && strings.ToLower(toks[pos].Raw) == r.text {
			return pos + 1, true
		}
	case ruleWord:
		if pos < len(toks) && toks[pos].Kind == TokenWord && toks[pos].Norm == r.lemma {
			return pos + 1, true
		}
	case ruleRange:
		if pos < len(toks) && toks[pos].Kind == TokenNumber &&
			toks[pos].Value >= r.min && toks[pos].Value <= r.max {
			b.set(r.capture, toks[pos].Value)
			return pos + 1, true
		}
	case ruleDict:
		if pos < len(toks) && toks[pos].Kind == TokenWord {
			if value, ok := r.words[toks[pos].Norm]; ok {
				b.set(r.capture, value)
				return pos + 1, true
			}
		}
	case ruleSeq:
		return matchSeq(r.items, toks, pos, b)
	case ruleAlt:
		for _, a := range r.alts {
			saved := *b
			if end, ok := a.match(toks, pos, b); ok {
				return end, true
			}
			*b = saved
		}
	}
	return 0, false
}

// matchSeq matches elements in order. An optional element is taken first and
// skipped only when the remainder cannot be matched after it — the sole
// backtracking the engine does.
func matchSeq(items []element, toks []Token, pos int, b *builder) (int, bool) {
	if len(items) == 0 {
		return pos, true
	}

	saved := *b
	if next, ok := items[0].rule.match(toks, pos, b); ok {
		if end, ok := matchSeq(items[1:], toks, next, b); ok {
			return end, true
		}
	}
	*b = saved

	if items[0].optional {
		return matchSeq(items[1:], toks, pos, b)
	}
	return 0, false
}

// span is a matched region of the original text, byte-exact.
type span struct {
	start int
	stop  int
}

type grammarMatch struct {
	fact *AtTime
	span span
}

// findAll scans left to right and collects every non-overlapping match of
// root, resuming after each match. An empty result is the normal
// nothing-recognized outcome, not an error.
func findAll(root *rule, toks []Token) []grammarMatch {
	var out []grammarMatch
	for i := 0; i < len(toks); {
		var b builder
		end, ok := root.match(toks, i, &b)
		if !ok || end == i {
			i++
			continue
		}
		out = append(out, grammarMatch{
			fact: b.build(),
			span: span{start: toks[i].Start, stop: toks[end-1].Stop},
		})
		i = end
	}
	return out
}
