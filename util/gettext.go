// Package util provides PO file parsing, statistics and reporting utilities.
package util

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

var reMsgstrIndex = regexp.MustCompile(`^msgstr\[([0-9]+)\]$`)

// maxPluralForms bounds N of msgstr[N]. Lines with a larger index are
// ignored like other unknown lines.
const maxPluralForms = 100

// FlagSet is the set of flags ("fuzzy", "c-format", ...) of one entry.
type FlagSet map[string]struct{}

// NewFlagSet returns a set holding names.
func NewFlagSet(names ...string) FlagSet {
	s := FlagSet{}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts name, ignoring blank names.
func (s FlagSet) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s FlagSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns flag names in sorted order.
func (s FlagSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PoEntry represents a single message entry of a catalog.
type PoEntry struct {
	Comments    []string // Attached comment lines, as written
	MsgCtxt     string
	MsgID       string
	MsgIDPlural string
	MsgStr      []string // msgstr, or msgstr[0..n] for plural entries
	Flags       FlagSet
	Obsolete    bool // Entry written with the "#~" prefix
}

// IsFuzzy returns true if the entry carries the fuzzy flag.
func (e *PoEntry) IsFuzzy() bool {
	return e.Flags.Has("fuzzy")
}

// IsEmpty returns true if the entry has no translation, or all forms are blank.
func (e *PoEntry) IsEmpty() bool {
	for _, s := range e.MsgStr {
		if s != "" {
			return false
		}
	}
	return true
}

// HeaderField is one "Key: Value" line of the header entry.
type HeaderField struct {
	Key   string
	Value string
}

// Catalog is the parsed form of one PO/POT file.
type Catalog struct {
	// Headers maps header names to values. A repeated key keeps the
	// later value.
	Headers map[string]string
	// HeaderFields keeps every header line in declaration order,
	// including repeated keys.
	HeaderFields []HeaderField
	// Comments are free-standing translator comments, duplicates kept.
	Comments []string
	Entries  []*PoEntry
	// Skipped counts message blocks dropped for lacking a msgid.
	Skipped int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{Headers: map[string]string{}}
}

// Header returns the value of header key, or "" if it is not defined.
func (c *Catalog) Header(key string) string {
	return c.Headers[key]
}

// AddHeaderMeta expands the msgstr of the header entry into header fields.
func (c *Catalog) AddHeaderMeta(meta string) {
	for _, line := range strings.Split(meta, "\n") {
		idx := strings.Index(line, ":")
		if idx < 0 {
			if strings.TrimSpace(line) != "" {
				log.Debugf("ignore bad header line: %q", line)
			}
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		value := strings.TrimSpace(line[idx+1:])
		c.HeaderFields = append(c.HeaderFields, HeaderField{Key: key, Value: value})
		c.Headers[key] = value
	}
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineKeyword
	lineString
	lineUnknown
)

// poLine is one classified line of PO text.
type poLine struct {
	kind     lineKind
	keyword  string // msgctxt, msgid, msgid_plural or msgstr
	index    int    // N of msgstr[N], or -1
	value    string // decoded string for keyword and string lines
	text     string // trimmed line for comment lines
	obsolete bool
}

func classifyLine(line string) poLine {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return poLine{kind: lineBlank, index: -1}
	case strings.HasPrefix(trimmed, "#~"):
		rest := strings.TrimSpace(trimmed[2:])
		l := poLine{kind: lineComment, index: -1, text: trimmed}
		if rest != "" && !strings.HasPrefix(rest, "|") {
			l = classifyLine(rest)
			if l.kind == lineComment {
				l.text = trimmed
			}
		}
		l.obsolete = true
		return l
	case strings.HasPrefix(trimmed, "#"):
		return poLine{kind: lineComment, index: -1, text: trimmed}
	case strings.HasPrefix(trimmed, `"`):
		return poLine{kind: lineString, index: -1, value: poUnquote(trimmed)}
	}

	word, rest := trimmed, ""
	if idx := strings.IndexAny(trimmed, " \t"); idx > 0 {
		word, rest = trimmed[:idx], strings.TrimSpace(trimmed[idx:])
	}
	if !strings.HasPrefix(rest, `"`) {
		return poLine{kind: lineUnknown, index: -1}
	}
	l := poLine{kind: lineKeyword, index: -1, value: poUnquote(rest)}
	switch word {
	case "msgctxt", "msgid", "msgid_plural", "msgstr":
		l.keyword = word
	default:
		m := reMsgstrIndex.FindStringSubmatch(word)
		if m == nil {
			return poLine{kind: lineUnknown, index: -1}
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n >= maxPluralForms {
			return poLine{kind: lineUnknown, index: -1}
		}
		l.keyword = "msgstr"
		l.index = n
	}
	return l
}

// poUnquote returns the decoded content of a quoted PO string. A missing
// closing quote takes the rest of the line.
func poUnquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	end := len(s)
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == '"' {
			end = i
			break
		}
	}
	return poUnescape(s[:end])
}

// poUnescape decodes PO escape sequences in s into real characters.
func poUnescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '"', '\\':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// poBlock is a run of lines which make up one entry, or a run of
// free-standing comments.
type poBlock struct {
	comments  []poLine
	lines     []poLine
	hasMsgstr bool
}

func (b *poBlock) empty() bool {
	return len(b.comments) == 0 && len(b.lines) == 0
}

func (b *poBlock) hasKeyword() bool {
	return len(b.lines) > 0
}

// translatorComment returns the text of a "# ..." comment line. Extracted
// (#.), reference (#:), flag (#,), previous (#|) and obsolete (#~) comments
// are not translator comments.
func translatorComment(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	rest := line[1:]
	if rest != "" && strings.ContainsRune(".:,|~", rune(rest[0])) {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// addFlagComment adds flags of a "#, flag1, flag2" line to flags.
func addFlagComment(line string, flags FlagSet) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "#,") {
		return
	}
	for _, flag := range strings.Split(line[2:], ",") {
		flags.Add(flag)
	}
}

func (b *poBlock) translatorComments() []string {
	var result []string
	for _, l := range b.comments {
		if l.obsolete {
			continue
		}
		if text, ok := translatorComment(l.text); ok {
			result = append(result, text)
		}
	}
	return result
}

// entry builds a PoEntry from the block.
func (b *poBlock) entry() (*PoEntry, error) {
	var (
		e      = &PoEntry{Flags: FlagSet{}}
		hasID  bool
		target func(string)
	)

	for _, l := range b.comments {
		e.Comments = append(e.Comments, l.text)
		text := l.text
		if l.obsolete {
			text = strings.TrimSpace(strings.TrimPrefix(text, "#~"))
		}
		addFlagComment(text, e.Flags)
	}

	for _, l := range b.lines {
		if l.obsolete {
			e.Obsolete = true
		}
		if l.kind == lineString {
			if target != nil {
				target(l.value)
			}
			continue
		}
		switch l.keyword {
		case "msgctxt":
			e.MsgCtxt = l.value
			target = func(s string) { e.MsgCtxt += s }
		case "msgid":
			hasID = true
			e.MsgID = l.value
			target = func(s string) { e.MsgID += s }
		case "msgid_plural":
			e.MsgIDPlural = l.value
			target = func(s string) { e.MsgIDPlural += s }
		case "msgstr":
			idx := l.index
			if idx < 0 {
				idx = 0
			}
			for len(e.MsgStr) <= idx {
				e.MsgStr = append(e.MsgStr, "")
			}
			e.MsgStr[idx] = l.value
			target = func(s string) { e.MsgStr[idx] += s }
		}
	}

	if !hasID {
		return nil, ErrMissingIdentifier
	}
	return e, nil
}

// splitPoBlocks splits PO text into blocks. A blank line ends a block; so
// does a comment or a new msgctxt/msgid after the msgstr of an entry.
func splitPoBlocks(data []byte) (blocks []*poBlock, recognized, nonBlank int) {
	cur := &poBlock{}
	flush := func() {
		if !cur.empty() {
			blocks = append(blocks, cur)
		}
		cur = &poBlock{}
	}

	for n, line := range strings.Split(string(data), "\n") {
		l := classifyLine(line)
		if l.kind != lineBlank {
			nonBlank++
		}
		switch l.kind {
		case lineBlank:
			flush()
		case lineComment:
			recognized++
			if cur.hasKeyword() {
				flush()
			}
			cur.comments = append(cur.comments, l)
		case lineKeyword:
			recognized++
			if cur.hasMsgstr && (l.keyword == "msgid" || l.keyword == "msgctxt") {
				flush()
			}
			if l.keyword == "msgstr" {
				cur.hasMsgstr = true
			}
			cur.lines = append(cur.lines, l)
		case lineString:
			recognized++
			if !cur.hasKeyword() {
				log.Debugf("line %d: ignore string without keyword", n+1)
				continue
			}
			cur.lines = append(cur.lines, l)
		default:
			log.Debugf("line %d: ignore unknown line: %q", n+1, line)
		}
	}
	flush()
	return blocks, recognized, nonBlank
}

// ParseCatalog parses PO/POT text into a Catalog.
//
// Parsing is best effort: unknown lines are ignored and message blocks
// without msgid are dropped. ErrMalformedCatalog is returned only if the
// text is binary or has no PO syntax at all.
func ParseCatalog(data []byte) (*Catalog, error) {
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, fmt.Errorf("%w: binary content", ErrMalformedCatalog)
	}

	blocks, recognized, nonBlank := splitPoBlocks(data)
	if nonBlank > 0 && recognized == 0 {
		return nil, fmt.Errorf("%w: no PO syntax found", ErrMalformedCatalog)
	}

	var (
		catalog     = NewCatalog()
		seenMessage bool
	)
	for _, b := range blocks {
		if !b.hasKeyword() {
			catalog.Comments = append(catalog.Comments, b.translatorComments()...)
			continue
		}
		entry, err := b.entry()
		if err != nil {
			catalog.Skipped++
			log.Debugf("drop message block #%d: %s", len(catalog.Entries)+catalog.Skipped, err)
			seenMessage = true
			continue
		}
		if !seenMessage && !entry.Obsolete && entry.MsgID == "" && entry.MsgCtxt == "" {
			catalog.Comments = append(catalog.Comments, b.translatorComments()...)
			catalog.AddHeaderMeta(strings.Join(entry.MsgStr, ""))
			seenMessage = true
			continue
		}
		seenMessage = true
		catalog.Entries = append(catalog.Entries, entry)
	}
	return catalog, nil
}
