package util

import (
	"bytes"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Gettext JSON catalogs have this layout:
//
//	{
//	  "header_comment": "# comments\n",
//	  "header_meta": "Language: de\n...",
//	  "entries": [{"msgid": "...", "msgstr": "...", "fuzzy": false}]
//	}
//
// Entries may also carry "msgctxt", "msgid_plural", "msgstr_plural",
// "comments", "flags" and "obsolete".

// IsGettextJSON returns true if data looks like a gettext JSON catalog
// rather than PO text.
func IsGettextJSON(data []byte) bool {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && data[0] == '{'
}

// ParseGettextJSONCatalog reads a gettext JSON catalog into a Catalog.
// Parsing is tolerant: text after the top-level object is ignored, and
// entries without msgid are dropped.
func ParseGettextJSONCatalog(data []byte) (*Catalog, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: not a gettext JSON object", ErrMalformedCatalog)
	}
	entries := doc.Get("entries")
	if entries.Exists() && !entries.IsArray() {
		return nil, fmt.Errorf("%w: \"entries\" is not an array", ErrMalformedCatalog)
	}

	catalog := NewCatalog()
	for _, line := range strings.Split(doc.Get("header_comment").String(), "\n") {
		if text, ok := translatorComment(line); ok {
			catalog.Comments = append(catalog.Comments, text)
		}
	}
	catalog.AddHeaderMeta(doc.Get("header_meta").String())

	for i, r := range entries.Array() {
		entry, err := gettextJSONEntry(r)
		if err != nil {
			catalog.Skipped++
			log.Debugf("drop JSON entry #%d: %s", i+1, err)
			continue
		}
		catalog.Entries = append(catalog.Entries, entry)
	}
	return catalog, nil
}

func gettextJSONEntry(r gjson.Result) (*PoEntry, error) {
	msgid := r.Get("msgid")
	if !msgid.Exists() {
		return nil, ErrMissingIdentifier
	}

	e := &PoEntry{
		MsgCtxt:     r.Get("msgctxt").String(),
		MsgID:       msgid.String(),
		MsgIDPlural: r.Get("msgid_plural").String(),
		Obsolete:    r.Get("obsolete").Bool(),
		Flags:       FlagSet{},
	}
	if plural := r.Get("msgstr_plural"); plural.IsArray() && len(plural.Array()) > 0 {
		for _, s := range plural.Array() {
			e.MsgStr = append(e.MsgStr, s.String())
		}
	} else if msgstr := r.Get("msgstr"); msgstr.Exists() {
		e.MsgStr = []string{msgstr.String()}
	}
	for _, c := range r.Get("comments").Array() {
		for _, line := range strings.Split(strings.TrimRight(c.String(), "\n"), "\n") {
			e.Comments = append(e.Comments, line)
			addFlagComment(line, e.Flags)
		}
	}
	for _, flag := range r.Get("flags").Array() {
		e.Flags.Add(flag.String())
	}
	if r.Get("fuzzy").Bool() {
		e.Flags.Add("fuzzy")
	}
	return e, nil
}
