package util

import (
	"errors"
	"reflect"
	"testing"
)

const testGettextJSON = `{
  "header_comment": "# German translations.\n# Copyright (C) 2024\n#, fuzzy\n",
  "header_meta": "Project-Id-Version: git\nLanguage: de\nLanguage: de\n",
  "entries": [
    {
      "msgid": "Hello",
      "msgstr": "Hallo",
      "comments": ["#. greeting\n#, c-format"]
    },
    {
      "msgctxt": "count",
      "msgid": "One file",
      "msgid_plural": "%d files",
      "msgstr_plural": ["Eine Datei", ""],
      "fuzzy": true
    },
    {
      "msgid": "Old",
      "msgstr": "",
      "obsolete": true,
      "flags": ["no-wrap"]
    },
    {
      "msgstr": "orphan"
    }
  ]
}
trailing text is ignored`

func TestParseGettextJSONCatalog(t *testing.T) {
	catalog, err := ParseGettextJSONCatalog([]byte(testGettextJSON))
	if err != nil {
		t.Fatalf("ParseGettextJSONCatalog: %v", err)
	}

	wantComments := []string{"German translations.", "Copyright (C) 2024"}
	if !reflect.DeepEqual(catalog.Comments, wantComments) {
		t.Errorf("comments: got %q, want %q", catalog.Comments, wantComments)
	}
	if len(catalog.HeaderFields) != 3 || len(catalog.Headers) != 2 {
		t.Errorf("headers: got %d fields, %d keys", len(catalog.HeaderFields), len(catalog.Headers))
	}
	if catalog.Skipped != 1 {
		t.Errorf("skipped: want 1, got %d", catalog.Skipped)
	}
	if len(catalog.Entries) != 3 {
		t.Fatalf("entries: want 3, got %d", len(catalog.Entries))
	}

	e := catalog.Entries[0]
	if e.MsgID != "Hello" || !reflect.DeepEqual(e.MsgStr, []string{"Hallo"}) {
		t.Errorf("entry 1: msgid %q, msgstr %q", e.MsgID, e.MsgStr)
	}
	if !e.Flags.Has("c-format") || len(e.Comments) != 2 {
		t.Errorf("entry 1: flags %v, comments %q", e.Flags.Names(), e.Comments)
	}

	e = catalog.Entries[1]
	if e.MsgCtxt != "count" || e.MsgIDPlural != "%d files" ||
		!reflect.DeepEqual(e.MsgStr, []string{"Eine Datei", ""}) || !e.IsFuzzy() {
		t.Errorf("entry 2: %+v", e)
	}

	e = catalog.Entries[2]
	if !e.Obsolete || !e.IsEmpty() || !e.Flags.Has("no-wrap") {
		t.Errorf("entry 3: %+v", e)
	}

	stats := CountCatalogStats(catalog)
	if want := (CategoryStats{Total: 3, Unique: 2, Duplicate: 1}); stats.Headers != want {
		t.Errorf("header stats: want %+v, got %+v", want, stats.Headers)
	}
}

func TestParseGettextJSONCatalog_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"array", `[1, 2]`},
		{"entries is not an array", `{"entries": {"msgid": "x"}}`},
		{"not json", `hello`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGettextJSONCatalog([]byte(tt.data))
			if !errors.Is(err, ErrMalformedCatalog) {
				t.Errorf("expected ErrMalformedCatalog, got %v", err)
			}
		})
	}
}

func TestIsGettextJSON(t *testing.T) {
	tests := []struct {
		data string
		want bool
	}{
		{`{"entries": []}`, true},
		{"\n  {}", true},
		{"\xEF\xBB\xBF{}", true},
		{`msgid ""`, false},
		{"# {comment}", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsGettextJSON([]byte(tt.data)); got != tt.want {
			t.Errorf("IsGettextJSON(%q) = %v, want %v", tt.data, got, tt.want)
		}
	}
}
