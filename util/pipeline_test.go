package util

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testCatalogFr = `msgid ""
msgstr ""
"Language: fr\n"

msgid "Hello"
msgstr "Bonjour"

msgid "Hello"
msgstr ""
`
	testCatalogPot = `# Template comment
msgid ""
msgstr ""
"Content-Type: text/plain; charset=CHARSET\n"

msgid "Hello"
msgstr ""
`
)

type collectRenderer struct {
	calls int
	stats []*CatalogStats
	err   error
}

func (r *collectRenderer) Render(stats []*CatalogStats) error {
	r.calls++
	r.stats = stats
	return r.err
}

func TestRunStatPipeline(t *testing.T) {
	files := []*CatalogFile{
		{Path: "po/de.po", Contents: []byte(testCatalogDe)},
		{Path: "po/bad.po", Contents: []byte("not a catalog\nat all\n")},
		{Path: "po/fr.po", Contents: []byte(testCatalogFr)},
	}
	r := &collectRenderer{}

	out, errs, err := RunStatPipeline(files, r)
	if err != nil {
		t.Fatalf("RunStatPipeline: %v", err)
	}

	if len(out) != len(files) {
		t.Fatalf("want %d items, got %d", len(files), len(out))
	}
	for i := range files {
		if out[i] != files[i] {
			t.Errorf("item %d is not passed through unchanged", i)
		}
	}

	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %v", errs)
	}
	if !errors.Is(errs[0], ErrMalformedCatalog) {
		t.Errorf("want ErrMalformedCatalog, got %v", errs[0])
	}
	var itemErr *ItemError
	if !errors.As(errs[0], &itemErr) || itemErr.Path != "po/bad.po" {
		t.Errorf("error should name po/bad.po: %v", errs[0])
	}

	if r.calls != 1 {
		t.Errorf("renderer called %d times", r.calls)
	}
	if len(r.stats) != 2 {
		t.Fatalf("want 2 stats, got %d", len(r.stats))
	}
	if r.stats[0].Path != "po/de.po" || r.stats[0].Language != "de" {
		t.Errorf("stats[0]: path %q, language %q", r.stats[0].Path, r.stats[0].Language)
	}
	if r.stats[1].Path != "po/fr.po" || r.stats[1].Language != "fr" {
		t.Errorf("stats[1]: path %q, language %q", r.stats[1].Path, r.stats[1].Language)
	}
	if want := (CategoryStats{Total: 2, Unique: 1, Duplicate: 1}); r.stats[1].Entries != want {
		t.Errorf("fr entries: want %+v, got %+v", want, r.stats[1].Entries)
	}
	if r.stats[1].Empty != 1 {
		t.Errorf("fr empty: want 1, got %d", r.stats[1].Empty)
	}
}

func TestRunStatPipeline_NoRenderer(t *testing.T) {
	files := []*CatalogFile{{Path: "po/fr.po", Contents: []byte(testCatalogFr)}}

	if _, _, err := RunStatPipeline(files, nil); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("want ErrNoRenderer, got %v", err)
	}

	p := NewStatPipeline(nil)
	if _, err := p.Process(files[0]); err != nil {
		t.Errorf("Process: %v", err)
	}
	if err := p.Finish(); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("want ErrNoRenderer, got %v", err)
	}
}

func TestRunStatPipeline_RenderError(t *testing.T) {
	r := &collectRenderer{err: errors.New("disk full")}
	_, errs, err := RunStatPipeline([]*CatalogFile{
		{Path: "po/fr.po", Contents: []byte(testCatalogFr)},
	}, r)
	if len(errs) != 0 {
		t.Errorf("unexpected item errors: %v", errs)
	}
	if err == nil || err.Error() != "disk full" {
		t.Errorf("want renderer error, got %v", err)
	}
}

func TestStatPipeline_Process(t *testing.T) {
	t.Run("stream", func(t *testing.T) {
		p := NewStatPipeline(&collectRenderer{})
		f := &CatalogFile{Path: "po/ja.po", Reader: strings.NewReader(testCatalogFr)}
		item, err := p.Process(f)
		if item != f {
			t.Error("item is not passed through")
		}
		if !errors.Is(err, ErrUnsupportedInput) || !strings.Contains(err.Error(), "po/ja.po") {
			t.Errorf("want ErrUnsupportedInput naming po/ja.po, got %v", err)
		}
		if len(p.Stats()) != 0 {
			t.Errorf("stream should have no stats")
		}
	})

	t.Run("null item", func(t *testing.T) {
		p := NewStatPipeline(&collectRenderer{})
		f := &CatalogFile{Path: "po"}
		item, err := p.Process(f)
		if item != f || err != nil {
			t.Errorf("null item: got %v, %v", item, err)
		}
		if len(p.Stats()) != 0 {
			t.Errorf("null item should have no stats")
		}
	})

	t.Run("template", func(t *testing.T) {
		p := NewStatPipeline(&collectRenderer{})
		_, err := p.Process(&CatalogFile{Path: "po/git.pot", Contents: []byte(testCatalogPot)})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if len(p.Stats()) != 1 {
			t.Fatalf("want 1 stats, got %d", len(p.Stats()))
		}
		s := p.Stats()[0]
		if s.Language != PotLanguage || s.Comments.Total != 1 || s.Headers.Total != 1 || s.Empty != 1 {
			t.Errorf("unexpected stats: %+v", s)
		}
	})

	t.Run("renders once", func(t *testing.T) {
		r := &collectRenderer{}
		p := NewStatPipeline(r)
		for i := 0; i < 2; i++ {
			if err := p.Finish(); err != nil {
				t.Fatalf("Finish: %v", err)
			}
		}
		if r.calls != 1 || len(r.stats) != 0 {
			t.Errorf("renderer: %d calls, %d stats", r.calls, len(r.stats))
		}
	})
}

func TestCountFileStats_GettextJSON(t *testing.T) {
	stats, err := CountFileStats(&CatalogFile{
		Path:     "po/de.json",
		Contents: []byte(testGettextJSON),
	})
	if err != nil {
		t.Fatalf("CountFileStats: %v", err)
	}
	if stats.Path != "po/de.json" || stats.Language != "de" || stats.Entries.Total != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestCountFileStats_SkippedBlocks(t *testing.T) {
	stats, err := CountFileStats(&CatalogFile{
		Path:     "po/x.po",
		Contents: []byte("msgstr \"orphan\"\n\nmsgid \"a\"\nmsgstr \"b\"\n"),
	})
	if err != nil {
		t.Fatalf("CountFileStats: %v", err)
	}
	if stats.Entries.Total != 1 {
		t.Errorf("entries: want 1, got %d", stats.Entries.Total)
	}
}

func TestReadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "fr.po")
	if err := os.WriteFile(name, []byte(testCatalogFr), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := ReadCatalogFile(name)
	if err != nil {
		t.Fatalf("ReadCatalogFile: %v", err)
	}
	if f.Path != name || string(f.Contents) != testCatalogFr || f.IsNull() {
		t.Errorf("unexpected item: %+v", f)
	}

	f, err = ReadCatalogFile(dir)
	if err != nil || !f.IsNull() {
		t.Errorf("directory should be a null item: %+v, %v", f, err)
	}

	empty := filepath.Join(dir, "empty.po")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	f, err = ReadCatalogFile(empty)
	if err != nil || !f.IsNull() {
		t.Errorf("empty file should be a null item: %+v, %v", f, err)
	}

	if _, err = ReadCatalogFile(filepath.Join(dir, "missing.po")); err == nil {
		t.Error("expected error for missing file")
	}
}
