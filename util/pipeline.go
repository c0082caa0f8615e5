package util

import (
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// CatalogFile is one input item of the statistics pipeline.
type CatalogFile struct {
	Path string
	// Contents holds the whole catalog in memory.
	Contents []byte
	// Reader is set for items which arrive as a stream. Streams are not
	// supported by the pipeline.
	Reader io.Reader
}

// IsNull returns true if the item has no contents, such as a directory
// entry or an empty file.
func (f *CatalogFile) IsNull() bool {
	return f.Reader == nil && len(f.Contents) == 0
}

// IsStream returns true if the item is not a complete in-memory buffer.
func (f *CatalogFile) IsStream() bool {
	return f.Reader != nil
}

// Renderer displays the statistics of a whole batch.
type Renderer interface {
	Render(stats []*CatalogStats) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(stats []*CatalogStats) error

// Render calls fn(stats).
func (fn RendererFunc) Render(stats []*CatalogStats) error {
	return fn(stats)
}

// StatPipeline parses and aggregates catalogs one at a time, and hands all
// statistics to a Renderer when the batch is finished.
type StatPipeline struct {
	renderer Renderer
	stats    []*CatalogStats
	finished bool
}

// NewStatPipeline creates a pipeline which renders with r.
func NewStatPipeline(r Renderer) *StatPipeline {
	return &StatPipeline{renderer: r}
}

// Stats returns statistics collected so far, in input order.
func (v *StatPipeline) Stats() []*CatalogStats {
	return v.stats
}

// Process computes statistics for f and returns f unchanged. Null items
// pass without statistics. Streams and malformed catalogs also pass
// through, with an *ItemError which names the item.
func (v *StatPipeline) Process(f *CatalogFile) (*CatalogFile, error) {
	if f.IsStream() {
		return f, newItemError(f.Path, ErrUnsupportedInput, nil)
	}
	if f.IsNull() {
		log.Debugf("%s: skip empty item", f.Path)
		return f, nil
	}

	stats, err := CountFileStats(f)
	if err != nil {
		return f, newItemError(f.Path, ErrMalformedCatalog, err)
	}
	log.Debugf("%s: %s", f.Path, strings.TrimSpace(FormatStatLine(stats)))
	v.stats = append(v.stats, stats)
	return f, nil
}

// Finish hands collected statistics to the renderer. It must be called
// once, after the last item.
func (v *StatPipeline) Finish() error {
	if v.renderer == nil {
		return ErrNoRenderer
	}
	if v.finished {
		return nil
	}
	v.finished = true
	return v.renderer.Render(v.stats)
}

// CountFileStats decodes, parses and aggregates one in-memory catalog.
func CountFileStats(f *CatalogFile) (*CatalogStats, error) {
	var (
		catalog *Catalog
		err     error
	)

	if IsGettextJSON(f.Contents) {
		catalog, err = ParseGettextJSONCatalog(f.Contents)
	} else {
		var data []byte
		data, _, err = DecodeCatalogCharset(f.Contents)
		if err == nil {
			catalog, err = ParseCatalog(data)
		}
	}
	if err != nil {
		return nil, err
	}
	ReportDroppedEntries(f.Path, catalog.Skipped)

	stats := CountCatalogStats(catalog)
	stats.Path = f.Path
	return stats, nil
}

// RunStatPipeline runs files through a new pipeline. It returns every item
// in input order, the per-item errors, and the error of the renderer. Item
// errors never stop the batch.
func RunStatPipeline(files []*CatalogFile, r Renderer) ([]*CatalogFile, []error, error) {
	var (
		out  = make([]*CatalogFile, 0, len(files))
		errs []error
	)

	if r == nil {
		return nil, nil, ErrNoRenderer
	}
	pipeline := NewStatPipeline(r)
	for _, f := range files {
		item, err := pipeline.Process(f)
		if err != nil {
			errs = append(errs, err)
		}
		out = append(out, item)
	}
	ReportItemErrors(errs)
	return out, errs, pipeline.Finish()
}
