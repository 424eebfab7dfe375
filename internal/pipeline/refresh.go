package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/catalog"
)

type Importer interface {
	Run(ctx context.Context) ([]catalog.SourceReport, error)
}

type CatalogNotifier interface {
	NotifyCatalogUpdated(source string, listings int)
}

type RefreshReport struct {
	Sources []catalog.SourceReport `json:"sources"`
	Tagging TagReport              `json:"tagging"`
}

// Refresh imports the catalog, tags the new listings and tells connected
// clients which sources changed.
type Refresh struct {
	importer Importer
	tagger   *Tagger
	notifier CatalogNotifier
	log      *log.Logger
}

func NewRefresh(importer Importer, tagger *Tagger, notifier CatalogNotifier, logger *log.Logger) *Refresh {
	if logger == nil {
		logger = log.Default()
	}
	return &Refresh{importer: importer, tagger: tagger, notifier: notifier, log: logger}
}

// Run keeps going after a failed source so the healthy ones still get tagged.
// The import error is returned after tagging.
func (p *Refresh) Run(ctx context.Context, params TagParams) (RefreshReport, error) {
	start := time.Now()
	var rep RefreshReport

	var importErr error
	if p.importer != nil {
		rep.Sources, importErr = p.importer.Run(ctx)
		if ctx.Err() != nil {
			return rep, ctx.Err()
		}
	}

	if p.tagger != nil {
		tr, err := p.tagger.Run(ctx, params)
		rep.Tagging = tr
		if err != nil {
			p.log.Printf("pipeline=refresh status=error stage=tagging err=%v", err)
			return rep, err
		}
	}

	if p.notifier != nil {
		for _, s := range rep.Sources {
			p.notifier.NotifyCatalogUpdated(s.Source, s.Upserted)
		}
	}

	p.log.Printf("pipeline=refresh status=done sources=%d tagged=%d duration=%s", len(rep.Sources), rep.Tagging.Tagged, time.Since(start))
	return rep, importErr
}

// Tag runs only the tagging stage.
func (p *Refresh) Tag(ctx context.Context, params TagParams) (TagReport, error) {
	if p.tagger == nil {
		return TagReport{}, nil
	}
	return p.tagger.Run(ctx, params)
}
