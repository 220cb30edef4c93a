package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edulab/atividades/activity"
	"github.com/edulab/atividades/docpipe"
	"github.com/edulab/atividades/editstore"
	"github.com/edulab/atividades/export"
	"github.com/edulab/atividades/idgen"
	"github.com/edulab/atividades/metadata"
	"github.com/edulab/atividades/render"
	"github.com/edulab/atividades/runindex"
	"github.com/edulab/atividades/segment"
	"github.com/edulab/atividades/store"
)

// service wires the pipeline stages together. Each request is processed
// synchronously; the only shared state is the injected transient store
// and the run index.
type service struct {
	cfg       *Config
	pipe      *docpipe.Pipeline
	segmenter *segment.Segmenter
	renderer  *render.Renderer
	docs      *store.Store
	edits     *editstore.Store
	index     *runindex.Index
	exporter  *export.Exporter
	newFileID idgen.Generator
	newRunID  idgen.Generator
	logger    *slog.Logger
}

func newService(cfg *Config, index *runindex.Index, logger *slog.Logger) *service {
	extractCfg := cfg.Extract
	extractCfg.Logger = logger

	return &service{
		cfg:       cfg,
		pipe:      docpipe.New(extractCfg),
		segmenter: segment.New(logger),
		renderer:  render.NewRenderer(cfg.GeneratedDir, logger),
		docs:      store.New(cfg.StoreCapacity, cfg.StoreTTL),
		edits:     editstore.New(cfg.GeneratedDir, logger),
		index:     index,
		exporter:  export.New(),
		newFileID: idgen.Prefixed("doc_", idgen.Default),
		newRunID:  idgen.Prefixed("run_", idgen.Default),
		logger:    logger,
	}
}

// processUpload extracts, segments, and stores one uploaded document.
// The caller hands over a path to an already-saved upload; multipart
// handling lives in the web layer.
func (s *service) processUpload(ctx context.Context, path, fileID string) (string, *activity.ParsedDocument, error) {
	doc, err := s.pipe.Extract(ctx, path)
	if err != nil {
		return "", nil, err
	}

	doc.Metadata = metadata.Extract(doc.RawText)
	doc.Metadata.Sections = s.segmenter.Segment(doc.RawText, doc.RichHTML)

	if fileID == "" {
		fileID = s.newFileID()
	}
	s.docs.Put(fileID, doc)

	s.logger.Info("document processed",
		"file_id", fileID,
		"sections", doc.Metadata.Sections.Len(),
		"curso", doc.Metadata.Curso)
	return fileID, doc, nil
}

// generatePages renders the page set for a previously uploaded document
// and consumes its transient entry.
func (s *service) generatePages(ctx context.Context, fileID string, info activity.ActivityInfo) (string, *render.PageSet, error) {
	doc, ok := s.docs.Get(fileID)
	if !ok {
		return "", nil, fmt.Errorf("no parsed document for file id %q", fileID)
	}

	runID := s.newRunID()
	set, err := s.renderer.RenderAll(doc, info, runID)
	if err != nil {
		return "", nil, err
	}

	keys := []string{}
	if doc.Metadata.Sections != nil {
		keys = doc.Metadata.Sections.Keys()
	}
	if err := s.index.Record(ctx, runID, fileID, set.NavigationPath, keys); err != nil {
		// The pages exist on disk; a failed index write must not undo
		// the render.
		s.logger.Error("run index record failed", "run_id", runID, "error", err)
	}

	s.docs.Evict(fileID)
	return runID, set, nil
}

// sectionMarkdown exports the current raw fragment of one section.
func (s *service) sectionMarkdown(sectionKey, runID string) (string, error) {
	rawHTML, _, err := s.edits.ReadRaw(sectionKey, runID)
	if err != nil {
		return "", err
	}
	kind := activity.KindByKey(sectionKey)
	title := kind.Title()
	return s.exporter.SectionMarkdown(title, rawHTML)
}
