package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edulab/atividades/activity"
	"github.com/edulab/atividades/docpipe"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *service) router() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/upload/document", s.handleUploadDocument)
	r.Post("/api/upload/generate-html", s.handleGenerateHTML)
	r.Post("/api/upload/save-section", s.handleSaveSection)
	r.Get("/api/activities", s.handleListActivities)
	r.Get("/api/sections/{key}/{runID}/markdown", s.handleSectionMarkdown)

	r.Handle("/generated/*", http.StripPrefix("/generated/",
		http.FileServer(http.Dir(s.cfg.GeneratedDir))))

	return r
}

// handleUploadDocument receives the path of an already-saved upload and
// a generated file identifier; extraction and segmentation run
// synchronously within this request.
func (s *service) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path   string `json:"path"`
		FileID string `json:"file_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Path == "" {
		writeError(w, http.StatusBadRequest, errors.New("path is required"))
		return
	}

	fileID, doc, err := s.processUpload(r.Context(), req.Path, req.FileID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, docpipe.ErrUnsupportedFormat) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "arquivo processado com sucesso",
		"data": map[string]any{
			"metadata": doc.Metadata,
			"file_id":  fileID,
		},
	})
}

// handleGenerateHTML renders the page set for a stored document. The
// transient entry is consumed exactly once.
func (s *service) handleGenerateHTML(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FileID       string                `json:"file_id"`
		ActivityInfo activity.ActivityInfo `json:"activity_info"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.FileID == "" {
		writeError(w, http.StatusBadRequest, errors.New("file_id is required"))
		return
	}

	runID, set, err := s.generatePages(r.Context(), req.FileID, req.ActivityInfo)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "html gerado com sucesso",
		"run_id":  runID,
		"pages":   set,
	})
}

// handleSaveSection overwrites a section's raw pair and resynchronizes
// the rendered page. A failed resync is reported as a warning on an
// otherwise successful save.
func (s *service) handleSaveSection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SectionKey  string `json:"section_key"`
		RunID       string `json:"run_id"`
		HTMLContent string `json:"html_content"`
		CSSContent  string `json:"css_content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.SectionKey == "" || req.RunID == "" || req.HTMLContent == "" || req.CSSContent == "" {
		writeError(w, http.StatusBadRequest, errors.New("parâmetros incompletos"))
		return
	}

	result, err := s.edits.SaveEdit(req.SectionKey, req.RunID, req.HTMLContent, req.CSSContent)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := map[string]any{
		"message": "alterações salvas com sucesso",
		"files":   result,
	}
	if !result.Synced {
		resp["warning"] = "página renderizada não pôde ser atualizada"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *service) handleListActivities(w http.ResponseWriter, r *http.Request) {
	runs, err := s.index.List(r.Context(), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (s *service) handleSectionMarkdown(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	runID := chi.URLParam(r, "runID")

	md, err := s.sectionMarkdown(key, runID)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(md))
}
