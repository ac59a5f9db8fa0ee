package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chris-tela/nuzlocke-tracker-sub000/internal/core"
)

// runResponse is the JSON shape for a run plus its tracked roster.
type runResponse struct {
	Run     *core.Run             `json:"run"`
	Pokemon []core.TrackedPokemon `json:"pokemon,omitempty"`
}

// handleHealthz reports liveness. It does not touch the database so a
// degraded pool never takes the process out of rotation.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePreviewSave decodes an uploaded save file and returns the preview
// without persisting anything.
func (s *Server) handlePreviewSave(w http.ResponseWriter, r *http.Request) {
	data, err := s.readSaveFile(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	preview, err := s.service.PreviewSave(data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, preview)
}

// handleCreateRun starts a new run from an uploaded save. The optional
// "game" form field pins the run to a specific version; it defaults to the
// first version compatible with the save.
func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	data, err := s.readSaveFile(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	run, roster, err := s.service.CreateRunFromSave(ctx, data, r.FormValue("game"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, runResponse{Run: run, Pokemon: roster})
}

// handleListRuns returns all runs, most recently updated first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.service.ListRuns(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns a single run by ID.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID, err := parseRunID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	run, err := s.service.GetRun(r.Context(), runID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, runResponse{Run: run})
}

// handleDeleteRun deletes a run and its tracked roster.
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	runID, err := parseRunID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if err := s.service.DeleteRun(WithRequestMetadata(r.Context(), r), runID); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleRunPokemon returns the tracked roster for a run in position order.
func (s *Server) handleRunPokemon(w http.ResponseWriter, r *http.Request) {
	runID, err := parseRunID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	roster, err := s.service.RunPokemon(r.Context(), runID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"pokemon": roster})
}

// handleReconcile decodes an uploaded save against an existing run and
// returns the reconciliation plan without applying it.
func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	runID, err := parseRunID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	data, err := s.readSaveFile(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	plan, err := s.service.ReconcileSave(r.Context(), runID, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// handleImport reconciles an uploaded save against a run and applies the
// resulting creates to the tracked roster.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	runID, err := parseRunID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	data, err := s.readSaveFile(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	result, err := s.service.ImportSave(ctx, runID, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// readSaveFile extracts the uploaded save from a multipart form. The body
// is capped at the configured size limit before parsing; raw cartridge
// dumps top out at 512 KiB so anything larger is not a save.
func (s *Server) readSaveFile(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large: limit %d bytes", maxSize)
		}
		return nil, fmt.Errorf("parsing multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("no file provided in upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading upload %q: %w", header.Filename, err)
	}
	if len(data) == 0 {
		return nil, errors.New("empty file uploaded")
	}

	return data, nil
}

// parseRunID extracts and validates the runID URL parameter.
func parseRunID(r *http.Request) (uuid.UUID, error) {
	runID, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid run id", core.ErrRunNotFound)
	}
	return runID, nil
}
