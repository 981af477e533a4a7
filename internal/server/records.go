// Record collection handlers: CRUD per namespace plus snapshot operations.

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gameforge/studio/internal/recordstore"
	"github.com/gameforge/studio/internal/studio"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResponse{Status: "ok", Version: s.version})
}

// handleList returns the full collection in stored order.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := s.records.List(r.PathValue("namespace"))
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []recordstore.Record{}
	}
	writeJSON(w, records)
}

// handleAdd inserts a record with the next id and returns the stored copy.
func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	record, ok := decodeRecord(w, r)
	if !ok {
		return
	}
	stored, err := s.records.Add(r.PathValue("namespace"), record)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stored)
}

// handleUpdate applies a shallow patch to the record with the given id.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	patch, ok := decodeRecord(w, r)
	if !ok {
		return
	}
	updated, err := s.records.Update(r.PathValue("namespace"), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, updated)
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

// handleDelete removes the record with the given id. Deleting an absent id
// succeeds; removal is idempotent.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.records.Delete(r.PathValue("namespace"), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, deleteResponse{Deleted: true})
}

// handleExport streams the full snapshot as a download, one key per
// namespace, named <prefix>-data-<date>.json.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.records.ExportAll()
	if err != nil {
		writeError(w, err)
		return
	}
	filename := fmt.Sprintf("%s-data-%s.json", studio.ExportFilePrefix, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		writeError(w, err)
	}
}

type importResponse struct {
	Imported bool `json:"imported"`
}

// handleImport replaces known namespaces from an uploaded snapshot.
// A malformed document imports nothing.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, ErrorCodeValidationFailed, "Failed to read request body")
		return
	}
	if err := s.records.ImportAll(body); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, importResponse{Imported: true})
}

type resetResponse struct {
	Reset bool `json:"reset"`
}

// handleReset restores every namespace to its seed collection.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.records.ResetToDefaults(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resetResponse{Reset: true})
}

// handleSchema returns the column schema for every namespace.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, studio.Schemas())
}

// decodeRecord decodes the request body into a record, rejecting documents
// that are not a JSON object.
func decodeRecord(w http.ResponseWriter, r *http.Request) (recordstore.Record, bool) {
	var record recordstore.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeErrorCode(w, http.StatusBadRequest, ErrorCodeValidationFailed, "Invalid request body: expected a JSON object")
		return nil, false
	}
	return record, true
}

// pathID parses the {id} path segment.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, ErrorCodeValidationFailed, "Invalid record id")
		return 0, false
	}
	return id, true
}
