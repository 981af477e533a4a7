// Asset file handlers: upload, download, thumbnail and orphan sweep.

package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gameforge/studio/internal/blobstore"
	"github.com/gameforge/studio/internal/recordstore"
	"github.com/gameforge/studio/internal/studio"
)

// Thumbnails fit inside a 200x200 bounding box, preserving aspect ratio.
const (
	thumbMaxWidth  = 200
	thumbMaxHeight = 200
)

type uploadResponse struct {
	Stored       bool   `json:"stored"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	HasThumbnail bool   `json:"hasThumbnail"`
}

// handleUpload stores a multipart file upload against the asset record with
// the given id and flips the record's hasFile flag. The blob write and the
// record patch are separate steps; when the patch fails after the blob is
// stored, the error says so instead of pretending the upload failed whole.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := s.assetRecord(id); err != nil {
		writeError(w, err)
		return
	}

	if s.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			writeErrorCode(w, http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge,
				fmt.Sprintf("Upload exceeds %d bytes", s.cfg.MaxUploadBytes))
			return
		}
		writeErrorCode(w, http.StatusBadRequest, ErrorCodeValidationFailed, `Missing multipart field "file"`)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			writeErrorCode(w, http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge,
				fmt.Sprintf("Upload exceeds %d bytes", s.cfg.MaxUploadBytes))
			return
		}
		writeError(w, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	// Thumbnail derivation failure is not fatal, the original bytes still
	// get stored.
	thumbnail, err := blobstore.DeriveThumbnail(data, mimeType, thumbMaxWidth, thumbMaxHeight)
	if err != nil {
		s.log.Warn("Failed to derive thumbnail", "id", id, "name", header.Filename, "err", err)
		thumbnail = nil
	}

	stored, err := s.files.Put(id, header.Filename, mimeType, data, thumbnail)
	if err != nil {
		writeError(w, fmt.Errorf("failed to store file: %w", err))
		return
	}
	if _, err := s.records.Update(studio.NSAssets, id, recordstore.Record{"hasFile": true}); err != nil {
		writeError(w, fmt.Errorf("file stored but asset record update failed: %w", err))
		return
	}

	writeJSON(w, uploadResponse{
		Stored:       true,
		Name:         stored.Name,
		MimeType:     stored.MimeType,
		Size:         stored.Size,
		HasThumbnail: stored.HasThumbnail,
	})
}

// handleDownload serves the stored bytes with their original name and type.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	stored, err := s.files.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", stored.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", stored.Name))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(stored.Data)))
	_, _ = w.Write(stored.Data)
}

// handleThumbnail serves the derived JPEG thumbnail. Metadata is checked
// first so files without a thumbnail 404 without loading payload bytes.
func (s *Server) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	meta, err := s.files.Stat(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !meta.HasThumbnail {
		writeErrorCode(w, http.StatusNotFound, ErrorCodeNotFound, "No thumbnail for this file")
		return
	}
	stored, err := s.files.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(stored.Thumbnail)
}

// handleDeleteFile removes the stored file and clears the record's hasFile
// flag. Removing an absent file still succeeds.
func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.files.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.records.Update(studio.NSAssets, id, recordstore.Record{"hasFile": false}); err != nil {
		// Record may be gone already; the file is deleted either way.
		if !errors.Is(err, recordstore.ErrNotFound) {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, deleteResponse{Deleted: true})
}

type sweepResponse struct {
	Removed int `json:"removed"`
}

// handleSweep removes stored files whose owning asset record no longer
// exists.
func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	records, err := s.records.List(studio.NSAssets)
	if err != nil {
		writeError(w, err)
		return
	}
	live := make(map[int64]bool, len(records))
	for _, rec := range records {
		live[rec.ID()] = true
	}
	removed, err := s.files.Sweep(live)
	if err != nil {
		writeError(w, err)
		return
	}
	if removed > 0 {
		s.log.Info("Swept orphaned files", "removed", removed)
	}
	writeJSON(w, sweepResponse{Removed: removed})
}

// isTooLarge reports whether err came from the request body size limit.
// Multipart parsing does not always preserve the typed error, so the
// message is checked as a fallback.
func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large")
}

// assetRecord fetches the asset record with the given id.
func (s *Server) assetRecord(id int64) (recordstore.Record, error) {
	records, err := s.records.List(studio.NSAssets)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID() == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%d", recordstore.ErrNotFound, studio.NSAssets, id)
}
