package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lostandfound/tcy"
	"github.com/lostandfound/tcy/internal/parser"
)

// transformRequest is the JSON form of POST /api/transform. The two
// settings are pointers so an omitted field falls back to the service
// default rather than the zero value.
type transformRequest struct {
	HTML                string `json:"html"`
	TCYDigit            *int   `json:"tcy_digit"`
	AutoTextOrientation *bool  `json:"auto_text_orientation"`
}

// handleTransform rewrites HTML synchronously. JSON requests carry the
// input and overrides in the body; any other content type is treated
// as raw HTML with overrides in query parameters.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req transformRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}
		cfg := s.transformConfig(nil)
		if req.TCYDigit != nil {
			cfg.TCYDigit = *req.TCYDigit
		}
		if req.AutoTextOrientation != nil {
			cfg.AutoTextOrientation = *req.AutoTextOrientation
		}
		out := tcy.New(cfg, s.log).Transform(req.HTML)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"html": out})
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return
	}
	out := tcy.New(s.transformConfig(r.URL.Query()), s.log).Transform(string(data))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(out))
}

// handleConvert converts one uploaded manuscript to display HTML and
// transforms it, synchronously.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r, "file")
	if !ok {
		return
	}

	title, html, err := parser.Convert(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "convert: "+err.Error(), http.StatusBadRequest)
		return
	}
	out := tcy.New(s.transformConfig(r.URL.Query()), s.log).Transform(html)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"filename": filename,
		"title":    title,
		"html":     out,
	})
}

// handleBatchConvert queues any number of uploaded manuscripts and
// returns their job IDs.
func (s *Server) handleBatchConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	cfg := s.transformConfig(r.URL.Query())

	var results []map[string]any
	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		if !parser.IsSupportedExtension(filename) {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)),
			})
			continue
		}

		f, err := fh.Open()
		if err != nil {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    "failed to open file",
			})
			continue
		}
		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    "file too large or read error",
			})
			continue
		}

		job := s.orchestrator.NewJob(filename, data, cfg.TCYDigit, cfg.AutoTextOrientation)
		if err := s.orchestrator.Submit(job); err != nil {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    err.Error(),
			})
			continue
		}
		results = append(results, map[string]any{
			"filename": filename,
			"job_id":   job.ID,
			"status":   job.Status,
			"poll_url": fmt.Sprintf("/api/jobs/%s", job.ID),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{"jobs": results})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

// transformConfig builds the per-request transform settings from the
// service defaults plus optional query overrides.
func (s *Server) transformConfig(q url.Values) tcy.Config {
	cfg := tcy.Config{
		TCYDigit:            s.cfg.TCYDigit,
		AutoTextOrientation: s.cfg.AutoTextOrientation,
	}
	if q == nil {
		return cfg
	}
	if v := q.Get("tcy_digit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TCYDigit = n
		}
	}
	if v := q.Get("auto_text_orientation"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AutoTextOrientation = b
		}
	}
	return cfg
}

// readUpload pulls a single multipart file out of the request,
// enforcing the upload size limit. Returns ok=false after writing an
// error response.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request, field string) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(field)
	if err != nil {
		jsonError(w, field+" is required: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return nil, "", false
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return nil, "", false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return nil, "", false
	}
	return data, filename, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
