package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/mdstruct/internal/checklist"
	"github.com/dgallion1/mdstruct/internal/docmodel"
	"github.com/dgallion1/mdstruct/internal/frontmatter"
	"github.com/dgallion1/mdstruct/internal/placeholder"
	"github.com/dgallion1/mdstruct/internal/source"
)

type parseRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	content, ok := s.readContent(w, r)
	if !ok {
		return
	}

	doc, err := s.parser.Parse(content)
	if err != nil {
		if errors.Is(err, frontmatter.ErrMalformed) {
			jsonError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, documentResponse(doc))
}

func (s *Server) handleParseFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !source.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	reader, err := source.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pr, ok := reader.(*source.PDFReader); ok {
		pr.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	content, err := reader.Read(io.LimitReader(file, s.cfg.MaxUploadBytes), filename)
	if err != nil {
		jsonError(w, "read file: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	doc, err := s.parser.Parse(content)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, documentResponse(doc))
}

func (s *Server) handleChecklist(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	content, ok := s.readContent(w, r)
	if !ok {
		return
	}

	items := checklist.Extract(content)
	writeJSON(w, http.StatusOK, map[string]any{
		"items":   itemsResponse(items),
		"summary": summaryResponse(checklist.Summarize(items)),
	})
}

func (s *Server) handlePlaceholders(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	content, ok := s.readContent(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ordered": orEmpty(placeholder.Extract(content)),
		"unique":  orEmpty(placeholder.ExtractUnique(content)),
		"count":   placeholder.Count(content),
		"exists":  placeholder.Has(content),
	})
}

// readContent accepts either a JSON {"content": ...} body or raw text.
func (s *Server) readContent(w http.ResponseWriter, r *http.Request) (string, bool) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var req parseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
			return "", false
		}
		return req.Content, true
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "read body: "+err.Error(), http.StatusBadRequest)
		return "", false
	}
	return string(data), true
}

// Response DTOs. Kinds render as their canonical lowercase names here, at the
// presentation boundary only.

type blockDTO struct {
	ID           string   `json:"id,omitempty"`
	Kind         string   `json:"kind"`
	Level        int      `json:"level,omitempty"`
	Content      string   `json:"content"`
	OrderIdx     int      `json:"order_idx"`
	Placeholders []string `json:"placeholders"`
}

type edgeDTO struct {
	SourceIdx int    `json:"source_idx"`
	TargetIdx int    `json:"target_idx"`
	Kind      string `json:"kind"`
}

type itemDTO struct {
	Text    string   `json:"text"`
	Checked bool     `json:"checked"`
	Indent  int      `json:"indent"`
	Refs    []string `json:"refs"`
}

type summaryDTO struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Pending    int     `json:"pending"`
	Percentage float64 `json:"percentage"`
	Complete   bool    `json:"complete"`
}

func documentResponse(doc *docmodel.Document) map[string]any {
	blocks := make([]blockDTO, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		blocks = append(blocks, blockDTO{
			ID:           b.ID,
			Kind:         b.Kind.String(),
			Level:        b.Level,
			Content:      b.Content,
			OrderIdx:     b.OrderIdx,
			Placeholders: orEmpty(b.Placeholders),
		})
	}
	edges := make([]edgeDTO, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		edges = append(edges, edgeDTO{
			SourceIdx: e.SourceIdx,
			TargetIdx: e.TargetIdx,
			Kind:      e.Kind.String(),
		})
	}
	resp := map[string]any{
		"title":        doc.Title,
		"blocks":       blocks,
		"placeholders": orEmpty(doc.Placeholders),
		"edges":        edges,
		"checklist":    itemsResponse(doc.Checklist),
		"summary":      summaryResponse(doc.ChecklistSummary()),
	}
	if doc.Frontmatter != nil {
		resp["frontmatter"] = doc.Frontmatter
	}
	return resp
}

func itemsResponse(items []checklist.Item) []itemDTO {
	out := make([]itemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, itemDTO{
			Text:    item.Text,
			Checked: item.Checked,
			Indent:  item.Indent,
			Refs:    orEmpty(item.Refs),
		})
	}
	return out
}

func summaryResponse(s checklist.Summary) summaryDTO {
	return summaryDTO{
		Total:      s.Total,
		Completed:  s.Completed,
		Pending:    s.Pending,
		Percentage: s.Percentage,
		Complete:   s.Complete(),
	}
}

func orEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
