package chi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/palabras"
	"github.com/go-chi/chi/v5"
)

// Output formats accepted in the format query parameter.
const (
	FormatCompact = "compact"
	FormatFull    = "full"
	FormatJSON    = "json"
)

// handleWord looks up the word in the path and renders the result.
// Query parameters: format (compact, full or json) and revision.
func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")

	format := r.URL.Query().Get("format")
	if format == "" {
		format = FormatCompact
	}
	if format != FormatCompact && format != FormatFull && format != FormatJSON {
		s.writeError(w, r, palabras.Errorf(palabras.EINVALID, "unknown format %q", format))
		return
	}

	var opts palabras.LookupOptions
	if v := r.URL.Query().Get("revision"); v != "" {
		rev, err := strconv.Atoi(v)
		if err != nil || rev < 0 {
			s.writeError(w, r, palabras.Errorf(palabras.EINVALID, "invalid revision %q", v))
			return
		}
		opts.Revision = rev
	}

	result, err := s.service.LookupWord(r.Context(), word, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var body []byte
	contentType := "text/plain; charset=utf-8"
	switch format {
	case FormatJSON:
		body, err = json.Marshal(result)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		contentType = "application/json"
	case FormatFull:
		body = []byte(palabras.FormatFull(result) + "\n")
	default:
		body = []byte(palabras.FormatCompact(result) + "\n")
	}

	etag := fmt.Sprintf("\"%x\"", xxhash.Sum64(body))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(body); err != nil {
		s.logger.Warn("failed to write response", "err", err)
	}
}

// writeError maps an application error code to an HTTP status and writes
// the user-facing message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(palabras.ErrorCode(err))
	if status == http.StatusInternalServerError {
		s.logger.Error("lookup failed",
			"path", r.URL.Path,
			"request_id", RequestID(r.Context()),
			"err", err,
		)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, werr := w.Write([]byte(palabras.ErrorMessage(err) + "\n")); werr != nil {
		s.logger.Warn("failed to write response", "err", werr)
	}
}

func errorStatus(code string) int {
	switch code {
	case palabras.ENOTFOUND:
		return http.StatusNotFound
	case palabras.EINVALID:
		return http.StatusBadRequest
	case palabras.ENETWORK:
		return http.StatusBadGateway
	case palabras.ETIMEOUT:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
