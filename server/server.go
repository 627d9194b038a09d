package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dhamidi/j2kstream/codestream"
	"github.com/dhamidi/j2kstream/extract"
	"github.com/dhamidi/j2kstream/format"
	"github.com/tliron/commonlog"
)

// Server exposes the segment parser over HTTP. Request bodies are streamed
// through the parser as they arrive.
type Server struct {
	mux *http.ServeMux
	log commonlog.Logger
}

func New() *Server {
	s := &Server{
		mux: http.NewServeMux(),
		log: commonlog.GetLogger("j2kstream.server"),
	}

	s.mux.HandleFunc("POST /segments", s.handleSegments)
	s.mux.HandleFunc("POST /range", s.handleRange)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "POST /segments?format=line|json   list marker segments of the request body")
	fmt.Fprintln(w, "POST /range?start=N&end=N          tile-parts start..end of the request body")
}

// handleSegments writes each segment as soon as it is decoded. If the
// client goes away the parser is cancelled and the rest of the body is not
// read.
func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("format")
	if name == "" {
		name = "line"
	}
	contentType := "text/plain; charset=utf-8"
	if name == "json" {
		contentType = "application/x-ndjson"
	}
	enc, err := format.NewEncoder(name, w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", contentType)

	var encodeErr error
	p, err := codestream.Parse(r.Body, codestream.HandlerFunc(func(p *codestream.Parser, seg codestream.Segment) {
		if encodeErr = enc.Encode(seg); encodeErr != nil {
			if err := p.Cancel(); err != nil {
				s.log.Warningf("stop parser: %s", err)
			}
		}
	}))
	switch {
	case encodeErr != nil:
		s.log.Warningf("write segments: %s", encodeErr)
	case err != nil:
		s.log.Errorf("parse request body: %s", err)
	default:
		s.log.Infof("listed %d segments from %d bytes", len(p.Segments()), len(p.Bytes()))
	}
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	start, err := queryInt(r, "start", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	end, err := queryInt(r, "end", -1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := extract.ResolutionRange(r.Body, start, end)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, extract.ErrInvalidRange) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return n, nil
}
