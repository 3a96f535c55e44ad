package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/stacklayout/pkg/buildinfo"
	"github.com/matzehuels/stacklayout/pkg/document"
	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/pipeline"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := parseOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts.Logger = s.Logger

	body := http.MaxBytesReader(w, r.Body, s.MaxBodyBytes)
	doc, err := pipeline.Decode(r.Context(), body, inputFormat(r))
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.Runner.Execute(r.Context(), doc, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("X-Layout-Width", strconv.Itoa(res.Width))
	w.Header().Set("X-Layout-Size", res.Stats.Size.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func parseOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	var opts pipeline.Options

	if v := q.Get("width"); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidWidth, err, "width must be an integer: %q", v)
		}
		if err := errors.ValidateWidth(width); err != nil {
			return opts, err
		}
		opts.Width = width
	}

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = pipeline.DefaultFormat
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, err
	}
	opts.Formats = []string{format}
	opts.Measurer = q.Get("measurer")
	opts.Detailed = q.Get("detailed") == "true"

	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 || scale > pipeline.MaxScale {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale must be a positive number up to %g: %q", pipeline.MaxScale, v)
		}
		opts.Scale = scale
	}
	return opts, nil
}

func inputFormat(r *http.Request) document.Format {
	if f, err := document.ParseFormat(r.URL.Query().Get("input")); err == nil {
		return f
	}
	if strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "toml") {
		return document.FormatTOML
	}
	return document.FormatJSON
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch {
	case errors.IsClientError(err):
		status = http.StatusBadRequest
	case code == errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	case code == "":
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.Logger.Error("layout request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: errors.UserMessage(err)}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
