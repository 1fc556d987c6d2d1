// Package httpserver exposes jsontools over a small HTTP API backed by
// fasthttp. Every operation endpoint accepts a POST with a JSON body carrying
// the document, the path, and any operation parameters; the version endpoint
// answers a GET. The engine never touches the network itself.
package httpserver

import (
	"encoding/json"
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/erraggy/jsontools"
	"github.com/erraggy/jsontools/mutate"
	"github.com/erraggy/jsontools/pretty"
	"github.com/erraggy/jsontools/query"
)

// Server is the HTTP serving surface.
type Server struct {
	// Addr is the listen address, for example ":8080".
	Addr string
	// Logger receives request diagnostics. Defaults to a no-op logger.
	Logger query.Logger

	srv *fasthttp.Server
}

// New creates a Server for the given listen address.
func New(addr string, logger query.Logger) *Server {
	if logger == nil {
		logger = query.NopLogger{}
	}
	return &Server{Addr: addr, Logger: logger}
}

// ListenAndServe blocks serving the API until Shutdown is called or the
// listener fails.
func (s *Server) ListenAndServe() error {
	s.srv = &fasthttp.Server{
		Handler: s.Handler,
		Name:    jsontools.UserAgent(),
	}
	s.Logger.Info("http server listening", "addr", s.Addr)
	return s.srv.ListenAndServe(s.Addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown()
}

// Handler routes a request to its endpoint.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	s.Logger.Debug("request", "method", string(ctx.Method()), "path", path)

	if string(ctx.Method()) == fasthttp.MethodGet && path == "/api/v1/version" {
		s.sendJSON(ctx, map[string]string{"version": jsontools.Version()})
		return
	}
	if string(ctx.Method()) != fasthttp.MethodPost {
		s.sendError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return
	}
	switch path {
	case "/api/v1/get":
		s.handleGet(ctx)
	case "/api/v1/set":
		s.handleSet(ctx)
	case "/api/v1/delete":
		s.handleDelete(ctx)
	case "/api/v1/validate":
		s.handleValidate(ctx)
	case "/api/v1/format":
		s.handleFormat(ctx)
	default:
		s.sendError(ctx, fasthttp.StatusNotFound, fmt.Sprintf("unknown endpoint: %s", path))
	}
}

type request struct {
	JSON     string `json:"json"`
	Path     string `json:"path,omitempty"`
	Value    string `json:"value,omitempty"`
	Ugly     bool   `json:"ugly,omitempty"`
	Indent   string `json:"indent,omitempty"`
	SortKeys bool   `json:"sort_keys,omitempty"`
	Width    int    `json:"width,omitempty"`
}

type getResponse struct {
	Exists bool   `json:"exists"`
	Kind   string `json:"kind,omitempty"`
	JSON   string `json:"json,omitempty"`
	Index  *int   `json:"index,omitempty"`
}

type documentResponse struct {
	JSON string `json:"json"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

func (s *Server) handleGet(ctx *fasthttp.RequestCtx) {
	req, ok := s.decode(ctx)
	if !ok {
		return
	}
	res := query.Get(req.JSON, req.Path)
	out := getResponse{Exists: res.Exists()}
	if res.Exists() {
		out.Kind = res.Kind.String()
		out.JSON = res.Raw
		if res.Index >= 0 {
			idx := res.Index
			out.Index = &idx
		}
	}
	s.sendJSON(ctx, out)
}

func (s *Server) handleSet(ctx *fasthttp.RequestCtx) {
	req, ok := s.decode(ctx)
	if !ok {
		return
	}
	out, err := mutate.Set(req.JSON, req.Path, req.Value)
	if err != nil {
		s.sendError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	s.sendJSON(ctx, documentResponse{JSON: out})
}

func (s *Server) handleDelete(ctx *fasthttp.RequestCtx) {
	req, ok := s.decode(ctx)
	if !ok {
		return
	}
	out, err := mutate.Delete(req.JSON, req.Path)
	if err != nil {
		s.sendError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	s.sendJSON(ctx, documentResponse{JSON: out})
}

func (s *Server) handleValidate(ctx *fasthttp.RequestCtx) {
	req, ok := s.decode(ctx)
	if !ok {
		return
	}
	s.sendJSON(ctx, validateResponse{Valid: query.Valid(req.JSON)})
}

func (s *Server) handleFormat(ctx *fasthttp.RequestCtx) {
	req, ok := s.decode(ctx)
	if !ok {
		return
	}
	var out string
	if req.Ugly {
		out = pretty.Ugly(req.JSON)
	} else {
		out = pretty.PrettyOptions(req.JSON, &pretty.Options{
			Indent:   req.Indent,
			SortKeys: req.SortKeys,
			Width:    req.Width,
		})
	}
	s.sendJSON(ctx, documentResponse{JSON: out})
}

// decode parses the request body. A malformed body answers 400 and returns
// ok=false.
func (s *Server) decode(ctx *fasthttp.RequestCtx) (request, bool) {
	var req request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.sendError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("decoding request body: %v", err))
		return request{}, false
	}
	return req, true
}

// sendJSON sends a JSON response with 200 OK status.
func (s *Server) sendJSON(ctx *fasthttp.RequestCtx, data any) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(data); err != nil {
		s.Logger.Warn("failed to encode response", "error", err)
		s.sendError(ctx, fasthttp.StatusInternalServerError, fmt.Sprintf("encoding response: %v", err))
	}
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

// sendError sends an error response with the given status code.
func (s *Server) sendError(ctx *fasthttp.RequestCtx, statusCode int, message string) {
	ctx.SetStatusCode(statusCode)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(errorResponse{Error: message}); err != nil {
		s.Logger.Warn("failed to encode error response", "error", err)
		ctx.SetBodyString(message)
	}
}
