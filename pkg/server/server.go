package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordgrid/pkg/board"
	"github.com/bastiangx/wordgrid/pkg/config"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/bastiangx/wordgrid/pkg/language"
	"github.com/bastiangx/wordgrid/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server answers solve requests for one language and dictionary.
type Server struct {
	lang    *language.Language
	dict    dictionary.PrefixDictionary
	limits  config.ServerConfig
	workers int
	logger  *log.Logger

	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// Option configures a Server.
type Option func(*Server)

// WithIO replaces stdin/stdout.
func WithIO(r io.Reader, w io.Writer) Option {
	return func(s *Server) {
		s.dec = msgpack.NewDecoder(r)
		s.enc = msgpack.NewEncoder(w)
	}
}

// WithWorkers sets the solver worker count used per request.
func WithWorkers(n int) Option {
	return func(s *Server) { s.workers = n }
}

// WithLogger sets a custom logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(lang *language.Language, dict dictionary.PrefixDictionary, limits config.ServerConfig, opts ...Option) *Server {
	s := &Server{
		lang:   lang,
		dict:   dict,
		limits: limits,
		logger: log.Default(),
		dec:    msgpack.NewDecoder(os.Stdin),
		enc:    msgpack.NewEncoder(os.Stdout),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start signals readiness and serves requests until the input ends or ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Debug("Starting server", "language", s.lang.Code, "max_limit", s.limits.MaxLimit)
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		// decoded raw first; handleRequest unmarshals it
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed, stopping server")
				return nil
			}
			return fmt.Errorf("failed to read request: %w", err)
		}
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes and dispatches one request. Only write failures are returned.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.logger.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid msgpack request", 400)
	}

	switch req.Action {
	case ActionSolve:
		return s.handleSolve(req)
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	case ActionLanguages:
		return s.send(LanguagesResponse{ID: req.ID, Languages: language.Codes()})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %q", req.Action), 400)
	}
}

func (s *Server) handleSolve(req Request) error {
	if len(req.Board) == 0 {
		return s.sendError(req.ID, "missing board", 400)
	}
	cells := 0
	for i, row := range req.Board {
		n := len(strings.Fields(row))
		if n == 0 {
			return s.sendError(req.ID, fmt.Sprintf("board row %d is empty", i), 400)
		}
		cells += n
	}
	if s.limits.MaxBoardCells > 0 && cells > s.limits.MaxBoardCells {
		return s.sendError(req.ID, fmt.Sprintf("board has %d cells, maximum is %d", cells, s.limits.MaxBoardCells), 400)
	}

	mode, err := solver.ParseSortMode(req.Sort)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}

	// rows are non-blank, so Read sees the whole board
	grid, err := board.Read(strings.NewReader(strings.Join(req.Board, "\n")), s.lang)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}

	start := time.Now()
	sv, err := solver.New(grid, s.dict, solver.WithWorkers(s.workers), solver.WithLogger(s.logger))
	if err != nil {
		return s.sendError(req.ID, err.Error(), 500)
	}
	ranked, stats, err := sv.Solve(mode, req.Reverse)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 500)
	}
	elapsed := time.Since(start)

	limit := s.clampLimit(req.Limit)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	words := make([]WordResult, len(ranked))
	for i, c := range ranked {
		words[i] = toWordResult(c)
	}

	s.logger.Debug("Solved board",
		"id", req.ID,
		"cells", cells,
		"words", stats.Words,
		"returned", len(words),
		"took", elapsed)
	return s.send(SolveResponse{
		ID:        req.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: elapsed.Microseconds(),
	})
}

// clampLimit maps a requested limit into [1, max_limit]; 0 or less means max_limit.
func (s *Server) clampLimit(l int) int {
	maxLimit := s.limits.MaxLimit
	if maxLimit < 1 {
		maxLimit = config.DefaultConfig().Server.MaxLimit
	}
	if l < 1 || l > maxLimit {
		return maxLimit
	}
	return l
}

func toWordResult(c solver.Candidate) WordResult {
	ps := c.Snake.Positions()
	path := make([][2]int, len(ps))
	for i, p := range ps {
		path[i] = [2]int{p.Row, p.Col}
	}
	return WordResult{Word: c.Word, Score: c.Score, Path: path}
}

func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	s.logger.Debug("Request failed", "id", id, "error", message, "code", code)
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
