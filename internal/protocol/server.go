// Package protocol serves the generator over a line-oriented JSON stream:
// one request object per input line, one response object per output line.
package protocol

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-movegen-go/internal/engine"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
	"github.com/lgbarn/chess-movegen-go/internal/generator"
)

// Operations understood by the server.
const (
	OpFirst = "first"
	OpMove  = "move"
	OpPerft = "perft"
)

// Error codes reported in Response.Error.
const (
	CodeMalformedInput = "malformed_input"
	CodeIllegalMove    = "illegal_move"
	CodeBadRequest     = "bad_request"
)

// DefaultMaxDepth bounds perft requests.
const DefaultMaxDepth = 5

// maxLineSize is the longest request line accepted.
const maxLineSize = 1 << 20

// Request is one client request.
type Request struct {
	ID     string                 `json:"id,omitempty"`
	Op     string                 `json:"op"`
	Board  string                 `json:"board,omitempty"`
	Move   *generator.NotatedMove `json:"move,omitempty"`
	Depth  int                    `json:"depth,omitempty"`
	Divide bool                   `json:"divide,omitempty"`
}

// Response answers one request. Exactly one of State, Nodes or Error is set.
type Response struct {
	ID     string            `json:"id,omitempty"`
	State  *generator.State  `json:"state,omitempty"`
	Nodes  *uint64           `json:"nodes,omitempty"`
	Divide map[string]uint64 `json:"divide,omitempty"`
	Error  string            `json:"error,omitempty"`
	Detail string            `json:"detail,omitempty"`
}

// Server handles requests one at a time per stream. A Server may serve
// several streams concurrently.
type Server struct {
	logger   zerolog.Logger
	maxDepth int
}

// Option configures a Server.
type Option func(*Server)

// WithMaxDepth sets the deepest perft a client may request.
func WithMaxDepth(depth int) Option {
	return func(s *Server) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// NewServer creates a server logging to logger.
func NewServer(logger zerolog.Logger, opts ...Option) *Server {
	s := &Server{logger: logger, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serve reads requests from r and writes responses to w until r is
// exhausted or ctx is cancelled. Malformed requests are answered with an
// error response; only I/O failures end the stream early.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	enc := json.NewEncoder(w)

	served := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var resp Response
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			resp = errorResponse("", CodeMalformedInput, fmt.Sprintf("decode request: %v", err))
			s.logger.Warn().Err(err).Msg("undecodable request")
		} else {
			resp = s.Handle(req)
		}

		if err := enc.Encode(resp); err != nil {
			return errors.Wrap(err, "write response")
		}
		served++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read request")
	}
	s.logger.Debug().Int("requests", served).Msg("stream closed")
	return nil
}

// Handle answers a single request.
func (s *Server) Handle(req Request) Response {
	start := time.Now()
	resp := s.dispatch(req)
	resp.ID = req.ID

	level := zerolog.InfoLevel
	if resp.Error != "" {
		level = zerolog.WarnLevel
	}
	event := s.logger.WithLevel(level)
	if resp.Error != "" {
		event = event.Str("error", resp.Error).Str("detail", resp.Detail)
	}
	event.Str("op", req.Op).Str("id", req.ID).Dur("elapsed", time.Since(start)).Msg("request")
	return resp
}

func (s *Server) dispatch(req Request) Response {
	switch req.Op {
	case OpFirst:
		state, err := generator.First(req.Board)
		if err != nil {
			return failure(err)
		}
		return Response{State: &state}

	case OpMove:
		if req.Move == nil {
			return errorResponse(req.ID, CodeBadRequest, "move request without move")
		}
		state, err := generator.Move(req.Board, *req.Move)
		if err != nil {
			return failure(err)
		}
		return Response{State: &state}

	case OpPerft:
		if req.Depth < 1 || req.Depth > s.maxDepth {
			return errorResponse(req.ID, CodeBadRequest,
				fmt.Sprintf("depth %d outside 1..%d", req.Depth, s.maxDepth))
		}
		board := engine.NewInitialBoard()
		if req.Board != "" {
			var err error
			if board, err = engine.ParseFEN(req.Board); err != nil {
				return failure(err)
			}
		}
		nodes := engine.Perft(board, req.Depth)
		resp := Response{Nodes: &nodes}
		if req.Divide {
			resp.Divide = engine.Divide(board, req.Depth)
		}
		return resp

	default:
		return errorResponse(req.ID, CodeBadRequest, fmt.Sprintf("unknown op %q", req.Op))
	}
}

// failure maps an engine error to its response code.
func failure(err error) Response {
	code := CodeBadRequest
	switch {
	case errors.Is(err, errors.ErrMalformedInput):
		code = CodeMalformedInput
	case errors.Is(err, errors.ErrIllegalMove), errors.Is(err, errors.ErrAmbiguousMove):
		code = CodeIllegalMove
	}
	return errorResponse("", code, err.Error())
}

func errorResponse(id, code, detail string) Response {
	return Response{ID: id, Error: code, Detail: detail}
}
