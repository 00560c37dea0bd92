package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ironsheep/image-extender/internal/logging"
)

const (
	// ProtocolVersion is the MCP revision reported by initialize.
	ProtocolVersion = "2024-11-05"

	// ServerName identifies this server in initialize responses.
	ServerName = "image-extender-mcp"

	// maxLineBytes bounds a single request line; longer lines are dropped.
	maxLineBytes = 1024 * 1024
)

// JSON-RPC error codes used in responses.
const (
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

// Server handles MCP protocol communication for the extend_image tool.
//
// A Server holds no per-request state. Requests are handled strictly one at a
// time, in the order they are read.
type Server struct {
	version string
	logger  *slog.Logger
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server that reports version in its initialize response.
// A nil logger discards all diagnostics.
func New(version string, logger *slog.Logger) *Server {
	return &Server{
		version: version,
		logger:  logging.OrDiscard(logger),
	}
}

// Serve reads newline-delimited JSON-RPC requests from r and writes one response
// line per request to w until r reaches end of stream.
//
// Lines that are not valid request envelopes are logged and dropped; they never
// stop the loop. A line longer than maxLineBytes is discarded up to its newline
// and dropped the same way. Diagnostics go to the server's logger, never to w.
// Serve returns nil on end of stream and an error only if reading r fails.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	reader := bufio.NewReaderSize(r, maxLineBytes)
	encoder := json.NewEncoder(w)

	for {
		line, err := readLine(reader)
		if errors.Is(err, errLineTooLong) {
			s.logger.Warn("dropping oversized request", "limit", maxLineBytes)
			continue
		}

		if len(line) > 0 {
			s.handleLine(encoder, line)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read error: %w", err)
		}
	}
}

// errLineTooLong reports a line that did not fit in the reader's buffer.
var errLineTooLong = errors.New("request line too long")

// readLine returns the next line without its line terminator. The slice is only
// valid until the next read. An oversized line is consumed through its newline
// and reported as errLineTooLong. A final line without a newline is returned
// together with io.EOF.
func readLine(reader *bufio.Reader) ([]byte, error) {
	line, err := reader.ReadSlice('\n')
	if !errors.Is(err, bufio.ErrBufferFull) {
		return bytes.TrimRight(line, "\r\n"), err
	}

	for errors.Is(err, bufio.ErrBufferFull) {
		_, err = reader.ReadSlice('\n')
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return nil, errLineTooLong
}

// handleLine decodes one request line and writes its response.
func (s *Server) handleLine(encoder *json.Encoder, line []byte) {
	var req MCPRequest
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("dropping unparseable request", "error", err, "line", string(line))
		return
	}

	resp := s.handleRequest(&req)
	if err := encoder.Encode(resp); err != nil {
		s.logger.Error("failed to encode response", "method", req.Method, "error", err)
	}
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Acknowledged with an empty frame carrying the same id.
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
		}
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	default:
		return s.errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), "")
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": ProtocolVersion,
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    ServerName,
				"version": s.version,
			},
		},
	}
}

// errorResponse creates a JSON-RPC error response. Empty data is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}
