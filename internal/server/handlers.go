package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/image-extender/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke; only "extend_image" is known.
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errInvalidArguments marks argument problems detected before the tool runs.
var errInvalidArguments = errors.New("invalid arguments")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<summary>"}]
//	}
//
// Error codes:
//   - -32602: params or arguments are malformed, or the target size is not positive
//   - -32601: the tool name is unknown
//   - -32000: the tool ran and failed (decode or write error)
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	if params.Name != ToolExtendImage {
		return s.errorResponse(req.ID, codeMethodNotFound, "Method not found", fmt.Sprintf("unknown tool: %s", params.Name))
	}

	text, err := s.handleExtendImage(params.Arguments)
	switch {
	case errors.Is(err, errInvalidArguments), errors.Is(err, imaging.ErrInvalidTarget):
		return s.errorResponse(req.ID, codeInvalidParams,
			"Invalid arguments (file_path: string, width: integer, height: integer)", err.Error())
	case err != nil:
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// extendImageArgs mirrors the extend_image input schema. Pointers distinguish a
// missing field from a zero value.
type extendImageArgs struct {
	FilePath *string `json:"file_path"`
	Width    *uint32 `json:"width"`
	Height   *uint32 `json:"height"`
}

// parseExtendImageArgs decodes and checks the extend_image arguments. Every
// returned error wraps errInvalidArguments or imaging.ErrInvalidTarget.
func parseExtendImageArgs(raw json.RawMessage) (path string, width, height int, err error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", 0, 0, fmt.Errorf("%w: arguments are required", errInvalidArguments)
	}

	var a extendImageArgs
	if err := json.Unmarshal(raw, &a); err != nil {
		return "", 0, 0, fmt.Errorf("%w: %w", errInvalidArguments, err)
	}

	switch {
	case a.FilePath == nil || *a.FilePath == "":
		return "", 0, 0, fmt.Errorf("%w: file_path is required", errInvalidArguments)
	case a.Width == nil:
		return "", 0, 0, fmt.Errorf("%w: width is required", errInvalidArguments)
	case a.Height == nil:
		return "", 0, 0, fmt.Errorf("%w: height is required", errInvalidArguments)
	}

	width, height = int(*a.Width), int(*a.Height)
	if err := imaging.ValidateTarget(width, height); err != nil {
		return "", 0, 0, err
	}

	return *a.FilePath, width, height, nil
}

// handleExtendImage runs the extend_image tool and returns the text summary.
// Arguments are fully validated before any file is opened.
func (s *Server) handleExtendImage(raw json.RawMessage) (string, error) {
	path, width, height, err := parseExtendImageArgs(raw)
	if err != nil {
		s.logger.Warn("rejected extend_image call", "error", err)
		return "", err
	}

	s.logger.Info("extend_image started", "file", path, "width", width, "height", height)

	result, err := imaging.ExtendFile(path, width, height)
	if err != nil {
		s.logger.Error("extend_image failed", "file", path, "error", err)
		return "", err
	}

	s.logger.Info("extend_image finished",
		"file", result.InputPath,
		"output", result.OutputPath,
		"original", result.Original.String(),
		"final", result.Final.String(),
	)

	return result.Summary(), nil
}
