package server

import "github.com/ironsheep/image-extender/internal/imaging"

// ToolExtendImage is the name of the single tool this server exposes.
const ToolExtendImage = "extend_image"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: ToolExtendImage,
			Description: "Extend an image to a target size by adding fully transparent margins. " +
				"The original pixels are centered and never scaled; a target smaller than the image keeps its size on that axis. " +
				"The result is written as PNG to an ImageExtended folder next to the input file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file to extend",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"minimum":     1,
						"maximum":     imaging.MaxDimension,
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"minimum":     1,
						"maximum":     imaging.MaxDimension,
						"description": "Target height in pixels",
					},
				},
				"required": []string{"file_path", "width", "height"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
