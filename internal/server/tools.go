package server

import "github.com/ironsheep/clippy/internal/imaging"

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
			Name:        "clipboard_has_bitmap",
			Description: "Report whether the system clipboard currently holds a bitmap.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "clipboard_info",
			Description: "Get the width and height of the bitmap on the system clipboard. Fails if the clipboard holds no bitmap.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "clipboard_save",
			Description: "Write the clipboard bitmap to disk as PNG or JPEG. Always writes a copy resized to max_width; optionally also writes the full-size image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filename": map[string]interface{}{
						"type":        "string",
						"description": "Base filename without extension. Default 'image'",
						"default":     "image",
					},
					"dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write into. Default is the server's working directory",
					},
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Width of the resized copy; height keeps the aspect ratio. Default 800",
						"default":     800,
						"minimum":     1,
						"maximum":     imaging.MaxPixels,
					},
					"write_full": map[string]interface{}{
						"type":        "boolean",
						"description": "Also write the unscaled image as <filename>_full.<encoder>. Default false",
						"default":     false,
					},
					"encoder": map[string]interface{}{
						"type":        "string",
						"description": "Container format, also used as the file extension",
						"enum":        []string{"png", "jpeg", "jpg"},
						"default":     "png",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 1-100. Default 90",
						"default":     90,
						"minimum":     1,
						"maximum":     100,
					},
				},
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
