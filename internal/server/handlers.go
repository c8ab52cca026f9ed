package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ironsheep/clippy/internal/convert"
	"github.com/ironsheep/clippy/internal/errors"
	"github.com/ironsheep/clippy/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "clipboard_save").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000
// whose data is the reported error line, status code included.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", errors.Line(err))
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "clipboard_has_bitmap":
		return s.handleHasBitmap(ctx)
	case "clipboard_info":
		return s.handleInfo(ctx)
	case "clipboard_save":
		return s.handleSave(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type hasBitmapResult struct {
	HasBitmap bool `json:"has_bitmap"`
}

func (s *Server) handleHasBitmap(ctx context.Context) (interface{}, error) {
	opts := convert.DefaultOptions()
	opts.Probe = true
	result, err := convert.Run(ctx, s.clipboard, opts, io.Discard)
	if err != nil {
		return nil, err
	}
	return &hasBitmapResult{HasBitmap: result.HasBitmap}, nil
}

type infoResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleInfo(ctx context.Context) (interface{}, error) {
	session, err := s.clipboard.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	bitmap, ok := session.Bitmap()
	if !ok {
		return nil, errors.E(errors.Op("server.handleInfo"), errors.KindClipboard, errors.EFail, "No bitmap on clipboard")
	}
	src, err := imaging.NewSource(bitmap)
	if err != nil {
		return nil, err
	}
	w, h := src.Size()
	return &infoResult{Width: w, Height: h}, nil
}

type saveArgs struct {
	Filename  *string `json:"filename"`
	Dir       *string `json:"dir"`
	MaxWidth  *int    `json:"max_width"`
	WriteFull *bool   `json:"write_full"`
	Encoder   *string `json:"encoder"`
	Quality   *int    `json:"quality"`
}

// options applies the arguments over the command-line defaults.
func (a *saveArgs) options() convert.Options {
	opts := convert.DefaultOptions()
	if a.Filename != nil {
		opts.Filename = *a.Filename
	}
	if a.Dir != nil {
		opts.Dir = *a.Dir
	}
	if a.MaxWidth != nil {
		opts.MaxWidth = *a.MaxWidth
	}
	if a.WriteFull != nil {
		opts.WriteFull = *a.WriteFull
	}
	if a.Encoder != nil {
		opts.Encoder = *a.Encoder
	}
	if a.Quality != nil {
		opts.JPEGQuality = *a.Quality
	}
	return opts
}

func (s *Server) handleSave(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a saveArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}
	return convert.Run(ctx, s.clipboard, a.options(), io.Discard)
}
