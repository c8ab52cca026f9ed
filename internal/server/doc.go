// Package server implements an MCP (Model Context Protocol) server that
// exposes the clipboard conversion as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - clipboard_has_bitmap: Probe for a bitmap on the clipboard
//   - clipboard_info: Width and height of the clipboard bitmap
//   - clipboard_save: Write the bitmap to disk, resized and optionally full size
//
// clipboard_save takes the same settings as the command line, with the same
// defaults.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The error line, e.g. "No bitmap on clipboard: HRESULT = 0x80004005"
//
// Each tool call opens and releases the clipboard on its own; nothing is
// cached between calls.
package server
