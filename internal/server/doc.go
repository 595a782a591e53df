// Package server implements the MCP (Model Context Protocol) server for
// the photo-redaction tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the redaction
// engine to MCP-compatible clients: a detector or editor client supplies
// region lists, the server composites effects onto images and manages
// per-image undo/redo sessions.
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
// Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Redaction:
//   - redact_apply: Composite region effects and save the result
//   - redact_preview: Outline regions on a copy for inspection
//
// Edit Sessions:
//   - session_set_regions: Replace the working region list, snapshot it
//   - session_undo / session_redo: Move through snapshots
//   - session_state: Query regions and undo/redo availability
//   - session_clear: Drop regions and history
//
// # State
//
// The server caches decoded images by path and keeps one edit session per
// image path. Requests are handled strictly sequentially, so session state
// needs no locking. Both caches live for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
