// Package server implements the MCP (Model Context Protocol) server for the
// extend_image tool.
//
// This package provides a JSON-RPC 2.0 server that exposes imaging.ExtendFile
// through the MCP protocol, so that Claude and other MCP-compatible clients can
// pad an image onto a larger transparent canvas.
//
// # Protocol
//
// The server communicates over a reader/writer pair, normally stdin and stdout:
//   - Input: JSON-RPC requests, one per line
//   - Output: JSON-RPC responses, one per line
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - notifications/initialized: Acknowledged with an empty frame
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//
// Every other method is answered with error -32601. Lines that do not parse as a
// request are logged and dropped; the loop keeps reading. Lines over 1 MiB are
// dropped the same way.
//
// # Available Tools
//
//   - extend_image: Pad an image with transparent margins up to width x height,
//     centered, writing ImageExtended/<name> next to the input.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses with:
//   - code: -32602 (malformed arguments or a zero/negative size), -32601 (unknown
//     tool), or -32000 (tool execution failure)
//   - message: Human-readable error description
//   - data: The Go error string, when there is one
//
// Arguments are validated before any file is touched, so a rejected call never
// creates an output directory.
//
// # Lifecycle
//
// Serve blocks until the input reaches end of stream. Requests are processed one
// at a time; a slow image blocks the next request. Logging goes to the logger
// given to New and never to the response stream.
//
// # Usage
//
//	srv := server.New("1.0.0", logger)
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
