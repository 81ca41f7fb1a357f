// Package server implements the MCP (Model Context Protocol) server for the
// watermark tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the watermark
// compositor and a few image inspection helpers through the MCP protocol, so
// that MCP-compatible clients can inspect images and apply watermarks to them.
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
// Image Inspection:
//   - image_load: Load image and get metadata, including alpha support
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//
// Watermarking:
//   - watermark_apply: Compose and write the result to disk
//   - watermark_preview: Compose and return a base64 PNG
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC errors with code -32000. Invalid
// parameters return code -32602. Unknown methods return code -32601.
//
// # Image Caching
//
// Images are cached by path after first load. The output path of
// watermark_apply is evicted after each write.
package server
