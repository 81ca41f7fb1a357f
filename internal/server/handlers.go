package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/image-watermark/internal/imaging"
	"github.com/ironsheep/image-watermark/internal/watermark"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "watermark_apply").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.debug {
		log.Printf("tools/call %s %s", params.Name, params.Arguments)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tools/call %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Inspection
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Watermarking
	case "watermark_apply":
		return s.handleWatermarkApply(args)
	case "watermark_preview":
		return s.handleWatermarkPreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is omitted.
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

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Inspection Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Watermark Handlers ===

type watermarkArgs struct {
	Image       string  `json:"image"`
	Watermark   string  `json:"watermark"`
	Output      string  `json:"output"`
	Opacity     *int    `json:"opacity"`
	Mode        string  `json:"mode"`
	Color       string  `json:"color"`
	Placement   string  `json:"placement"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Scale       float64 `json:"scale"`
	JPEGQuality int     `json:"jpeg_quality"`
}

// CoverageRegion is the part of the base image that received the watermark.
// (X1, Y1) is inclusive, (X2, Y2) exclusive.
type CoverageRegion struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// WatermarkResult describes a watermarked image written to disk.
type WatermarkResult struct {
	Output    string         `json:"output"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Mode      string         `json:"mode"`
	Opacity   int            `json:"opacity"`
	Placement string         `json:"placement"`
	Coverage  CoverageRegion `json:"coverage"`
}

var errOpacityRequired = errors.New("opacity is required")

// compose loads both images, resolves the arguments into watermark.Options
// and runs the compositor. Every check of the interactive flow applies.
func (s *Server) compose(a *watermarkArgs) (*image.RGBA, watermark.Options, image.Rectangle, error) {
	var opts watermark.Options

	base, err := s.loadChecked(a.Image, "image")
	if err != nil {
		return nil, opts, image.Rectangle{}, err
	}
	mark, err := s.loadChecked(a.Watermark, "watermark")
	if err != nil {
		return nil, opts, image.Rectangle{}, err
	}

	if a.Opacity == nil {
		return nil, opts, image.Rectangle{}, errOpacityRequired
	}
	opts.Opacity = *a.Opacity

	if opts.Mode, err = watermark.ParseMode(a.Mode, a.Color); err != nil {
		return nil, opts, image.Rectangle{}, err
	}
	if err := watermark.CheckMode(opts.Mode, imaging.HasAlpha(mark)); err != nil {
		return nil, opts, image.Rectangle{}, err
	}

	method := a.Placement
	if method == "" {
		method = "single"
	}
	if opts.Placement, err = watermark.ParsePlacement(method, a.X, a.Y); err != nil {
		return nil, opts, image.Rectangle{}, err
	}

	out, err := watermark.Compose(base, mark, opts)
	if err != nil {
		return nil, opts, image.Rectangle{}, err
	}
	return out, opts, watermark.Coverage(base.Bounds(), mark.Bounds(), opts.Placement), nil
}

func (s *Server) loadChecked(path, role string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%s path is required", role)
	}
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	if err := imaging.CheckColorDepth(img, role); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Server) handleWatermarkApply(args json.RawMessage) (interface{}, error) {
	var a watermarkArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	// Reject a bad output name before doing any work.
	if _, err := imaging.OutputFormat(a.Output); err != nil {
		return nil, err
	}

	img, opts, cov, err := s.compose(&a)
	if err != nil {
		return nil, err
	}

	var saveOpts []imaging.SaveOption
	if a.JPEGQuality > 0 {
		saveOpts = append(saveOpts, imaging.WithJPEGQuality(a.JPEGQuality))
	}
	if err := imaging.Save(img, a.Output, saveOpts...); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Output)

	return &WatermarkResult{
		Output:    a.Output,
		Width:     img.Bounds().Dx(),
		Height:    img.Bounds().Dy(),
		Mode:      opts.Mode.String(),
		Opacity:   opts.Opacity,
		Placement: opts.Placement.String(),
		Coverage:  CoverageRegion{X1: cov.Min.X, Y1: cov.Min.Y, X2: cov.Max.X, Y2: cov.Max.Y},
	}, nil
}

func (s *Server) handleWatermarkPreview(args json.RawMessage) (interface{}, error) {
	var a watermarkArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	img, _, _, err := s.compose(&a)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePreview(img, a.Scale)
}
