package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Inspection
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it has an alpha channel. has_alpha tells which transparency mode a watermark supports: \"alpha\" when true, \"color\" when false. supported is false for images that cannot be watermarked.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel in RGB, hex and HSL. Useful for choosing the key color of a watermark's background.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Watermarking
		{
			Name:        "watermark_apply",
			Description: "Blend a watermark image into a base image and write the result to a .png or .jpg file. Returns the output size and the region of the base image that received the watermark.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": watermarkProperties(true),
				"required":   []string{"image", "watermark", "output", "opacity"},
			},
		},
		{
			Name:        "watermark_preview",
			Description: "Blend a watermark image into a base image and return the result as base64-encoded PNG without writing anything to disk.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": watermarkProperties(false),
				"required":   []string{"image", "watermark", "opacity"},
			},
		},
	}
}

// watermarkProperties returns the argument schema shared by watermark_apply
// and watermark_preview.
func watermarkProperties(withOutput bool) map[string]interface{} {
	props := map[string]interface{}{
		"image": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the base image (8-bit RGB or RGBA)",
		},
		"watermark": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the watermark image; must not be larger than the base image",
		},
		"opacity": map[string]interface{}{
			"type":        "integer",
			"description": "Watermark weight in percent (0-100)",
			"minimum":     0,
			"maximum":     100,
		},
		"mode": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"alpha", "color", "none"},
			"description": "Transparency mode: alpha (only fully opaque watermark pixels are blended), color (pixels matching the key color are skipped) or none (every pixel is blended). Default: none",
		},
		"color": map[string]interface{}{
			"type":        "string",
			"description": "Key color for mode \"color\", as \"R G B\" or \"#RRGGBB\"",
		},
		"placement": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"single", "grid"},
			"description": "single places one copy with its top-left corner at (x, y); grid tiles the watermark over the whole image. Default: single",
		},
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "Left edge of the watermark for single placement (0-based)",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Top edge of the watermark for single placement (0-based)",
		},
	}
	if withOutput {
		props["output"] = map[string]interface{}{
			"type":        "string",
			"description": "Path of the file to write; the extension must be .png or .jpg",
		}
		props["jpeg_quality"] = map[string]interface{}{
			"type":        "integer",
			"description": "JPEG quality (1-100) for .jpg output. Default: 95",
		}
	} else {
		props["scale"] = map[string]interface{}{
			"type":        "number",
			"description": "Scale factor for the returned preview. Default: 1.0",
		}
	}
	return props
}
