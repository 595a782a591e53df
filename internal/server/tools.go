package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema for the image path argument shared by
// every tool.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// regionsProperty is the schema for an ordered region list. Regions are
// applied in array order; later regions layer over earlier ones where
// they overlap.
func regionsProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Ordered list of regions to redact. Applied in array order.",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Optional UUID for the region. Generated when omitted.",
				},
				"x1": map[string]interface{}{
					"type":        "integer",
					"description": "Left edge X coordinate (0-based, inclusive)",
				},
				"y1": map[string]interface{}{
					"type":        "integer",
					"description": "Top edge Y coordinate (0-based, inclusive)",
				},
				"x2": map[string]interface{}{
					"type":        "integer",
					"description": "Right edge X coordinate (exclusive)",
				},
				"y2": map[string]interface{}{
					"type":        "integer",
					"description": "Bottom edge Y coordinate (exclusive)",
				},
				"effect": map[string]interface{}{
					"type":        "object",
					"description": "Redaction effect for this region",
					"properties": map[string]interface{}{
						"kind": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"gaussian", "pixelate", "blackbox"},
							"description": "Effect kind",
						},
						"radius": map[string]interface{}{
							"type":        "integer",
							"description": "Blur radius for gaussian. Default 25.",
							"default":     25,
						},
						"block_size": map[string]interface{}{
							"type":        "integer",
							"description": "Cell size for pixelate. Default 20.",
							"default":     20,
						},
					},
					"required": []string{"kind"},
				},
				"source": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"auto-face", "auto-id", "auto-plate", "manual"},
					"description": "Where the region came from. Default \"manual\".",
				},
			},
			"required": []string{"x1", "y1", "x2", "y2", "effect"},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and alpha information. Caches the decoded image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
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
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Redaction
		{
			Name:        "redact_apply",
			Description: "Apply redaction effects (gaussian blur, pixelation, black box) to the given regions of an image and save the result. Regions entirely outside the image are skipped; overlapping regions layer in array order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty(),
					"regions": regionsProperty(),
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to save the redacted image (.png, .jpg or .jpeg)",
					},
					"jpeg_quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 1-100. Default 90. Ignored for PNG.",
						"default":     90,
					},
				},
				"required": []string{"path", "regions", "output_path"},
			},
		},
		{
			Name:        "redact_preview",
			Description: "Draw region outlines on a copy of the image and return it as base64 PNG, so the placement can be inspected before applying.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty(),
					"regions": regionsProperty(),
					"outline_color": map[string]interface{}{
						"type":        "string",
						"description": "Outline color as #RRGGBB. Default #ff3b30.",
						"default":     "#ff3b30",
					},
				},
				"required": []string{"path", "regions"},
			},
		},

		// Edit Sessions
		{
			Name:        "session_set_regions",
			Description: "Replace the working region list for an image and record an undo snapshot. Use this after every edit (add, move, resize, delete, effect change).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty(),
					"regions": regionsProperty(),
				},
				"required": []string{"path", "regions"},
			},
		},
		{
			Name:        "session_undo",
			Description: "Step the image's region list back to the previous snapshot. No-op when there is nothing to undo.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "session_redo",
			Description: "Step the image's region list forward to the next snapshot. No-op when there is nothing to redo.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "session_state",
			Description: "Return the current region list and undo/redo availability for an image without changing anything.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "session_clear",
			Description: "Drop the region list and the whole undo history for an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}
