package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image"

	"github.com/google/uuid"

	"github.com/quillsec/redact-mcp/internal/imaging"
	"github.com/quillsec/redact-mcp/internal/redact"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "redact_apply", "session_undo").
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

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Debug().Str("tool", params.Name).Err(err).Msg("tool execution failed")
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
	// Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Redaction
	case "redact_apply":
		return s.handleRedactApply(args)
	case "redact_preview":
		return s.handleRedactPreview(args)

	// Edit Sessions
	case "session_set_regions":
		return s.handleSessionSetRegions(args)
	case "session_undo":
		return s.handleSessionUndo(args)
	case "session_redo":
		return s.handleSessionRedo(args)
	case "session_state":
		return s.handleSessionState(args)
	case "session_clear":
		return s.handleSessionClear(args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Wire representation of regions ===

// effectArg is the wire form of a redaction effect.
type effectArg struct {
	Kind      string `json:"kind"`
	Radius    int    `json:"radius,omitempty"`
	BlockSize int    `json:"block_size,omitempty"`
}

// regionArg is the wire form of a region: a pixel-coordinate box with
// (x1,y1) inclusive and (x2,y2) exclusive, an effect and a provenance tag.
type regionArg struct {
	ID     string    `json:"id,omitempty"`
	X1     int       `json:"x1"`
	Y1     int       `json:"y1"`
	X2     int       `json:"x2"`
	Y2     int       `json:"y2"`
	Effect effectArg `json:"effect"`
	Source string    `json:"source,omitempty"`
}

// toRegion converts a wire region to a core region, applying defaults:
// omitted radius/block size fall back to the standard values, omitted
// source means a manual placement, omitted id gets a fresh uuid.
func (a regionArg) toRegion() (redact.Region, error) {
	effect := redact.Effect{
		Kind:      redact.EffectKind(a.Effect.Kind),
		Radius:    a.Effect.Radius,
		BlockSize: a.Effect.BlockSize,
	}
	if effect.Kind == redact.EffectGaussian && effect.Radius == 0 {
		effect.Radius = redact.DefaultBlurRadius
	}
	if effect.Kind == redact.EffectPixelate && effect.BlockSize == 0 {
		effect.BlockSize = redact.DefaultBlockSize
	}
	if err := effect.Validate(); err != nil {
		return redact.Region{}, err
	}

	source := redact.Source(a.Source)
	if source == "" {
		source = redact.SourceManual
	}
	switch source {
	case redact.SourceAutoFace, redact.SourceAutoID, redact.SourceAutoPlate, redact.SourceManual:
	default:
		return redact.Region{}, fmt.Errorf("unknown region source: %q", a.Source)
	}

	id := uuid.New()
	if a.ID != "" {
		parsed, err := uuid.Parse(a.ID)
		if err != nil {
			return redact.Region{}, fmt.Errorf("invalid region id %q: %w", a.ID, err)
		}
		id = parsed
	}

	return redact.Region{
		ID:     id,
		Bounds: image.Rect(a.X1, a.Y1, a.X2, a.Y2),
		Effect: effect,
		Source: source,
	}, nil
}

func toRegions(args []regionArg) ([]redact.Region, error) {
	regions := make([]redact.Region, 0, len(args))
	for i, a := range args {
		reg, err := a.toRegion()
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", i, err)
		}
		regions = append(regions, reg)
	}
	return regions, nil
}

func fromRegions(regions []redact.Region) []regionArg {
	out := make([]regionArg, len(regions))
	for i, r := range regions {
		out[i] = regionArg{
			ID: r.ID.String(),
			X1: r.Bounds.Min.X,
			Y1: r.Bounds.Min.Y,
			X2: r.Bounds.Max.X,
			Y2: r.Bounds.Max.Y,
			Effect: effectArg{
				Kind:      string(r.Effect.Kind),
				Radius:    r.Effect.Radius,
				BlockSize: r.Effect.BlockSize,
			},
			Source: string(r.Source),
		}
	}
	return out
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Redaction Handlers ===

type redactApplyArgs struct {
	Path        string      `json:"path"`
	OutputPath  string      `json:"output_path"`
	Regions     []regionArg `json:"regions"`
	JPEGQuality int         `json:"jpeg_quality"`
}

// ApplyResult reports what a redact_apply call produced.
type ApplyResult struct {
	OutputPath     string `json:"output_path"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	RegionsApplied int    `json:"regions_applied"`
	RegionsSkipped int    `json:"regions_skipped"`
}

func (s *Server) handleRedactApply(args json.RawMessage) (interface{}, error) {
	var a redactApplyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	regions, err := toRegions(a.Regions)
	if err != nil {
		return nil, err
	}

	out, err := redact.Composite(context.Background(), img, regions)
	if err != nil {
		return nil, err
	}

	if err := imaging.Save(out, a.OutputPath, a.JPEGQuality); err != nil {
		return nil, err
	}

	skipped := 0
	for _, reg := range regions {
		if reg.Bounds.Intersect(img.Bounds()).Empty() {
			skipped++
		}
	}

	b := out.Bounds()
	s.log.Info().
		Str("source", a.Path).
		Str("output", a.OutputPath).
		Int("regions", len(regions)).
		Int("skipped", skipped).
		Msg("redacted image saved")

	return &ApplyResult{
		OutputPath:     a.OutputPath,
		Width:          b.Dx(),
		Height:         b.Dy(),
		RegionsApplied: len(regions) - skipped,
		RegionsSkipped: skipped,
	}, nil
}

type redactPreviewArgs struct {
	Path         string      `json:"path"`
	Regions      []regionArg `json:"regions"`
	OutlineColor string      `json:"outline_color"`
}

func (s *Server) handleRedactPreview(args json.RawMessage) (interface{}, error) {
	var a redactPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	regions, err := toRegions(a.Regions)
	if err != nil {
		return nil, err
	}

	rects := make([]image.Rectangle, len(regions))
	for i, reg := range regions {
		rects[i] = reg.Bounds
	}
	return imaging.RegionOverlay(img, rects, a.OutlineColor)
}

// === Edit Session Handlers ===

type sessionArgs struct {
	Path string `json:"path"`
}

type sessionSetRegionsArgs struct {
	Path    string      `json:"path"`
	Regions []regionArg `json:"regions"`
}

// SessionState reports the current editing state for one image.
type SessionState struct {
	Path        string      `json:"path"`
	Regions     []regionArg `json:"regions"`
	CanUndo     bool        `json:"can_undo"`
	CanRedo     bool        `json:"can_redo"`
	HistorySize int         `json:"history_size"`

	// Changed is true when the call that produced this state moved the
	// session (an undo or redo actually happened).
	Changed bool `json:"changed,omitempty"`
}

func (s *Server) sessionState(path string, sess *editSession, changed bool) *SessionState {
	return &SessionState{
		Path:        path,
		Regions:     fromRegions(sess.regions),
		CanUndo:     sess.history.CanUndo(),
		CanRedo:     sess.history.CanRedo(),
		HistorySize: sess.history.Len(),
		Changed:     changed,
	}
}

func (s *Server) handleSessionSetRegions(args json.RawMessage) (interface{}, error) {
	var a sessionSetRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	regions, err := toRegions(a.Regions)
	if err != nil {
		return nil, err
	}

	sess := s.session(a.Path)
	sess.setRegions(regions)
	return s.sessionState(a.Path, sess, true), nil
}

func (s *Server) handleSessionUndo(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess := s.session(a.Path)
	changed := sess.undo()
	return s.sessionState(a.Path, sess, changed), nil
}

func (s *Server) handleSessionRedo(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess := s.session(a.Path)
	changed := sess.redo()
	return s.sessionState(a.Path, sess, changed), nil
}

func (s *Server) handleSessionState(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess := s.session(a.Path)
	return s.sessionState(a.Path, sess, false), nil
}

func (s *Server) handleSessionClear(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess := s.session(a.Path)
	sess.clear()
	return s.sessionState(a.Path, sess, true), nil
}
