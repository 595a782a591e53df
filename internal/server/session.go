package server

import (
	"github.com/quillsec/redact-mcp/internal/redact"
)

// session returns the edit session for path, creating it on first use.
func (s *Server) session(path string) *editSession {
	sess, ok := s.sessions[path]
	if !ok {
		sess = newEditSession()
		s.sessions[path] = sess
	}
	return sess
}

// editSession holds the interactive editing state for one image: the
// current region list plus a bounded undo/redo history of region-list
// snapshots. Sessions are keyed by image path and accessed only from the
// server's request loop.
type editSession struct {
	regions []redact.Region
	history *redact.History[[]redact.Region]
}

func newEditSession() *editSession {
	return &editSession{
		history: redact.NewHistory[[]redact.Region](redact.DefaultHistoryLimit),
	}
}

// setRegions replaces the current region list and records a snapshot.
// The incoming slice is copied so later caller mutations cannot leak into
// history.
func (e *editSession) setRegions(regions []redact.Region) {
	snapshot := make([]redact.Region, len(regions))
	copy(snapshot, regions)
	e.regions = snapshot
	e.history.Save(snapshot)
}

// undo steps back one snapshot. It reports whether anything changed.
func (e *editSession) undo() bool {
	prev, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.regions = prev
	return true
}

// redo steps forward one snapshot. It reports whether anything changed.
func (e *editSession) redo() bool {
	next, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.regions = next
	return true
}

// clear drops the region list and the whole history.
func (e *editSession) clear() {
	e.regions = nil
	e.history.Clear()
}
