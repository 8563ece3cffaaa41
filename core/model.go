package core

import "time"

// Event is websocket root packet model
type Event struct {
	Timeline string `json:"timeline"` // group URI the event belongs to
	Type     string `json:"type"`     // post.create, post.delete
	Resource any    `json:"resource,omitempty"`
}

// PostDraft is the payload of an outgoing or incoming note
type PostDraft struct {
	URI       string    `json:"uri,omitempty"` // empty for local drafts
	Content   string    `json:"content"`
	Source    string    `json:"source,omitempty"`
	Audience  []string  `json:"audience"` // group URIs
	Parent    string    `json:"parent,omitempty"`
	Published time.Time `json:"published,omitempty"` // zero means now
}

// DispatchResult is what a dispatched activity produced.
// Applied is false when the activity was an idempotent no-op.
type DispatchResult struct {
	Document *ActivityDocument `json:"document,omitempty"`
	Applied  bool              `json:"applied"`
}
