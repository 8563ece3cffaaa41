package core

import (
	"encoding/json"
)

const ActivityStreamsContext = "https://www.w3.org/ns/activitystreams"

const ObjectTypeNote = "Note"

// activity types understood by the wire
const (
	ActivityTypeCreate = "Create"
	ActivityTypeDelete = "Delete"
	ActivityTypeFollow = "Follow"
	ActivityTypeAccept = "Accept"
	ActivityTypeReject = "Reject"
	ActivityTypeLike   = "Like"
	ActivityTypeUpdate = "Update"
	ActivityTypeAdd    = "Add"
	ActivityTypeRemove = "Remove"
	ActivityTypeBlock  = "Block"
	ActivityTypeUndo   = "Undo"
)

// ActivityDocument is the wire form of a federation activity.
// Object carries either a bare URI string or a nested document.
type ActivityDocument struct {
	Context   any             `json:"@context,omitempty"`
	ID        string          `json:"id,omitempty"`
	Type      string          `json:"type"`
	Actor     string          `json:"actor,omitempty"`
	Object    json.RawMessage `json:"object,omitempty"`
	Audience  []string        `json:"audience,omitempty"`
	To        []string        `json:"to,omitempty"`
	CC        []string        `json:"cc,omitempty"`
	Published string          `json:"published,omitempty"`
}

// ObjectURI extracts the object's identity whether the object is a
// plain URI string or a nested document with an id field.
func (d ActivityDocument) ObjectURI() string {
	if len(d.Object) == 0 {
		return ""
	}
	var uri string
	if err := json.Unmarshal(d.Object, &uri); err == nil {
		return uri
	}
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(d.Object, &ref); err == nil {
		return ref.ID
	}
	return ""
}

// SetObject serializes v into the Object field.
func (d *ActivityDocument) SetObject(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	d.Object = raw
	return nil
}

// NoteDocument is the wire form of a post.
type NoteDocument struct {
	Context      any      `json:"@context,omitempty"`
	ID           string   `json:"id,omitempty"`
	Type         string   `json:"type"`
	AttributedTo string   `json:"attributedTo,omitempty"`
	InReplyTo    string   `json:"inReplyTo,omitempty"`
	Content      string   `json:"content"`
	Source       string   `json:"source,omitempty"`
	Audience     []string `json:"audience,omitempty"`
	To           []string `json:"to,omitempty"`
	Published    string   `json:"published,omitempty"`
}

// ActorDocument is the wire form of a user or group.
type ActorDocument struct {
	Context           any           `json:"@context"`
	ID                string        `json:"id"`
	Type              string        `json:"type"` // Person or Group
	Name              string        `json:"name"`
	PreferredUsername string        `json:"preferredUsername"`
	Summary           string        `json:"summary"`
	Icon              *IconDocument `json:"icon,omitempty"`
	Inbox             string        `json:"inbox"`
	Outbox            string        `json:"outbox"`
	Followers         string        `json:"followers"`
	Following         string        `json:"following"`
}

// IconDocument is the icon field of an actor.
type IconDocument struct {
	Type      string `json:"type"`
	MediaType string `json:"mediaType,omitempty"`
	URL       string `json:"url"`
}

// CollectionPage is one page of an ordered collection.
// Next and Prev are omitted at the respective edges.
type CollectionPage struct {
	Context      any      `json:"@context"`
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	TotalItems   int      `json:"totalItems"`
	OrderedItems []string `json:"orderedItems"`
	Next         string   `json:"next,omitempty"`
	Prev         string   `json:"prev,omitempty"`
}
