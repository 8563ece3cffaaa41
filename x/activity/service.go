package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"

	"github.com/mootfed/moot/core"
)

var tracer = otel.Tracer("activity")

// recognizedTypes are the activity types the wire understands. A type
// outside this set is malformed; a type inside it without a handler for
// the owning actor is a visible protocol gap.
var recognizedTypes = map[string]bool{
	core.ActivityTypeCreate: true,
	core.ActivityTypeDelete: true,
	core.ActivityTypeFollow: true,
	core.ActivityTypeAccept: true,
	core.ActivityTypeReject: true,
	core.ActivityTypeLike:   true,
	core.ActivityTypeUpdate: true,
	core.ActivityTypeAdd:    true,
	core.ActivityTypeRemove: true,
	core.ActivityTypeBlock:  true,
	core.ActivityTypeUndo:   true,
}

type dispatchFunc func(ctx context.Context, owner core.Actor, document core.ActivityDocument) (core.DispatchResult, error)

type service struct {
	repository Repository
	actor      core.ActorService
	post       core.PostService
	deliverer  core.Deliverer
	config     core.Config

	// per-variant dispatch tables. Users act on their own behalf; groups
	// are relay automatons that only forward creates and answer follows.
	userHandlers          map[string]dispatchFunc
	groupHandlers         map[string]dispatchFunc
	incomingUserHandlers  map[string]dispatchFunc
	incomingGroupHandlers map[string]dispatchFunc
}

// NewService creates a new activity service
func NewService(repository Repository, actor core.ActorService, post core.PostService, deliverer core.Deliverer, config core.Config) core.ActivityService {
	s := &service{
		repository: repository,
		actor:      actor,
		post:       post,
		deliverer:  deliverer,
		config:     config,
	}

	s.userHandlers = map[string]dispatchFunc{
		core.ActivityTypeCreate: s.handleCreate,
		core.ActivityTypeDelete: s.handleDelete,
		core.ActivityTypeLike:   s.handleLike,
	}
	s.groupHandlers = map[string]dispatchFunc{
		core.ActivityTypeCreate: s.handleGroupCreate,
		core.ActivityTypeFollow: s.handleFollow,
		core.ActivityTypeAccept: s.handleAccept,
	}
	s.incomingUserHandlers = map[string]dispatchFunc{
		core.ActivityTypeCreate: s.handleCreate,
		core.ActivityTypeAccept: s.handleAcknowledge,
	}
	s.incomingGroupHandlers = map[string]dispatchFunc{
		core.ActivityTypeCreate: s.handleGroupCreate,
		core.ActivityTypeFollow: s.handleFollow,
	}

	return s
}

// Dispatch interprets an activity submitted on behalf of the owner.
// A user's bare note is wrapped in an implicit Create first; groups never
// accept bare objects.
func (s *service) Dispatch(ctx context.Context, owner core.Actor, raw []byte) (core.DispatchResult, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.Dispatch")
	defer span.End()

	var document core.ActivityDocument
	if err := json.Unmarshal(raw, &document); err != nil {
		return core.DispatchResult{}, core.NewErrorBadRequest("malformed activity payload")
	}

	if owner.Kind == core.ActorKindPerson {
		if document.Type == "" || document.Type == core.ObjectTypeNote {
			document = core.ActivityDocument{
				Context: core.ActivityStreamsContext,
				Type:    core.ActivityTypeCreate,
				Actor:   owner.URI,
				Object:  json.RawMessage(raw),
			}
		}
		if document.Actor != "" && document.Actor != owner.URI {
			return core.DispatchResult{}, core.NewErrorPermissionDenied()
		}
		return s.dispatchWith(ctx, s.userHandlers, owner, document)
	}

	if document.Type == "" {
		return core.DispatchResult{}, core.NewErrorBadRequest("activity type is missing")
	}

	return s.dispatchWith(ctx, s.groupHandlers, owner, document)
}

// HandleIncoming is the federation-received path. The activity is looked
// up or created by its external URI, the receiving actor joins the
// destination set, and only then does type handling run. The same URI
// arriving at several local actors shares one row.
func (s *service) HandleIncoming(ctx context.Context, owner core.Actor, raw []byte) (core.DispatchResult, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.HandleIncoming")
	defer span.End()

	var document core.ActivityDocument
	if err := json.Unmarshal(raw, &document); err != nil {
		return core.DispatchResult{}, core.NewErrorBadRequest("malformed activity payload")
	}
	if document.ID == "" {
		return core.DispatchResult{}, core.NewErrorBadRequest("incoming activity has no id")
	}
	if document.Type == "" {
		return core.DispatchResult{}, core.NewErrorBadRequest("activity type is missing")
	}

	activity, err := s.findOrCreate(ctx, document, string(raw))
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	added, err := s.repository.AddDestination(ctx, activity.ID, owner.URI)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}
	if !added {
		// this exact delivery already reached this actor
		return core.DispatchResult{Applied: false}, nil
	}

	table := s.incomingGroupHandlers
	if owner.Kind == core.ActorKindPerson {
		table = s.incomingUserHandlers
	}
	return s.dispatchWith(ctx, table, owner, document)
}

func (s *service) dispatchWith(ctx context.Context, table map[string]dispatchFunc, owner core.Actor, document core.ActivityDocument) (core.DispatchResult, error) {
	handler, ok := table[document.Type]
	if !ok {
		if recognizedTypes[document.Type] {
			return core.DispatchResult{}, core.NewErrorNotImplemented(document.Type)
		}
		return core.DispatchResult{}, core.NewErrorBadRequest(fmt.Sprintf("Invalid activity type %s", document.Type))
	}
	return handler(ctx, owner, document)
}

func (s *service) mintURI(id string) string {
	return s.config.BaseURL() + "/activity/" + id
}

func (s *service) findOrCreate(ctx context.Context, document core.ActivityDocument, raw string) (core.Activity, error) {
	existing, err := s.repository.GetByURI(ctx, document.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, core.ErrorNotFound{}) {
		return core.Activity{}, err
	}

	created, err := s.repository.Create(ctx, core.Activity{
		ID:        xid.New().String(),
		URI:       document.ID,
		Type:      document.Type,
		ActorURI:  document.Actor,
		ObjectURI: document.ObjectURI(),
		Document:  raw,
	})
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			// lost the creation race against a concurrent delivery
			return s.repository.GetByURI(ctx, document.ID)
		}
		return core.Activity{}, err
	}
	return created, nil
}

// persist stores a dispatched activity. When the URI is already known the
// stored payload is refreshed instead, which carries the audience
// annotation; nothing else about a delivered activity ever changes.
func (s *service) persist(ctx context.Context, id string, document core.ActivityDocument, objectURI string) (core.Activity, error) {
	if document.Context == nil {
		document.Context = core.ActivityStreamsContext
	}
	if document.Published == "" {
		document.Published = core.FormatPublished(time.Now().UTC())
	}

	raw, err := json.Marshal(document)
	if err != nil {
		return core.Activity{}, err
	}

	created, err := s.repository.Create(ctx, core.Activity{
		ID:        id,
		URI:       document.ID,
		Type:      document.Type,
		ActorURI:  document.Actor,
		ObjectURI: objectURI,
		Document:  string(raw),
	})
	if err != nil {
		if !errors.Is(err, core.ErrorAlreadyExists{}) {
			return core.Activity{}, err
		}
		existing, err := s.repository.GetByURI(ctx, document.ID)
		if err != nil {
			return core.Activity{}, err
		}
		err = s.repository.UpdateDocument(ctx, existing.ID, string(raw))
		if err != nil {
			return core.Activity{}, err
		}
		existing.Document = string(raw)
		return existing, nil
	}
	return created, nil
}

func (s *service) resolveAuthor(ctx context.Context, owner core.Actor, document core.ActivityDocument) (core.Actor, error) {
	if document.Actor == "" || document.Actor == owner.URI {
		return owner, nil
	}
	return s.actor.ResolveActorURI(ctx, document.Actor)
}

func draftFromDocument(document core.ActivityDocument) (core.PostDraft, error) {
	if len(document.Object) == 0 {
		return core.PostDraft{}, core.NewErrorBadRequest("create activity has no object")
	}

	var note core.NoteDocument
	if err := json.Unmarshal(document.Object, &note); err != nil {
		return core.PostDraft{}, core.NewErrorBadRequest("create object is not a note")
	}
	if note.Type != "" && note.Type != core.ObjectTypeNote {
		return core.PostDraft{}, core.NewErrorBadRequest("create object is not a note")
	}

	draft := core.PostDraft{
		URI:     note.ID,
		Content: note.Content,
		Source:  note.Source,
		Parent:  note.InReplyTo,
	}
	draft.Audience = append(draft.Audience, note.Audience...)
	draft.Audience = append(draft.Audience, document.Audience...)
	draft.Audience = append(draft.Audience, document.To...)

	if note.Published != "" {
		if published, err := time.Parse(time.RFC3339, note.Published); err == nil {
			draft.Published = published
		}
	}

	return draft, nil
}

// handleCreate persists a note on behalf of its author. On the user outbox
// this is the owner's own note; on the user inbox it is a remote note
// addressed to the owner.
func (s *service) handleCreate(ctx context.Context, owner core.Actor, document core.ActivityDocument) (core.DispatchResult, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.handleCreate")
	defer span.End()

	author, err := s.resolveAuthor(ctx, owner, document)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	draft, err := draftFromDocument(document)
	if err != nil {
		return core.DispatchResult{}, err
	}

	created, err := s.post.Create(ctx, author, draft)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	id := xid.New().String()
	if document.ID == "" {
		document.ID = s.mintURI(id)
	}
	if document.Actor == "" {
		document.Actor = author.URI
	}

	note := s.post.Document(created)
	note.Context = nil
	if err := document.SetObject(note); err != nil {
		return core.DispatchResult{}, err
	}

	_, err = s.persist(ctx, id, document, created.URI)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	return core.DispatchResult{Document: &document, Applied: true}, nil
}

// handleGroupCreate persists the note, stamps the activity's audience with
// the group's followers collection, and relays it to the followers.
func (s *service) handleGroupCreate(ctx context.Context, owner core.Actor, document core.ActivityDocument) (core.DispatchResult, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.handleGroupCreate")
	defer span.End()

	author, err := s.resolveAuthor(ctx, owner, document)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	draft, err := draftFromDocument(document)
	if err != nil {
		return core.DispatchResult{}, err
	}
	draft.Audience = append(draft.Audience, owner.URI)

	created, err := s.post.Create(ctx, author, draft)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	followersURI := core.FollowersURI(owner.URI)
	if !slices.Contains(document.Audience, followersURI) {
		document.Audience = append(document.Audience, followersURI)
	}

	id := xid.New().String()
	if document.ID == "" {
		document.ID = s.mintURI(id)
	}
	if document.Actor == "" {
		document.Actor = author.URI
	}

	note := s.post.Document(created)
	note.Context = nil
	if err := document.SetObject(note); err != nil {
		return core.DispatchResult{}, err
	}

	_, err = s.persist(ctx, id, document, created.URI)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	err = s.DeliverToFollowers(ctx, document, owner)
	if err != nil {
		// the create stays persisted; only the relay failed
		span.RecordError(err)
		return core.DispatchResult{Document: &document, Applied: true}, errors.Wrap(err, "fan-out delivery failed")
	}

	return core.DispatchResult{Document: &document, Applied: true}, nil
}

// handleDelete tombstones the referenced post. Only reaches local posts,
// and only for their author.
func (s *service) handleDelete(ctx context.Context, owner core.Actor, document core.ActivityDocument) (core.DispatchResult, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.handleDelete")
	defer span.End()

	objectURI := document.ObjectURI()
	if objectURI == "" {
		return core.DispatchResult{}, core.NewErrorBadRequest("delete activity has no object")
	}

	_, err := s.post.Delete(ctx, owner.URI, objectURI)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	id := xid.New().String()
	if document.ID == "" {
		document.ID = s.mintURI(id)
	}
	if document.Actor == "" {
		document.Actor = owner.URI
	}

	_, err = s.persist(ctx, id, document, objectURI)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	return core.DispatchResult{Document: &document, Applied: true}, nil
}

// handleLike records the owner's like on the referenced post. Liking the
// same post twice is a no-op and leaves no second activity.
func (s *service) handleLike(ctx context.Context, owner core.Actor, document core.ActivityDocument) (core.DispatchResult, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.handleLike")
	defer span.End()

	objectURI := document.ObjectURI()
	if objectURI == "" {
		return core.DispatchResult{}, core.NewErrorBadRequest("like activity has no object")
	}

	id := xid.New().String()
	if document.ID == "" {
		document.ID = s.mintURI(id)
	}
	if document.Actor == "" {
		document.Actor = owner.URI
	}

	added, err := s.post.Like(ctx, owner.URI, objectURI, document.ID)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}
	if !added {
		return core.DispatchResult{Applied: false}, nil
	}

	_, err = s.persist(ctx, id, document, objectURI)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	return core.DispatchResult{Document: &document, Applied: true}, nil
}

// handleFollow adds the activity's actor to the group's follower set and,
// when newly added, answers with a self-submitted Accept. An actor already
// following gets Applied=false and no second Accept.
func (s *service) handleFollow(ctx context.Context, owner core.Actor, document core.ActivityDocument) (core.DispatchResult, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.handleFollow")
	defer span.End()

	if document.Actor == "" {
		return core.DispatchResult{}, core.NewErrorBadRequest("follow activity has no actor")
	}

	if objectURI := document.ObjectURI(); objectURI != "" && objectURI != owner.URI {
		return core.DispatchResult{}, core.NewErrorBadRequest("follow object does not match this group")
	}

	follower, err := s.actor.ResolveActorURI(ctx, document.Actor)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	id := xid.New().String()
	if document.ID == "" {
		document.ID = s.mintURI(id)
	}

	// the follow must be a known activity before an accept can reference it
	_, err = s.persist(ctx, id, document, owner.URI)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	added, err := s.actor.AddFollower(ctx, owner.URI, follower.URI, document.ID)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}
	if !added {
		return core.DispatchResult{Applied: false}, nil
	}

	slog.InfoContext(
		ctx, "new follower",
		slog.String("group", owner.URI),
		slog.String("follower", follower.URI),
		slog.String("module", "activity"),
	)

	accept := core.ActivityDocument{
		Context: core.ActivityStreamsContext,
		Type:    core.ActivityTypeAccept,
		Actor:   owner.URI,
	}
	if err := accept.SetObject(document); err != nil {
		return core.DispatchResult{}, err
	}

	raw, err := json.Marshal(accept)
	if err != nil {
		return core.DispatchResult{}, err
	}

	// the accept goes through full dispatch like any other submission
	return s.Dispatch(ctx, owner, raw)
}

// handleAccept delivers the accept to the inbox of the actor whose follow
// it references. The referenced follow must already be known here.
func (s *service) handleAccept(ctx context.Context, owner core.Actor, document core.ActivityDocument) (core.DispatchResult, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.handleAccept")
	defer span.End()

	followURI := document.ObjectURI()
	if followURI == "" {
		return core.DispatchResult{}, core.NewErrorBadRequest("accept activity has no object")
	}

	followActivity, err := s.repository.GetByURI(ctx, followURI)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return core.DispatchResult{}, core.NewErrorBadRequest("accept references an unknown follow")
		}
		span.RecordError(err)
		return core.DispatchResult{}, err
	}
	if followActivity.ActorURI == "" {
		return core.DispatchResult{}, core.NewErrorBadRequest("followed activity has no actor to answer")
	}

	id := xid.New().String()
	if document.ID == "" {
		document.ID = s.mintURI(id)
	}
	if document.Actor == "" {
		document.Actor = owner.URI
	}

	_, err = s.persist(ctx, id, document, followURI)
	if err != nil {
		span.RecordError(err)
		return core.DispatchResult{}, err
	}

	err = s.deliverer.Deliver(ctx, document, core.InboxURI(followActivity.ActorURI))
	if err != nil {
		// the accept stays persisted; only its delivery failed
		span.RecordError(err)
		return core.DispatchResult{Document: &document, Applied: true}, errors.Wrap(err, "accept delivery failed")
	}

	return core.DispatchResult{Document: &document, Applied: true}, nil
}

// handleAcknowledge records an activity whose whole effect is being stored
// and listed, like an accept landing in a user's inbox.
func (s *service) handleAcknowledge(ctx context.Context, owner core.Actor, document core.ActivityDocument) (core.DispatchResult, error) {
	_, span := tracer.Start(ctx, "Activity.Service.handleAcknowledge")
	defer span.End()

	return core.DispatchResult{Document: &document, Applied: true}, nil
}

// GetByURI returns a stored activity by its federation-wide URI
func (s *service) GetByURI(ctx context.Context, uri string) (core.Activity, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.GetByURI")
	defer span.End()

	return s.repository.GetByURI(ctx, uri)
}

// ListURIsByActor returns the URIs of the activities an actor issued
func (s *service) ListURIsByActor(ctx context.Context, actorURI string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.ListURIsByActor")
	defer span.End()

	activities, err := s.repository.ListByActor(ctx, actorURI)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uris := make([]string, 0, len(activities))
	for _, activity := range activities {
		uris = append(uris, activity.URI)
	}
	return uris, nil
}

// ListURIsByDestination returns the URIs of the activities addressed to an actor
func (s *service) ListURIsByDestination(ctx context.Context, actorURI string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.ListURIsByDestination")
	defer span.End()

	activities, err := s.repository.ListByDestination(ctx, actorURI)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uris := make([]string, 0, len(activities))
	for _, activity := range activities {
		uris = append(uris, activity.URI)
	}
	return uris, nil
}

// Count returns the number of stored activities
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Activity.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
