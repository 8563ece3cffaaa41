package post

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"

	"github.com/mootfed/moot/core"
)

var tracer = otel.Tracer("post")

type service struct {
	repository Repository
	config     core.Config
}

// NewService creates a new post service
func NewService(repository Repository, config core.Config) core.PostService {
	return &service{
		repository: repository,
		config:     config,
	}
}

// Create persists a note. Local drafts get a fresh uuid and a URI derived
// from it; remote notes keep the URI they arrived with. A note whose URI is
// already known merges its audience instead of erroring, since the same
// remote note can arrive through several groups.
func (s *service) Create(ctx context.Context, author core.Actor, draft core.PostDraft) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Create")
	defer span.End()

	if draft.Content == "" {
		return core.Post{}, core.NewErrorBadRequest("post content is empty")
	}

	if draft.Parent != "" {
		_, err := s.repository.GetByURI(ctx, draft.Parent)
		if err != nil {
			if errors.Is(err, core.ErrorNotFound{}) {
				return core.Post{}, core.NewErrorBadRequest("unresolvable parent " + draft.Parent)
			}
			span.RecordError(err)
			return core.Post{}, err
		}
	}

	audience := make([]string, 0, len(draft.Audience))
	for _, groupURI := range draft.Audience {
		if groupURI == "" || slices.Contains(audience, groupURI) {
			continue
		}
		audience = append(audience, groupURI)
	}

	id := uuid.New().String()
	uri := draft.URI
	if uri == "" {
		uri = s.config.BaseURL() + "/post/" + id
	}

	post := core.Post{
		ID:        id,
		URI:       uri,
		AuthorURI: author.URI,
		Audience:  audience,
		ParentURI: draft.Parent,
		Content:   draft.Content,
		Source:    draft.Source,
	}

	if !draft.Published.IsZero() {
		post.CDate = draft.Published
	}

	created, err := s.repository.Create(ctx, post)
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return s.mergeAudience(ctx, uri, audience)
		}
		span.RecordError(err)
		return core.Post{}, err
	}

	for _, groupURI := range created.Audience {
		s.repository.PublishEvent(ctx, core.Event{
			Timeline: groupURI,
			Type:     "post.create",
			Resource: created,
		})
	}

	return created, nil
}

func (s *service) mergeAudience(ctx context.Context, uri string, audience []string) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.mergeAudience")
	defer span.End()

	existing, err := s.repository.GetByURI(ctx, uri)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	merged := false
	for _, groupURI := range audience {
		if slices.Contains([]string(existing.Audience), groupURI) {
			continue
		}
		err = s.repository.AppendAudience(ctx, existing.ID, groupURI)
		if err != nil {
			span.RecordError(err)
			return core.Post{}, err
		}
		merged = true

		s.repository.PublishEvent(ctx, core.Event{
			Timeline: groupURI,
			Type:     "post.create",
			Resource: existing,
		})
	}

	if !merged {
		return existing, nil
	}

	return s.repository.GetByURI(ctx, uri)
}

// Get returns a live post by ID. Tombstones answer Gone, not NotFound.
func (s *service) Get(ctx context.Context, id string) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Get")
	defer span.End()

	post, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	if post.Deleted {
		return core.Post{}, core.NewErrorGone()
	}

	return post, nil
}

// GetByURI returns a live post by URI. Tombstones answer Gone, not NotFound.
func (s *service) GetByURI(ctx context.Context, uri string) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.GetByURI")
	defer span.End()

	post, err := s.repository.GetByURI(ctx, uri)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	if post.Deleted {
		return core.Post{}, core.NewErrorGone()
	}

	return post, nil
}

// Delete tombstones a post. Only the author may delete, and only posts
// this server owns.
func (s *service) Delete(ctx context.Context, requesterURI, postURI string) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Delete")
	defer span.End()

	post, err := s.repository.GetByURI(ctx, postURI)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	if post.Deleted {
		return core.Post{}, core.NewErrorGone()
	}

	parsed, err := url.Parse(post.URI)
	if err != nil || !s.config.IsLocalHost(parsed.Host) {
		return core.Post{}, core.NewErrorBadRequest("cannot delete a post owned by another server")
	}

	if post.AuthorURI != requesterURI {
		return core.Post{}, core.NewErrorPermissionDenied()
	}

	deleted, err := s.repository.Delete(ctx, post.ID)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	for _, groupURI := range deleted.Audience {
		s.repository.PublishEvent(ctx, core.Event{
			Timeline: groupURI,
			Type:     "post.delete",
			Resource: deleted,
		})
	}

	return deleted, nil
}

// Like records an actor's like on a post. Returns false when the actor
// already liked it.
func (s *service) Like(ctx context.Context, actorURI, postURI, likeURI string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Like")
	defer span.End()

	post, err := s.repository.GetByURI(ctx, postURI)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	if post.Deleted {
		return false, core.NewErrorGone()
	}

	like := core.Like{
		ID:       xid.New().String(),
		URI:      likeURI,
		ActorURI: actorURI,
		PostURI:  postURI,
	}

	_, err = s.repository.CreateLike(ctx, like)
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return false, nil
		}
		span.RecordError(err)
		return false, err
	}

	for _, groupURI := range post.Audience {
		s.repository.PublishEvent(ctx, core.Event{
			Timeline: groupURI,
			Type:     "post.like",
			Resource: like,
		})
	}

	return true, nil
}

// Descendants walks the reply tree below a post, depth first, oldest reply
// first. The walk restarts cleanly from any node since only parent pointers
// are stored. Tombstones are traversed but not listed, so threads below a
// deleted post stay reachable.
func (s *service) Descendants(ctx context.Context, rootID string) ([]core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Descendants")
	defer span.End()

	root, err := s.repository.Get(ctx, rootID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	descendants := []core.Post{}
	stack := []core.Post{}
	seen := map[string]bool{root.URI: true}

	push := func(posts []core.Post) {
		// reversed so the oldest reply is popped first
		for i := len(posts) - 1; i >= 0; i-- {
			if seen[posts[i].URI] {
				// remote data can forge parent cycles
				continue
			}
			seen[posts[i].URI] = true
			stack = append(stack, posts[i])
		}
	}

	children, err := s.repository.GetChildren(ctx, []string{root.URI})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	push(children)

	for len(stack) > 0 {
		post := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !post.Deleted {
			descendants = append(descendants, post)
		}

		children, err := s.repository.GetChildren(ctx, []string{post.URI})
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		push(children)
	}

	return descendants, nil
}

// ListURIsByAuthor returns the URIs of an author's live posts, oldest first
func (s *service) ListURIsByAuthor(ctx context.Context, authorURI string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.ListURIsByAuthor")
	defer span.End()

	posts, err := s.repository.GetByAuthor(ctx, authorURI)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uris := make([]string, 0, len(posts))
	for _, post := range posts {
		uris = append(uris, post.URI)
	}
	return uris, nil
}

// LikedPostURIs returns the URIs of the posts an actor liked, oldest first
func (s *service) LikedPostURIs(ctx context.Context, actorURI string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.LikedPostURIs")
	defer span.End()

	likes, err := s.repository.GetLikesByActor(ctx, actorURI)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uris := make([]string, 0, len(likes))
	for _, like := range likes {
		uris = append(uris, like.PostURI)
	}
	return uris, nil
}

// Document renders a post as a federation note
func (s *service) Document(post core.Post) core.NoteDocument {
	return core.NoteDocument{
		Context:      core.ActivityStreamsContext,
		ID:           post.URI,
		Type:         core.ObjectTypeNote,
		AttributedTo: post.AuthorURI,
		InReplyTo:    post.ParentURI,
		Content:      post.Content,
		Source:       post.Source,
		Audience:     []string(post.Audience),
		Published:    core.FormatPublished(post.CDate),
	}
}

// Count returns the number of live posts
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
