package core

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// path segments local actors live under
const (
	UserSegment  = "user"
	GroupSegment = "group"
)

func KindToSegment(kind string) string {
	switch kind {
	case ActorKindGroup:
		return GroupSegment
	default:
		return UserSegment
	}
}

func SegmentToKind(segment string) string {
	switch segment {
	case GroupSegment:
		return ActorKindGroup
	default:
		return ActorKindPerson
	}
}

// ParseActorURI splits an actor URI of the form
// scheme://host[:port]/{user|group}/{name} into its parts.
func ParseActorURI(uri string) (kind string, name string, host string, err error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", "", "", NewErrorBadRequest(fmt.Sprintf("malformed actor uri: %s", uri))
	}
	if parsed.Host == "" {
		return "", "", "", NewErrorBadRequest(fmt.Sprintf("actor uri has no host: %s", uri))
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) != 2 || (segments[0] != UserSegment && segments[0] != GroupSegment) {
		return "", "", "", NewErrorBadRequest(fmt.Sprintf("unresolvable actor uri: %s", uri))
	}

	return SegmentToKind(segments[0]), segments[1], parsed.Host, nil
}

// collection endpoints hang off the actor URI with a trailing slash
func InboxURI(actorURI string) string {
	return actorURI + "/inbox/"
}

func OutboxURI(actorURI string) string {
	return actorURI + "/outbox/"
}

func FollowersURI(actorURI string) string {
	return actorURI + "/followers/"
}

func FollowingURI(actorURI string) string {
	return actorURI + "/following/"
}

func LikesURI(actorURI string) string {
	return actorURI + "/likes/"
}

func PostsURI(actorURI string) string {
	return actorURI + "/posts/"
}

func FormatPublished(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
