package core

import (
	"time"

	"github.com/lib/pq"
)

const (
	ActorKindPerson = "Person"
	ActorKindGroup  = "Group"
)

// Actor is a local or remote user/group
// mutable, but URI is frozen at creation
type Actor struct {
	URI         string    `json:"uri" gorm:"primaryKey;type:text"`
	Kind        string    `json:"kind" gorm:"type:text;not null"` // Person or Group
	Name        string    `json:"name" gorm:"type:text;uniqueIndex:uniq_actor_name"`
	ServerHost  string    `json:"serverHost" gorm:"type:text;uniqueIndex:uniq_actor_name"`
	DisplayName string    `json:"displayName" gorm:"type:text"`
	Summary     string    `json:"summary" gorm:"type:text"`
	IconURL     string    `json:"iconURL" gorm:"type:text"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// Server is a federation peer (or this instance itself)
// mutable
type Server struct {
	Host   string    `json:"host" gorm:"primaryKey;type:text"`
	Scheme string    `json:"scheme" gorm:"type:text;default:'https'"`
	Port   int       `json:"port" gorm:"type:integer;default:0"` // 0 means scheme default
	CDate  time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate  time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// Post is a federated note
// immutable except for the soft-delete flag and audience accumulation
type Post struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	URI       string         `json:"uri" gorm:"type:text;uniqueIndex:uniq_post_uri"`
	AuthorURI string         `json:"authorURI" gorm:"type:text;index"`
	Audience  pq.StringArray `json:"audience" gorm:"type:text[]"` // group URIs this post was addressed to
	ParentURI string         `json:"parentURI" gorm:"type:text;index"`
	Content   string         `json:"content" gorm:"type:text"`
	Source    string         `json:"source" gorm:"type:text"`
	Deleted   bool           `json:"deleted" gorm:"type:boolean;default:false"`
	CDate     time.Time      `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// Activity is a delivered or received federation activity
// immutable except for destination accumulation
type Activity struct {
	ID           string                `json:"id" gorm:"primaryKey;type:char(20)"`
	URI          string                `json:"uri" gorm:"type:text;uniqueIndex:uniq_activity_uri"`
	Type         string                `json:"type" gorm:"type:text;not null"`
	ActorURI     string                `json:"actorURI" gorm:"type:text;index"`
	ObjectURI    string                `json:"objectURI" gorm:"type:text;index"`
	Document     string                `json:"document" gorm:"type:json"`
	Destinations []ActivityDestination `json:"destinations" gorm:"foreignKey:ActivityID"`
	CDate        time.Time             `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// ActivityDestination is the accumulating set of local actors an
// activity was addressed to. The pair is unique so re-adding is a no-op.
type ActivityDestination struct {
	ID         uint      `json:"id" gorm:"primaryKey;auto_increment"`
	ActivityID string    `json:"activityID" gorm:"type:char(20);uniqueIndex:uniq_activity_destination"`
	ActorURI   string    `json:"actorURI" gorm:"type:text;index;uniqueIndex:uniq_activity_destination"`
	CDate      time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// Follow is a follower relation established by an accepted Follow activity
// append only
type Follow struct {
	ID          string    `json:"id" gorm:"primaryKey;type:char(20)"`
	URI         string    `json:"uri" gorm:"type:text;index"` // the Follow activity URI
	FollowerURI string    `json:"followerURI" gorm:"type:text;uniqueIndex:uniq_follow"`
	TargetURI   string    `json:"targetURI" gorm:"type:text;index;uniqueIndex:uniq_follow"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// Like is an actor's like on a post
// append only
type Like struct {
	ID       string    `json:"id" gorm:"primaryKey;type:char(20)"`
	URI      string    `json:"uri" gorm:"type:text;index"`
	ActorURI string    `json:"actorURI" gorm:"type:text;uniqueIndex:uniq_like"`
	PostURI  string    `json:"postURI" gorm:"type:text;index;uniqueIndex:uniq_like"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// Account holds credentials for a local user
type Account struct {
	ActorURI     string    `json:"actorURI" gorm:"primaryKey;type:text"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate        time.Time `json:"mdate" gorm:"autoUpdateTime"`
}
