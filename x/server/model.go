package server

import "github.com/mootfed/moot/core"

// View is a server row annotated with whether it is this instance
type View struct {
	core.Server
	IsLocal bool `json:"isLocal"`
}

// WellKnown is the nodeinfo discovery document
type WellKnown struct {
	Links []WellKnownLink `json:"links"`
}

// WellKnownLink points discovery clients at the nodeinfo document
type WellKnownLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// NodeInfo is the nodeinfo 2.0 document
type NodeInfo struct {
	Version           string           `json:"version"`
	Software          NodeInfoSoftware `json:"software"`
	Protocols         []string         `json:"protocols"`
	Usage             NodeInfoUsage    `json:"usage"`
	OpenRegistrations bool             `json:"openRegistrations"`
	Metadata          NodeInfoMetadata `json:"metadata"`
}

type NodeInfoSoftware struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type NodeInfoUsage struct {
	Users      NodeInfoUsers `json:"users"`
	LocalPosts int64         `json:"localPosts"`
}

type NodeInfoUsers struct {
	Total int64 `json:"total"`
}

type NodeInfoMetadata struct {
	NodeName        string                     `json:"nodeName"`
	NodeDescription string                     `json:"nodeDescription"`
	Maintainer      NodeInfoMetadataMaintainer `json:"maintainer"`
	ThemeColor      string                     `json:"themeColor"`
}

type NodeInfoMetadataMaintainer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile is the operator-supplied instance description served in nodeinfo
type Profile struct {
	NodeName        string            `yaml:"nodeName"`
	NodeDescription string            `yaml:"nodeDescription"`
	Maintainer      ProfileMaintainer `yaml:"maintainer"`
	ThemeColor      string            `yaml:"themeColor"`
}

type ProfileMaintainer struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}
