package core

const (
	RequesterURICtxKey  = "moot-requesterURI"
	RequesterKindCtxKey = "moot-requesterKind"
)

const (
	RequesterUnknown = iota
	RequesterLocalUser
	RequesterRemote
)

func RequesterKindString(t int) string {
	switch t {
	case RequesterLocalUser:
		return "LocalUser"
	case RequesterRemote:
		return "Remote"
	case RequesterUnknown:
		return "Unknown"
	default:
		return "Error"
	}
}
