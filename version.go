package ddog

// ApiVersion selects which generation of the monitoring API a Builder
// constructs routes for. The zero value is VersionUnset, under which no
// route can be constructed.
type ApiVersion int

const (
	VersionUnset ApiVersion = iota
	V1
	V2
)

func (v ApiVersion) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	default:
		return "unset"
	}
}
