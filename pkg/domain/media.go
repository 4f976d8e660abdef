package domain

type MediaKind int

const (
	KindPhoto MediaKind = iota
	KindAnimation
)

func (k MediaKind) String() string {
	switch k {
	case KindPhoto:
		return "photo"
	case KindAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

// Extensions lists the file extensions accepted for this kind, lowercase,
// without the leading dot.
func (k MediaKind) Extensions() []string {
	switch k {
	case KindAnimation:
		return []string{"gif"}
	default:
		return []string{"jpg", "jpeg", "png"}
	}
}

type MediaSource int

const (
	SourceLocalAsset MediaSource = iota
	SourceRemoteSearch
)

// MediaRequest is built by the filename matcher from an incoming message.
// It only exists for messages that actually look like a filename.
type MediaRequest struct {
	BaseName string
	Kind     MediaKind
}

// MediaResult is whatever a resolver came up with for a request.
// Exactly one of URL, Path or Data is set.
type MediaResult struct {
	Source MediaSource
	Kind   MediaKind
	URL    string
	Path   string
	Data   []byte
	Name   string
}
