package entities

// MediaSource identifies where a video came from.

type MediaSource string

const (
	MediaSourceCamera  MediaSource = "camera"
	MediaSourceGallery MediaSource = "gallery"
)

// MediaHandle is an ephemeral reference to an acquired video staged on local
// disk. At most one live handle exists per workflow instance; acquiring again
// replaces it and any estimate derived from the previous one.
type MediaHandle struct {
	LocalURI string      `json:"local_uri"`
	MimeType string      `json:"mime_type"`
	Source   MediaSource `json:"source"`
}

func (h MediaHandle) IsZero() bool {
	return h.LocalURI == ""
}
