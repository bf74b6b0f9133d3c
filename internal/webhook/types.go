// Package webhook defines the JSON envelope the voice platform exchanges
// with the archive service: a handler-dispatched request carrying session
// state, and a response that may echo a scene, override a session type, or
// issue a media playback prompt.
package webhook

// Handler names the platform dispatches on.
const (
	HandlerGetArchiveList  = "getArchiveList"
	HandlerValidateArchive = "validateArchive"
	HandlerPlayArchive     = "playArchive"
)

type Request struct {
	Handler Handler `json:"handler"`
	Session Session `json:"session"`
	Scene   *Scene  `json:"scene,omitempty"`
}

// ArchiveName returns the archiveName session parameter, or "" when absent
// or not a string.
func (r *Request) ArchiveName() string {
	if name, ok := r.Session.Params["archiveName"].(string); ok {
		return name
	}
	return ""
}

type Handler struct {
	Name string `json:"name"`
}

type Session struct {
	ID            string         `json:"id"`
	Params        map[string]any `json:"params,omitempty"`
	TypeOverrides []TypeOverride `json:"typeOverrides,omitempty"`
}

// TypeOverride replaces the entries of a session-scoped type. Used to feed
// the platform the current set of archive names.
type TypeOverride struct {
	Name    string      `json:"name"`
	Mode    string      `json:"typeOverrideMode"`
	Synonym SynonymType `json:"synonym"`
}

type SynonymType struct {
	Entries []TypeEntry `json:"entries"`
}

type TypeEntry struct {
	Name     string   `json:"name"`
	Synonyms []string `json:"synonyms"`
}

type Scene struct {
	Name              string          `json:"name,omitempty"`
	SlotFillingStatus string          `json:"slotFillingStatus,omitempty"`
	Slots             map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Mode   string `json:"mode,omitempty"`
	Status string `json:"status,omitempty"`
	Value  any    `json:"value,omitempty"`
}

type Response struct {
	Session Session `json:"session"`
	Prompt  *Prompt `json:"prompt,omitempty"`
	Scene   *Scene  `json:"scene,omitempty"`
}

type Prompt struct {
	Override    bool     `json:"override"`
	FirstSimple *Simple  `json:"firstSimple,omitempty"`
	Content     *Content `json:"content,omitempty"`
}

type Simple struct {
	Speech string `json:"speech"`
	Text   string `json:"text,omitempty"`
}

type Content struct {
	Media *Media `json:"media,omitempty"`
}

type Media struct {
	MediaType    string        `json:"mediaType"`
	MediaObjects []MediaObject `json:"mediaObjects"`
}

type MediaObject struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Image       *MediaImage `json:"image,omitempty"`
}

type MediaImage struct {
	Large *Image `json:"large,omitempty"`
}

type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}
