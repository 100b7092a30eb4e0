package message

import (
	"context"
	"strconv"
)

// Kind is the discriminant for every message variant the bridge understands.
type Kind string

const (
	KindText     Kind = "text"
	KindImage    Kind = "image"
	KindAudio    Kind = "audio"
	KindDocument Kind = "document"
	KindSticker  Kind = "sticker"
	KindLocation Kind = "location"
	KindContacts Kind = "contacts"
	KindUnknown  Kind = "unknown"
)

// FetchState distingue "sin media", "descarga fallida" y "descarga exitosa",
// que el flujo original aplanaba en un solo campo opcional.
type FetchState string

const (
	FetchNotAttempted FetchState = "not_attempted"
	FetchSucceeded    FetchState = "succeeded"
	FetchFailed       FetchState = "failed"
)

// FetchResult carries the outcome of a media download. Base64 is populated
// only when State is FetchSucceeded.
type FetchResult struct {
	State  FetchState
	Base64 string
}

// MediaRef points to provider-hosted binary content (image, audio, document,
// sticker). The bytes are never stored; Fetch holds the transient download
// outcome for the current request.
type MediaRef struct {
	ID       string
	MimeType string
	Filename string
	Caption  string
	Animated bool
	Fetch    FetchResult
}

// Location holds literal coordinates from the webhook. Latitude/Longitude are
// pointers so an absent value can surface as the "N/A" sentinel in prompts
// while defaulting to zero on the outbound leg.
type Location struct {
	Latitude  *float64
	Longitude *float64
	Name      string
	Address   string
}

const coordinateMissing = "N/A"

func (l Location) LatitudeLabel() string {
	return coordinateLabel(l.Latitude)
}

func (l Location) LongitudeLabel() string {
	return coordinateLabel(l.Longitude)
}

func coordinateLabel(v *float64) string {
	if v == nil {
		return coordinateMissing
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// LatitudeOrZero and LongitudeOrZero feed the outbound location payload.
func (l Location) LatitudeOrZero() float64 {
	if l.Latitude == nil {
		return 0
	}
	return *l.Latitude
}

func (l Location) LongitudeOrZero() float64 {
	if l.Longitude == nil {
		return 0
	}
	return *l.Longitude
}

// ContactEntry is one shared contact card, reduced to its name parts.
type ContactEntry struct {
	FirstName string
	LastName  string
}

// ContactList keeps the shared cards in delivery order. JoinedNames is the
// comma-joined list of non-empty full names, or the "Sin nombres" sentinel
// when every entry is empty.
type ContactList struct {
	Count       int
	Entries     []ContactEntry
	JoinedNames string
}

// Attachment is a tagged union: exactly one of Media, Location or Contacts is
// set, matching Kind. Text and unknown messages carry no attachment.
type Attachment struct {
	Kind     Kind
	Media    *MediaRef
	Location *Location
	Contacts *ContactList
}

// InboundMessage is the uniform representation of one webhook delivery.
// Constructed once by the normalizer, never mutated afterwards, discarded
// when the request completes.
type InboundMessage struct {
	SenderID    string
	MessageID   string
	Kind        Kind
	DisplayText string
	Attachment  *Attachment
}

// OutboundReply is built once per inbound message, sent and discarded.
type OutboundReply struct {
	RecipientID    string
	BodyText       string
	EchoAttachment *Attachment
}

// DispatchResult reports the two independent outbound legs.
type DispatchResult struct {
	TextOK  bool
	MediaOK bool
}

type IMessageUsecase interface {
	// ProcessDelivery runs the full pipeline for one raw webhook body:
	// normalize, conditionally fetch media, compose the AI reply and
	// dispatch it. A delivery without an actionable message is a no-op,
	// not an error.
	ProcessDelivery(ctx context.Context, body []byte) error
}
