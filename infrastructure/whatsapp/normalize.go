package whatsapp

import (
	"fmt"
	"strings"

	domainMessage "github.com/wachat/wachat-bridge/domains/message"
)

// Textos fijos que ve el modelo cuando el mensaje no es de texto. Se
// conservan tal cual (idioma y emoji incluidos) porque forman parte del
// prompt.
const (
	placeholderSticker  = "📍 Usuario envió un sticker"
	placeholderImage    = "📷 Usuario envió una imagen"
	placeholderAudio    = "🎵 Usuario envió un audio"
	placeholderDocument = "📄 Usuario envió un documento"
	placeholderLocation = "📍 Usuario compartió ubicación"

	// DefaultDocumentName se usa cuando el documento llega sin nombre.
	DefaultDocumentName = "Archivo sin nombre"
	// NoContactNames se usa cuando ningún contacto compartido trae nombre.
	NoContactNames = "Sin nombres"
)

// Normalize converts a raw webhook delivery into the uniform inbound record.
// It returns nil when the payload carries no actionable message (status
// callbacks, empty entries, malformed levels); that is a no-op for the
// pipeline, never an error. Calling it twice on the same payload yields
// structurally identical results.
func Normalize(payload *WebhookPayload) *domainMessage.InboundMessage {
	if payload == nil || len(payload.Entry) == 0 {
		return nil
	}
	changes := payload.Entry[0].Changes
	if len(changes) == 0 {
		return nil
	}
	messages := changes[0].Value.Messages
	if len(messages) == 0 {
		return nil
	}

	raw := messages[0]
	out := &domainMessage.InboundMessage{
		SenderID:  raw.From,
		MessageID: raw.ID,
	}

	switch raw.Type {
	case "text":
		out.Kind = domainMessage.KindText
		if raw.Text != nil {
			out.DisplayText = raw.Text.Body
		}

	case "sticker":
		out.Kind = domainMessage.KindSticker
		out.DisplayText = placeholderSticker
		media := &domainMessage.MediaRef{Fetch: notAttempted()}
		if raw.Sticker != nil {
			media.ID = raw.Sticker.ID
			media.MimeType = raw.Sticker.MimeType
			media.Animated = raw.Sticker.Animated
		}
		out.Attachment = &domainMessage.Attachment{Kind: out.Kind, Media: media}

	case "image":
		out.Kind = domainMessage.KindImage
		out.DisplayText = placeholderImage
		media := &domainMessage.MediaRef{Fetch: notAttempted()}
		if raw.Image != nil {
			media.ID = raw.Image.ID
			media.MimeType = raw.Image.MimeType
			media.Caption = raw.Image.Caption
		}
		out.Attachment = &domainMessage.Attachment{Kind: out.Kind, Media: media}

	case "audio":
		out.Kind = domainMessage.KindAudio
		out.DisplayText = placeholderAudio
		media := &domainMessage.MediaRef{Fetch: notAttempted()}
		if raw.Audio != nil {
			media.ID = raw.Audio.ID
			media.MimeType = raw.Audio.MimeType
		}
		out.Attachment = &domainMessage.Attachment{Kind: out.Kind, Media: media}

	case "document":
		out.Kind = domainMessage.KindDocument
		out.DisplayText = placeholderDocument
		media := &domainMessage.MediaRef{Filename: DefaultDocumentName, Fetch: notAttempted()}
		if raw.Document != nil {
			media.ID = raw.Document.ID
			media.MimeType = raw.Document.MimeType
			media.Caption = raw.Document.Caption
			if raw.Document.Filename != "" {
				media.Filename = raw.Document.Filename
			}
		}
		out.Attachment = &domainMessage.Attachment{Kind: out.Kind, Media: media}

	case "location":
		out.Kind = domainMessage.KindLocation
		out.DisplayText = placeholderLocation
		loc := &domainMessage.Location{}
		if raw.Location != nil {
			loc.Latitude = raw.Location.Latitude
			loc.Longitude = raw.Location.Longitude
			loc.Name = raw.Location.Name
			loc.Address = raw.Location.Address
		}
		out.Attachment = &domainMessage.Attachment{Kind: out.Kind, Location: loc}

	case "contacts":
		out.Kind = domainMessage.KindContacts
		list := buildContactList(raw.Contacts)
		out.DisplayText = fmt.Sprintf("👤 Usuario compartió %d contacto(s)", list.Count)
		out.Attachment = &domainMessage.Attachment{Kind: out.Kind, Contacts: list}

	default:
		out.Kind = domainMessage.KindUnknown
		out.DisplayText = fmt.Sprintf("❓ Usuario envió un mensaje de tipo: %s", raw.Type)
	}

	return out
}

func notAttempted() domainMessage.FetchResult {
	return domainMessage.FetchResult{State: domainMessage.FetchNotAttempted}
}

// buildContactList junta los nombres no vacíos en orden; una entrada sin
// nombre no aporta nada a la lista.
func buildContactList(cards []ContactCard) *domainMessage.ContactList {
	list := &domainMessage.ContactList{Count: len(cards)}

	var names []string
	for _, card := range cards {
		entry := domainMessage.ContactEntry{
			FirstName: card.Name.FirstName,
			LastName:  card.Name.LastName,
		}
		list.Entries = append(list.Entries, entry)

		full := strings.TrimSpace(entry.FirstName + " " + entry.LastName)
		if full != "" {
			names = append(names, full)
		}
	}

	if len(names) > 0 {
		list.JoinedNames = strings.Join(names, ", ")
	} else {
		list.JoinedNames = NoContactNames
	}
	return list
}
