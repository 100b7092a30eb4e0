package usecase

import (
	"fmt"
	"strings"

	domainAI "github.com/wachat/wachat-bridge/domains/ai"
	domainMessage "github.com/wachat/wachat-bridge/domains/message"
)

// Persona fija del asistente. La variante "vision" acompaña las peticiones
// multimodales; la otra se incrusta en el prompt de texto único.
const (
	visionSystemPrompt = "Eres un asistente útil de WhatsApp llamado WaChat Bot. " +
		"Mantén las respuestas concisas y amigables. Puedes analizar imágenes, documentos, " +
		"ubicaciones y contactos que te envíen. Siempre responde en español y de manera conversacional."

	textSystemPreamble = "Eres un asistente útil de WhatsApp llamado WaChat Bot. " +
		"Mantén las respuestas concisas y amigables. Siempre responde en español."

	// ApologyReply is the user-safe fallback when the AI call fails.
	ApologyReply = "Lo siento, tengo problemas para procesar tu solicitud ahora. " +
		"Por favor intenta de nuevo más tarde."

	defaultImageMimeType = "image/jpeg"
)

// BuildPrompt chooses between the two composer branches. Branch A (image with
// fetched bytes) produces a multimodal prompt; Branch B folds the persona and
// any kind-specific annotation into a single text input, which is also the
// path taken when an image fetch failed.
func BuildPrompt(displayText string, attachment *domainMessage.Attachment) domainAI.Prompt {
	if attachment != nil &&
		attachment.Kind == domainMessage.KindImage &&
		attachment.Media != nil &&
		attachment.Media.Fetch.State == domainMessage.FetchSucceeded {

		mimeType := attachment.Media.MimeType
		if mimeType == "" {
			mimeType = defaultImageMimeType
		}
		return domainAI.Prompt{
			System:   visionSystemPrompt,
			UserText: displayText,
			Image: &domainAI.InlineImage{
				MimeType: mimeType,
				Base64:   attachment.Media.Fetch.Base64,
			},
		}
	}

	var b strings.Builder
	b.WriteString("Instrucciones del sistema: ")
	b.WriteString(textSystemPreamble)
	b.WriteString("\n\nMensaje del usuario: ")
	b.WriteString(displayText)

	if attachment != nil {
		appendAttachmentContext(&b, attachment)
	}

	return domainAI.Prompt{UserText: b.String()}
}

func appendAttachmentContext(b *strings.Builder, attachment *domainMessage.Attachment) {
	switch attachment.Kind {
	case domainMessage.KindLocation:
		loc := attachment.Location
		if loc == nil {
			return
		}
		fmt.Fprintf(b, "\n\nDetalles de ubicación: Latitud %s, Longitud %s", loc.LatitudeLabel(), loc.LongitudeLabel())
		if loc.Name != "" {
			fmt.Fprintf(b, ", Lugar: %s", loc.Name)
		}
		if loc.Address != "" {
			fmt.Fprintf(b, ", Dirección: %s", loc.Address)
		}

	case domainMessage.KindContacts:
		contacts := attachment.Contacts
		if contacts == nil {
			return
		}
		fmt.Fprintf(b, "\n\nEl usuario compartió %d contacto(s): %s", contacts.Count, contacts.JoinedNames)

	case domainMessage.KindDocument:
		media := attachment.Media
		if media == nil {
			return
		}
		mimeType := media.MimeType
		if mimeType == "" {
			mimeType = "N/A"
		}
		fmt.Fprintf(b, "\n\nDocumento enviado: %s, Tipo: %s", media.Filename, mimeType)
		if media.Caption != "" {
			fmt.Fprintf(b, ", Descripción: %s", media.Caption)
		}

	case domainMessage.KindSticker:
		b.WriteString("\n\nEl usuario envió un sticker (emoji/imagen expresiva)")

	case domainMessage.KindAudio:
		b.WriteString("\n\nEl usuario envió un mensaje de audio/voz")
	}
}
