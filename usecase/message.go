package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wachat/wachat-bridge/config"
	domainAI "github.com/wachat/wachat-bridge/domains/ai"
	domainMessage "github.com/wachat/wachat-bridge/domains/message"
	"github.com/wachat/wachat-bridge/infrastructure/whatsapp"
)

const (
	imageCaptionRuneLimit = 100
	captionEllipsis       = "..."

	documentEchoCaptionPrefix = "Recibí este documento: "
	defaultEchoDocumentName   = "documento"
)

// MediaFetcher resolves a media reference to its downloaded content.
type MediaFetcher interface {
	FetchMedia(ctx context.Context, mediaID string) domainMessage.FetchResult
}

// MessageSender covers the three outbound send shapes of the Cloud API.
type MessageSender interface {
	SendText(ctx context.Context, to, body string) error
	SendMediaByID(ctx context.Context, to string, kind domainMessage.Kind, mediaID, caption string) error
	SendLocation(ctx context.Context, to string, latitude, longitude float64, name, address string) error
}

type messageService struct {
	cfg      *config.Config
	fetcher  MediaFetcher
	sender   MessageSender
	provider domainAI.IProvider
}

func NewMessageService(cfg *config.Config, fetcher MediaFetcher, sender MessageSender, provider domainAI.IProvider) domainMessage.IMessageUsecase {
	return &messageService{
		cfg:      cfg,
		fetcher:  fetcher,
		sender:   sender,
		provider: provider,
	}
}

// ProcessDelivery runs the whole relay for one webhook body. Upstream
// failures degrade (skip the image payload, fall back to the apology text,
// mark a leg unsuccessful) instead of aborting; the only error returned is a
// body that is not valid JSON.
func (s *messageService) ProcessDelivery(ctx context.Context, body []byte) error {
	var payload whatsapp.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("parse webhook body: %w", err)
	}

	msg := whatsapp.Normalize(&payload)
	if msg == nil {
		logrus.Debug("[PIPELINE] no actionable message in webhook delivery")
		return nil
	}

	log := logrus.WithFields(logrus.Fields{
		"trace_id":   uuid.NewString(),
		"message_id": msg.MessageID,
		"sender":     msg.SenderID,
		"kind":       msg.Kind,
	})
	log.Infof("[PIPELINE] processing message: %s", msg.DisplayText)

	s.fetchAttachment(ctx, msg, log)

	prompt := BuildPrompt(msg.DisplayText, msg.Attachment)
	replyText := s.complete(ctx, prompt, log)

	reply := domainMessage.OutboundReply{
		RecipientID:    msg.SenderID,
		BodyText:       replyText,
		EchoAttachment: msg.Attachment,
	}
	result := s.dispatch(ctx, reply, log)

	if result.TextOK && result.MediaOK {
		log.Info("[PIPELINE] message processed successfully")
	} else {
		log.WithFields(logrus.Fields{
			"text_ok":  result.TextOK,
			"media_ok": result.MediaOK,
		}).Warn("[PIPELINE] message processed with failed sends")
	}
	return nil
}

// fetchAttachment downloads media bytes for the kinds that can be inlined or
// described to the model (image, document, sticker). Audio is relayed by
// reference only, so it is never fetched.
func (s *messageService) fetchAttachment(ctx context.Context, msg *domainMessage.InboundMessage, log *logrus.Entry) {
	att := msg.Attachment
	if att == nil || att.Media == nil || att.Media.ID == "" {
		return
	}

	switch att.Kind {
	case domainMessage.KindImage, domainMessage.KindDocument, domainMessage.KindSticker:
	default:
		return
	}

	att.Media.Fetch = s.fetcher.FetchMedia(ctx, att.Media.ID)
	if att.Media.Fetch.State != domainMessage.FetchSucceeded {
		log.Warnf("[PIPELINE] could not download %s media, continuing without bytes", att.Kind)
	}
}

func (s *messageService) complete(ctx context.Context, prompt domainAI.Prompt, log *logrus.Entry) string {
	replyText, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		log.WithError(err).Errorf("[PIPELINE] %s completion failed", s.provider.Name())
		return ApologyReply
	}
	return replyText
}

// dispatch sends the text leg first and then, depending on the attachment
// kind, at most one echo leg. The legs are independent: a failed text send
// does not block the media echo and vice versa.
func (s *messageService) dispatch(ctx context.Context, reply domainMessage.OutboundReply, log *logrus.Entry) domainMessage.DispatchResult {
	result := domainMessage.DispatchResult{MediaOK: true}

	if err := s.sender.SendText(ctx, reply.RecipientID, reply.BodyText); err != nil {
		log.WithError(err).Error("[PIPELINE] failed to send text reply")
	} else {
		result.TextOK = true
	}

	att := reply.EchoAttachment
	if att == nil {
		return result
	}

	var err error
	switch att.Kind {
	case domainMessage.KindSticker, domainMessage.KindAudio:
		if att.Media == nil || att.Media.ID == "" {
			return result
		}
		err = s.sender.SendMediaByID(ctx, reply.RecipientID, att.Kind, att.Media.ID, "")

	case domainMessage.KindImage:
		if att.Media == nil || att.Media.ID == "" {
			return result
		}
		caption := truncateReplyCaption(reply.BodyText, imageCaptionRuneLimit)
		err = s.sender.SendMediaByID(ctx, reply.RecipientID, att.Kind, att.Media.ID, caption)

	case domainMessage.KindDocument:
		if att.Media == nil || att.Media.ID == "" {
			return result
		}
		filename := att.Media.Filename
		if filename == "" {
			filename = defaultEchoDocumentName
		}
		err = s.sender.SendMediaByID(ctx, reply.RecipientID, att.Kind, att.Media.ID, documentEchoCaptionPrefix+filename)

	case domainMessage.KindLocation:
		if att.Location == nil {
			return result
		}
		loc := att.Location
		err = s.sender.SendLocation(ctx, reply.RecipientID, loc.LatitudeOrZero(), loc.LongitudeOrZero(), loc.Name, loc.Address)

	default:
		// contacts y tipos desconocidos no se reenvían
		return result
	}

	if err != nil {
		log.WithError(err).Errorf("[PIPELINE] failed to echo %s attachment", att.Kind)
		result.MediaOK = false
	}
	return result
}

// truncateReplyCaption recorta por runas, no por bytes, para no partir
// caracteres multibyte.
func truncateReplyCaption(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + captionEllipsis
}
