package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"storedash-be/internal/models"
	"storedash-be/internal/utils"
)

// ErrInvalidToken marks a device token the push provider will never accept.
var ErrInvalidToken = errors.New("invalid push token")

const previewLength = 120

// Pusher delivers one notification to one device token.
type Pusher interface {
	Send(ctx context.Context, token string, n models.PushNotification) error
}

// NotificationService stores chat messages and notifies DM recipients and
// mentioned users on each of their devices.
type NotificationService struct {
	users  UserStore
	chats  ChatStore
	pusher Pusher
}

// NewNotificationService accepts a nil pusher, which stores messages without
// sending anything.
func NewNotificationService(users UserStore, chats ChatStore, pusher Pusher) *NotificationService {
	return &NotificationService{
		users:  users,
		chats:  chats,
		pusher: pusher,
	}
}

func (s *NotificationService) PostMessage(ctx context.Context, sender *models.User, req models.PostChatMessageRequest) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		SenderUID:    sender.ID.Hex(),
		SenderName:   sender.Name,
		Text:         req.Text,
		Channel:      req.Channel,
		IsDm:         req.IsDm,
		RecipientUID: req.RecipientUID,
		Mentions:     req.Mentions,
		CreatedAt:    time.Now(),
	}
	if err := s.chats.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("save chat message: %w", err)
	}

	s.Notify(ctx, msg)
	return msg, nil
}

// Notify sends the message to every recipient, one at a time. Delivery
// failures are logged and never returned.
func (s *NotificationService) Notify(ctx context.Context, msg *models.ChatMessage) {
	if s.pusher == nil || msg.SenderUID == "" {
		return
	}

	senderName := msg.SenderName
	if strings.TrimSpace(senderName) == "" {
		senderName = "Someone"
	}
	senderName = FormatName(senderName)
	body := utils.Truncate(utils.SanitizeHTML(msg.Text), previewLength)

	for _, r := range recipients(msg) {
		n := models.PushNotification{
			Title:   senderName,
			Body:    body,
			Channel: msg.Channel,
			IsDm:    r.dm,
		}
		if !r.dm {
			n.Title = senderName + " in " + ChannelLabel(msg.Channel)
		}
		s.sendToUser(ctx, r.uid, n)
	}
}

type recipient struct {
	uid string
	dm  bool
}

// recipients lists who is notified: the DM recipient first, then mentions.
// The sender and repeats are skipped.
func recipients(msg *models.ChatMessage) []recipient {
	notified := map[string]bool{msg.SenderUID: true}
	var out []recipient

	if msg.IsDm && msg.RecipientUID != "" && !notified[msg.RecipientUID] {
		out = append(out, recipient{uid: msg.RecipientUID, dm: true})
		notified[msg.RecipientUID] = true
	}
	for _, uid := range msg.Mentions {
		if uid == "" || notified[uid] {
			continue
		}
		out = append(out, recipient{uid: uid})
		notified[uid] = true
	}
	return out
}

func (s *NotificationService) sendToUser(ctx context.Context, uid string, n models.PushNotification) {
	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		log.Printf("push: recipient %s not found: %v", uid, err)
		return
	}

	var invalid []string
	for _, token := range user.FCMTokens {
		if err := s.pusher.Send(ctx, token, n); err != nil {
			if errors.Is(err, ErrInvalidToken) {
				invalid = append(invalid, token)
			}
			log.Printf("push: send to %s failed: %v", uid, err)
		}
	}

	if len(invalid) > 0 {
		if err := s.users.RemoveFCMTokens(ctx, uid, invalid); err != nil {
			log.Printf("push: failed to prune tokens for %s: %v", uid, err)
			return
		}
		log.Printf("push: pruned %d invalid tokens for %s", len(invalid), uid)
	}
}

// FormatName renders "jane q doe" as "Jane D." and a single name capitalized.
func FormatName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	first := capitalize(parts[0])
	if len(parts) < 2 {
		return first
	}
	last, _ := utf8.DecodeRuneInString(parts[len(parts)-1])
	return first + " " + strings.ToUpper(string(last)) + "."
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + strings.ToLower(s[size:])
}

var channelLabels = map[string]string{
	"general":  "#General",
	"sales":    "#Sales",
	"bdc":      "#BDC",
	"managers": "#Managers",
}

func ChannelLabel(channel string) string {
	if label, ok := channelLabels[channel]; ok {
		return label
	}
	return "#" + channel
}
