package services

import (
	"context"
	"fmt"
	"strconv"

	"storedash-be/internal/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const pushIcon = "/icons/icon-192.png"

// FCMPusher sends web push notifications through Firebase Cloud Messaging.
type FCMPusher struct {
	client *messaging.Client
	link   string
}

func NewFCMPusher(ctx context.Context, credentialsFile, link string) (*FCMPusher, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}
	return &FCMPusher{client: client, link: link}, nil
}

func (p *FCMPusher) Send(ctx context.Context, token string, n models.PushNotification) error {
	_, err := p.client.Send(ctx, BuildPushMessage(token, n, p.link))
	if err == nil {
		return nil
	}
	if messaging.IsUnregistered(err) || errorutils.IsInvalidArgument(err) {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return err
}

// BuildPushMessage renders n as an FCM web push message for token.
func BuildPushMessage(token string, n models.PushNotification, link string) *messaging.Message {
	tag := n.Channel
	if tag == "" {
		tag = "chat"
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Icon:     pushIcon,
				Badge:    pushIcon,
				Tag:      tag,
				Renotify: true,
			},
		},
		Data: map[string]string{
			"channel": n.Channel,
			"isDm":    strconv.FormatBool(n.IsDm),
		},
	}
	if link != "" {
		msg.Webpush.FCMOptions = &messaging.WebpushFCMOptions{Link: link}
	}
	return msg
}
