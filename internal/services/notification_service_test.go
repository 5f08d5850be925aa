package services

import (
	"context"
	"testing"

	"storedash-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatName(t *testing.T) {
	tests := map[string]string{
		"jane":          "Jane",
		"JANE":          "Jane",
		"jane q doe":    "Jane D.",
		"  mary   ann ": "Mary A.",
		"":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatName(in), in)
	}
}

func TestChannelLabel(t *testing.T) {
	assert.Equal(t, "#General", ChannelLabel("general"))
	assert.Equal(t, "#BDC", ChannelLabel("bdc"))
	assert.Equal(t, "#Managers", ChannelLabel("managers"))
	assert.Equal(t, "#floor", ChannelLabel("floor"))
}

func TestRecipients(t *testing.T) {
	msg := &models.ChatMessage{
		SenderUID:    "s",
		IsDm:         true,
		RecipientUID: "r",
		Mentions:     []string{"s", "m1", "r", "m1", "m2"},
	}

	got := recipients(msg)

	assert.Equal(t, []recipient{{uid: "r", dm: true}, {uid: "m1"}, {uid: "m2"}}, got)
}

func TestRecipientsIgnoresRecipientWhenNotDM(t *testing.T) {
	got := recipients(&models.ChatMessage{SenderUID: "s", RecipientUID: "r"})
	assert.Empty(t, got)
}

func TestPostMessageNotifiesAndPrunes(t *testing.T) {
	sender := &models.User{Name: "jane q doe"}
	dmTarget := &models.User{FCMTokens: []string{"good-1", "dead-1"}}
	mentioned := &models.User{FCMTokens: []string{"good-2"}}
	users := newMemUserStore(sender, dmTarget, mentioned)
	chats := &memChatStore{}
	pusher := &fakePusher{invalid: map[string]bool{"dead-1": true}}
	svc := NewNotificationService(users, chats, pusher)

	text := "<b>Great</b> job on the Smith deal, the customer loved the walkaround and is coming back Friday with the co-signer to finish paperwork and pick up the truck!"
	msg, err := svc.PostMessage(context.Background(), sender, models.PostChatMessageRequest{
		Text:         text,
		Channel:      "sales",
		IsDm:         true,
		RecipientUID: dmTarget.ID.Hex(),
		Mentions:     []string{mentioned.ID.Hex(), sender.ID.Hex()},
	})
	require.NoError(t, err)
	require.Len(t, chats.messages, 1)
	assert.Equal(t, sender.ID.Hex(), msg.SenderUID)

	require.Len(t, pusher.sent, 2)
	dm := pusher.sent[0]
	assert.Equal(t, "good-1", dm.token)
	assert.Equal(t, "Jane D.", dm.n.Title)
	assert.True(t, dm.n.IsDm)
	assert.Len(t, []rune(dm.n.Body), 120)
	assert.NotContains(t, dm.n.Body, "<b>")

	mention := pusher.sent[1]
	assert.Equal(t, "good-2", mention.token)
	assert.Equal(t, "Jane D. in #Sales", mention.n.Title)
	assert.False(t, mention.n.IsDm)

	assert.Equal(t, []string{"dead-1"}, users.pruned[dmTarget.ID.Hex()])
	assert.Equal(t, []string{"good-1"}, dmTarget.FCMTokens)
}

func TestNotifyWithoutPusherOnlyStores(t *testing.T) {
	sender := &models.User{Name: "Sam"}
	chats := &memChatStore{}
	svc := NewNotificationService(newMemUserStore(sender), chats, nil)

	_, err := svc.PostMessage(context.Background(), sender, models.PostChatMessageRequest{Text: "hi", Channel: "general"})

	require.NoError(t, err)
	assert.Len(t, chats.messages, 1)
}

func TestBuildPushMessage(t *testing.T) {
	msg := BuildPushMessage("tok", models.PushNotification{Title: "Jane D.", Body: "hi", IsDm: true}, "https://dash.example.com/")

	assert.Equal(t, "tok", msg.Token)
	assert.Equal(t, "Jane D.", msg.Notification.Title)
	assert.Equal(t, "chat", msg.Webpush.Notification.Tag)
	assert.True(t, msg.Webpush.Notification.Renotify)
	assert.Equal(t, "https://dash.example.com/", msg.Webpush.FCMOptions.Link)
	assert.Equal(t, map[string]string{"channel": "", "isDm": "true"}, msg.Data)
}
