package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage - a message posted to a channel or as a direct message
type ChatMessage struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SenderUID    string             `json:"senderUid" bson:"senderUid"`
	SenderName   string             `json:"senderName" bson:"senderName"`
	Text         string             `json:"text" bson:"text"`
	Channel      string             `json:"channel" bson:"channel"`
	IsDm         bool               `json:"isDm" bson:"isDm"`
	RecipientUID string             `json:"recipientUid,omitempty" bson:"recipientUid,omitempty"`
	Mentions     []string           `json:"mentions,omitempty" bson:"mentions,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

type PostChatMessageRequest struct {
	Text         string   `json:"text" binding:"required"`
	Channel      string   `json:"channel"`
	IsDm         bool     `json:"isDm"`
	RecipientUID string   `json:"recipientUid"`
	Mentions     []string `json:"mentions"`
}

// PushNotification - what gets delivered to each device of a recipient
type PushNotification struct {
	Title   string
	Body    string
	Channel string
	IsDm    bool
}
