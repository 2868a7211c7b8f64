package models

import "time"

type User struct {
	ID       int    `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// Conversation and Message map the schema created by cmd/initdb. No handler
// reads or writes them yet; they back a messaging feature that isn't built.
type Conversation struct {
	ID        int       `json:"conversation_id"`
	User1ID   int       `json:"user1_id"`
	User2ID   int       `json:"user2_id"`
	StartedAt time.Time `json:"started_at"`
}

type Message struct {
	ID             int       `json:"message_id"`
	ConversationID int       `json:"conversation_id"`
	SenderID       int       `json:"sender_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
