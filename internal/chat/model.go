package chat

import "time"

type Participant struct {
	ID       int    `json:"id"`
	UserName string `json:"userName"`
}

type Chat struct {
	ID        int         `json:"id"`
	ProductID int         `json:"productId"`
	OtherUser Participant `json:"otherUser"`
}

type Message struct {
	ID       int       `json:"id"`
	ChatID   int       `json:"chatId"`
	SenderID int       `json:"senderId"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sentAt"`
}
