package chat

import "time"

// Author marks which side of the conversation produced a message.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

// Message is one turn of the transcript. Seq is assigned at append time,
// increases monotonically within a session and is never reused. Suggestions
// are follow-up prompts and only ever accompany assistant messages.
type Message struct {
	Seq         int64     `json:"seq"`
	Author      Author    `json:"author"`
	Content     string    `json:"content"`
	Suggestions []string  `json:"suggestions,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
