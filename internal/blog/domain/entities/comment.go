package entities

import (
	"strings"
	"time"
)

// Sentiment - оценка комментария.
type Sentiment string

// Допустимые оценки.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// Valid проверяет, что оценка допустима.
func (s Sentiment) Valid() bool {
	return s == SentimentPositive || s == SentimentNegative
}

// ParseSentiment принимает оценку в любом регистре.
func ParseSentiment(raw string) (Sentiment, bool) {
	s := Sentiment(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// Comment - комментарий пользователя к чужой записи. Один на пару (username, blogID).
type Comment struct {
	BlogID      int64
	Username    string
	Sentiment   Sentiment
	Text        string
	CommentDate time.Time
}
