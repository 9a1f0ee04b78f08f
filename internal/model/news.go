package model

import "time"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Sentiment   Sentiment `json:"sentiment"`
	Currencies  []string  `json:"currencies"`
	PublishedAt time.Time `json:"publishedAt"`
	Score       *float64  `json:"score"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Mentions reports whether the item is tagged with symbol.
func (n NewsItem) Mentions(symbol string) bool {
	for _, c := range n.Currencies {
		if c == symbol {
			return true
		}
	}
	return false
}
