package usecase

import (
	"math"
	"strings"
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/cryptopanic"
)

const (
	minSentimentVotes = 5
	positiveRatio     = 0.6
	negativeRatio     = 0.4
	neutralScore      = 50
)

func toNewsItem(p cryptopanic.Post, now time.Time) model.NewsItem {
	currencies := make([]string, 0, len(p.Currencies))
	for _, c := range p.Currencies {
		if code := strings.ToUpper(strings.TrimSpace(c.Code)); code != "" {
			currencies = append(currencies, code)
		}
	}

	published := p.PublishedAt
	if published.IsZero() {
		published = now
	}

	score := scoreOf(p.Votes)
	return model.NewsItem{
		Title:       p.Title,
		URL:         p.URL,
		Source:      p.Source.Title,
		Sentiment:   sentimentOf(p.Votes),
		Currencies:  currencies,
		PublishedAt: published,
		Score:       &score,
		CreatedAt:   now,
	}
}

// sentimentOf needs at least five directional votes before leaning either way.
func sentimentOf(v *cryptopanic.Votes) model.Sentiment {
	if v == nil {
		return model.SentimentNeutral
	}
	total := v.Positive + v.Negative
	if total < minSentimentVotes {
		return model.SentimentNeutral
	}

	ratio := float64(v.Positive) / float64(total)
	switch {
	case ratio > positiveRatio:
		return model.SentimentPositive
	case ratio < negativeRatio:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// scoreOf rates engagement on a 0..100 scale: up to 70 for votes, up to 30 for "important" flags.
func scoreOf(v *cryptopanic.Votes) float64 {
	if v == nil {
		return neutralScore
	}
	total := v.Positive + v.Negative + v.Important
	base := math.Min(float64(total*2), 70)
	bonus := math.Min(float64(v.Important*5), 30)
	return math.Min(base+bonus, 100)
}

// filterByCurrencies keeps items tagged with any of currencies. No currencies keeps everything.
func filterByCurrencies(items []model.NewsItem, currencies []string) []model.NewsItem {
	if len(currencies) == 0 {
		return items
	}
	out := make([]model.NewsItem, 0, len(items))
	for _, n := range items {
		for _, c := range currencies {
			if n.Mentions(c) {
				out = append(out, n)
				break
			}
		}
	}
	return out
}
