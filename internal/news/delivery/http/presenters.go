package http

import (
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/news"
)

type listReq struct {
	Currency string `form:"currency"`
	Limit    int    `form:"limit"`
}

func (r listReq) toInput() news.ListInput {
	return news.ListInput{Currency: r.Currency, Limit: r.Limit}
}

type newsItemResp struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	Sentiment   string   `json:"sentiment"`
	Currencies  []string `json:"currencies"`
	PublishedAt string   `json:"publishedAt"`
	Score       *float64 `json:"score"`
}

func (h *Handler) newListResp(items []model.NewsItem) []newsItemResp {
	out := make([]newsItemResp, 0, len(items))
	for _, n := range items {
		currencies := n.Currencies
		if currencies == nil {
			currencies = []string{}
		}
		out = append(out, newsItemResp{
			ID:          n.ID,
			Title:       n.Title,
			URL:         n.URL,
			Source:      n.Source,
			Sentiment:   string(n.Sentiment),
			Currencies:  currencies,
			PublishedAt: n.PublishedAt.UTC().Format(time.RFC3339),
			Score:       n.Score,
		})
	}
	return out
}
