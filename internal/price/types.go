package price

import (
	"regexp"
	"strings"

	"cryptobuzz-srv/internal/model"
)

// PopularSymbols is served when a caller asks for prices without naming symbols.
var PopularSymbols = []string{"BTC", "ETH", "SOL", "BNB", "XRP", "ADA", "DOGE", "MATIC", "DOT", "AVAX"}

const (
	DefaultTopLimit = 100
	MaxTopLimit     = 200
)

type GetPricesInput struct {
	Symbols []string
}

type GetPricesOutput struct {
	Prices map[string]model.PriceSnapshot
}

type GetTopCoinsInput struct {
	Limit int
}

var symbolPattern = regexp.MustCompile(`^[A-Z0-9]{1,15}$`)

// NormalizeSymbol upper-cases and trims s, reporting whether the result is a plausible ticker.
func NormalizeSymbol(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, symbolPattern.MatchString(s)
}

// NormalizeSymbols drops invalid entries and duplicates, keeping first-seen order.
func NormalizeSymbols(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		s, ok := NormalizeSymbol(raw)
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
