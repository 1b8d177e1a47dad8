package news

import (
	"strings"

	"CoinPulse/internal/domain/models"
)

// assetAliases maps listing asset ids to ticker and display-name variants
// used for headline matching.
var assetAliases = map[string][]string{
	"bitcoin":          {"btc", "bitcoin"},
	"ethereum":         {"eth", "ethereum", "ether"},
	"binancecoin":      {"bnb", "binance"},
	"solana":           {"sol", "solana"},
	"ripple":           {"xrp", "ripple"},
	"dogecoin":         {"doge", "dogecoin"},
	"cardano":          {"ada", "cardano"},
	"tron":             {"trx", "tron"},
	"avalanche-2":      {"avax", "avalanche"},
	"chainlink":        {"link", "chainlink"},
	"polkadot":         {"dot", "polkadot"},
	"litecoin":         {"ltc", "litecoin"},
	"shiba-inu":        {"shib", "shiba"},
	"the-open-network": {"ton", "toncoin"},
	"sui":              {"sui"},
	"near":             {"near"},
}

// Match selects at most one headline for an asset: the first pool item whose
// title or URL contains the asset name, a known alias, or a word of the
// display name. Nothing matching falls back to the most recent pool item.
func Match(pool []models.HeadlineItem, assetID, assetName string) []models.HeadlineItem {
	if len(pool) == 0 {
		return nil
	}

	keywords := candidateKeywords(assetID, assetName)
	for _, item := range pool {
		haystack := strings.ToLower(item.Title + " " + item.URL)
		for _, kw := range keywords {
			if kw != "" && strings.Contains(haystack, kw) {
				return []models.HeadlineItem{item}
			}
		}
	}
	return []models.HeadlineItem{pool[0]}
}

func candidateKeywords(assetID, assetName string) []string {
	keywords := []string{strings.ToLower(assetName)}
	keywords = append(keywords, assetAliases[strings.ToLower(assetID)]...)
	for _, w := range strings.Fields(strings.ToLower(assetName)) {
		keywords = append(keywords, w)
	}
	return keywords
}
