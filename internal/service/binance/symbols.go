package binance

import "strings"

// tradingSymbols maps listing asset ids to spot/futures pairs. Assets outside
// this set fall back to the listing's sparkline series.
var tradingSymbols = map[string]string{
	"bitcoin":          "BTCUSDT",
	"ethereum":         "ETHUSDT",
	"binancecoin":      "BNBUSDT",
	"solana":           "SOLUSDT",
	"ripple":           "XRPUSDT",
	"dogecoin":         "DOGEUSDT",
	"cardano":          "ADAUSDT",
	"tron":             "TRXUSDT",
	"avalanche-2":      "AVAXUSDT",
	"chainlink":        "LINKUSDT",
	"polkadot":         "DOTUSDT",
	"litecoin":         "LTCUSDT",
	"shiba-inu":        "SHIBUSDT",
	"the-open-network": "TONUSDT",
	"sui":              "SUIUSDT",
	"near":             "NEARUSDT",
}

// SymbolFor returns the exchange trading symbol for a listing asset id, or
// "" when the asset has no direct pair.
func SymbolFor(assetID string) string {
	return tradingSymbols[strings.ToLower(assetID)]
}
