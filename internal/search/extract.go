package search

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// Plausible new-price bounds in Egyptian pounds.
const (
	MinPlausiblePrice = 100
	MaxPlausiblePrice = 200000
)

// contextWindow is how many bytes either side of a match are checked for
// words that mean the number is not a price.
const contextWindow = 20

var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:\bEGP|\bLE|ج\.م|جنيه)\s*([0-9][0-9,]*(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?i)([0-9][0-9,]*(?:\.[0-9]{2})?)\s*(?:EGP\b|LE\b|ج\.م|جنيه)`),
}

var invalidContext = []string{
	"star", "rating", "review", "piece", "item", "year",
	"warranty", "month", "قسط", "شهور",
}

var usedKeywords = []string{"used", "refurbished", "مستعمل", "مجدد", "open box", "renewed"}

var storeNames = []struct{ match, name string }{
	{"jumia", "Jumia Egypt"},
	{"noon", "Noon"},
	{"b.tech", "B.TECH"},
	{"dream2000", "Dream 2000"},
	{"dubaiphone", "Dubai Phone"},
	{"xcite", "Xcite"},
	{"souq", "Souq"},
	{"2b.com.eg", "2B"},
	{"elarabygroup", "El Araby"},
}

// DefaultStore names offers whose URL matches no known retailer.
const DefaultStore = "Egyptian Retailer"

// ExtractPrice finds Egyptian pound amounts in text and returns the largest
// plausible one. Amounts next to rating, warranty or installment wording are
// ignored.
func ExtractPrice(text string) (float64, bool) {
	lower := strings.ToLower(text)
	best, found := 0.0, false

	for _, re := range pricePatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			v, err := strconv.ParseFloat(strings.ReplaceAll(text[m[2]:m[3]], ",", ""), 64)
			if err != nil {
				continue
			}
			if v < MinPlausiblePrice || v > MaxPlausiblePrice {
				continue
			}
			if hasInvalidContext(lower, m[0], m[1]) {
				continue
			}
			if !found || v > best {
				best, found = v, true
			}
		}
	}
	return best, found
}

func hasInvalidContext(lower string, start, end int) bool {
	lo := max(start-contextWindow, 0)
	for lo > 0 && !utf8.RuneStart(lower[lo]) {
		lo--
	}
	hi := min(end+contextWindow, len(lower))
	for hi < len(lower) && !utf8.RuneStart(lower[hi]) {
		hi++
	}
	window := lower[lo:hi]
	for _, w := range invalidContext {
		if strings.Contains(window, w) {
			return true
		}
	}
	return false
}

// IsUsedListing reports whether text describes a used or refurbished offer.
func IsUsedListing(text string) bool {
	lower := strings.ToLower(text)
	for _, k := range usedKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// StoreName maps a result URL to a retailer name.
func StoreName(url string) string {
	lower := strings.ToLower(url)
	for _, s := range storeNames {
		if strings.Contains(lower, s.match) {
			return s.name
		}
	}
	return DefaultStore
}

// Offers turns organic results into priced new-item offers sorted cheapest
// first. Used listings and results without a price are dropped.
func Offers(results []OrganicResult) []domain.MarketOffer {
	offers := make([]domain.MarketOffer, 0, len(results))
	for _, r := range results {
		text := r.Title + " " + r.Snippet
		if IsUsedListing(text) {
			continue
		}
		price, ok := ExtractPrice(text)
		if !ok {
			continue
		}
		offers = append(offers, domain.MarketOffer{
			Title: r.Title,
			Store: StoreName(r.Link),
			Price: price,
			URL:   r.Link,
		})
	}
	slices.SortStableFunc(offers, func(a, b domain.MarketOffer) int {
		return cmp.Compare(a.Price, b.Price)
	})
	return offers
}

// Stats aggregates offers sorted cheapest first. The median is the upper
// middle element for even counts. It returns nil for no offers.
func Stats(offers []domain.MarketOffer) *domain.MarketStats {
	if len(offers) == 0 {
		return nil
	}

	var stores []string
	for _, o := range offers {
		if !slices.Contains(stores, o.Store) {
			stores = append(stores, o.Store)
		}
	}

	best := offers[0]
	return &domain.MarketStats{
		TotalResults: len(offers),
		StoresFound:  stores,
		PriceRange: domain.PriceRange{
			Min:    offers[0].Price,
			Max:    offers[len(offers)-1].Price,
			Median: offers[len(offers)/2].Price,
		},
		BestDeal: &best,
		Results:  offers,
	}
}
