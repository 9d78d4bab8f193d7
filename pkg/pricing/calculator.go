// Package pricing computes used prices from condition summaries and explains
// the resulting discount.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/logger"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// DefaultCurrency is used when the reference source does not name one.
const DefaultCurrency = "EGP"

var (
	// ErrPriceNotFound means no tier could resolve a reference price. It is
	// an expected outcome; callers should ask for a manual reference price.
	ErrPriceNotFound = errors.New("reference price not found")
	// ErrInvalidRequest is returned for requests missing brand or model.
	ErrInvalidRequest = errors.New("invalid pricing request")
)

// Resolution outcomes reported to the observer.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// Request is a pricing request.
type Request struct {
	Brand          string
	Model          string
	Category       string
	ReferencePrice *float64
	Condition      domain.ConditionSummary
}

// Observer is notified of every resolver attempt.
type Observer func(tier, outcome string)

// Calculator resolves reference prices and applies depreciation.
type Calculator struct {
	resolvers []Resolver
	cache     PriceCache
	currency  string
	now       func() time.Time
	observe   Observer
	log       *slog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithPriceBook adds the price database tier.
func WithPriceBook(book PriceBook) Option {
	return func(c *Calculator) {
		c.resolvers = append(c.resolvers, DatabaseResolver{Book: book})
	}
}

// WithPriceCache adds the cache tier and enables write-back of web search
// results. A zero ttl uses DefaultCacheTTL.
func WithPriceCache(cache PriceCache, ttl time.Duration) Option {
	return func(c *Calculator) {
		c.cache = cache
		c.resolvers = append(c.resolvers, CacheResolver{Cache: cache, TTL: ttl, Now: func() time.Time { return c.now() }})
	}
}

// WithMarketSearcher adds the web search tier.
func WithMarketSearcher(s MarketSearcher) Option {
	return func(c *Calculator) {
		c.resolvers = append(c.resolvers, WebSearchResolver{Searcher: s})
	}
}

// WithResolvers replaces the whole chain after the manual tier.
func WithResolvers(resolvers ...Resolver) Option {
	return func(c *Calculator) {
		c.resolvers = append(c.resolvers[:1], resolvers...)
	}
}

// WithCurrency sets the currency used when a source names none.
func WithCurrency(currency string) Option {
	return func(c *Calculator) {
		if currency != "" {
			c.currency = currency
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		c.now = now
	}
}

// WithObserver registers a resolution observer.
func WithObserver(o Observer) Option {
	return func(c *Calculator) {
		c.observe = o
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		c.log = logger.Component(l, "pricing")
	}
}

// NewCalculator creates a Calculator. The manual tier is always first; the
// remaining tiers run in the order their options are given. Pass
// WithPriceBook, WithPriceCache and WithMarketSearcher in that order for the
// standard chain.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		resolvers: []Resolver{ManualResolver{}},
		currency:  DefaultCurrency,
		now:       time.Now,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tiers returns the resolver names in resolution order.
func (c *Calculator) Tiers() []string {
	names := make([]string, 0, len(c.resolvers))
	for _, r := range c.resolvers {
		names = append(names, r.Name())
	}
	return names
}

// Calculate resolves the reference price and prices the item. It returns
// ErrPriceNotFound when every tier misses.
func (c *Calculator) Calculate(ctx context.Context, req Request) (*domain.PricingResult, error) {
	req.Brand = strings.TrimSpace(req.Brand)
	req.Model = strings.TrimSpace(req.Model)
	if req.Brand == "" || req.Model == "" {
		return nil, fmt.Errorf("%w: brand and model are required", ErrInvalidRequest)
	}

	q := Query{Brand: req.Brand, Model: req.Model, Category: req.Category, ReferencePrice: req.ReferencePrice}
	ref, resolver, err := c.Resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	if resolver.CacheWorthy() && c.cache != nil {
		c.writeBack(ctx, q, ref)
	}

	return c.Price(req, ref), nil
}

// Resolve walks the resolver chain and returns the first hit. Resolver
// failures are logged and treated as misses.
func (c *Calculator) Resolve(ctx context.Context, q Query) (Reference, Resolver, error) {
	for _, r := range c.resolvers {
		ref, ok, err := r.Resolve(ctx, q)
		switch {
		case err != nil:
			c.notify(r.Name(), OutcomeError)
			c.log.Warn("reference price tier failed",
				"tier", r.Name(), "brand", q.Brand, "model", q.Model, "error", err)
			continue
		case !ok:
			c.notify(r.Name(), OutcomeMiss)
			continue
		}

		c.notify(r.Name(), OutcomeHit)
		c.log.Debug("reference price resolved",
			"tier", r.Name(), "brand", q.Brand, "model", q.Model, "price", ref.Price)
		return ref, r, nil
	}
	return Reference{}, nil, fmt.Errorf("%w: %s %s", ErrPriceNotFound, q.Brand, q.Model)
}

// Price applies depreciation to a resolved reference price.
func (c *Calculator) Price(req Request, ref Reference) *domain.PricingResult {
	discount, breakdown := Depreciation(req.Condition)

	currency := ref.Currency
	if currency == "" {
		currency = c.currency
	}

	result := &domain.PricingResult{
		ReferenceNewPrice:   round2(ref.Price),
		CalculatedUsedPrice: UsedPrice(round2(ref.Price), discount),
		DiscountPercentage:  discount,
		DiscountBreakdown:   breakdown,
		PriceMetadata: domain.PriceMetadata{
			Source:         ref.Tier,
			Brand:          req.Brand,
			Model:          req.Model,
			Category:       req.Category,
			Currency:       currency,
			ConditionScore: req.Condition.ConditionScore,
			IssuesCount:    len(req.Condition.DetectedIssues),
		},
	}
	if ref.Tier == domain.SourceWebSearch || ref.Tier == domain.SourceCache {
		result.SearchDetails = ref.Market
	}
	return result
}

func (c *Calculator) writeBack(ctx context.Context, q Query, ref Reference) {
	key := CacheKey(q.Brand, q.Model, q.Category)
	if key == "" {
		return
	}
	entry := &domain.CachedPrice{
		Key:      key,
		Brand:    q.Brand,
		Model:    q.Model,
		Category: q.Category,
		Quote: domain.PriceQuote{
			Price:    ref.Price,
			Currency: ref.Currency,
			Source:   ref.Origin,
			Market:   ref.Market,
		},
		CachedAt: c.now(),
	}
	if err := c.cache.SetCachedPrice(ctx, entry); err != nil {
		c.log.Warn("caching web price failed", "key", entry.Key, "error", err)
	}
}

func (c *Calculator) notify(tier, outcome string) {
	if c.observe != nil {
		c.observe(tier, outcome)
	}
}
