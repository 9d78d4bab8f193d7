// Package domain defines the core business types for used-item pricing and
// price justification.
package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned by lookups that have no data for a key. It marks an
// expected outcome, not a failure.
var ErrNotFound = errors.New("not found")

// Severity is the canonical damage intensity scale.
type Severity string

// Severity constants, ordered lowest to highest.
const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
)

// Severities lists the canonical severities in ascending order.
var Severities = []Severity{SeverityMinor, SeverityModerate, SeveritySevere, SeverityCritical}

// Valid reports whether s is a canonical severity.
func (s Severity) Valid() bool {
	return s.Rank() >= 0
}

// Rank returns the position of s on the severity scale, or -1 if unknown.
func (s Severity) Rank() int {
	for i, v := range Severities {
		if v == s {
			return i
		}
	}
	return -1
}

// Condition is the canonical overall condition scale.
type Condition string

// Condition constants, ordered best to worst.
const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// Conditions lists the canonical conditions from best to worst.
var Conditions = []Condition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}

// Valid reports whether c is a canonical condition.
func (c Condition) Valid() bool {
	return c.Rank() >= 0
}

// Rank returns the position of c on the condition scale (0 is best), or -1
// if unknown.
func (c Condition) Rank() int {
	for i, v := range Conditions {
		if v == c {
			return i
		}
	}
	return -1
}

// ConditionIssue is one detected defect.
type ConditionIssue struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Location    string   `json:"location"`
	Confidence  float64  `json:"confidence"`
	View        string   `json:"view,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ConditionSummary is the aggregated assessment of one item across all
// inspected views.
type ConditionSummary struct {
	OverallCondition     Condition        `json:"overall_condition"`
	ConditionScore       float64          `json:"condition_score"`
	DetectedIssues       []ConditionIssue `json:"detected_issues"`
	SeverityDistribution map[Severity]int `json:"severity_distribution"`
	TotalDiscountImpact  float64          `json:"total_discount_impact"`
	UsageYears           float64          `json:"usage_years"`
	ViewsAnalyzed        []string         `json:"views_analyzed"`
}

// WithUsageYears returns a copy of the summary with usage injected.
func (s ConditionSummary) WithUsageYears(years float64) ConditionSummary {
	s.UsageYears = years
	return s
}

// Price sources recorded in PriceMetadata.
const (
	SourceManual    = "manual"
	SourceDatabase  = "database"
	SourceCache     = "cache"
	SourceWebSearch = "web_search"
)

// PriceMetadata records where the reference price came from.
type PriceMetadata struct {
	Source         string  `json:"source"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	Category       string  `json:"category,omitempty"`
	Currency       string  `json:"currency"`
	ConditionScore float64 `json:"condition_score"`
	IssuesCount    int     `json:"issues_count"`
}

// PriceRange holds observed market price statistics.
type PriceRange struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// MarketOffer is a single priced offer found in a market search.
type MarketOffer struct {
	Title string  `json:"title"`
	Store string  `json:"store"`
	Price float64 `json:"price"`
	URL   string  `json:"url"`
}

// MarketStats aggregates a web price search.
type MarketStats struct {
	TotalResults int           `json:"total_results"`
	StoresFound  []string      `json:"stores_found"`
	PriceRange   PriceRange    `json:"price_range"`
	BestDeal     *MarketOffer  `json:"best_deal,omitempty"`
	Results      []MarketOffer `json:"results,omitempty"`
}

// PricingResult is the output of the price calculator.
type PricingResult struct {
	ReferenceNewPrice   float64            `json:"reference_new_price"`
	CalculatedUsedPrice float64            `json:"calculated_used_price"`
	DiscountPercentage  float64            `json:"discount_percentage"`
	DiscountBreakdown   map[string]float64 `json:"discount_breakdown"`
	PriceMetadata       PriceMetadata      `json:"price_metadata"`
	SearchDetails       *MarketStats       `json:"search_details,omitempty"`
}

// ReportText is the deterministic natural-language rendering of a price.
type ReportText struct {
	FullExplanation  string   `json:"full_explanation"`
	ShortSummary     string   `json:"short_summary"`
	BulletPoints     []string `json:"bullet_points"`
	ValueProposition string   `json:"value_proposition"`
}

// PriceRecord is an entry in the reference price database.
type PriceRecord struct {
	Key         string    `json:"key"          db:"key"`
	Brand       string    `json:"brand"        db:"brand"`
	Model       string    `json:"model"        db:"model"`
	Price       float64   `json:"price"        db:"price"`
	Currency    string    `json:"currency"     db:"currency"`
	Source      string    `json:"source"       db:"source"`
	Category    string    `json:"category"     db:"category"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
}

// PriceQuote is a reference price found by a market search.
type PriceQuote struct {
	Price    float64      `json:"price"`
	Currency string       `json:"currency"`
	Source   string       `json:"source"`
	Market   *MarketStats `json:"market,omitempty"`
}

// CachedPrice is a timestamped price cache entry.
type CachedPrice struct {
	Key      string     `json:"key"       db:"key"`
	Brand    string     `json:"brand"     db:"brand"`
	Model    string     `json:"model"     db:"model"`
	Category string     `json:"category"  db:"category"`
	Quote    PriceQuote `json:"price_data" db:"quote"`
	CachedAt time.Time  `json:"timestamp" db:"cached_at"`
}

// PriceStats summarizes the price database.
type PriceStats struct {
	TotalProducts int            `json:"total_products"`
	ByCategory    map[string]int `json:"by_category"`
	ByBrand       map[string]int `json:"by_brand"`
	LastUpdated   *time.Time     `json:"last_updated,omitempty"`
}

// Spec extraction outcomes.
const (
	SpecsExtracted = "success"
	SpecsFailed    = "failed"
)

// ProductSpecs holds technical specifications looked up for a product.
type ProductSpecs struct {
	ProductName      string            `json:"product_name"`
	Specifications   map[string]string `json:"specifications"`
	ExtractionStatus string            `json:"extraction_status"`
}

// BilingualReport is a valuation report in English and Arabic.
type BilingualReport struct {
	English string `json:"english"`
	Arabic  string `json:"arabic"`
	Status  string `json:"status"`
}

// PricingValidation is the outcome of sanity checks on a computed price.
type PricingValidation struct {
	Valid    bool     `json:"valid"`
	Discount float64  `json:"discount"`
	Warnings []string `json:"warnings"`
}
