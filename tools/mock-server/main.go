// Package main implements a mock SerpAPI server for local development.
// It serves canned Google organic results from a JSON fixture so price
// search and specification lookup can run without a real API key.
package main

import (
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

//go:embed testdata/organic_results.json
var defaultFixture []byte

type organicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

type serpResponse struct {
	OrganicResults []organicResult `json:"organic_results,omitempty"`
	Error          string          `json:"error,omitempty"`
}

const noResultsError = "Google hasn't returned any results for this query."

// quotedProduct pulls the quoted product name out of a price query.
var quotedProduct = regexp.MustCompile(`"([^"]+)"`)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "", "path to an organic results fixture (default: built-in)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "results", len(fixture.OrganicResults))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /search.json", searchHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock SerpAPI server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*serpResponse, error) {
	data := defaultFixture
	if path != "" {
		var err error
		data, err = os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading fixture: %w", err)
		}
	}
	var resp serpResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		q.Del("api_key")
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", q.Encode())
		next.ServeHTTP(w, r)
	})
}

// queryTerms returns the lower-cased words every matching result must
// contain: the quoted product name when present, otherwise the first words
// of the query.
func queryTerms(q string) []string {
	if m := quotedProduct.FindStringSubmatch(q); m != nil {
		return strings.Fields(strings.ToLower(m[1]))
	}
	fields := strings.Fields(strings.ToLower(q))
	return fields[:min(len(fields), 2)]
}

func matches(r organicResult, terms []string) bool {
	text := strings.ToLower(r.Title + " " + r.Snippet)
	for _, t := range terms {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func searchHandler(logger *slog.Logger, fixture *serpResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		if params.Get("api_key") == "" {
			logger.Warn("search request missing api_key")
			writeJSON(w, http.StatusUnauthorized, serpResponse{Error: "Invalid API key."})
			return
		}

		num := 10
		if v, err := strconv.Atoi(params.Get("num")); err == nil && v > 0 {
			num = v
		}

		terms := queryTerms(params.Get("q"))
		var matched []organicResult
		for _, res := range fixture.OrganicResults {
			if matches(res, terms) {
				matched = append(matched, res)
			}
		}

		logger.Info("search", "terms", strings.Join(terms, " "), "matched", len(matched), "num", num)
		if len(matched) == 0 {
			writeJSON(w, http.StatusOK, serpResponse{Error: noResultsError})
			return
		}
		writeJSON(w, http.StatusOK, serpResponse{OrganicResults: matched[:min(len(matched), num)]})
	}
}
