package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"salon-assistant-backend/config"
	"salon-assistant-backend/internal/model"
	"salon-assistant-backend/internal/store"
)

// Reindexer receives a fresh snippet set after every successful scrape.
type Reindexer interface {
	Reindex(ctx context.Context, snippets []model.KnowledgeSnippet) error
}

// Service periodically pulls the salon website and refreshes the stored
// knowledge snippets plus the vector index built over them.
type Service struct {
	cfg    *config.Config
	store  store.Store
	index  Reindexer
	client *http.Client
}

// NewService creates and initializes a new scraper service.
func NewService(cfg *config.Config, s store.Store, index Reindexer) *Service {
	var transport http.RoundTripper = &http.Transport{}
	if cfg.Scraper.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.Scraper.HTTPProxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Scraper will not use a proxy.", cfg.Scraper.HTTPProxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	return &Service{
		cfg:   cfg,
		store: s,
		index: index,
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}
}

// Run starts the scraping process in a loop.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Scraper.Enabled {
		log.Println("Scraper is disabled. Not starting.")
		return
	}
	log.Println("Starting scraper service...")

	s.ScrapeOnce(ctx)

	timer := time.NewTimer(s.cfg.Scraper.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Scraper service shutting down.")
			return
		case <-timer.C:
			s.ScrapeOnce(ctx)
			timer.Reset(s.cfg.Scraper.Interval)
		}
	}
}

// ScrapeOnce performs a single scrape of the salon site and persists the
// extracted snippets. The previous snippet set is kept when the fetch or
// extraction fails, so a flaky site never empties the knowledge base.
func (s *Service) ScrapeOnce(ctx context.Context) {
	log.Println("Executing scrape cycle...")

	doc, err := s.fetchSite(ctx)
	if err != nil {
		log.Printf("Error fetching salon site: %v", err)
		return
	}

	snippets := ExtractSnippets(doc, s.cfg.Scraper.URL)
	if len(snippets) == 0 {
		log.Println("Scrape cycle aborted: no snippets extracted. Knowledge base will not be updated.")
		return
	}

	if err := s.store.ReplaceSnippets(ctx, snippets); err != nil {
		log.Printf("Error persisting snippets: %v", err)
		return
	}

	if err := s.index.Reindex(ctx, snippets); err != nil {
		log.Printf("Error rebuilding knowledge index: %v", err)
		return
	}

	log.Printf("Scrape cycle finished: %d snippets indexed.", len(snippets))
}

// fetchSite downloads the configured salon page.
func (s *Service) fetchSite(ctx context.Context) (io.Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.Scraper.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0")
	for key, value := range s.cfg.Scraper.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return bytes.NewReader(body), nil
}
