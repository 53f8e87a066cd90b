// Package enrichment получает заголовки страниц и генерирует описания закладок.
package enrichment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"notemark/internal/items/ports/services"
	"notemark/pkg/logger"
	"notemark/pkg/resilience"
)

// Ошибки получения заголовка.
var (
	ErrUnsupportedURL   = errors.New("unsupported url")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrNoTitle          = errors.New("page has no title")
)

const (
	defaultFetchTimeout = 5 * time.Second
	defaultMaxBodyBytes = 1 << 20
	defaultUserAgent    = "Mozilla/5.0 (compatible; notemark/1.0)"
	maxTrackedHosts     = 1024

	errCtxFetch = "fetch page"
	errCtxParse = "parse page"
)

// FetcherOptions настраивает TitleFetcher.
type FetcherOptions struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	Breaker      resilience.CircuitBreakerConfig
	// AllowPrivateNetworks разрешает loopback и частные адреса. Только для локальной разработки.
	AllowPrivateNetworks bool
}

// TitleFetcher читает <title> страницы, а при его отсутствии og:title.
// Каждый хост получает собственный breaker, так что недоступный сайт
// не мешает получать заголовки других.
type TitleFetcher struct {
	client *http.Client
	opts   FetcherOptions
	retry  resilience.RetryConfig

	mu       sync.Mutex
	policies map[string]*resilience.Policy
}

// NewTitleFetcher создает получатель заголовков. nil client заменяется клиентом
// с таймаутом opts.Timeout, который не ходит во внутреннюю сеть.
func NewTitleFetcher(client *http.Client, opts FetcherOptions) *TitleFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultFetchTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Breaker.ErrorThreshold <= 0 {
		opts.Breaker = resilience.DefaultCircuitBreakerConfig()
	}
	if opts.Breaker.IsFailure == nil {
		opts.Breaker.IsFailure = isHostFailure
	}
	if client == nil {
		if opts.AllowPrivateNetworks {
			client = &http.Client{Timeout: opts.Timeout}
		} else {
			client = newPublicClient(opts.Timeout)
		}
	}

	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = 2
	retry.ShouldRetry = isTransient

	return &TitleFetcher{
		client:   client,
		opts:     opts,
		retry:    retry,
		policies: make(map[string]*resilience.Policy),
	}
}

var _ services.TitleFetcher = (*TitleFetcher)(nil)

// Breaker возвращает breaker хоста, к которому относится rawURL.
func (f *TitleFetcher) Breaker(rawURL string) *resilience.CircuitBreaker {
	target, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil
	}
	return f.policyFor(hostKey(target)).Breaker()
}

func (f *TitleFetcher) policyFor(host string) *resilience.Policy {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p, ok := f.policies[host]; ok {
		return p
	}
	if len(f.policies) >= maxTrackedHosts {
		f.evictClosedLocked()
	}
	p := resilience.NewPolicy("title-fetcher:"+host, f.opts.Breaker, f.retry)
	f.policies[host] = p
	return p
}

// evictClosedLocked забывает хосты с замкнутым breaker. Вызывается под f.mu.
func (f *TitleFetcher) evictClosedLocked() {
	for host, p := range f.policies {
		if p.Breaker().State() == resilience.StateClosed {
			delete(f.policies, host)
		}
	}
}

func hostKey(u *url.URL) string {
	return strings.ToLower(u.Host)
}

// FetchTitle загружает страницу и возвращает ее заголовок.
func (f *TitleFetcher) FetchTitle(ctx context.Context, rawURL string) (string, error) {
	log := logger.Log(ctx).With(zap.String("component", "title-fetcher"), zap.String("url", rawURL))

	target, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return "", fmt.Errorf("%s: %w", errCtxFetch, ErrUnsupportedURL)
	}

	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	body, err := resilience.Do(ctx, f.policyFor(hostKey(target)), "FetchTitle", func(ctx context.Context) ([]byte, error) {
		return f.get(ctx, target.String())
	})
	if err != nil {
		log.Debug(ctx, "page fetch failed", zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxFetch, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtxParse, err)
	}

	title := ExtractTitle(doc)
	if title == "" {
		return "", ErrNoTitle
	}

	log.Debug(ctx, "page title fetched", zap.String("title", title))
	return title, nil
}

func (f *TitleFetcher) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, permanent(err)
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, ErrBlockedAddress) {
			return nil, permanent(err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, f.opts.MaxBodyBytes))
		statusErr := fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		if resp.StatusCode < 500 {
			return nil, permanent(statusErr)
		}
		return nil, statusErr
	}

	return io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBodyBytes))
}

// ExtractTitle возвращает текст первого <title> с нормализованными пробелами
// или содержимое meta og:title.
func ExtractTitle(doc *goquery.Document) string {
	if title := collapseSpaces(doc.Find("title").First().Text()); title != "" {
		return title
	}
	og, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	return collapseSpaces(og)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// permanentError помечает ошибку, повтор которой бессмыслен.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error { return &permanentError{err: err} }

// isHostFailure отделяет сбои хоста от ответов, которые он вернул осознанно:
// 4xx и отмена запроса вызывающим breaker не размыкают.
func isHostFailure(err error) bool {
	var p *permanentError
	if errors.As(err, &p) {
		return false
	}
	return !errors.Is(err, context.Canceled)
}

func isTransient(err error) bool {
	var p *permanentError
	if errors.As(err, &p) {
		return false
	}
	return !errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded) &&
		!errors.Is(err, resilience.ErrCircuitOpen)
}
