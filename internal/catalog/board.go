package catalog

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/config"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"

	"github.com/gocolly/colly/v2"
)

// BoardTarget describes an HTML job board: one element per listing, with
// child selectors for each field. ListURL may hold a %d page placeholder.
type BoardTarget struct {
	Name             string
	ListURL          string
	Pages            int
	ItemSelector     string
	TitleSelector    string
	CompanySelector  string
	LocationSelector string
	TypeSelector     string
	SalarySelector   string
	TagSelector      string
	LinkSelector     string
	SummarySelector  string
	RequestDelay     time.Duration
}

func BoardTargetFromConfig(cfg config.CatalogConfig) BoardTarget {
	return BoardTarget{
		Name:             cfg.BoardName,
		ListURL:          cfg.BoardURL,
		Pages:            cfg.Pages,
		ItemSelector:     cfg.ItemSelector,
		TitleSelector:    cfg.TitleSelector,
		CompanySelector:  cfg.CompanySelector,
		LocationSelector: cfg.LocationSelector,
		TypeSelector:     cfg.TypeSelector,
		SalarySelector:   cfg.SalarySelector,
		TagSelector:      cfg.TagSelector,
		LinkSelector:     cfg.LinkSelector,
		SummarySelector:  cfg.SummarySelector,
		RequestDelay:     500 * time.Millisecond,
	}
}

type BoardScraper struct {
	target BoardTarget
	logger *log.Logger
}

func NewBoardScraper(target BoardTarget, logger *log.Logger) *BoardScraper {
	if logger == nil {
		logger = log.Default()
	}
	if strings.TrimSpace(target.Name) == "" {
		target.Name = hostFromURL(target.ListURL)
	}
	if strings.TrimSpace(target.ItemSelector) == "" {
		target.ItemSelector = ".job"
	}
	if strings.TrimSpace(target.TitleSelector) == "" {
		target.TitleSelector = ".title"
	}
	if strings.TrimSpace(target.LinkSelector) == "" {
		target.LinkSelector = "a[href]"
	}
	if target.Pages <= 0 {
		target.Pages = 1
	}
	return &BoardScraper{target: target, logger: logger}
}

func (s *BoardScraper) Name() string { return s.target.Name }

// Fetch scrapes every configured page. A failing page is logged and skipped
// unless no page succeeds.
func (s *BoardScraper) Fetch(ctx context.Context) ([]job.Listing, error) {
	if s == nil || strings.TrimSpace(s.target.ListURL) == "" {
		return nil, fmt.Errorf("board scraper: empty list url")
	}

	var out []job.Listing
	var lastErr error
	okPages := 0
	for page := 1; page <= s.target.Pages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		listURL := s.target.ListURL
		if strings.Contains(listURL, "%d") {
			listURL = fmt.Sprintf(listURL, page)
		}

		items, err := s.scrapeListingPage(ctx, listURL)
		if err != nil {
			lastErr = err
			s.logger.Printf("catalog=board status=error source=%s page=%d url=%s err=%v", s.target.Name, page, listURL, err)
			continue
		}
		okPages++
		out = append(out, items...)
		s.logger.Printf("catalog=board status=ok source=%s page=%d listings=%d", s.target.Name, page, len(items))
	}

	if okPages == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

func (s *BoardScraper) scrapeListingPage(ctx context.Context, listURL string) ([]job.Listing, error) {
	t := s.target

	var c *colly.Collector
	if host := hostFromURL(listURL); host != "" {
		c = colly.NewCollector(colly.AllowedDomains(host))
	} else {
		c = colly.NewCollector()
	}
	if t.RequestDelay > 0 {
		_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, Delay: t.RequestDelay})
	}

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
			return
		}
		r.Headers.Set("User-Agent", "NextureCatalog/1.0")
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
	})

	items := make([]job.Listing, 0)
	c.OnHTML(t.ItemSelector, func(e *colly.HTMLElement) {
		title := childText(e, t.TitleSelector)
		if title == "" {
			return
		}

		link := ""
		if href := strings.TrimSpace(e.ChildAttr(t.LinkSelector, "href")); href != "" {
			link = e.Request.AbsoluteURL(href)
		}

		tags := make([]string, 0)
		if strings.TrimSpace(t.TagSelector) != "" {
			e.ForEach(t.TagSelector, func(_ int, el *colly.HTMLElement) {
				if tag := strings.TrimSpace(el.Text); tag != "" {
					tags = append(tags, tag)
				}
			})
		}

		l := job.Listing{
			Source:      t.Name,
			Title:       title,
			Company:     childText(e, t.CompanySelector),
			Location:    childText(e, t.LocationSelector),
			Type:        childText(e, t.TypeSelector),
			Salary:      childText(e, t.SalarySelector),
			Description: childText(e, t.SummarySelector),
			Tags:        tags,
			URL:         link,
		}
		l.ExternalID = stableExternalID(l)
		items = append(items, l)
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return items, nil
}

func childText(e *colly.HTMLElement, selector string) string {
	if strings.TrimSpace(selector) == "" {
		return ""
	}
	return strings.Join(strings.Fields(e.ChildText(selector)), " ")
}

// stableExternalID keys a listing by its URL, or by title and company when
// the board exposes no link.
func stableExternalID(l job.Listing) string {
	if u := strings.TrimSpace(l.URL); u != "" {
		h := sha1.Sum([]byte(u))
		return "urlsha1-" + hex.EncodeToString(h[:])
	}
	key := strings.ToLower(strings.TrimSpace(l.Title) + "|" + strings.TrimSpace(l.Company) + "|" + strings.TrimSpace(l.Location))
	h := sha1.Sum([]byte(key))
	return "keysha1-" + hex.EncodeToString(h[:])
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	host := u.Host
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
