package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"openroles-engine/internal/scrape/source"
)

// Session owns one headless Chromium. A session serves exactly one
// company and is closed before the next company starts, so browsers
// never pile up across a run.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewSession() (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	return &Session{pw: pw, browser: browser}, nil
}

func (s *Session) Close() {
	if s == nil {
		return
	}
	if s.browser != nil {
		s.browser.Close()
	}
	if s.pw != nil {
		s.pw.Stop()
	}
}

// Anchors renders pageURL until the requested readiness state plus a settle
// delay, then harvests every link. It returns the URL the page ended up on,
// so callers can resolve relative hrefs across redirects.
func (s *Session) Anchors(ctx context.Context, pageURL string, waitUntil *playwright.WaitUntilState, settle time.Duration) (string, []Anchor, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	page, err := s.browser.NewPage(playwright.BrowserNewPageOptions{
		UserAgent: playwright.String(source.UserAgent),
	})
	if err != nil {
		return "", nil, fmt.Errorf("new page: %w", err)
	}
	defer page.Close()

	if _, err := page.Goto(pageURL, playwright.PageGotoOptions{
		WaitUntil: waitUntil,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return "", nil, err
	}
	if settle > 0 {
		time.Sleep(settle)
	}

	locators, err := page.Locator("a[href]").All()
	if err != nil {
		return "", nil, fmt.Errorf("list anchors: %w", err)
	}

	anchors := make([]Anchor, 0, len(locators))
	for _, l := range locators {
		href, err := l.GetAttribute("href")
		if err != nil || strings.TrimSpace(href) == "" {
			continue
		}
		text, _ := l.InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(1000),
		})
		block, _ := l.Locator("xpath=..").InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(1000),
		})
		anchors = append(anchors, Anchor{Href: href, Text: text, Block: block})
	}
	return page.URL(), anchors, nil
}
