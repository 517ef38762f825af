// Package goquery provides catalog and link extraction from archive pages
// using CSS selectors.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tdanford/bard"
)

// ExtractPlays extracts the play catalog from the archive's index page.
// The index lays the catalog out as the second <table> on the page; each
// anchor in it is one play. Anchors whose href mentions "poetry" are the
// sonnets and longer poems, which are not plays and are skipped. URLs are
// resolved against baseURL.
func ExtractPlays(html string, baseURL string) ([]*bard.Play, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, bard.Errorf(bard.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bard.Errorf(bard.EINVALID, "failed to parse HTML: %v", err)
	}

	tables := doc.Find("table")
	if tables.Length() < 2 {
		return nil, bard.Errorf(bard.EINVALID, "archive index has no catalog table")
	}
	catalog := tables.Eq(1)

	var plays []*bard.Play
	catalog.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if strings.Contains(strings.ToLower(href), "poetry") {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		plays = append(plays, bard.NewPlay(strings.TrimSpace(sel.Text()), resolved))
	})

	return plays, nil
}

// resolveURL resolves a relative href against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
