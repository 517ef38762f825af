package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tdanford/bard"
)

// ExtractFullTextURL finds the "Entire play" link on a play's catalog page
// and resolves it against baseURL. Returns ENOTFOUND if the page has no
// such link.
func ExtractFullTextURL(html string, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", bard.Errorf(bard.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", bard.Errorf(bard.EINVALID, "failed to parse HTML: %v", err)
	}

	var fullText string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(sel.Text(), "Entire") {
			return true
		}
		href, exists := sel.Attr("href")
		if !exists {
			return true
		}
		fullText = resolveURL(base, href)
		return fullText == ""
	})

	if fullText == "" {
		return "", bard.Errorf(bard.ENOTFOUND, "no entire-play link on %s", baseURL)
	}
	return fullText, nil
}

// ExtractText returns the visible text of a page, with markup removed.
// Used to export a play's raw reading text.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", bard.Errorf(bard.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc.Text(), nil
}
