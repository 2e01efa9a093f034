// Package goquery analyzes static HTML pages: main-content text, image and
// embedded-media descriptors, and page metadata.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mwalczyk-dev/postrisk"
)

// mainSelectors is the ordered list of selectors tried when locating the
// page's main content region. The first match wins; the document body is
// the fallback.
var mainSelectors = []string{
	"main", "article", ".content", "#content", ".main-content",
	".post-content", ".entry-content", ".article-content", ".post-body",
}

// boilerplateSelector matches elements removed before text extraction.
const boilerplateSelector = "script, style, nav, footer, header, aside"

// Limits on extracted descriptors.
const (
	maxImages = 10
	maxVideos = 5
	maxEmbeds = 3
)

// Page is a parsed HTML page bound to its base URL.
type Page struct {
	raw  string
	doc  *goquery.Document
	base *url.URL
}

// ParsePage parses raw HTML. The baseURL is used to resolve relative image
// sources.
func ParsePage(rawHTML string, baseURL string) (*Page, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, postrisk.Errorf(postrisk.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, postrisk.Errorf(postrisk.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Page{raw: rawHTML, doc: doc, base: base}, nil
}

// Text returns the cleaned main-content text, truncated to
// postrisk.MaxContentLength with an ellipsis marker when truncation
// occurred. Returns ENOCONTENT when the page yields no readable text.
func (p *Page) Text() (string, error) {
	// Boilerplate removal mutates the tree, so text extraction works on its
	// own parse and leaves p.doc intact for descriptor extraction.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.raw))
	if err != nil {
		return "", postrisk.Errorf(postrisk.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(boilerplateSelector).Remove()

	content := doc.Selection
	for _, selector := range mainSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == doc.Selection {
		if body := doc.Find("body"); body.Length() > 0 {
			content = body.First()
		}
	}

	text := postrisk.CollapseText(content.Text())
	if text == "" {
		return "", postrisk.Errorf(postrisk.ENOCONTENT, "no readable text found in HTML")
	}

	return postrisk.TruncateText(text, postrisk.MaxContentLength), nil
}

// Images returns descriptors for up to 10 images, resolving
// protocol-relative and root-relative sources against the base URL.
func (p *Page) Images() []postrisk.ImageInfo {
	var images []postrisk.ImageInfo

	p.doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src := sel.AttrOr("src", "")
		if src == "" {
			return true
		}

		alt := sel.AttrOr("alt", "")
		title := sel.AttrOr("title", "")
		images = append(images, postrisk.ImageInfo{
			Src:         p.resolveSrc(src),
			Alt:         alt,
			Title:       title,
			Description: postrisk.DescribeImage(alt, title),
		})
		return len(images) < maxImages
	})

	return images
}

// resolveSrc resolves protocol-relative (//cdn...) and root-relative (/a.png)
// sources against the page's base URL. Other values pass through unchanged.
func (p *Page) resolveSrc(src string) string {
	switch {
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "/"):
		if ref, err := url.Parse(src); err == nil {
			return p.base.ResolveReference(ref).String()
		}
		return src
	default:
		return src
	}
}

// VisualElements returns descriptors for embedded media: up to 5
// video/iframe elements and up to 3 embed/object elements.
func (p *Page) VisualElements() []postrisk.VisualElement {
	var elements []postrisk.VisualElement

	count := 0
	p.doc.Find("video, iframe").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := sel.AttrOr("title", "")
		desc := title
		if desc == "" {
			desc = "No title"
		}
		elements = append(elements, postrisk.VisualElement{
			Type:        "video",
			Src:         sel.AttrOr("src", ""),
			Title:       title,
			Description: "Video element: " + desc,
		})
		count++
		return count < maxVideos
	})

	count = 0
	p.doc.Find("embed, object").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		kind := sel.AttrOr("type", "")
		if kind == "" {
			kind = "Unknown type"
		}
		elements = append(elements, postrisk.VisualElement{
			Type:        "embed",
			Src:         sel.AttrOr("src", ""),
			Description: "Embedded content: " + kind,
		})
		count++
		return count < maxEmbeds
	})

	return elements
}

// Metadata returns the fixed set of page metadata fields. Absent tags map
// to empty strings.
func (p *Page) Metadata() postrisk.PageMetadata {
	meta := postrisk.PageMetadata{}

	if title := p.doc.Find("title").First(); title.Length() > 0 {
		meta.Title = strings.TrimSpace(title.Text())
	}

	meta.Description = p.metaContent(`meta[name="description"]`)
	meta.Author = p.metaContent(`meta[name="author"]`)
	meta.Keywords = p.metaContent(`meta[name="keywords"]`)
	meta.OGTitle = p.metaContent(`meta[property="og:title"]`)
	meta.OGDescription = p.metaContent(`meta[property="og:description"]`)
	meta.OGImage = p.metaContent(`meta[property="og:image"]`)
	meta.TwitterTitle = p.metaContent(`meta[name="twitter:title"]`)
	meta.TwitterDescription = p.metaContent(`meta[name="twitter:description"]`)
	meta.TwitterImage = p.metaContent(`meta[name="twitter:image"]`)

	return meta
}

func (p *Page) metaContent(selector string) string {
	return p.doc.Find(selector).First().AttrOr("content", "")
}
