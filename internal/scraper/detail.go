package scraper

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tfkdiscgolf/metrix-announcer/internal/event"
	"golang.org/x/net/html"
)

const coursePathPrefix = "/course/"

// FetchDetail fetches a round's own page and extracts course, layout
// and description details.
func (s *Scraper) FetchDetail(evt *event.Event) (*event.Detail, error) {
	body, err := s.get(evt.URL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return parseDetail(body, evt)
}

// parseDetail extracts detail fields from a round page. Missing fields
// fall back to their sentinels; nothing here is a hard failure beyond
// unreadable HTML.
func parseDetail(r io.Reader, evt *event.Event) (*event.Detail, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	d := &event.Detail{
		Title:      event.UnknownTitle,
		StartTime:  evt.StartTime,
		URL:        evt.URL,
		CourseName: event.UnknownCourse,
		LayoutName: event.UnknownCourse,
		CourseFull: event.UnknownCourse,
	}

	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		if title := strings.TrimSpace(h1.Text()); title != "" {
			d.Title = title
		}
	}

	if a := doc.Find(`a[href^="` + coursePathPrefix + `"]`).First(); a.Length() > 0 {
		href, _ := a.Attr("href")
		parseCourseAnchor(d, href, nodeText(a, " "))
	}

	if tab := doc.Find("div.info-tab-content").First(); tab.Length() > 0 {
		d.Description = nodeText(tab, "\n")
	}

	return d, nil
}

// parseCourseAnchor fills course fields from the first /course/ link.
// The visible text is "Course → Layout" when a layout is selected; the
// site sometimes renders the arrow as literal "->" markup, which is
// stripped first.
func parseCourseAnchor(d *event.Detail, href, text string) {
	if seg := href[strings.LastIndex(href, coursePathPrefix)+len(coursePathPrefix):]; seg != "" {
		if id, err := strconv.Atoi(seg); err == nil && id > 0 {
			d.CourseID = id
		}
	}

	text = strings.ReplaceAll(text, "->", "")

	if strings.Contains(text, "→") {
		parts := make([]string, 0, 2)
		for _, p := range strings.Split(text, "→") {
			if p = strings.Trim(p, " -"); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) >= 2 {
			d.CourseName = parts[0]
			d.LayoutName = parts[1]
			d.CourseFull = parts[0] + " – " + parts[1]
			return
		}
	}

	if trimmed := strings.TrimSpace(text); trimmed != "" {
		d.CourseName = trimmed
		d.CourseFull = trimmed
	}
}

// nodeText returns the text nodes under sel, each whitespace-trimmed,
// joined by sep. Empty nodes are dropped.
func nodeText(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, sep)
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
