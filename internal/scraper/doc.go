// Package scraper provides HTTP fetching and HTML parsing for DiscGolfMetrix.
//
// The scraper fetches the public info page of a Metrix series and extracts the
// scheduled rounds from the competition selector, then fetches an individual
// round's page for course, layout and description details. Extraction is tied
// to the site's current markup; missing fields degrade to sentinel values so
// structural drift never produces a blank announcement, except for the listing
// date which causes the entry to be skipped.
package scraper
