// Define an interface for all scrapers
// Ensure consistency

package scraper

import (
	"context"
	"strings"

	"github.com/playwright-community/playwright-go"
)

//JobListing is one vacancy extracted from the careers portal.
//Location may be empty on the page; Department is optional.
type JobListing struct {
	Title      string
	Link       string
	Location   string
	Department string
}

//Description builds the feed item body: "Title | Location: X | Department: Y".
//The generic "IFAD" location placeholder is not worth repeating in the body.
func (j JobListing) Description() string {
	parts := []string{j.Title}
	if j.Location != "" && j.Location != "IFAD" {
		parts = append(parts, "Location: "+j.Location)
	}
	if j.Department != "" {
		parts = append(parts, "Department: "+j.Department)
	}
	return strings.Join(parts, " | ")
}

//Scraper defines the interface that all portal scrapers must implement
type Scraper interface {
	//Scrape job listings from the rendered portal page
	Scrape(ctx context.Context, page playwright.Page) ([]JobListing, error)

	//Name is the portal name (IFAD, ...)
	Name() string
}
