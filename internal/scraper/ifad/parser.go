package ifad

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"go-ifad-jobs/internal/scraper"
	"go-ifad-jobs/utils"

	"github.com/PuerkitoBio/goquery"
)

//Extract pulls job listings out of the rendered page source. The portal is a
//PeopleSoft app, so the primary strategy reads the search-result grid by its
//generated span ids; when the grid ids are absent it falls back to scanning
//job title links.
func (s *Scraper) Extract(pageHTML string) ([]scraper.JobListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parse page source: %w", err)
	}

	jobs := s.extractGridRows(doc)
	if len(jobs) > 0 {
		log.Printf("    📦 Grid strategy matched %d rows", len(jobs))
		return jobs, nil
	}

	jobs = s.extractTitleLinks(doc)
	if len(jobs) > 0 {
		log.Printf("    📦 Title-link fallback matched %d rows", len(jobs))
	}
	return jobs, nil
}

//extractGridRows reads the PeopleSoft result grid. Each row exposes a job
//opening id span; the row index keys the matching title/location/department
//spans. Title spans are not links, the detail URL is built from the id.
func (s *Scraper) extractGridRows(doc *goquery.Document) []scraper.JobListing {
	var jobs []scraper.JobListing

	doc.Find(`span[id*="HRS_APP_JBSCH_I_HRS_JOB_OPENING_ID$"]`).Each(func(i int, sel *goquery.Selection) {
		if len(jobs) >= s.cfg.MaxJobs {
			return
		}

		openingID := strings.TrimSpace(sel.Text())
		if openingID == "" {
			return
		}

		title := rowSpan(doc, "SCH_JOB_TITLE", i)
		if title == "" {
			return
		}

		location := rowSpan(doc, "LOCATION", i)
		if location == "" {
			location = "IFAD"
		}

		jobs = append(jobs, scraper.JobListing{
			Title:      title,
			Link:       fmt.Sprintf(detailURLFormat, openingID),
			Location:   location,
			Department: rowSpan(doc, "HRS_APP_JBSCH_I_HRS_DEPT_DESCR", i),
		})
	})

	return jobs
}

//extractTitleLinks is the fallback for markup where titles are anchors
func (s *Scraper) extractTitleLinks(doc *goquery.Document) []scraper.JobListing {
	var jobs []scraper.JobListing

	doc.Find(`a[id*="SCH_JOB_TITLE$"]`).Each(func(_ int, sel *goquery.Selection) {
		if len(jobs) >= s.cfg.MaxJobs {
			return
		}

		title := strings.TrimSpace(sel.Text())
		//skip short or generic navigation text
		if utf8.RuneCountInString(title) < 5 || s.isNavigationChrome(title) {
			return
		}

		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "javascript:") {
			return
		}

		//location and department live in sibling spans of the same row
		row := sel.Closest("tr")
		location := strings.TrimSpace(row.Find(`span[id*="LOCATION"]`).First().Text())
		if location == "" {
			location = "IFAD"
		}

		jobs = append(jobs, scraper.JobListing{
			Title:      title,
			Link:       resolveLink(href),
			Location:   location,
			Department: strings.TrimSpace(row.Find(`span[id*="DEPT"]`).First().Text()),
		})
	})

	return jobs
}

//rowSpan finds the grid span for a given field prefix and row index,
//e.g. SCH_JOB_TITLE$3
func rowSpan(doc *goquery.Document, prefix string, row int) string {
	selector := fmt.Sprintf("span[id='%s$%d']", prefix, row)
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

func resolveLink(href string) string {
	switch {
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href
	case strings.HasPrefix(href, "/"):
		return portalHost + href
	default:
		return componentBase + href
	}
}

func (s *Scraper) isNavigationChrome(title string) bool {
	normalized := utils.NormalizeText(title)
	for _, keyword := range s.cfg.SkipKeywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(normalized, utils.NormalizeText(keyword)) {
			return true
		}
	}
	return false
}
