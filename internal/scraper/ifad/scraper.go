package ifad

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-ifad-jobs/internal/config"
	"go-ifad-jobs/internal/scraper"
	"go-ifad-jobs/utils"

	"github.com/playwright-community/playwright-go"
)

const (
	portalHost = "https://job.ifad.org"

	//PeopleSoft component path, used to resolve page-relative hrefs
	componentBase = "https://job.ifad.org/psc/IFHRPRDE/CAREERS/JOBS/c/"

	//Detail page for a single opening, keyed by JobOpeningId
	detailURLFormat = "https://job.ifad.org/psc/IFHRPRDE/CAREERS/JOBS/c/HRS_HRAM_FL.HRS_CG_SEARCH_FL.GBL?Page=HRS_APP_JBPST&Action=U&FOCUS=Applicant&SiteId=1&JobOpeningId=%s"
)

type Scraper struct {
	cfg *config.Config
}

var _ scraper.Scraper = (*Scraper)(nil)

func New(cfg *config.Config) *Scraper {
	return &Scraper{
		cfg: cfg,
	}
}

func (s *Scraper) Name() string {
	return "IFAD"
}

func (s *Scraper) Scrape(ctx context.Context, page playwright.Page) ([]scraper.JobListing, error) {
	log.Printf("📋 Loading IFAD careers portal: %s", s.cfg.PortalURL)

	//navigate
	if _, err := page.Goto(s.cfg.PortalURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(float64(s.cfg.NavTimeoutSeconds) * 1000),
	}); err != nil {
		return nil, fmt.Errorf("navigate to portal: %w", err)
	}

	//PeopleSoft keeps mutating the DOM well after network idle and exposes
	//no stable ready marker, so wait a fixed window for the grid
	log.Printf("⏳ Page loaded, waiting %ds for the job grid to render...", s.cfg.RenderWaitSeconds)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(time.Duration(s.cfg.RenderWaitSeconds) * time.Second):
	}

	//scroll through to trigger lazy loading
	utils.ScrollThrough(page)

	//capture rendered source
	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("read page source: %w", err)
	}

	jobs, err := s.Extract(html)
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 {
		log.Println("⚠️ No job listings found in the rendered page")
		if path, derr := utils.DumpHTML(s.cfg.DebugDir, "ifad", html); derr == nil {
			log.Printf("📄 Page source saved for inspection: %s", path)
		}
		return nil, nil
	}

	log.Printf("✅ Extracted %d job listings", len(jobs))
	return jobs, nil
}
