package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-ifad-jobs/internal/browser"
	"go-ifad-jobs/internal/config"
	"go-ifad-jobs/internal/feed"
	"go-ifad-jobs/internal/scraper/ifad"
)

func main() {
	log.Println("🚀 Starting IFAD job feed generator...")

	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	log.Println("🏁 Execution finished.")
}

//run holds the pipeline so deferred browser teardown fires on every exit
//path; log.Fatal in main would skip it
func run() error {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Output: %s", cfg.OutputPath)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	//init playwright manager
	mgr, err := browser.New()
	if err != nil {
		return fmt.Errorf("init browser: %w", err)
	}
	//close playwright manager when application stops
	defer mgr.Close()
	log.Println("✅ Browser initialized successfully!")

	page, err := mgr.NewPage()
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}

	//scrape the portal
	s := ifad.New(cfg)
	log.Printf("▶️ Starting scraper: %s", s.Name())
	jobs, err := s.Scrape(ctx, page)
	if err != nil {
		return fmt.Errorf("scrape %s: %w", s.Name(), err)
	}

	if len(jobs) == 0 {
		log.Println("⚠️ No jobs extracted; writing an empty feed")
	}

	//serialize and write the feed
	builder := feed.NewBuilder(cfg)
	if err := builder.WriteFile(jobs, cfg.OutputPath); err != nil {
		return fmt.Errorf("write feed: %w", err)
	}

	log.Printf("📁 RSS feed written to %s (%d items)", cfg.OutputPath, len(jobs))
	return nil
}
