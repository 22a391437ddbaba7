// Load envs from .env
// Load YAML config
// Override with env vars
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Scrape target
	PortalURL string `yaml:"portal_url"`
	//Channel metadata
	FeedURL            string `yaml:"feed_url"`
	ChannelTitle       string `yaml:"channel_title"`
	ChannelDescription string `yaml:"channel_description"`
	Language           string `yaml:"language"`
	//Paths
	OutputPath string `yaml:"output_path"`
	DebugDir   string `yaml:"debug_dir"`
	//Scrape behavior
	RenderWaitSeconds int      `yaml:"render_wait_seconds"`
	NavTimeoutSeconds int      `yaml:"nav_timeout_seconds"`
	MaxJobs           int      `yaml:"max_jobs"`
	SkipKeywords      []string `yaml:"skip_keywords"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if url := os.Getenv("IFAD_PORTAL_URL"); url != "" {
		cfg.PortalURL = url
	}

	if url := os.Getenv("IFAD_FEED_URL"); url != "" {
		cfg.FeedURL = url
	}

	if path := os.Getenv("IFAD_OUTPUT_PATH"); path != "" {
		cfg.OutputPath = path
	}

	if wait := os.Getenv("IFAD_RENDER_WAIT_SECONDS"); wait != "" {
		secs, err := strconv.Atoi(wait)
		if err != nil {
			log.Fatalf("Invalid IFAD_RENDER_WAIT_SECONDS: %v", err)
		}
		cfg.RenderWaitSeconds = secs
	}

	if max := os.Getenv("IFAD_MAX_JOBS"); max != "" {
		n, err := strconv.Atoi(max)
		if err != nil {
			log.Fatalf("Invalid IFAD_MAX_JOBS: %v", err)
		}
		cfg.MaxJobs = n
	}

	//Set default values if not set
	if cfg.PortalURL == "" {
		cfg.PortalURL = "https://job.ifad.org/psc/IFHRPRDE/CAREERS/JOBS/c/HRS_HRAM_FL.HRS_CG_SEARCH_FL.GBL?Page=HRS_APP_SCHJOB_FL&Action=U"
	}

	if cfg.FeedURL == "" {
		cfg.FeedURL = "https://cinfoposte.github.io/ifad-jobs/ifad_jobs.xml"
	}

	if cfg.ChannelTitle == "" {
		cfg.ChannelTitle = "IFAD Jobs"
	}

	if cfg.ChannelDescription == "" {
		cfg.ChannelDescription = "Job listings from International Fund for Agricultural Development (IFAD)"
	}

	if cfg.Language == "" {
		cfg.Language = "en-us"
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = "ifad_jobs.xml"
	}

	if cfg.RenderWaitSeconds == 0 {
		//PeopleSoft can be slow to render
		cfg.RenderWaitSeconds = 20
	}

	if cfg.NavTimeoutSeconds == 0 {
		cfg.NavTimeoutSeconds = 30
	}

	if cfg.MaxJobs == 0 {
		cfg.MaxJobs = 50
	}

	if len(cfg.SkipKeywords) == 0 {
		cfg.SkipKeywords = []string{"search", "filter", "login", "sign in", "home", "about", "all jobs"}
	}

	return cfg
}
