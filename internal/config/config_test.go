package config_test

import (
	"testing"

	"go-ifad-jobs/internal/config"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("IFAD_PORTAL_URL", "")
	t.Setenv("IFAD_FEED_URL", "")
	t.Setenv("IFAD_OUTPUT_PATH", "")
	t.Setenv("IFAD_RENDER_WAIT_SECONDS", "")
	t.Setenv("IFAD_MAX_JOBS", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()

	require.Contains(t, cfg.PortalURL, "job.ifad.org")
	require.Equal(t, "IFAD Jobs", cfg.ChannelTitle)
	require.Equal(t, "en-us", cfg.Language)
	require.Equal(t, "ifad_jobs.xml", cfg.OutputPath)
	require.Equal(t, 20, cfg.RenderWaitSeconds)
	require.Equal(t, 30, cfg.NavTimeoutSeconds)
	require.Equal(t, 50, cfg.MaxJobs)
	require.Contains(t, cfg.SkipKeywords, "sign in")
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("IFAD_PORTAL_URL", "https://example.org/careers")
	t.Setenv("IFAD_FEED_URL", "https://example.org/feed.xml")
	t.Setenv("IFAD_OUTPUT_PATH", "out/feed.xml")
	t.Setenv("IFAD_RENDER_WAIT_SECONDS", "5")
	t.Setenv("IFAD_MAX_JOBS", "10")

	cfg := config.Load()

	require.Equal(t, "https://example.org/careers", cfg.PortalURL)
	require.Equal(t, "https://example.org/feed.xml", cfg.FeedURL)
	require.Equal(t, "out/feed.xml", cfg.OutputPath)
	require.Equal(t, 5, cfg.RenderWaitSeconds)
	require.Equal(t, 10, cfg.MaxJobs)
}
