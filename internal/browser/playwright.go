package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

//Chrome flags matching what the portal tolerates in CI containers
var launchArgs = []string{
	"--no-sandbox",
	"--disable-dev-shm-usage",
	"--disable-gpu",
}

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

//Manager owns the playwright runtime and the headless browser instance
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func New() (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args:     launchArgs,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	return &Manager{pw: pw, browser: b}, nil
}

//NewPage creates a fresh browser context and page with a desktop viewport
func (m *Manager) NewPage() (playwright.Page, error) {
	ctx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
		Viewport: &playwright.Size{
			Width:  1920,
			Height: 1080,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	return page, nil
}

//Close releases the browser and the playwright runtime. Safe to defer
//right after New: both steps tolerate partial initialization.
func (m *Manager) Close() error {
	var firstErr error

	if m.browser != nil {
		if err := m.browser.Close(); err != nil {
			firstErr = err
		}
	}

	if m.pw != nil {
		if err := m.pw.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
