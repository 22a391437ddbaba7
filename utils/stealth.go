package utils

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay pauses execution for a random time between min and max (milliseconds)
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	duration := time.Duration(rand.Intn(max-min)+min) * time.Millisecond
	time.Sleep(duration)
}

// ScrollThrough scrolls to the bottom of the page to trigger lazy loading,
// then back to the top so the grid is in its initial state before capture
func ScrollThrough(page playwright.Page) {
	page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	RandomDelay(2500, 3500)

	page.Evaluate("window.scrollTo(0, 0)")
	RandomDelay(1500, 2500)
}
