package browser

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
)

// Opener presents URLs through the operating system's default browser.
type Opener struct{}

func (Opener) Open(url string) error {
	if err := open.Run(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
