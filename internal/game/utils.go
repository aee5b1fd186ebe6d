package game

import (
	"fmt"
	"time"
)

// formatUptime renders the window uptime for the status line as MM:SS, or
// H:MM:SS once it passes an hour.
func formatUptime(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
