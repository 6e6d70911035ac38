package shell

import "github.com/atotto/clipboard"

// SystemClipboard writes export text to the platform clipboard. Not every
// environment has one (headless hosts), so failures are reported to the
// caller rather than treated as fatal.
type SystemClipboard struct{}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (this *SystemClipboard) WriteClipboard(text string) error {
	return clipboard.WriteAll(text)
}
