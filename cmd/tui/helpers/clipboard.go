package helpers

import (
	"github.com/atotto/clipboard"
)

type Clipboard struct{}

func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (h *Clipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

func (h *Clipboard) Paste() (string, error) {
	return clipboard.ReadAll()
}
