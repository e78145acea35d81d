package model

import (
	"image"
	"time"
)

// Meme is the composited record built when a meme is saved. Either image may
// be nil: a meme can be shared before any photo was picked.
type Meme struct {
	TopText       string
	BottomText    string
	FontName      string
	OriginalImage image.Image
	MemeImage     image.Image
}

// HasOriginal returns true if the record carries the source photo
func (m Meme) HasOriginal() bool {
	return m.OriginalImage != nil
}

// MemeInfo is the metadata persisted next to a saved meme
type MemeInfo struct {
	ID         string    `json:"id"`
	TopText    string    `json:"top_text"`
	BottomText string    `json:"bottom_text"`
	FontName   string    `json:"font_name,omitempty"`
	ImagePath  string    `json:"image_path,omitempty"`
	SourcePath string    `json:"source_path,omitempty"` // empty when no photo was picked
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetDisplayTitle returns the captions joined for list display, or the ID
func (mi *MemeInfo) GetDisplayTitle() string {
	switch {
	case mi.TopText != "" && mi.BottomText != "":
		return mi.TopText + " / " + mi.BottomText
	case mi.TopText != "":
		return mi.TopText
	case mi.BottomText != "":
		return mi.BottomText
	}
	return mi.ID
}
