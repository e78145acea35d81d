package model

// Package model defines the value types shared across the app: the composited
// meme record, caption styling, the font catalog, and the enums exchanged with
// the platform (image sources and share destinations). Values are immutable
// once built; state transitions live in the editor package.
