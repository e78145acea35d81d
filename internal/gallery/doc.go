package gallery

// Package gallery persists composited memes in the app's own storage: the
// rendered PNG, the original photo and a JSON metadata file per record.
