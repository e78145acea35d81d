package render

// Package render turns the meme canvas into pixels: it flattens a Scene
// (background, photo, two stroked captions) into an RGBA bitmap and hides the
// screen chrome for the duration of a capture.
