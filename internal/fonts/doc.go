package fonts

// Package fonts resolves catalog font names to parsed TrueType faces. The Go
// font family is always available; extra .ttf files can be loaded from a
// directory and are registered under their file name.
