package platform

// Package platform contains OS integration glue: picture library locations,
// directory helpers, the external camera capture tool, and media scanner and
// file manager hooks.
