package model

// DestinationKind identifies the endpoint a user picked inside the share surface.
// The zero value means no destination was reported.
type DestinationKind string

const (
	DestinationSaveToLibrary    DestinationKind = "save-to-library"
	DestinationAirDrop          DestinationKind = "airdrop"
	DestinationPostToFacebook   DestinationKind = "post-to-facebook"
	DestinationCopyToPasteboard DestinationKind = "copy-to-pasteboard"
	DestinationMail             DestinationKind = "mail"
	DestinationPostToTwitter    DestinationKind = "post-to-twitter"
	DestinationMessage          DestinationKind = "message"

	// DestinationSaveToFile is offered by the desktop share surface. It is not
	// part of the recognized set.
	DestinationSaveToFile DestinationKind = "save-to-file"
)

// String returns the string representation of DestinationKind
func (d DestinationKind) String() string {
	return string(d)
}

// IsAbsent returns true if no destination was reported
func (d DestinationKind) IsAbsent() bool {
	return d == ""
}

// IsRecognized returns true if the destination belongs to the set that gets a
// saved confirmation after a successful share.
func (d DestinationKind) IsRecognized() bool {
	switch d {
	case DestinationSaveToLibrary,
		DestinationAirDrop,
		DestinationPostToFacebook,
		DestinationCopyToPasteboard,
		DestinationMail,
		DestinationPostToTwitter,
		DestinationMessage:
		return true
	}
	return false
}

// Source selects where a new canvas image comes from
type Source int

const (
	SourceCamera Source = iota
	SourceLibrary
)

// String returns the display name of the source, used in dialogs
func (s Source) String() string {
	switch s {
	case SourceCamera:
		return "Camera"
	case SourceLibrary:
		return "Photo Library"
	default:
		return "Unknown"
	}
}
