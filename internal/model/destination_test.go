package model

import "testing"

func TestDestinationKind_IsRecognized(t *testing.T) {
	tests := []struct {
		kind     DestinationKind
		expected bool
	}{
		{DestinationSaveToLibrary, true},
		{DestinationAirDrop, true},
		{DestinationPostToFacebook, true},
		{DestinationCopyToPasteboard, true},
		{DestinationMail, true},
		{DestinationPostToTwitter, true},
		{DestinationMessage, true},
		{DestinationSaveToFile, false},
		{DestinationKind("print"), false},
		{DestinationKind(""), false},
	}

	for _, test := range tests {
		result := test.kind.IsRecognized()
		if result != test.expected {
			t.Errorf("DestinationKind(%q).IsRecognized() = %v, expected %v", test.kind, result, test.expected)
		}
	}
}

func TestDestinationKind_IsAbsent(t *testing.T) {
	if !DestinationKind("").IsAbsent() {
		t.Error("Empty destination should be absent")
	}
	if DestinationMail.IsAbsent() {
		t.Error("Mail destination should not be absent")
	}
}

func TestSource_String(t *testing.T) {
	tests := []struct {
		source   Source
		expected string
	}{
		{SourceCamera, "Camera"},
		{SourceLibrary, "Photo Library"},
		{Source(7), "Unknown"},
	}

	for _, test := range tests {
		result := test.source.String()
		if result != test.expected {
			t.Errorf("Source(%d).String() = %s, expected %s", test.source, result, test.expected)
		}
	}
}
