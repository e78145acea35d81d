package model

import "testing"

func TestNewFontCatalog_DropsEmptyAndDuplicates(t *testing.T) {
	catalog := NewFontCatalog("Impact", "", "Comic", "Impact")

	if catalog.Len() != 2 {
		t.Fatalf("Expected 2 fonts, got %d", catalog.Len())
	}
	if catalog.Name(0) != "Impact" || catalog.Name(1) != "Comic" {
		t.Errorf("Unexpected order: %v", catalog.Names())
	}
}

func TestFontCatalog_Clamp(t *testing.T) {
	catalog := NewFontCatalog("Impact", "Comic", "Futura")

	tests := []struct {
		index    int
		expected int
	}{
		{-5, 0},
		{0, 0},
		{2, 2},
		{3, 2},
		{100, 2},
	}

	for _, test := range tests {
		if got := catalog.Clamp(test.index); got != test.expected {
			t.Errorf("Clamp(%d) = %d, expected %d", test.index, got, test.expected)
		}
	}

	empty := NewFontCatalog()
	if empty.Clamp(4) != 0 {
		t.Error("Empty catalog should clamp to 0")
	}
}

func TestFontCatalog_NameAndIndex(t *testing.T) {
	catalog := NewFontCatalog("Impact", "Comic")

	if catalog.Name(5) != "" {
		t.Error("Out of range name should be empty")
	}
	if catalog.Index("Comic") != 1 {
		t.Errorf("Expected Comic at 1, got %d", catalog.Index("Comic"))
	}
	if catalog.Index("Futura") != -1 {
		t.Error("Missing font should have index -1")
	}

	names := catalog.Names()
	names[0] = "changed"
	if catalog.Name(0) != "Impact" {
		t.Error("Names() should return a copy")
	}
}

func TestMemeInfo_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		info     MemeInfo
		expected string
	}{
		{MemeInfo{ID: "a", TopText: "TOP", BottomText: "BOTTOM"}, "TOP / BOTTOM"},
		{MemeInfo{ID: "a", TopText: "TOP"}, "TOP"},
		{MemeInfo{ID: "a", BottomText: "BOTTOM"}, "BOTTOM"},
		{MemeInfo{ID: "a"}, "a"},
	}

	for _, test := range tests {
		if got := test.info.GetDisplayTitle(); got != test.expected {
			t.Errorf("GetDisplayTitle() = %q, expected %q", got, test.expected)
		}
	}
}
