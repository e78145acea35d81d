package model

import (
	"image/color"
	"testing"
)

func TestNewCaptionStyle_Defaults(t *testing.T) {
	style := NewCaptionStyle("Impact")

	if style.FontName != "Impact" {
		t.Errorf("Expected font Impact, got %s", style.FontName)
	}
	if style.FontSize != 40 {
		t.Errorf("Expected font size 40, got %v", style.FontSize)
	}
	if style.StrokeWidth != -3 {
		t.Errorf("Expected stroke width -3, got %v", style.StrokeWidth)
	}
	if style.StrokeColor != color.Black {
		t.Errorf("Expected black stroke, got %v", style.StrokeColor)
	}
	if style.FillColor != color.White {
		t.Errorf("Expected white fill, got %v", style.FillColor)
	}
}

func TestCaptionStyle_WithFontLeavesReceiver(t *testing.T) {
	base := NewCaptionStyle("Impact")
	base.FontSize = 12

	next := base.WithFont("Comic")

	if base.FontName != "Impact" || base.FontSize != 12 {
		t.Errorf("Receiver was modified: %+v", base)
	}
	if next.FontName != "Comic" || next.FontSize != DefaultFontSize {
		t.Errorf("Expected Comic at %v, got %s at %v", DefaultFontSize, next.FontName, next.FontSize)
	}
	if next.StrokeWidth != base.StrokeWidth || next.StrokeColor != base.StrokeColor || next.FillColor != base.FillColor {
		t.Error("WithFont should keep stroke and fill attributes")
	}
}

func TestCaptionStyle_OutlineRadius(t *testing.T) {
	tests := []struct {
		width    float64
		size     float64
		expected float64
		fills    bool
	}{
		{-3, 40, 1.2, true},
		{3, 40, 1.2, false},
		{-1, 10, 1, true},
		{0, 40, 0, true},
		{-10, 50, 5, true},
	}

	for _, test := range tests {
		style := CaptionStyle{StrokeWidth: test.width, FontSize: test.size}
		if got := style.OutlineRadius(); got < test.expected-1e-9 || got > test.expected+1e-9 {
			t.Errorf("OutlineRadius() width=%v size=%v = %v, expected %v", test.width, test.size, got, test.expected)
		}
		if style.Fills() != test.fills {
			t.Errorf("Fills() width=%v = %v, expected %v", test.width, style.Fills(), test.fills)
		}
	}
}
