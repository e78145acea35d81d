package editor

import (
	"image"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/mememe-app/mememe/internal/fonts"
	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/render"
)

type fakeField struct {
	text   string
	style  model.CaptionStyle
	styled int
}

func (f *fakeField) CaptionText() string                 { return f.text }
func (f *fakeField) SetText(text string)                 { f.text = text }
func (f *fakeField) ApplyStyle(style model.CaptionStyle) { f.style = style; f.styled++ }

type fakeControl struct {
	disabled bool
}

func (c *fakeControl) Enable()        { c.disabled = false }
func (c *fakeControl) Disable()       { c.disabled = true }
func (c *fakeControl) Disabled() bool { return c.disabled }

type fakeBar struct {
	visible bool
}

func (b *fakeBar) Show()         { b.visible = true }
func (b *fakeBar) Hide()         { b.visible = false }
func (b *fakeBar) Visible() bool { return b.visible }

type fakeDialogs struct {
	presented []Dialog
	confirms  []Dialog
	answer    bool
}

func (d *fakeDialogs) Present(dlg Dialog) { d.presented = append(d.presented, dlg) }
func (d *fakeDialogs) Confirm(dlg Dialog, onChoice func(bool)) {
	d.confirms = append(d.confirms, dlg)
	onChoice(d.answer)
}

func (d *fakeDialogs) last() Dialog {
	if len(d.presented) == 0 {
		return Dialog{}
	}
	return d.presented[len(d.presented)-1]
}

type fakeCaps map[model.Source]bool

func (c fakeCaps) SourceAvailable(source model.Source) bool { return c[source] }

type fakePicker struct {
	requests []PickRequest
	pending  func(PickResult)
}

func (p *fakePicker) Pick(req PickRequest, done func(PickResult)) {
	p.requests = append(p.requests, req)
	p.pending = done
}

type fakeSurface struct {
	requests []ShareRequest
	pending  func(ShareResult)
}

func (s *fakeSurface) Present(req ShareRequest, done func(ShareResult)) {
	s.requests = append(s.requests, req)
	s.pending = done
}

type fakeSaver struct {
	saved []model.Meme
	err   error
}

func (s *fakeSaver) Save(meme model.Meme) (*model.MemeInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.saved = append(s.saved, meme)
	return &model.MemeInfo{ID: "meme-test", TopText: meme.TopText, BottomText: meme.BottomText}, nil
}

type fakeCanvas struct {
	img image.Image
}

func (c *fakeCanvas) Image() image.Image       { return c.img }
func (c *fakeCanvas) SetImage(img image.Image) { c.img = img }

type fakeKeyboard struct {
	dismissed int
}

func (k *fakeKeyboard) Dismiss() { k.dismissed++ }

// testRegistry resolves the given names, all backed by Go Regular
func testRegistry(t *testing.T, names ...string) *fonts.Registry {
	t.Helper()
	r := fonts.NewRegistry()
	for _, name := range names {
		if err := r.Register(name, goregular.TTF); err != nil {
			t.Fatalf("Failed to register %s: %v", name, err)
		}
	}
	return r
}

// harness is a fully wired screen over fakes
type harness struct {
	screen   *Screen
	top      *fakeField
	bottom   *fakeField
	canvas   *fakeCanvas
	keyboard *fakeKeyboard
	notifier *KeyboardNotifier
	dialogs  *fakeDialogs
	picker   *fakePicker
	surface  *fakeSurface
	saver    *fakeSaver
	camera   *fakeControl
	library  *fakeControl
	font     *fakeControl
	done     *fakeControl
	topBar   *fakeBar
	botBar   *fakeBar
}

func newHarness(t *testing.T, catalog model.FontCatalog, caps fakeCaps, resolvable []string, opts ...func(*Config)) *harness {
	t.Helper()
	h := &harness{
		top:      &fakeField{},
		bottom:   &fakeField{},
		canvas:   &fakeCanvas{},
		keyboard: &fakeKeyboard{},
		notifier: NewKeyboardNotifier(),
		dialogs:  &fakeDialogs{},
		picker:   &fakePicker{},
		surface:  &fakeSurface{},
		saver:    &fakeSaver{},
		camera:   &fakeControl{},
		library:  &fakeControl{},
		font:     &fakeControl{},
		done:     &fakeControl{},
		topBar:   &fakeBar{visible: true},
		botBar:   &fakeBar{visible: true},
	}
	cfg := Config{
		Top:          h.top,
		Bottom:       h.bottom,
		Canvas:       h.canvas,
		Keyboard:     h.keyboard,
		Notifier:     h.notifier,
		Dialogs:      h.dialogs,
		Capabilities: caps,
		Picker:       h.picker,
		Surface:      h.surface,
		Saver:        h.saver,
		Fonts:        testRegistry(t, resolvable...),
		Catalog:      catalog,
		Controls: Controls{
			Camera:  h.camera,
			Library: h.library,
			Font:    h.font,
			Done:    h.done,
		},
		Chrome:       []render.Chrome{h.topBar, h.botBar},
		CanvasSize:   func() image.Point { return image.Pt(320, 240) },
		AllowEditing: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	h.screen = NewScreen(cfg)
	return h
}
