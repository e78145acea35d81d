package editor

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/mememe-app/mememe/internal/fonts"
	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/render"
)

// Controls are the toolbar buttons the screen switches on and off
type Controls struct {
	Camera  Control
	Library Control
	Font    Control
	Done    Control
}

// Config wires a Screen to its platform pieces
type Config struct {
	Top      CaptionField
	Bottom   CaptionField
	Canvas   Canvas
	Keyboard Keyboard
	Notifier *KeyboardNotifier

	Dialogs      Dialogs
	Capabilities Capabilities
	Picker       Picker
	Surface      ShareSurface
	Saver        Saver

	Fonts    fonts.Resolver
	Catalog  model.FontCatalog
	Controls Controls
	Messages Messages

	// Chrome is hidden while the canvas is captured
	Chrome []render.Chrome
	// CanvasSize reports the canvas size in pixels at capture time
	CanvasSize func() image.Point
	Background color.Color
	// Flatten overrides the default scene flattening
	Flatten render.FlattenFunc

	AllowEditing bool
}

// Screen is the meme editor controller: it ties the caption editor, font
// selector, acquirer, compositor and share sink together.
type Screen struct {
	cfg        Config
	captions   *CaptionEditor
	fonts      *FontSelector
	acquirer   *Acquirer
	compositor *render.Compositor
	sink       *ShareSink
	messages   Messages

	// OnChanged is called when the canvas image or caption style changed
	OnChanged func()
	// OnFontConfirmed is called with the font name after a successful font change
	OnFontConfirmed func(name string)
}

// NewScreen builds the controller from cfg
func NewScreen(cfg Config) *Screen {
	messages := cfg.Messages
	if messages.NotFoundFormat == "" {
		messages = DefaultMessages()
	}

	s := &Screen{cfg: cfg, messages: messages}

	s.captions = NewCaptionEditor(cfg.Top, cfg.Bottom, cfg.Keyboard, cfg.Fonts, model.NewCaptionStyle(cfg.Catalog.Name(0)))

	var triggers []Control
	for _, c := range []Control{cfg.Controls.Camera, cfg.Controls.Library, cfg.Controls.Font} {
		if c != nil {
			triggers = append(triggers, c)
		}
	}
	s.fonts = NewFontSelector(cfg.Catalog, cfg.Controls.Done, triggers...)

	s.acquirer = NewAcquirer(cfg.Capabilities, cfg.Picker, cfg.Canvas, cfg.Dialogs, messages, cfg.AllowEditing)
	s.acquirer.OnImageChanged = s.changed

	flatten := cfg.Flatten
	if flatten == nil {
		flatten = s.flatten
	}
	s.compositor = render.NewCompositor(flatten, cfg.Chrome...)

	s.sink = NewShareSink(cfg.Surface, cfg.Dialogs, cfg.Saver, messages, s.record)
	return s
}

// Captions returns the caption editor
func (s *Screen) Captions() *CaptionEditor { return s.captions }

// Fonts returns the font selector
func (s *Screen) Fonts() *FontSelector { return s.fonts }

// Acquirer returns the image acquirer
func (s *Screen) Acquirer() *Acquirer { return s.acquirer }

// Sink returns the share sink
func (s *Screen) Sink() *ShareSink { return s.sink }

// SetMessages switches every dialog the screen produces to messages
func (s *Screen) SetMessages(messages Messages) {
	s.messages = messages
	s.acquirer.messages = messages
	s.sink.messages = messages
}

// Load prepares the screen: placeholders, the initial font, a hidden picker
// and a camera button that reflects the device.
func (s *Screen) Load(initialFont string) {
	s.captions.ResetText()

	if initialFont != "" && !s.fonts.SelectName(initialFont) {
		log.Printf("Saved font %s is not in the catalog", initialFont)
	}
	style := model.NewCaptionStyle(s.fonts.SelectedName())
	if err := s.captions.ApplyStyle(style); err != nil {
		log.Printf("Initial caption style: %v", err)
	}

	s.fonts.Reset()

	if cam := s.cfg.Controls.Camera; cam != nil {
		if s.acquirer.Available(model.SourceCamera) {
			cam.Enable()
		} else {
			cam.Disable()
		}
	}
	s.changed()
}

// Appear subscribes to keyboard events; call when the screen becomes visible
func (s *Screen) Appear() {
	s.captions.Subscribe(s.cfg.Notifier)
}

// Disappear releases the keyboard subscription
func (s *Screen) Disappear() {
	s.captions.Unsubscribe()
}

// OpenFontPicker shows the font list
func (s *Screen) OpenFontPicker() {
	s.fonts.Open()
}

// ConfirmFont hides the font list and restyles both captions with the chosen
// font. If the font cannot be loaded the previous style is kept.
func (s *Screen) ConfirmFont() error {
	previous := s.captions.Style()
	style := s.fonts.Confirm(previous)
	if err := s.captions.ApplyStyle(style); err != nil {
		log.Printf("Keeping %s: %v", previous.FontName, err)
		s.fonts.SelectName(previous.FontName)
		s.cfg.Dialogs.Present(s.messages.fontUnavailable(style.FontName))
		return err
	}
	if s.OnFontConfirmed != nil {
		s.OnFontConfirmed(style.FontName)
	}
	s.changed()
	return nil
}

// TakePhoto asks for a photo from source
func (s *Screen) TakePhoto(source model.Source) bool {
	return s.acquirer.Acquire(source)
}

// Scene returns what the canvas shows right now
func (s *Screen) Scene() render.Scene {
	top, bottom := s.captions.Captions()
	var size image.Point
	if s.cfg.CanvasSize != nil {
		size = s.cfg.CanvasSize()
	}
	return render.Scene{
		Size:       size,
		Background: s.cfg.Background,
		Source:     s.cfg.Canvas.Image(),
		TopText:    top,
		BottomText: bottom,
		Style:      s.captions.Style(),
	}
}

// Render captures the canvas with the chrome hidden
func (s *Screen) Render() (image.Image, error) {
	return s.compositor.Render()
}

// Share renders the meme and hands it to the share surface
func (s *Screen) Share() {
	img, err := s.Render()
	if err != nil {
		log.Printf("Rendering meme failed: %v", err)
		s.cfg.Dialogs.Present(s.messages.notSaved(err))
		return
	}
	s.sink.Share(img)
}

// Reset asks for confirmation, then restores the placeholders and clears the photo
func (s *Screen) Reset() {
	s.cfg.Dialogs.Confirm(s.messages.confirmReset(), func(confirmed bool) {
		if !confirmed {
			return
		}
		s.captions.ResetText()
		s.cfg.Canvas.SetImage(nil)
		s.changed()
	})
}

func (s *Screen) flatten() (image.Image, error) {
	scene := s.Scene()
	img, err := render.Flatten(scene, s.cfg.Fonts)
	if err != nil {
		return nil, fmt.Errorf("flatten canvas: %w", err)
	}
	return img, nil
}

func (s *Screen) record(rendered image.Image) model.Meme {
	top, bottom := s.captions.Captions()
	return model.Meme{
		TopText:       top,
		BottomText:    bottom,
		FontName:      s.captions.Style().FontName,
		OriginalImage: s.cfg.Canvas.Image(),
		MemeImage:     rendered,
	}
}

func (s *Screen) changed() {
	if s.OnChanged != nil {
		s.OnChanged()
	}
}
