// Command memegen renders a meme without the UI:
//
//	memegen [-top T] [-bottom B] [-font NAME] [-fonts DIR] [-width W -height H] input output.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/mememe-app/mememe/internal/fonts"
	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/render"
)

var errUsage = errors.New("usage: memegen [flags] input output.png")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Printf("memegen: %v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("memegen", flag.ContinueOnError)
	top := fs.String("top", "", "top caption")
	bottom := fs.String("bottom", "", "bottom caption")
	fontName := fs.String("font", model.DefaultFontNames[0], "caption font name")
	fontsDir := fs.String("fonts", "", "directory with extra .ttf fonts")
	width := fs.Int("width", 0, "output width (default: input width)")
	height := fs.Int("height", 0, "output height (default: input height)")
	crop := fs.Bool("crop", false, "crop the photo to the output aspect ratio")
	listFonts := fs.Bool("list-fonts", false, "print the available font names and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	registry := fonts.NewDefaultRegistry()
	if *fontsDir != "" {
		if _, err := registry.LoadDir(*fontsDir); err != nil {
			return err
		}
	}
	if *listFonts {
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
		return nil
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return errUsage
	}
	input, output := fs.Arg(0), fs.Arg(1)

	src, err := render.DecodeFile(input)
	if err != nil {
		return err
	}

	size := src.Bounds().Size()
	if *width > 0 && *height > 0 {
		size = image.Pt(*width, *height)
	}
	if *crop {
		src = render.CropToAspect(src, size)
	}

	scene := render.Scene{
		Size:       size,
		Source:     src,
		TopText:    *top,
		BottomText: *bottom,
		Style:      model.NewCaptionStyle(*fontName),
	}
	img, err := render.Flatten(scene, registry)
	if err != nil {
		return err
	}

	if err := render.WritePNGFile(output, img); err != nil {
		return err
	}
	log.Printf("Wrote %dx%d meme to %s", size.X, size.Y, output)
	return nil
}
