package platform

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/render"
)

// ErrCameraUnavailable is returned when no capture tool is installed
var ErrCameraUnavailable = errors.New("camera is not available")

// Capture tool constants
const (
	ImagesnapCommand   = "imagesnap"
	FswebcamCommand    = "fswebcam"
	CaptureFilePattern = "mememe-capture-*.jpg"
	DefaultCaptureWait = 15 * time.Second
)

// Camera takes a still picture by running an external capture tool. The
// output file path is appended as the last argument.
type Camera struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// NewCamera returns the capture tool for the current OS. Command is empty on
// platforms without a supported tool.
func NewCamera() *Camera {
	switch runtime.GOOS {
	case OSDarwin:
		return &Camera{Command: ImagesnapCommand, Args: []string{"-w", "1"}, Timeout: DefaultCaptureWait}
	case OSLinux:
		if IsAndroid() {
			return &Camera{}
		}
		return &Camera{Command: FswebcamCommand, Args: []string{"--no-banner", "-r", "1280x720"}, Timeout: DefaultCaptureWait}
	default:
		return &Camera{}
	}
}

// Available reports whether the capture tool can be found
func (c *Camera) Available() bool {
	if c == nil || c.Command == "" {
		return false
	}
	_, err := exec.LookPath(c.Command)
	return err == nil
}

// Capture runs the tool and decodes the picture it writes
func (c *Camera) Capture(ctx context.Context) (image.Image, error) {
	if !c.Available() {
		return nil, ErrCameraUnavailable
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCaptureWait
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tmp, err := os.CreateTemp("", CaptureFilePattern)
	if err != nil {
		return nil, fmt.Errorf("creating capture file: %w", err)
	}
	out := tmp.Name()
	tmp.Close()
	defer os.Remove(out)

	args := append(append([]string{}, c.Args...), out)
	cmd := exec.CommandContext(ctx, c.Command, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("camera capture: %w", ctx.Err())
		}
		log.Printf("%s failed: %s", filepath.Base(c.Command), output)
		return nil, fmt.Errorf("camera capture: %w", err)
	}

	return render.DecodeFile(out)
}

// Capabilities answers which image sources this device offers
type Capabilities struct {
	camera *Camera
	// library is false only on platforms without a file chooser
	library bool
}

// NewCapabilities creates capabilities backed by the given camera
func NewCapabilities(camera *Camera) *Capabilities {
	return &Capabilities{camera: camera, library: true}
}

// SourceAvailable reports whether source can be used right now
func (c *Capabilities) SourceAvailable(source model.Source) bool {
	switch source {
	case model.SourceCamera:
		return c.camera.Available()
	case model.SourceLibrary:
		return c.library
	default:
		return false
	}
}

// Camera returns the underlying capture tool
func (c *Capabilities) Camera() *Camera {
	return c.camera
}
