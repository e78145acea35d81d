package platform

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Library locations
const (
	PicturesDirName   = "Pictures"
	AppAlbumName      = "MemeMe"
	AndroidPictureDir = "/sdcard/Pictures"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// GetHomePicturesDir returns the directory memes saved to the photo library go to
func GetHomePicturesDir() (string, error) {
	if IsAndroid() {
		// External storage so saved memes show up in Gallery
		return filepath.Join(AndroidPictureDir, AppAlbumName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, PicturesDirName, AppAlbumName), nil
}

// OpenFolder opens dir in the system file manager
func OpenFolder(dir string) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, absPath)
	case OSWindows:
		cmd = exec.Command(ExplorerCommand, absPath)
	case OSLinux:
		cmd = exec.Command(XDGOpenCommand, absPath)
	case OSAndroid:
		cmd = exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", "file://"+absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	return cmd.Run()
}

// NotifyMediaScanner tells the Android media scanner about a new picture so it
// appears in the Gallery app. It is a no-op elsewhere.
func NotifyMediaScanner(filePath string) error {
	if !IsAndroid() {
		return nil
	}

	cmd := exec.Command("am", "broadcast", "-a", "android.intent.action.MEDIA_SCANNER_SCAN_FILE", "-d", "file://"+filePath)

	// Don't block the save on the broadcast
	go func() {
		if err := cmd.Run(); err != nil {
			log.Printf("Failed to notify media scanner about %s: %v", filePath, err)
		}
	}()

	return nil
}
