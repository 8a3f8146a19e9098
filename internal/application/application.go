package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "taskr"

	// ConfigFileName is the name of the INI configuration file inside the
	// application directory
	ConfigFileName = "config.ini"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the taskr configuration directory path.
// Linux: ~/.config/taskr (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\taskr (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// DefaultConfigPath returns the path of the configuration file inside the
// application directory.
func DefaultConfigPath() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName), nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
