// Package pathutil manages application file paths and locations
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvName selects an isolated set of files (e.g. "dev") when set.
const EnvName = "FLIGHTLOG_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir          string
	configFileName  string
	logbookFileName string
	logFileName     string

	// Computed absolute paths
	configFilePath  string
	dataDir         string
	logbookFilePath string
	logFilePath     string
}

var (
	paths *Paths
	once  sync.Once

	errNotInitialized = errors.New(
		"pathutil.Initialize() must be called before accessing paths",
	)
)

// New computes the application paths for the given environment name. An
// empty env yields the default file names.
func New(env string) (*Paths, error) {
	p := &Paths{
		appDir:          "flightlog",
		configFileName:  "config.yml",
		logbookFileName: "flights.jsonl",
		logFileName:     "flightlog.log",
	}

	p.applyEnvironmentOverrides(env)

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths, initErr = New(strings.TrimSpace(os.Getenv(EnvName)))
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic(errNotInitialized)
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogbookFilePath() string {
	return Must().logbookFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) DataDir() string {
	return p.dataDir
}

func (p *Paths) LogbookFilePath() string {
	return p.logbookFilePath
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.logbookFileName = fmt.Sprintf("flights_%s.jsonl", env)
	p.logFileName = fmt.Sprintf("flightlog_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.appDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	// xdg.DataFile creates the parent of its argument, so appending a
	// placeholder ensures the app directory itself exists.
	placeholder, err := xdg.DataFile(filepath.Join(p.appDir, p.logbookFileName))
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	p.dataDir = filepath.Dir(placeholder)

	p.logbookFilePath = filepath.Join(p.dataDir, p.logbookFileName)

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}
