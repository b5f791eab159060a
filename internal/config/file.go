package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// MilestoneConfig names a date published in the calendar feed.
type MilestoneConfig struct {
	// Name is the event label.
	Name string `yaml:"name" json:"name"`
	// At is a date in any of ParseLayouts.
	At string `yaml:"at" json:"at"`
}

// File is the runtime configuration read from YAML.
type File struct {
	// Mask is the default format mask for the CLI and the feed summaries.
	Mask string `yaml:"mask" json:"mask"`

	// Port is the HTTP port of the feed server.
	Port string `yaml:"port" json:"port"`

	// Refresh is a cron-style schedule (e.g. "*/15 * * * *") for re-rendering the feed.
	Refresh string `yaml:"refresh" json:"refresh"`

	Milestones []MilestoneConfig `yaml:"milestones" json:"milestones"`
}

// DefaultFile returns an in-memory default configuration.
func DefaultFile() *File {
	return &File{
		Mask:       DefaultMask,
		Port:       DefaultPort,
		Refresh:    DefaultRefresh,
		Milestones: []MilestoneConfig{},
	}
}

// Normalize fills in missing values with defaults so that partial files
// still behave correctly. An explicitly empty mask is not representable in
// YAML separately from an absent one, so both fall back to DefaultMask.
func (f *File) Normalize() {
	if f.Mask == "" {
		f.Mask = DefaultMask
	}
	if f.Port == "" {
		f.Port = DefaultPort
	}
	if strings.TrimSpace(f.Refresh) == "" {
		f.Refresh = DefaultRefresh
	}
	if f.Milestones == nil {
		f.Milestones = []MilestoneConfig{}
	}
}

// Validate checks the values that cannot be defaulted.
func (f *File) Validate() error {
	if err := ValidatePort(f.Port); err != nil {
		return err
	}
	if _, err := cron.ParseStandard(f.Refresh); err != nil {
		return fmt.Errorf("%s %q: %w", ErrRefreshSpec, f.Refresh, err)
	}
	for i, m := range f.Milestones {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%s #%d: %s", ErrMilestone, i, ErrMilestoneName)
		}
	}
	return nil
}

// ValidatePort checks that port is a decimal number within [MinPort, MaxPort].
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New(ErrPortNumber)
	}
	if n < MinPort || n > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}

// Load reads the YAML configuration at path.
//
// An empty path or a missing file yields DefaultFile. Unlike a daemon config
// the file is never created on first run: the CLI is read-only.
func Load(path string) (*File, error) {
	if path == "" {
		return DefaultFile(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug(MsgConfigAbsent,
				LogKeyComponent, CompConfig,
				LogKeyPath, path,
			)
			return DefaultFile(), nil
		}
		return nil, fmt.Errorf("%s: %w", ErrConfigRead, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConfigParse, err)
	}
	f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	slog.Debug(MsgConfigLoaded,
		LogKeyComponent, CompConfig,
		LogKeyPath, path,
		LogKeyCount, len(f.Milestones),
	)
	return &f, nil
}
