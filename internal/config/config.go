package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/vango-dev/dataviewer/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "dataviewer.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutputDir is where rendered documents are written.
	DefaultOutputDir = "out"

	// DefaultCSSVersion is the utility-CSS runtime version loaded by documents.
	DefaultCSSVersion = "v3.4.16"

	// DefaultCSSBaseURL is the CDN the runtime is loaded from.
	DefaultCSSBaseURL = "https://cdn.tailwindcss.com"

	// DefaultTailwindVersion is the standalone CLI used for --inline-css.
	DefaultTailwindVersion = "v3.4.16"

	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"
)

// Config represents the complete dataviewer.json configuration.
type Config struct {
	// Output controls where and how documents are rendered.
	Output OutputConfig `json:"output,omitempty"`

	// CSS selects the utility-CSS runtime referenced by documents.
	CSS CSSConfig `json:"css,omitempty"`

	// Preview configures the preview server.
	Preview PreviewConfig `json:"preview,omitempty"`

	// S3 configures the s3:// output target.
	S3 S3Config `json:"s3,omitempty"`

	// Tailwind configures the standalone CLI used for inlined CSS.
	Tailwind TailwindConfig `json:"tailwind,omitempty"`

	// Log configures logging.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// OutputConfig contains render output settings.
type OutputConfig struct {
	// Dir is the directory relative output paths are resolved against.
	Dir string `json:"dir,omitempty"`

	// Pretty enables indented HTML.
	Pretty bool `json:"pretty,omitempty"`

	// InlineCSS compiles the stylesheet into the document instead of
	// loading the runtime.
	InlineCSS bool `json:"inlineCss,omitempty"`
}

// CSSConfig selects the utility-CSS runtime.
type CSSConfig struct {
	// Runtime is an explicit runtime script URL. Overrides Version.
	Runtime string `json:"runtime,omitempty"`

	// Version is the runtime version on the default CDN (e.g. "v3.4.16").
	Version string `json:"version,omitempty"`
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Reload enables websocket live reload on document changes.
	Reload bool `json:"reload"`
}

// S3Config contains settings for publishing to S3-compatible storage.
type S3Config struct {
	// Region is the bucket region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the service endpoint (e.g. a MinIO URL).
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle forces path-style addressing.
	PathStyle bool `json:"pathStyle,omitempty"`
}

// TailwindConfig contains Tailwind standalone CLI settings.
type TailwindConfig struct {
	// Version is the CLI release to download.
	Version string `json:"version,omitempty"`

	// BinDir is where downloaded binaries are cached.
	BinDir string `json:"binDir,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			Dir: DefaultOutputDir,
		},
		CSS: CSSConfig{
			Version: DefaultCSSVersion,
		},
		Preview: PreviewConfig{
			Host:   DefaultHost,
			Port:   DefaultPort,
			Reload: true,
		},
		S3: S3Config{
			Region: "us-east-1",
		},
		Tailwind: TailwindConfig{
			Version: DefaultTailwindVersion,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads dataviewer.json from the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("DV101").
				WithDetail("No " + ConfigFileName + " found at " + path)
		}
		return nil, errors.New("DV101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("DV100").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Discover loads the configuration for the given start directory. An
// explicit path is loaded as-is; otherwise parent directories are searched
// for dataviewer.json. When none is found the defaults are returned.
func Discover(explicit, startDir string) (*Config, error) {
	if explicit != "" {
		return LoadFile(explicit)
	}
	root, err := FindProjectRoot(startDir)
	if err != nil {
		return New(), nil
	}
	return Load(root)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("DV100").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("DV101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file, or "." for defaults.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.CSS.Version == "" {
		c.CSS.Version = DefaultCSSVersion
	}
	c.CSS.Version = canonicalVersion(c.CSS.Version)
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Tailwind.Version == "" {
		c.Tailwind.Version = DefaultTailwindVersion
	}
	c.Tailwind.Version = canonicalVersion(c.Tailwind.Version)
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// canonicalVersion adds the "v" prefix semver requires.
func canonicalVersion(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("DV100").
			WithDetail("preview.port must be between 0 and 65535")
	}
	if !semver.IsValid(canonicalVersion(c.CSS.Version)) {
		return errors.New("DV100").
			WithDetailf("css.version %q is not a semantic version", c.CSS.Version)
	}
	if !semver.IsValid(canonicalVersion(c.Tailwind.Version)) {
		return errors.New("DV100").
			WithDetailf("tailwind.version %q is not a semantic version", c.Tailwind.Version)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// CSSRuntimeURL returns the runtime script URL documents reference.
func (c *Config) CSSRuntimeURL() string {
	if c.CSS.Runtime != "" {
		return c.CSS.Runtime
	}
	version := canonicalVersion(c.CSS.Version)
	if version == "" {
		version = DefaultCSSVersion
	}
	return DefaultCSSBaseURL + "/" + strings.TrimPrefix(version, "v")
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, errors.New("DV100").
			WithDetailf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return level, nil
}

// PreviewAddress returns the listen address of the preview server.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// PreviewURL returns the browser URL of the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// OutputPath resolves name against the output directory. Absolute names are
// returned unchanged.
func (c *Config) OutputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	dir := c.Output.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.Dir(), dir)
	}
	return filepath.Join(dir, name)
}

// TailwindBinDir returns the binary cache directory. Empty means the
// tailwind package default.
func (c *Config) TailwindBinDir() string {
	if c.Tailwind.BinDir == "" || filepath.IsAbs(c.Tailwind.BinDir) {
		return c.Tailwind.BinDir
	}
	return filepath.Join(c.Dir(), c.Tailwind.BinDir)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the one containing
// dataviewer.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("DV101").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}
