// Package tailwind manages the Tailwind CSS standalone binary and uses it to
// compile the stylesheet a rendered document needs, so the document can be
// opened without loading the CSS runtime from a CDN.
package tailwind

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/mod/semver"
)

const (
	// Version is the default Tailwind CSS version. It matches the class set
	// the runtime script serves.
	Version = "v3.4.16"

	// GitHubReleaseURL is the base URL for downloading Tailwind binaries.
	GitHubReleaseURL = "https://github.com/tailwindlabs/tailwindcss/releases/download"

	// DefaultBinDir is the default directory for storing the binary.
	DefaultBinDir = ".dataviewer/bin"
)

// Binary represents the Tailwind CSS standalone binary.
type Binary struct {
	// Version is the Tailwind version.
	Version string

	// BinDir is the directory where the binary is stored.
	BinDir string

	// DownloadBaseURL is the base URL for downloading Tailwind binaries.
	// If empty, GitHubReleaseURL is used.
	DownloadBaseURL string

	// HTTPClient is used for downloads. If nil, a default client is used.
	HTTPClient *http.Client

	// Logger receives download progress. Defaults to slog.Default().
	Logger *slog.Logger

	path string
	mu   sync.Mutex
}

// NewBinary creates a Binary for version. An empty version or binDir
// selects the defaults.
func NewBinary(version, binDir string) *Binary {
	if version == "" {
		version = Version
	}
	if binDir == "" {
		binDir = defaultBinDir()
	}
	return &Binary{
		Version:         version,
		BinDir:          binDir,
		DownloadBaseURL: GitHubReleaseURL,
	}
}

// defaultBinDir returns the default binary directory (~/.dataviewer/bin).
func defaultBinDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", DefaultBinDir)
	}
	return filepath.Join(home, DefaultBinDir)
}

func (b *Binary) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// Path returns the path to an installed binary without downloading.
func (b *Binary) Path() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.path != "" {
		return b.path, nil
	}

	path := b.binaryPath()
	if _, err := os.Stat(path); err == nil {
		b.path = path
		return path, nil
	}

	return "", fmt.Errorf("tailwind binary not found at %s", path)
}

// EnsureInstalled downloads the binary if it doesn't exist and returns its
// path.
func (b *Binary) EnsureInstalled(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if binaryName() == "" {
		return "", fmt.Errorf("no tailwind binary is published for %s", PlatformName())
	}

	path := b.binaryPath()
	if _, err := os.Stat(path); err == nil {
		b.path = path
		return path, nil
	}

	if err := b.download(ctx); err != nil {
		return "", err
	}

	b.path = path
	return path, nil
}

// IsInstalled checks if the binary is installed.
func (b *Binary) IsInstalled() bool {
	_, err := os.Stat(b.binaryPath())
	return err == nil
}

// binaryPath stores binaries per version so an upgrade never reuses an
// older one.
func (b *Binary) binaryPath() string {
	return filepath.Join(b.BinDir, b.Version, binaryName())
}

// downloadURL returns the URL to download the binary.
func (b *Binary) downloadURL() string {
	base := b.DownloadBaseURL
	if base == "" {
		base = GitHubReleaseURL
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), b.Version, binaryName())
}

// download fetches the binary from the release URL.
func (b *Binary) download(ctx context.Context) error {
	url := b.downloadURL()
	log := b.logger()
	log.Info("downloading tailwind", "version", b.Version, "url", url)

	if err := os.MkdirAll(filepath.Dir(b.binaryPath()), 0o755); err != nil {
		return fmt.Errorf("failed to create bin directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	client := b.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status %d (URL: %s)", resp.StatusCode, url)
	}

	// Write to a temp file, then rename.
	tmpPath := b.binaryPath() + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(f, resp.Body)
	f.Close()
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0o755); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to make executable: %w", err)
	}
	if err := os.Rename(tmpPath, b.binaryPath()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to install binary: %w", err)
	}

	log.Info("installed tailwind", "path", b.binaryPath(), "mb", fmt.Sprintf("%.1f", float64(written)/1024/1024))
	return nil
}

// Compiler builds stylesheets for rendered documents.
type Compiler struct {
	binary *Binary

	// Minify enables CSS minification.
	Minify bool
}

// NewCompiler creates a compiler using binary.
func NewCompiler(binary *Binary) *Compiler {
	return &Compiler{binary: binary, Minify: true}
}

// Compile returns the CSS for every utility class used in html.
func (c *Compiler) Compile(ctx context.Context, html string) (string, error) {
	path, err := c.binary.EnsureInstalled(ctx)
	if err != nil {
		return "", err
	}

	dir, err := os.MkdirTemp("", "dataviewer-css-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	contentPath := filepath.Join(dir, "page.html")
	inputPath := filepath.Join(dir, "input.css")
	outputPath := filepath.Join(dir, "output.css")

	if err := os.WriteFile(contentPath, []byte(html), 0o644); err != nil {
		return "", err
	}
	if err := os.WriteFile(inputPath, []byte(inputCSS(c.binary.Version)), 0o644); err != nil {
		return "", err
	}

	args := buildArgs(c.binary.Version, inputPath, outputPath, contentPath, c.Minify)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tailwind build failed: %w\n%s", err, strings.TrimSpace(string(out)))
	}

	css, err := os.ReadFile(outputPath)
	if err != nil {
		return "", fmt.Errorf("tailwind produced no output: %w", err)
	}
	c.binary.logger().Debug("compiled css", "bytes", len(css))
	return string(css), nil
}

// isV3 reports whether version takes v3 input and flags. v4 replaced
// @tailwind directives and --content with @import and @source.
func isV3(version string) bool {
	return semver.IsValid(version) && semver.Compare(version, "v4.0.0") < 0
}

func inputCSS(version string) string {
	if isV3(version) {
		return "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n"
	}
	return "@import \"tailwindcss\";\n@source \"./page.html\";\n"
}

func buildArgs(version, input, output, content string, minify bool) []string {
	args := []string{"-i", input, "-o", output}
	if isV3(version) {
		args = append(args, "--content", content)
	}
	if minify {
		args = append(args, "--minify")
	}
	return args
}
