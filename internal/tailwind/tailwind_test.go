package tailwind

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBinaryName(t *testing.T) {
	name := binaryName()

	switch runtime.GOOS {
	case "darwin":
		if runtime.GOARCH == "arm64" {
			if name != "tailwindcss-macos-arm64" {
				t.Errorf("expected tailwindcss-macos-arm64, got %s", name)
			}
		} else if name != "tailwindcss-macos-x64" {
			t.Errorf("expected tailwindcss-macos-x64, got %s", name)
		}
	case "linux":
		if runtime.GOARCH == "arm64" {
			if name != "tailwindcss-linux-arm64" {
				t.Errorf("expected tailwindcss-linux-arm64, got %s", name)
			}
		} else if name != "tailwindcss-linux-x64" {
			t.Errorf("expected tailwindcss-linux-x64, got %s", name)
		}
	case "windows":
		if name != "tailwindcss-windows-x64.exe" {
			t.Errorf("expected tailwindcss-windows-x64.exe, got %s", name)
		}
	}
}

func TestPlatformName(t *testing.T) {
	name := PlatformName()

	prefix := map[string]string{
		"darwin":  "macOS ",
		"linux":   "Linux ",
		"windows": "Windows ",
	}[runtime.GOOS]
	if prefix == "" {
		prefix = runtime.GOOS + " "
	}
	if !strings.HasPrefix(name, prefix) {
		t.Errorf("PlatformName() = %q, want prefix %q", name, prefix)
	}
}

func TestNewBinary(t *testing.T) {
	b := NewBinary("", "")
	if b.Version != Version {
		t.Errorf("expected version %s, got %s", Version, b.Version)
	}
	if !strings.HasSuffix(b.BinDir, filepath.FromSlash(DefaultBinDir)) {
		t.Errorf("BinDir = %q", b.BinDir)
	}

	b = NewBinary("v4.1.0", "/opt/bin")
	if b.Version != "v4.1.0" || b.BinDir != "/opt/bin" {
		t.Errorf("explicit settings ignored: %+v", b)
	}
}

func TestDownloadURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"", GitHubReleaseURL + "/v3.4.16/" + binaryName()},
		{"https://mirror.test/dl/", "https://mirror.test/dl/v3.4.16/" + binaryName()},
	}
	for _, tt := range tests {
		b := &Binary{Version: "v3.4.16", DownloadBaseURL: tt.base}
		if got := b.downloadURL(); got != tt.want {
			t.Errorf("downloadURL() = %q, want %q", got, tt.want)
		}
	}
}

func TestBinaryPathIncludesVersion(t *testing.T) {
	b := &Binary{Version: "vTEST", BinDir: t.TempDir()}
	if got := b.binaryPath(); !strings.Contains(got, string(filepath.Separator)+"vTEST"+string(filepath.Separator)) {
		t.Fatalf("binaryPath = %q, expected a version dir", got)
	}
}

func installFake(t *testing.T, b *Binary, content string) string {
	t.Helper()
	path := b.binaryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPathAndIsInstalled(t *testing.T) {
	if binaryName() == "" {
		t.Skip("no binary for this platform")
	}
	b := &Binary{Version: "vTEST", BinDir: t.TempDir()}
	if b.IsInstalled() {
		t.Fatal("expected IsInstalled() false before writing binary")
	}
	if _, err := b.Path(); err == nil {
		t.Fatal("expected error for missing binary")
	}

	want := installFake(t, b, "bin")
	if !b.IsInstalled() {
		t.Fatal("expected IsInstalled() true after writing binary")
	}
	got, err := b.Path()
	if err != nil || got != want {
		t.Fatalf("Path() = %q, %v", got, err)
	}
}

func TestEnsureInstalledDownloads(t *testing.T) {
	if binaryName() == "" {
		t.Skip("no binary for this platform")
	}
	var requests atomic.Int64
	body := []byte("fake-binary-bytes")

	b := &Binary{
		Version:         "vTEST",
		BinDir:          t.TempDir(),
		DownloadBaseURL: "https://example.test/releases/download",
		Logger:          quietLogger(),
		HTTPClient: &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			requests.Add(1)
			if want := "https://example.test/releases/download/vTEST/" + binaryName(); req.URL.String() != want {
				t.Errorf("URL = %s, want %s", req.URL, want)
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(body)),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		})},
	}

	path, err := b.EnsureInstalled(context.Background())
	if err != nil {
		t.Fatalf("EnsureInstalled: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil || !bytes.Equal(got, body) {
		t.Fatalf("installed content = %q, %v", got, err)
	}

	if _, err := b.EnsureInstalled(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("requests = %d, want 1", n)
	}
}

func TestEnsureInstalledBadStatus(t *testing.T) {
	if binaryName() == "" {
		t.Skip("no binary for this platform")
	}
	b := &Binary{
		Version: "vTEST",
		BinDir:  t.TempDir(),
		Logger:  quietLogger(),
		HTTPClient: &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusNotFound,
				Body:       io.NopCloser(strings.NewReader("nope")),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		})},
	}
	if _, err := b.EnsureInstalled(context.Background()); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("err = %v, want status error", err)
	}
	if b.IsInstalled() {
		t.Error("failed download must not leave a binary behind")
	}
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		version string
		minify  bool
		want    []string
	}{
		{"v3.4.16", true, []string{"-i", "in", "-o", "out", "--content", "page", "--minify"}},
		{"v3.4.16", false, []string{"-i", "in", "-o", "out", "--content", "page"}},
		{"v4.1.18", true, []string{"-i", "in", "-o", "out", "--minify"}},
	}
	for _, tt := range tests {
		if got := buildArgs(tt.version, "in", "out", "page", tt.minify); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("buildArgs(%s, %v) = %v", tt.version, tt.minify, got)
		}
	}

	if !strings.Contains(inputCSS("v3.4.16"), "@tailwind utilities;") {
		t.Error("v3 input should use @tailwind directives")
	}
	if !strings.Contains(inputCSS("v4.0.0"), `@source "./page.html";`) {
		t.Error("v4 input should declare the content source")
	}
}

const fakeTailwind = `#!/bin/sh
out=""
content=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift ;;
    --content) content="$2"; shift ;;
  esac
  shift
done
if grep -q "p-4" "$content"; then
  printf '.p-4{padding:1rem}' > "$out"
else
  printf '' > "$out"
fi
`

func TestCompile(t *testing.T) {
	if runtime.GOOS == "windows" || binaryName() == "" {
		t.Skip("fake binary is a shell script")
	}
	b := &Binary{Version: "v3.4.16", BinDir: t.TempDir(), Logger: quietLogger()}
	installFake(t, b, fakeTailwind)

	css, err := NewCompiler(b).Compile(context.Background(), `<div class="p-4"></div>`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if css != ".p-4{padding:1rem}" {
		t.Errorf("css = %q", css)
	}
}

func TestCompileFailure(t *testing.T) {
	if runtime.GOOS == "windows" || binaryName() == "" {
		t.Skip("fake binary is a shell script")
	}
	b := &Binary{Version: "v3.4.16", BinDir: t.TempDir(), Logger: quietLogger()}
	installFake(t, b, "#!/bin/sh\necho 'bad input' >&2\nexit 3\n")

	_, err := NewCompiler(b).Compile(context.Background(), "<div></div>")
	if err == nil || !strings.Contains(err.Error(), "bad input") {
		t.Fatalf("err = %v, want tool output in error", err)
	}
}
