package tailwind

import "runtime"

// PlatformName returns a readable name for the host platform.
func PlatformName() string {
	var name string
	switch runtime.GOOS {
	case "darwin":
		name = "macOS"
	case "linux":
		name = "Linux"
	case "windows":
		name = "Windows"
	default:
		name = runtime.GOOS
	}
	return name + " " + archName()
}

func archName() string {
	switch runtime.GOARCH {
	case "arm64":
		return "ARM64"
	case "amd64":
		return "x64"
	default:
		return runtime.GOARCH
	}
}
