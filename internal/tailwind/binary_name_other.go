//go:build !darwin && !linux && !windows

package tailwind

// binaryName is empty where no standalone build is published.
func binaryName() string {
	return ""
}
