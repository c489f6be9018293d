//go:build windows

package tailwind

func binaryName() string {
	return "tailwindcss-windows-x64.exe"
}
