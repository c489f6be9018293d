package cell

import (
	"path"
	"strings"
)

var videoMIME = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".ogv":  "video/ogg",
}

// VideoMIME returns the MIME type for a video source, derived from its
// extension. Unknown extensions map to video/mp4.
func VideoMIME(src string) string {
	if mime, ok := videoMIME[strings.ToLower(path.Ext(stripQuery(src)))]; ok {
		return mime
	}
	return "video/mp4"
}

// stripQuery drops a URL query string or fragment.
func stripQuery(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		return s[:i]
	}
	return s
}
