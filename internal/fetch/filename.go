package fetch

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// contentFilename names a direct content download: content_<index><ext>.
func contentFilename(index int, rawURL, contentType string) string {
	return fmt.Sprintf("content_%d%s", index, extensionFor(rawURL, contentType))
}

// assetFilename names an extracted HTML asset: asset_<counter>_<original-name>,
// falling back to asset_<counter> when the URL has no usable basename.
func assetFilename(counter int, rawURL string) string {
	base := ""
	if u, err := url.Parse(rawURL); err == nil {
		base = path.Base(u.Path)
	}
	if base == "" || base == "." || base == "/" {
		return fmt.Sprintf("asset_%d", counter)
	}
	return fmt.Sprintf("asset_%d_%s", counter, base)
}

// extensionFor guesses a file extension from the URL path, then from the
// Content-Type header. Empty when neither helps.
func extensionFor(rawURL, contentType string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if ext := path.Ext(path.Base(u.Path)); ext != "" && ext != "." {
			return ext
		}
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "video"):
		return ".mp4"
	case strings.Contains(ct, "pdf"):
		return ".pdf"
	case strings.Contains(ct, "image"):
		return ".jpg"
	}
	return ""
}
