package fetch

import (
	"regexp"
	"strings"
)

// Asset references inside lesson HTML. src attributes of media-ish tags plus
// direct links to document downloads.
var assetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)<video[^>]+src=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)<audio[^>]+src=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)<source[^>]+src=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)<embed[^>]+src=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)<iframe[^>]+src=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)<a[^>]+href=["']([^"']+\.(?:pdf|doc|docx|xls|xlsx|ppt|pptx|zip|rar))["']`),
}

// ExtractAssetURLs pulls downloadable asset URLs out of embedded lesson HTML.
// Relative URLs are dropped: without a reliable base there is nothing sane to
// resolve them against.
func ExtractAssetURLs(html string) []string {
	if html == "" {
		return nil
	}

	var urls []string
	for _, re := range assetPatterns {
		for _, m := range re.FindAllStringSubmatch(html, -1) {
			u := m[1]
			if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
				urls = append(urls, u)
			}
		}
	}
	return urls
}
