package fetch

import "testing"

func TestExtensionFor(t *testing.T) {
	testCases := []struct {
		url         string
		contentType string
		expected    string
	}{
		{"https://cdn.test/video.mp4", "", ".mp4"},
		{"https://cdn.test/doc.PDF", "", ".PDF"},
		{"https://cdn.test/file.mp4?sig=abc", "application/octet-stream", ".mp4"},
		{"https://cdn.test/stream", "video/mp4", ".mp4"},
		{"https://cdn.test/stream", "application/pdf", ".pdf"},
		{"https://cdn.test/stream", "image/png", ".jpg"},
		{"https://cdn.test/stream", "text/html", ""},
		{"https://cdn.test/stream", "", ""},
	}

	for _, tc := range testCases {
		got := extensionFor(tc.url, tc.contentType)
		if got != tc.expected {
			t.Errorf("extensionFor(%q, %q) = %q, want %q", tc.url, tc.contentType, got, tc.expected)
		}
	}
}

func TestContentFilename(t *testing.T) {
	testCases := []struct {
		index       int
		url         string
		contentType string
		expected    string
	}{
		{0, "https://cdn.test/v.mp4", "", "content_0.mp4"},
		{1, "https://cdn.test/stream", "video/webm", "content_1.mp4"},
		{2, "https://cdn.test/stream", "", "content_2"},
	}

	for _, tc := range testCases {
		got := contentFilename(tc.index, tc.url, tc.contentType)
		if got != tc.expected {
			t.Errorf("contentFilename(%d, %q, %q) = %q, want %q", tc.index, tc.url, tc.contentType, got, tc.expected)
		}
	}
}

func TestAssetFilename(t *testing.T) {
	testCases := []struct {
		counter  int
		url      string
		expected string
	}{
		{0, "https://cdn.test/logo.png", "asset_0_logo.png"},
		{1, "https://cdn.test/path/deck.pdf?sig=x", "asset_1_deck.pdf"},
		{2, "https://cdn.test/", "asset_2"},
		{3, "https://cdn.test", "asset_3"},
	}

	for _, tc := range testCases {
		got := assetFilename(tc.counter, tc.url)
		if got != tc.expected {
			t.Errorf("assetFilename(%d, %q) = %q, want %q", tc.counter, tc.url, got, tc.expected)
		}
	}
}
