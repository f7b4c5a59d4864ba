package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

// Cloudinary delivery URLs accept an inline transformation segment right
// after "/upload/", e.g.
// https://res.cloudinary.com/demo/image/upload/w_300,h_200,q_80,f_webp/sample.jpg

const uploadSegment = "/upload/"

var validImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// DefaultSrcSetWidths are the widths used for responsive image sets.
var DefaultSrcSetWidths = []int{640, 768, 1024, 1280, 1536}

// OptimizeImageURL rewrites a Cloudinary delivery URL with resize/quality/
// format transformations. Non-Cloudinary URLs are returned unchanged.
func OptimizeImageURL(rawURL string, width, height, quality int, format string) string {
	idx := strings.Index(rawURL, uploadSegment)
	if idx == -1 {
		return rawURL
	}

	var parts []string
	if width > 0 {
		parts = append(parts, fmt.Sprintf("w_%d", width))
	}
	if height > 0 {
		parts = append(parts, fmt.Sprintf("h_%d", height))
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	parts = append(parts, fmt.Sprintf("q_%d", quality))
	if format == "" {
		format = "webp"
	}
	parts = append(parts, "f_"+format)

	cut := idx + len(uploadSegment)
	return rawURL[:cut] + strings.Join(parts, ",") + "/" + rawURL[cut:]
}

// GenerateSrcSet builds an HTML srcset attribute value for responsive images.
func GenerateSrcSet(rawURL string, widths []int) string {
	if len(widths) == 0 {
		widths = DefaultSrcSetWidths
	}
	entries := make([]string, 0, len(widths))
	for _, w := range widths {
		entries = append(entries, fmt.Sprintf("%s %dw", OptimizeImageURL(rawURL, w, 0, 0, ""), w))
	}
	return strings.Join(entries, ", ")
}

// ValidateImageURL checks the URL carries a known image extension.
func ValidateImageURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	lower := strings.ToLower(rawURL)
	for _, ext := range validImageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ExtractImageURLs decodes a property's JSON images column, dropping
// anything that does not look like an image URL.
func ExtractImageURLs(images datatypes.JSON) []string {
	urls := []string{}
	if len(images) == 0 {
		return urls
	}

	var decoded []string
	if err := json.Unmarshal(images, &decoded); err != nil {
		return urls
	}
	for _, u := range decoded {
		if ValidateImageURL(u) {
			urls = append(urls, u)
		}
	}
	return urls
}
