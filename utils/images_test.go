package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

const cloudinaryURL = "https://res.cloudinary.com/demo/image/upload/v12345/room.jpg"

func TestOptimizeImageURL(t *testing.T) {
	got := OptimizeImageURL(cloudinaryURL, 300, 200, 80, "webp")
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/w_300,h_200,q_80,f_webp/v12345/room.jpg", got)
}

func TestOptimizeImageURLDefaults(t *testing.T) {
	got := OptimizeImageURL(cloudinaryURL, 0, 0, 0, "")
	assert.Contains(t, got, "q_80")
	assert.Contains(t, got, "f_webp")
	assert.NotContains(t, got, "w_")
	assert.NotContains(t, got, "h_")
}

func TestOptimizeImageURLNonCloudinary(t *testing.T) {
	plain := "https://cdn.example.com/room.jpg"
	assert.Equal(t, plain, OptimizeImageURL(plain, 300, 0, 80, "webp"))
}

func TestGenerateSrcSet(t *testing.T) {
	srcset := GenerateSrcSet(cloudinaryURL, nil)
	entries := strings.Split(srcset, ", ")
	assert.Len(t, entries, len(DefaultSrcSetWidths))
	assert.Contains(t, entries[0], "w_640")
	assert.True(t, strings.HasSuffix(entries[0], " 640w"))
}

func TestValidateImageURL(t *testing.T) {
	assert.True(t, ValidateImageURL("https://cdn.example.com/a.JPG"))
	assert.True(t, ValidateImageURL("https://cdn.example.com/a.webp"))
	assert.False(t, ValidateImageURL("https://cdn.example.com/a.pdf"))
	assert.False(t, ValidateImageURL(""))
}

func TestExtractImageURLs(t *testing.T) {
	images := datatypes.JSON([]byte(`["https://cdn.example.com/a.jpg","https://cdn.example.com/doc.txt","https://cdn.example.com/b.png"]`))
	assert.Equal(t,
		[]string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.png"},
		ExtractImageURLs(images),
	)

	assert.Empty(t, ExtractImageURLs(nil))
	assert.Empty(t, ExtractImageURLs(datatypes.JSON([]byte("not json"))))
}
