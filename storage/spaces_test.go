package storage_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"prompt-gallery/config"
	"prompt-gallery/storage"
)

func TestObjectKey(t *testing.T) {
	key := storage.ObjectKey("items", "jpg")

	assert.True(t, strings.HasPrefix(key, "items/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, storage.ObjectKey("items", "jpg"))
}

func TestKeyFromURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://bucket.nyc3.cdn.digitaloceanspaces.com/items/123-abc.jpg", "items/123-abc.jpg"},
		{"https://bucket.nyc3.cdn.digitaloceanspaces.com/", ""},
		{"://not a url", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, storage.KeyFromURL(tc.in), "input %q", tc.in)
	}
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 100, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestReencodeImageKeepsSmallImages(t *testing.T) {
	out, err := storage.ReencodeImage(testPNG(t, 640, 480))
	assert.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, 640, decoded.Bounds().Dx())
	assert.Equal(t, 480, decoded.Bounds().Dy())
}

func TestReencodeImageScalesDownLargeImages(t *testing.T) {
	out, err := storage.ReencodeImage(testPNG(t, 3840, 2160))
	assert.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.LessOrEqual(t, decoded.Bounds().Dx(), 1920)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), 1080)
}

func TestReencodeImageRejectsGarbage(t *testing.T) {
	_, err := storage.ReencodeImage([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestNewRequiresFullCredentials(t *testing.T) {
	_, err := storage.New(config.SpacesConfig{Key: "k", Secret: "s", Bucket: "", Region: "nyc3"})
	assert.Error(t, err)

	client, err := storage.New(config.SpacesConfig{Key: "k", Secret: "s", Bucket: "b", Region: "nyc3"})
	assert.NoError(t, err)
	assert.Equal(t, "https://b.nyc3.cdn.digitaloceanspaces.com/items/x.jpg", client.PublicURL("items/x.jpg"))
}
