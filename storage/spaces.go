package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"net/url"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"prompt-gallery/config"
)

// Re-encoded images are bounded to this box; videos pass through as-is.
const (
	maxImageWidth  = 1920
	maxImageHeight = 1080
	jpegQuality    = 80
)

// File is a raw upload buffer with its original metadata.
type File struct {
	Data        []byte
	Filename    string
	ContentType string
}

// UploadResult describes the stored object.
type UploadResult struct {
	URL         string
	Key         string
	Size        int64
	ContentType string
}

// SpacesClient stores blobs in an S3-compatible DigitalOcean Spaces
// bucket and serves them from its CDN endpoint.
type SpacesClient struct {
	s3     *s3.Client
	bucket string
	region string
}

func New(cfg config.SpacesConfig) (*SpacesClient, error) {
	if cfg.Key == "" || cfg.Secret == "" || cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("spaces credentials are not fully configured")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, ""),
		),
	)
	if err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("https://%s.digitaloceanspaces.com", cfg.Region)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
	return &SpacesClient{s3: client, bucket: cfg.Bucket, region: cfg.Region}, nil
}

// Upload stores the file under the given folder and returns its public
// CDN URL. Images are fit-resized and re-encoded as JPEG first.
func (c *SpacesClient) Upload(ctx context.Context, file File, folder string) (*UploadResult, error) {
	data := file.Data
	contentType := file.ContentType
	ext := extensionOf(file.Filename)

	if strings.HasPrefix(contentType, "image/") {
		encoded, err := ReencodeImage(data)
		if err != nil {
			return nil, fmt.Errorf("re-encode image: %w", err)
		}
		data = encoded
		contentType = "image/jpeg"
		ext = "jpg"
	}

	key := ObjectKey(folder, ext)
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ACL:         types.ObjectCannedACLPublicRead,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		URL:         c.PublicURL(key),
		Key:         key,
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

// Delete removes a stored object by the public URL previously returned
// from Upload. Unknown URLs are ignored.
func (c *SpacesClient) Delete(ctx context.Context, rawURL string) error {
	key := KeyFromURL(rawURL)
	if key == "" {
		return nil
	}
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	return err
}

// PublicURL builds the CDN URL for a stored key.
func (c *SpacesClient) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.%s.cdn.digitaloceanspaces.com/%s", c.bucket, c.region, key)
}

// ObjectKey builds a collision-resistant storage key.
func ObjectKey(folder, ext string) string {
	return fmt.Sprintf("%s/%d-%s.%s", folder, time.Now().UnixMilli(), uuid.NewString()[:6], ext)
}

// KeyFromURL extracts the object key from a public URL. Returns "" when
// the URL does not parse.
func KeyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

// ReencodeImage decodes an uploaded image, scales it down to fit within
// 1920x1080 without enlargement, and encodes it as JPEG.
func ReencodeImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	scale := 1.0
	if float64(maxImageWidth)/float64(w) < scale {
		scale = float64(maxImageWidth) / float64(w)
	}
	if float64(maxImageHeight)/float64(h) < scale {
		scale = float64(maxImageHeight) / float64(h)
	}
	if scale < 1.0 {
		nw := int(float64(w) * scale)
		nh := int(float64(h) * scale)
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func extensionOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "bin"
	}
	return strings.ToLower(filename[idx+1:])
}
