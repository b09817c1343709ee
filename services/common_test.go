package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-gallery/apperr"
	"prompt-gallery/config"
	"prompt-gallery/storage"
)

func uploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxSizeMB:         50,
		AllowedExtensions: []string{"jpeg", "jpg", "png", "gif", "webp", "mp4", "mov"},
	}
}

func TestValidateRequiredReportsEveryBlankField(t *testing.T) {
	err := validateRequired([]requiredField{
		{"title", ""},
		{"prompt_text", "   "},
		{"ai_model", "Midjourney v6"},
		{"topic", ""},
	})

	assert.Error(t, err)
	assert.Equal(t, []string{"title", "prompt_text", "topic"}, apperr.FieldsOf(err))
}

func TestValidateRequiredPasses(t *testing.T) {
	err := validateRequired([]requiredField{
		{"title", "Neon Alley"},
		{"prompt_text", "a neon alley at night"},
	})
	assert.NoError(t, err)
}

func TestCheckUpload(t *testing.T) {
	cases := []struct {
		name     string
		file     *storage.File
		required bool
		wantErr  bool
		wantKind apperr.Kind
	}{
		{
			name:     "missing but required",
			file:     nil,
			required: true,
			wantErr:  true,
			wantKind: apperr.KindUploadRequired,
		},
		{
			name:     "missing and optional",
			file:     nil,
			required: false,
			wantErr:  false,
		},
		{
			name:     "valid jpeg",
			file:     &storage.File{Data: []byte("x"), Filename: "shot.jpg", ContentType: "image/jpeg"},
			required: true,
			wantErr:  false,
		},
		{
			name:     "valid video",
			file:     &storage.File{Data: []byte("x"), Filename: "clip.mp4", ContentType: "video/mp4"},
			required: true,
			wantErr:  false,
		},
		{
			name:     "uppercase extension",
			file:     &storage.File{Data: []byte("x"), Filename: "shot.PNG", ContentType: "image/png"},
			required: true,
			wantErr:  false,
		},
		{
			name:     "disallowed extension",
			file:     &storage.File{Data: []byte("x"), Filename: "payload.exe", ContentType: "image/png"},
			required: true,
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name:     "allowed extension with wrong mime",
			file:     &storage.File{Data: []byte("x"), Filename: "shot.jpg", ContentType: "application/octet-stream"},
			required: true,
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name:     "over the size cap",
			file:     &storage.File{Data: make([]byte, 51*1024*1024), Filename: "big.jpg", ContentType: "image/jpeg"},
			required: true,
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkUpload(tc.file, uploadConfig(), "media", tc.required)
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, apperr.IsKind(err, tc.wantKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"neon, city, night", []string{"neon", "city", "night"}},
		{"  spaced ,  tags  ", []string{"spaced", "tags"}},
		{"single", []string{"single"}},
		{"trailing,,", []string{"trailing"}},
		{"", []string{}},
		{"   ", []string{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseTags(tc.in), "input %q", tc.in)
	}
}

func TestParseItemIDs(t *testing.T) {
	a := "64f1b2c3d4e5f6a7b8c9d0e1"
	b := "64f1b2c3d4e5f6a7b8c9d0e2"

	t.Run("json array", func(t *testing.T) {
		ids, err := parseItemIDs(`["` + a + `","` + b + `"]`)
		assert.NoError(t, err)
		assert.Len(t, ids, 2)
		assert.Equal(t, a, ids[0].Hex())
		assert.Equal(t, b, ids[1].Hex())
	})

	t.Run("comma separated", func(t *testing.T) {
		ids, err := parseItemIDs(a + ", " + b)
		assert.NoError(t, err)
		assert.Len(t, ids, 2)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := parseItemIDs("")
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("invalid hex", func(t *testing.T) {
		_, err := parseItemIDs(`["not-an-id"]`)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseItemIDs(`["` + a)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})
}

func TestReadingTimeMinutes(t *testing.T) {
	cases := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 0},
		{"short note", 10, 1},
		{"exactly one minute", 200, 1},
		{"just over one minute", 201, 2},
		{"long form", 1000, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := ""
			for i := 0; i < tc.words; i++ {
				content += "word "
			}
			assert.Equal(t, tc.want, ReadingTimeMinutes(content))
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	t.Run("free slug is kept as-is", func(t *testing.T) {
		s, err := uniqueSlug(context.Background(), "Neon Alley", primitive.NilObjectID,
			func(context.Context, string, primitive.ObjectID) (bool, error) {
				return false, nil
			})
		assert.NoError(t, err)
		assert.Equal(t, "neon-alley", s)
	})

	t.Run("collision gets a suffix", func(t *testing.T) {
		s, err := uniqueSlug(context.Background(), "Neon Alley", primitive.NilObjectID,
			func(_ context.Context, candidate string, _ primitive.ObjectID) (bool, error) {
				return candidate == "neon-alley", nil
			})
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(s, "neon-alley-"))
		assert.Len(t, s, len("neon-alley")+1+6)
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		_, err := uniqueSlug(context.Background(), "Neon Alley", primitive.NilObjectID,
			func(context.Context, string, primitive.ObjectID) (bool, error) {
				return false, errors.New("db down")
			})
		assert.Error(t, err)
	})
}

func TestCollectionInputValidate(t *testing.T) {
	valid := CollectionInput{
		Title:       "Best Neon Prompts",
		Description: "A curated set of neon city prompts.",
		Category:    "Photography",
	}
	assert.NoError(t, valid.validate())

	short := CollectionInput{Title: "ab", Description: "too short", Category: ""}
	err := short.validate()
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Len(t, apperr.FieldsOf(err), 3)
}
