package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"prompt-gallery/apperr"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.NewValidation("title"), http.StatusBadRequest},
		{"upload required", apperr.NewUploadRequired("media"), http.StatusBadRequest},
		{"not found", apperr.NewNotFound("item"), http.StatusNotFound},
		{"forbidden", apperr.NewForbidden(), http.StatusForbidden},
		{"upstream", apperr.NewUpstream("upload", errors.New("boom")), http.StatusBadGateway},
		{"rate limited", apperr.NewRateLimited(), http.StatusTooManyRequests},
		{"unknown", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", apperr.NewNotFound("article")), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, apperr.HTTPStatus(tc.err))
		})
	}
}

func TestValidationEnumeratesFields(t *testing.T) {
	err := apperr.NewValidation("title", "prompt_text", "topic")

	assert.Equal(t, []string{"title", "prompt_text", "topic"}, apperr.FieldsOf(err))
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "prompt_text")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestFieldsOfNonValidation(t *testing.T) {
	assert.Nil(t, apperr.FieldsOf(errors.New("plain")))
	assert.Nil(t, apperr.FieldsOf(apperr.NewNotFound("item")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.NewUpstream("media upload", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "media upload failed")
}
