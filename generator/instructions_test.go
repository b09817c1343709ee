package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"prompt-gallery/generator"
)

func TestBuildGenerateInstructionSeparatesSceneAndStyle(t *testing.T) {
	system, user := generator.BuildGenerateInstruction(generator.GenerateInput{
		MediaType:    "image",
		TargetEngine: "Midjourney v6",
		AspectRatio:  "16:9",
		Subject:      "a lone astronaut",
		Setting:      "abandoned space station",
		Lens:         "85mm",
		RenderEngine: "Octane",
		Mood:         "melancholic",
	})

	assert.Contains(t, user, "Subject: a lone astronaut")
	assert.Contains(t, user, "Setting: abandoned space station")
	assert.Contains(t, user, "SCENE ELEMENTS")
	assert.Contains(t, user, "STYLE METADATA")
	assert.Contains(t, user, "Lens: 85mm")
	assert.Contains(t, user, "Render Engine: Octane")

	assert.Contains(t, system, "--ar 16:9 --v 6.0")
	assert.Contains(t, system, "Target Engine: Midjourney v6")
	assert.Contains(t, system, `"negative_prompt"`)
}

func TestBuildGenerateInstructionSkipsEmptyAndNoneFields(t *testing.T) {
	_, user := generator.BuildGenerateInstruction(generator.GenerateInput{
		Subject: "a castle",
		Weather: "None",
	})

	assert.NotContains(t, user, "Weather")
	assert.NotContains(t, user, "Lighting")
}

func TestBuildGenerateInstructionVideoAddsCameraMotion(t *testing.T) {
	_, user := generator.BuildGenerateInstruction(generator.GenerateInput{
		MediaType:    "video",
		Subject:      "a chase scene",
		CameraMotion: "tracking shot",
	})
	assert.Contains(t, user, "Camera Motion: tracking shot")

	_, imageUser := generator.BuildGenerateInstruction(generator.GenerateInput{
		MediaType:    "image",
		Subject:      "a chase scene",
		CameraMotion: "tracking shot",
	})
	assert.NotContains(t, imageUser, "Camera Motion")
}

func TestBuildEnhanceInstructionEngineRules(t *testing.T) {
	cases := []struct {
		engine    string
		mediaType string
		marker    string
	}{
		{"Midjourney v6", "image", "--v 6.0"},
		{"DALL-E 3", "image", "natural language"},
		{"Stable Diffusion XL", "image", "Danbooru"},
		{"Flux.1 Pro", "image", "Danbooru"},
		{"", "video", "60fps"},
	}
	for _, tc := range cases {
		t.Run(tc.engine+"/"+tc.mediaType, func(t *testing.T) {
			out := generator.BuildEnhanceInstruction(generator.EnhanceInput{
				TargetEngine:     tc.engine,
				MediaType:        tc.mediaType,
				EnhancementStyle: "Cinematic",
			})
			assert.Contains(t, out, tc.marker)
			assert.Contains(t, out, "[Cinematic]")
		})
	}
}

func TestBuildNegativeInstruction(t *testing.T) {
	out := generator.BuildNegativeInstruction(generator.NegativeInput{
		MediaType:    "video",
		TargetEngine: "Stable Diffusion XL",
		AvoidStyle:   "Cartoon & Anime",
		BaseContext:  "product shot",
		SpecificBans: "blurry hands",
	})

	assert.Contains(t, out, "video artifacts")
	assert.Contains(t, out, "worst quality, low quality:1.4")
	assert.Contains(t, out, "anime, cartoon")
	assert.Contains(t, out, "product shot")
	assert.Contains(t, out, "blurry hands")
}

func TestBuildNegativeInstructionDefaults(t *testing.T) {
	out := generator.BuildNegativeInstruction(generator.NegativeInput{MediaType: "image"})

	assert.Contains(t, out, "image artifacts")
	assert.Contains(t, out, "General Scene")
	assert.True(t, strings.Count(out, "None specified.") >= 2)
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, generator.StripFences(tc.in))
	}
}
