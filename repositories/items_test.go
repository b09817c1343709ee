package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-gallery/repositories"
)

func TestBuildListFilter(t *testing.T) {
	cases := []struct {
		name string
		opt  repositories.ListItemsOptions
		want bson.M
	}{
		{
			name: "no constraints",
			opt:  repositories.ListItemsOptions{},
			want: bson.M{},
		},
		{
			name: "All sentinel means unconstrained",
			opt: repositories.ListItemsOptions{
				Model:     "All",
				Industry:  "All",
				Topic:     "All",
				MediaType: "All",
			},
			want: bson.M{},
		},
		{
			name: "categorical filters AND together",
			opt: repositories.ListItemsOptions{
				Model:    "Midjourney v6",
				Industry: "Gaming",
				Topic:    "Characters",
			},
			want: bson.M{
				"ai_model": "Midjourney v6",
				"industry": "Gaming",
				"topic":    "Characters",
			},
		},
		{
			name: "media type and trending",
			opt: repositories.ListItemsOptions{
				MediaType:    "video",
				TrendingOnly: true,
			},
			want: bson.M{
				"media_type":  "video",
				"is_trending": true,
			},
		},
		{
			name: "search uses the text index",
			opt:  repositories.ListItemsOptions{Search: "neon city"},
			want: bson.M{"$text": bson.M{"$search": "neon city"}},
		},
		{
			name: "mixed",
			opt: repositories.ListItemsOptions{
				Model:        "DALL-E 3",
				Industry:     "All",
				TrendingOnly: true,
				Search:       "portrait",
			},
			want: bson.M{
				"ai_model":    "DALL-E 3",
				"is_trending": true,
				"$text":       bson.M{"$search": "portrait"},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, repositories.BuildListFilter(tc.opt))
		})
	}
}

func TestItemOfDayPipeline(t *testing.T) {
	id := primitive.NewObjectID()
	pipeline := repositories.ItemOfDayPipeline(id)

	// A single stage keeps the flag move one statement: concurrent
	// writers cannot observe two flagged items.
	assert.Len(t, pipeline, 1)

	stage := pipeline[0]
	assert.Len(t, stage, 1)
	assert.Equal(t, "$set", stage[0].Key)

	set, ok := stage[0].Value.(bson.M)
	assert.True(t, ok)
	assert.Len(t, set, 1)
	assert.Equal(t, bson.M{"$eq": bson.A{"$_id", id}}, set["is_item_of_day"])
}

func TestItemOfDayPipelineTargetsOnlyTheChosenID(t *testing.T) {
	a := repositories.ItemOfDayPipeline(primitive.NewObjectID())
	b := repositories.ItemOfDayPipeline(primitive.NewObjectID())
	assert.NotEqual(t, a, b)
}

func TestItemOfDayFilters(t *testing.T) {
	want := []bson.M{
		{"is_item_of_day": true},
		{"is_trending": true},
		{},
	}
	assert.Equal(t, want, repositories.ItemOfDayFilters(),
		"fallback order is flagged, then trending, then anything")
}
