package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int { return &v }

func TestBuildPostFilter_EmptySearchMatchesAll(t *testing.T) {
	query := buildPostFilter(PostFilter{})

	assert.Len(t, query, 1)
	assert.Equal(t, primitive.Regex{Pattern: "", Options: "i"}, query["title"])
}

func TestBuildPostFilter_SearchAndCategory(t *testing.T) {
	query := buildPostFilter(PostFilter{Search: "beach", Category: "Cleanup"})

	assert.Equal(t, primitive.Regex{Pattern: "beach", Options: "i"}, query["title"])
	assert.Equal(t, primitive.Regex{Pattern: "Cleanup", Options: "i"}, query["category"])
	assert.NotContains(t, query, "numberOfVolunteer")
}

func TestBuildPostFilter_VolunteerBounds(t *testing.T) {
	tests := []struct {
		name   string
		filter PostFilter
		want   bson.M
	}{
		{"min only", PostFilter{MinVolunteers: intPtr(2)}, bson.M{"$gte": 2}},
		{"max only", PostFilter{MaxVolunteers: intPtr(8)}, bson.M{"$lte": 8}},
		{"both combined", PostFilter{MinVolunteers: intPtr(2), MaxVolunteers: intPtr(8)}, bson.M{"$gte": 2, "$lte": 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := buildPostFilter(tt.filter)
			assert.Equal(t, tt.want, query["numberOfVolunteer"])
		})
	}
}

func TestBuildCountFilter_IgnoresEverythingButSearch(t *testing.T) {
	query := buildCountFilter("beach")

	assert.Equal(t, bson.M{"title": primitive.Regex{Pattern: "beach", Options: "i"}}, query)
}

func TestBuildSort(t *testing.T) {
	tests := []struct {
		name string
		sort PostSort
		want bson.D
	}{
		{"defaults to deadline ascending", PostSort{}, bson.D{{Key: "deadline", Value: 1}}},
		{"desc maps to descending", PostSort{Field: "title", Order: "desc"}, bson.D{{Key: "title", Value: -1}}},
		{"anything else is ascending", PostSort{Field: "title", Order: "descending"}, bson.D{{Key: "title", Value: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildSort(tt.sort))
		})
	}
}

func TestBuildFindOptions_Pagination(t *testing.T) {
	opts := buildFindOptions(PostSort{}, PostPage{Page: 3, Size: 10})

	assert.Equal(t, int64(20), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
}

func TestBuildFindOptions_ClampsNegativeSkip(t *testing.T) {
	opts := buildFindOptions(PostSort{}, PostPage{Page: 0, Size: 10})

	assert.Equal(t, int64(0), *opts.Skip)
}
