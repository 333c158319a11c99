package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostFilter carries the listing filter parameters. Min/Max are nil
// when the caller did not supply a parseable integer.
type PostFilter struct {
	Search        string
	Category      string
	MinVolunteers *int
	MaxVolunteers *int
}

// PostSort is a single field/direction pair. An empty field sorts by
// deadline; any order other than "desc" sorts ascending.
type PostSort struct {
	Field string
	Order string
}

// PostPage is 1-based pagination.
type PostPage struct {
	Page int64
	Size int64
}

// buildPostFilter translates a PostFilter into a Mongo query document.
// The title regex is always present, so an empty search matches all.
func buildPostFilter(f PostFilter) bson.M {
	query := bson.M{
		"title": primitive.Regex{Pattern: f.Search, Options: "i"},
	}
	if f.Category != "" {
		query["category"] = primitive.Regex{Pattern: f.Category, Options: "i"}
	}
	if f.MinVolunteers != nil || f.MaxVolunteers != nil {
		bounds := bson.M{}
		if f.MinVolunteers != nil {
			bounds["$gte"] = *f.MinVolunteers
		}
		if f.MaxVolunteers != nil {
			bounds["$lte"] = *f.MaxVolunteers
		}
		query["numberOfVolunteer"] = bounds
	}
	return query
}

// buildCountFilter honors only the title search. Category and
// volunteer bounds are deliberately ignored: the count feeds the
// pagination UI and clients rely on this exact behavior.
func buildCountFilter(search string) bson.M {
	return bson.M{
		"title": primitive.Regex{Pattern: search, Options: "i"},
	}
}

// buildSort maps the sort descriptor to a Mongo sort document.
func buildSort(s PostSort) bson.D {
	field := s.Field
	if field == "" {
		field = "deadline"
	}
	order := 1
	if s.Order == "desc" {
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}

// buildFindOptions combines sort and pagination. skip = (page-1)*size,
// clamped at zero so a page of 0 or less reads from the start instead
// of failing in the driver.
func buildFindOptions(s PostSort, p PostPage) *options.FindOptions {
	skip := (p.Page - 1) * p.Size
	if skip < 0 {
		skip = 0
	}
	return options.Find().SetSkip(skip).SetLimit(p.Size).SetSort(buildSort(s))
}
