package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/competeconnect/competition-api/internal/core/domain"
	"github.com/competeconnect/competition-api/internal/core/ports"
)

const searchEventsCollection = "search_events"

// searchEvent is the stored shape of one completed search.
type searchEvent struct {
	WorkspaceID string               `bson:"workspace_id"`
	UserID      string               `bson:"user_id,omitempty"`
	Seq         int64                `bson:"seq"`
	Filters     domain.SearchFilters `bson:"filters"`
	Outcome     string               `bson:"outcome"`
	Count       int                  `bson:"count"`
	Reason      string               `bson:"reason,omitempty"`
	IssuedAt    time.Time            `bson:"issued_at"`
	DurationMS  int64                `bson:"duration_ms"`
	RecordedAt  time.Time            `bson:"recorded_at"`
}

func newSearchEvent(rec ports.SearchRecord, now time.Time) searchEvent {
	return searchEvent{
		WorkspaceID: rec.WorkspaceID,
		UserID:      rec.UserID,
		Seq:         int64(rec.Seq),
		Filters:     rec.Filters,
		Outcome:     string(rec.Outcome),
		Count:       rec.Count,
		Reason:      rec.Reason,
		IssuedAt:    rec.IssuedAt.UTC(),
		DurationMS:  rec.Duration.Milliseconds(),
		RecordedAt:  now.UTC(),
	}
}

// SearchLogRepository implements ports.SearchLog on the search_events
// collection.
type SearchLogRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewSearchLogRepository(db *mongo.Database) *SearchLogRepository {
	return &SearchLogRepository{
		coll: db.Collection(searchEventsCollection),
		now:  time.Now,
	}
}

// EnsureIndexes creates the lookup indexes used by reporting queries.
// It is safe to call on every start.
func (r *SearchLogRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "workspace_id", Value: 1}, {Key: "seq", Value: -1}}},
		{Keys: bson.D{{Key: "filters.field", Value: 1}, {Key: "issued_at", Value: -1}}},
		{Keys: bson.D{{Key: "outcome", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create search_events indexes: %w", err)
	}
	return nil
}

func (r *SearchLogRepository) Record(ctx context.Context, rec ports.SearchRecord) error {
	if _, err := r.coll.InsertOne(ctx, newSearchEvent(rec, r.now())); err != nil {
		return fmt.Errorf("insert search event: %w", err)
	}
	return nil
}
