package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
)

const sessionEventsCollection = "session_events"

// SessionEventRepository implements ports.SessionEventRepository using MongoDB.
type SessionEventRepository struct {
	db  *mongo.Database
	now func() time.Time
}

var _ ports.SessionEventRepository = (*SessionEventRepository)(nil)

// NewSessionEventRepository creates a new SessionEventRepository.
func NewSessionEventRepository(db *mongo.Database) *SessionEventRepository {
	return &SessionEventRepository{db: db, now: time.Now}
}

// EnsureIndexes creates the lookup index and, when retention is positive, the
// TTL index that expires audit documents.
func (r *SessionEventRepository) EnsureIndexes(ctx context.Context, retention time.Duration) error {
	models := []mongo.IndexModel{{
		Keys:    bson.D{{Key: "session_id", Value: 1}, {Key: "timestamp", Value: 1}},
		Options: options.Index().SetName("session_id_timestamp"),
	}}
	if retention > 0 {
		models = append(models, mongo.IndexModel{
			Keys:    bson.D{{Key: "recorded_at", Value: 1}},
			Options: options.Index().SetName("recorded_at_ttl").SetExpireAfterSeconds(int32(retention / time.Second)),
		})
	}

	if _, err := r.db.Collection(sessionEventsCollection).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("session_events indexes: %w", err)
	}
	return nil
}

// InsertEvent persists a session transition to the session_events audit collection.
func (r *SessionEventRepository) InsertEvent(ctx context.Context, event *domain.SessionEvent) error {
	if _, err := r.db.Collection(sessionEventsCollection).InsertOne(ctx, eventDocument(event, r.now())); err != nil {
		return fmt.Errorf("insert session event: %w", err)
	}
	return nil
}

func eventDocument(event *domain.SessionEvent, recordedAt time.Time) bson.M {
	doc := bson.M{
		"session_id":  event.SessionID,
		"kind":        string(event.Kind),
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": recordedAt.UTC(),
	}
	if event.Role != domain.RoleNone {
		doc["role"] = string(event.Role)
	}
	if event.Username != "" {
		doc["username"] = event.Username
	}
	return doc
}
