package repository

import (
	"context"

	"storedash-be/internal/database"
	"storedash-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardSnapshotID is the single document id of the leaderboards snapshot.
const DashboardSnapshotID = "leaderboards"

// SnapshotRepository reads precomputed JSON snapshots. Snapshots are written by
// an external job; this side only reads them.
type SnapshotRepository struct {
	persons   *mongo.Collection
	dashboard *mongo.Collection
}

func NewSnapshotRepository(db *mongo.Database) *SnapshotRepository {
	return &SnapshotRepository{
		persons:   db.Collection(database.PersonSnapshotsCollection),
		dashboard: db.Collection(database.DashboardSnapshotsCollection),
	}
}

// GetPersonSnapshot looks up the snapshot keyed by the uppercased name.
// A missing snapshot is not an error.
func (r *SnapshotRepository) GetPersonSnapshot(ctx context.Context, name string) (*models.Snapshot, error) {
	return r.find(ctx, r.persons, models.NameKey(name))
}

func (r *SnapshotRepository) GetDashboardSnapshot(ctx context.Context) (*models.Snapshot, error) {
	return r.find(ctx, r.dashboard, DashboardSnapshotID)
}

func (r *SnapshotRepository) find(ctx context.Context, coll *mongo.Collection, id string) (*models.Snapshot, error) {
	var snap models.Snapshot
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&snap)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}
