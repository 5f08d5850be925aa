package repository

import (
	"context"
	"time"

	"storedash-be/internal/database"
	"storedash-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UploadRepository stores the uploaded_files audit records
type UploadRepository struct {
	collection *mongo.Collection
}

func NewUploadRepository(db *mongo.Database) *UploadRepository {
	return &UploadRepository{
		collection: db.Collection(database.UploadedFilesCollection),
	}
}

// Create inserts file with status processing and assigns its ID.
func (r *UploadRepository) Create(ctx context.Context, file *models.UploadedFile) error {
	file.CreatedAt = time.Now()
	file.UpdatedAt = file.CreatedAt
	file.ProcessingStatus = models.UploadStatusProcessing
	if file.ID.IsZero() {
		file.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, file)
	return err
}

func (r *UploadRepository) UpdateStatus(ctx context.Context, fileID, status string) error {
	oid, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"processing_status": status,
			"updated_at":        time.Now(),
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UploadRepository) FindByID(ctx context.Context, fileID string) (*models.UploadedFile, error) {
	oid, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, err
	}

	var file models.UploadedFile
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// FailStale marks files still processing since before cutoff as failed and
// returns how many were changed.
func (r *UploadRepository) FailStale(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"processing_status": models.UploadStatusProcessing,
		"created_at":        bson.M{"$lt": cutoff},
	}
	update := bson.M{
		"$set": bson.M{
			"processing_status": models.UploadStatusFailed,
			"updated_at":        time.Now(),
		},
	}

	res, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
