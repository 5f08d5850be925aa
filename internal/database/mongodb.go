package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	UploadedFilesCollection      = "uploaded_files"
	SalesDataCollection          = "sales_data"
	BDCDataCollection            = "bdc_data"
	PersonDetailsCollection      = "person_details"
	CallSheetsCollection         = "call_sheets"
	PersonSnapshotsCollection    = "person_snapshots"
	DashboardSnapshotsCollection = "dashboard_snapshots"
	UsersCollection              = "users"
	ChatMessagesCollection       = "chatMessages"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(uri, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Set client options
	clientOptions := options.Client().ApplyURI(uri)

	// Connect to MongoDB
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the database
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	log.Println("Successfully connected to MongoDB!")

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (m *MongoDB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the period/name indexes every dashboard read filters on.
// Failures are logged; reads still work without them, only slower.
func (m *MongoDB) EnsureIndexes(ctx context.Context) {
	indexes := map[string][]mongo.IndexModel{
		SalesDataCollection: {{
			Keys:    bson.D{{Key: "period", Value: 1}, {Key: "sales_count", Value: -1}},
			Options: options.Index().SetName("idx_period_sales"),
		}, {
			Keys:    bson.D{{Key: "period", Value: 1}, {Key: "name_key", Value: 1}},
			Options: options.Index().SetName("idx_period_name"),
		}},
		BDCDataCollection: {{
			Keys:    bson.D{{Key: "period", Value: 1}, {Key: "shows", Value: -1}},
			Options: options.Index().SetName("idx_period_shows"),
		}, {
			Keys:    bson.D{{Key: "period", Value: 1}, {Key: "name_key", Value: 1}},
			Options: options.Index().SetName("idx_period_name"),
		}},
		PersonDetailsCollection: {{
			Keys:    bson.D{{Key: "period", Value: 1}, {Key: "name_key", Value: 1}},
			Options: options.Index().SetName("idx_period_name"),
		}},
		CallSheetsCollection: {{
			Keys:    bson.D{{Key: "period", Value: 1}, {Key: "assigned_to_key", Value: 1}, {Key: "seq", Value: 1}},
			Options: options.Index().SetName("idx_period_assignee"),
		}},
		UploadedFilesCollection: {{
			Keys:    bson.D{{Key: "processing_status", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_status_created"),
		}},
		UsersCollection: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_email").SetUnique(true),
		}},
	}

	for name, idx := range indexes {
		if _, err := m.Database.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			log.Printf("database: failed to create indexes on %s: %v", name, err)
		}
	}
}
