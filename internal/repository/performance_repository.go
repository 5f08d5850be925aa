package repository

import (
	"context"
	"time"

	"storedash-be/config"
	"storedash-be/internal/database"
	"storedash-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PerformanceRepository persists the period-partitioned leaderboard, person
// detail and call sheet records. In replace mode a re-upload supersedes the
// previous rows for the same (person, period); in append mode rows accumulate.
type PerformanceRepository struct {
	sales      *mongo.Collection
	bdc        *mongo.Collection
	details    *mongo.Collection
	callSheets *mongo.Collection
	writeMode  string
}

func NewPerformanceRepository(db *mongo.Database, writeMode string) *PerformanceRepository {
	return &PerformanceRepository{
		sales:      db.Collection(database.SalesDataCollection),
		bdc:        db.Collection(database.BDCDataCollection),
		details:    db.Collection(database.PersonDetailsCollection),
		callSheets: db.Collection(database.CallSheetsCollection),
		writeMode:  writeMode,
	}
}

func (r *PerformanceRepository) replacing() bool {
	return r.writeMode != config.WriteModeAppend
}

func personFilter(name, period string) bson.M {
	return bson.M{"name_key": models.NameKey(name), "period": period}
}

// SaveSales writes one document per record, in leaderboard order. In replace
// mode a name repeated within records keeps only its first (highest) row.
func (r *PerformanceRepository) SaveSales(ctx context.Context, fileID, period string, records []models.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	seen := make(map[string]bool, len(records))
	writes := make([]mongo.WriteModel, 0, len(records))
	for i, rec := range records {
		doc := models.NewSalesDocument(fileID, period, rec, now)
		doc.Rank = i
		if r.replacing() {
			if seen[doc.NameKey] {
				continue
			}
			seen[doc.NameKey] = true
			writes = append(writes, mongo.NewReplaceOneModel().
				SetFilter(personFilter(rec.Name, period)).
				SetReplacement(doc).
				SetUpsert(true))
		} else {
			writes = append(writes, mongo.NewInsertOneModel().SetDocument(doc))
		}
	}

	_, err := r.sales.BulkWrite(ctx, writes)
	return err
}

func (r *PerformanceRepository) SaveBDC(ctx context.Context, fileID, period string, records []models.BdcRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	seen := make(map[string]bool, len(records))
	writes := make([]mongo.WriteModel, 0, len(records))
	for i, rec := range records {
		doc := models.NewBdcDocument(fileID, period, rec, now)
		doc.Rank = i
		if r.replacing() {
			if seen[doc.NameKey] {
				continue
			}
			seen[doc.NameKey] = true
			writes = append(writes, mongo.NewReplaceOneModel().
				SetFilter(personFilter(rec.Name, period)).
				SetReplacement(doc).
				SetUpsert(true))
		} else {
			writes = append(writes, mongo.NewInsertOneModel().SetDocument(doc))
		}
	}

	_, err := r.bdc.BulkWrite(ctx, writes)
	return err
}

func (r *PerformanceRepository) SavePersonDetail(ctx context.Context, fileID, period string, detail models.PersonDetail) error {
	doc := models.NewPersonDetailDocument(fileID, period, detail)
	if !r.replacing() {
		_, err := r.details.InsertOne(ctx, doc)
		return err
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.details.ReplaceOne(ctx, personFilter(detail.Name, period), doc, opts)
	return err
}

// SaveCallSheets stores rows assigned to assignedTo. Replace mode first drops
// that person's rows for the period.
func (r *PerformanceRepository) SaveCallSheets(ctx context.Context, fileID, period, assignedTo string, rows []models.CallSheetRow) error {
	if r.replacing() {
		filter := bson.M{"assigned_to_key": models.NameKey(assignedTo), "period": period}
		if _, err := r.callSheets.DeleteMany(ctx, filter); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(rows))
	for i, row := range rows {
		docs = append(docs, models.NewCallSheetDocument(fileID, period, assignedTo, i, row))
	}
	_, err := r.callSheets.InsertMany(ctx, docs)
	return err
}

// GetLeaderboards returns both boards for period, highest count first.
func (r *PerformanceRepository) GetLeaderboards(ctx context.Context, period string) (*models.Leaderboards, error) {
	salesOpts := options.Find().SetSort(bson.D{
		{Key: "sales_count", Value: -1},
		{Key: "created_at", Value: -1},
		{Key: "rank", Value: 1},
	})
	cursor, err := r.sales.Find(ctx, bson.M{"period": period}, salesOpts)
	if err != nil {
		return nil, err
	}
	var salesDocs []models.SalesDocument
	if err = cursor.All(ctx, &salesDocs); err != nil {
		return nil, err
	}

	bdcOpts := options.Find().SetSort(bson.D{
		{Key: "shows", Value: -1},
		{Key: "created_at", Value: -1},
		{Key: "rank", Value: 1},
	})
	cursor, err = r.bdc.Find(ctx, bson.M{"period": period}, bdcOpts)
	if err != nil {
		return nil, err
	}
	var bdcDocs []models.BdcDocument
	if err = cursor.All(ctx, &bdcDocs); err != nil {
		return nil, err
	}

	lb := &models.Leaderboards{
		Sales:  make([]models.SalesRecord, 0, len(salesDocs)),
		BDC:    make([]models.BdcRecord, 0, len(bdcDocs)),
		Period: period,
	}
	for _, d := range salesDocs {
		lb.Sales = append(lb.Sales, d.Record())
	}
	for _, d := range bdcDocs {
		lb.BDC = append(lb.BDC, d.Record())
	}
	return lb, nil
}

// GetPersonDetail returns the newest detail for name in period, or nil.
func (r *PerformanceRepository) GetPersonDetail(ctx context.Context, name, period string) (*models.PersonDetail, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var doc models.PersonDetailDocument
	err := r.details.FindOne(ctx, personFilter(name, period), opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	detail := doc.Detail()
	return &detail, nil
}

// GetCallSheets returns every row assigned to name in period, in upload order.
func (r *PerformanceRepository) GetCallSheets(ctx context.Context, name, period string) ([]models.CallSheetRow, error) {
	filter := bson.M{"assigned_to_key": models.NameKey(name), "period": period}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "seq", Value: 1}})

	cursor, err := r.callSheets.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.CallSheetDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	rows := make([]models.CallSheetRow, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, d.Row())
	}
	return rows, nil
}
