package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"storedash-be/internal/models"
	"storedash-be/internal/processor"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UploadWorkflow holds the process-wide upload flags. Only one upload may run
// at a time; a second Begin fails with ErrUploadInProgress.
type UploadWorkflow struct {
	mu         sync.Mutex
	inProgress bool
	mapping    bool
	filename   string
	step       string
}

// OpenMapping marks that an operator is choosing sheets for filename.
func (w *UploadWorkflow) OpenMapping(filename string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inProgress {
		return
	}
	w.mapping = true
	w.filename = filename
}

func (w *UploadWorkflow) Begin(filename string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inProgress {
		return ErrUploadInProgress
	}
	w.inProgress = true
	w.mapping = false
	w.filename = filename
	w.step = "starting"
	return nil
}

func (w *UploadWorkflow) SetStep(step string) {
	w.mu.Lock()
	w.step = step
	w.mu.Unlock()
}

// End clears every flag. It is also the operator's force-clear.
func (w *UploadWorkflow) End() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.inProgress = false
	w.mapping = false
	w.filename = ""
	w.step = ""
}

func (w *UploadWorkflow) Status() models.UploadStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return models.UploadStatus{
		InProgress: w.inProgress,
		Mapping:    w.mapping,
		Filename:   w.filename,
		Step:       w.step,
	}
}

// UploadRequest is one operator upload with the sheets already parsed.
type UploadRequest struct {
	Filename   string
	FileSize   int64
	UploadedBy string
	Role       string
	Workbook   *processor.Workbook
	Mapping    models.SheetMapping
}

type UploadService struct {
	perf     PerformanceStore
	uploads  UploadStore
	workflow *UploadWorkflow
	now      func() time.Time
}

func NewUploadService(perf PerformanceStore, uploads UploadStore) *UploadService {
	return &UploadService{
		perf:     perf,
		uploads:  uploads,
		workflow: &UploadWorkflow{},
		now:      time.Now,
	}
}

func (s *UploadService) Status() models.UploadStatus {
	return s.workflow.Status()
}

// Reset force-clears a stuck upload flag.
func (s *UploadService) Reset(role string) error {
	if !models.IsAdminRole(role) {
		return ErrForbidden
	}
	s.workflow.End()
	return nil
}

// GetUpload returns the stored record of one upload, including its
// processing status.
func (s *UploadService) GetUpload(ctx context.Context, role, fileID string) (*models.UploadedFile, error) {
	if !models.IsAdminRole(role) {
		return nil, ErrForbidden
	}

	file, err := s.uploads.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex) {
			return nil, ErrUploadNotFound
		}
		return nil, fmt.Errorf("find upload: %w", err)
	}
	return file, nil
}

// Preview summarizes each sheet and suggests a mapping. Nothing is written.
func (s *UploadService) Preview(role, filename string, wb *processor.Workbook) (*models.UploadPreview, error) {
	if !models.IsAdminRole(role) {
		return nil, ErrForbidden
	}

	preview := &models.UploadPreview{
		Filename:         filename,
		Sheets:           make([]models.SheetSummary, 0, len(wb.Names)),
		SuggestedMapping: processor.SuggestMapping(wb),
	}
	for _, name := range wb.Names {
		columns := wb.Columns[name]
		if columns == nil {
			columns = []string{}
		}
		preview.Sheets = append(preview.Sheets, models.SheetSummary{
			Name:     name,
			RowCount: len(wb.Sheets[name]),
			Columns:  columns,
		})
	}

	s.workflow.OpenMapping(filename)
	return preview, nil
}

// Process runs the upload pipeline: file record, leaderboards, then each
// person's details and call sheets one at a time. Any error aborts the batch
// and marks the file failed.
func (s *UploadService) Process(ctx context.Context, req UploadRequest) (*models.UploadResult, error) {
	if !models.IsAdminRole(req.Role) {
		return nil, ErrForbidden
	}
	if err := processor.ValidateMapping(req.Workbook, req.Mapping); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}
	if err := s.workflow.Begin(req.Filename); err != nil {
		return nil, err
	}
	defer s.workflow.End()

	period := processor.PeriodFromTime(s.now())
	file := &models.UploadedFile{
		Filename:   req.Filename,
		UploadedBy: req.UploadedBy,
		FileSize:   req.FileSize,
		Period:     period,
	}

	s.workflow.SetStep("saving file record")
	if err := s.uploads.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("save file record: %w", err)
	}
	fileID := file.ID.Hex()

	result, err := s.run(ctx, fileID, period, processor.Resolve(req.Workbook, req.Mapping))
	if err != nil {
		s.markFailed(ctx, fileID)
		return nil, err
	}

	if err := s.uploads.UpdateStatus(ctx, fileID, models.UploadStatusCompleted); err != nil {
		return nil, fmt.Errorf("update file status: %w", err)
	}

	log.Printf("upload: %s processed as %s (%d sales, %d bdc, %d people)",
		req.Filename, period, result.SalesCount, result.BDCCount, result.PeopleCount)
	return result, nil
}

func (s *UploadService) run(ctx context.Context, fileID, period string, sheets processor.Sheets) (*models.UploadResult, error) {
	lb := processor.BuildLeaderboards(sheets)

	s.workflow.SetStep("saving sales")
	if err := s.perf.SaveSales(ctx, fileID, period, lb.Sales); err != nil {
		return nil, fmt.Errorf("save sales: %w", err)
	}

	s.workflow.SetStep("saving bdc")
	if err := s.perf.SaveBDC(ctx, fileID, period, lb.BDC); err != nil {
		return nil, fmt.Errorf("save bdc: %w", err)
	}

	people := processor.People(lb)
	for i, name := range people {
		s.workflow.SetStep(fmt.Sprintf("saving person %d of %d", i+1, len(people)))

		detail := processor.BuildPersonDetail(sheets.Details, name)
		if err := s.perf.SavePersonDetail(ctx, fileID, period, detail); err != nil {
			return nil, fmt.Errorf("save details for %s: %w", name, err)
		}

		rows := processor.ExtractCallSheets(sheets.Calls, name)
		if len(rows) == 0 {
			continue
		}
		if err := s.perf.SaveCallSheets(ctx, fileID, period, name, rows); err != nil {
			return nil, fmt.Errorf("save call sheets for %s: %w", name, err)
		}
	}

	return &models.UploadResult{
		FileID:      fileID,
		Period:      period,
		SalesCount:  len(lb.Sales),
		BDCCount:    len(lb.BDC),
		PeopleCount: len(people),
	}, nil
}

func (s *UploadService) markFailed(ctx context.Context, fileID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.uploads.UpdateStatus(ctx, fileID, models.UploadStatusFailed); err != nil {
		log.Printf("upload: failed to mark file %s failed: %v", fileID, err)
	}
}
