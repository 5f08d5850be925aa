package services

import (
	"context"

	"storedash-be/internal/models"
)

// PerformanceStore is the persistence gateway for uploaded performance data.
type PerformanceStore interface {
	SaveSales(ctx context.Context, fileID, period string, records []models.SalesRecord) error
	SaveBDC(ctx context.Context, fileID, period string, records []models.BdcRecord) error
	SavePersonDetail(ctx context.Context, fileID, period string, detail models.PersonDetail) error
	SaveCallSheets(ctx context.Context, fileID, period, assignedTo string, rows []models.CallSheetRow) error

	GetLeaderboards(ctx context.Context, period string) (*models.Leaderboards, error)
	GetPersonDetail(ctx context.Context, name, period string) (*models.PersonDetail, error)
	GetCallSheets(ctx context.Context, name, period string) ([]models.CallSheetRow, error)
}

type UploadStore interface {
	Create(ctx context.Context, file *models.UploadedFile) error
	UpdateStatus(ctx context.Context, fileID, status string) error
	FindByID(ctx context.Context, fileID string) (*models.UploadedFile, error)
}

// SnapshotStore returns nil, nil when a snapshot does not exist.
type SnapshotStore interface {
	GetPersonSnapshot(ctx context.Context, name string) (*models.Snapshot, error)
	GetDashboardSnapshot(ctx context.Context) (*models.Snapshot, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
	UpdateRole(ctx context.Context, userID, role string) error
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error
	AddFCMToken(ctx context.Context, userID, token string) error
	RemoveFCMTokens(ctx context.Context, userID string, tokens []string) error
}

type ChatStore interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
}
