package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SNAPSHOT_MAX_AGE", "")
	t.Setenv("UPLOAD_WRITE_MODE", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg := Load()

	assert.Equal(t, 20*time.Minute, cfg.SnapshotMaxAge)
	assert.Equal(t, WriteModeReplace, cfg.UploadWriteMode)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "storedash", cfg.MongoDBDatabase)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SNAPSHOT_MAX_AGE", "5m")
	t.Setenv("UPLOAD_WRITE_MODE", "append")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.SnapshotMaxAge)
	assert.Equal(t, WriteModeAppend, cfg.UploadWriteMode)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoadFallsBackOnBadValues(t *testing.T) {
	t.Setenv("SNAPSHOT_MAX_AGE", "twenty minutes")
	t.Setenv("UPLOAD_WRITE_MODE", "merge")
	t.Setenv("MAX_UPLOAD_BYTES", "-1")

	cfg := Load()

	assert.Equal(t, 20*time.Minute, cfg.SnapshotMaxAge)
	assert.Equal(t, WriteModeReplace, cfg.UploadWriteMode)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
}
