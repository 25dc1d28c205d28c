package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mbg_backend/internals/constants"
	attendanceModel "mbg_backend/internals/features/attendance/attendance/model"
	correctionModel "mbg_backend/internals/features/attendance/correction/model"
	"mbg_backend/internals/helpers/notify"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.TempDir() + "/test.db?_busy_timeout=5000&_journal_mode=WAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&attendanceModel.AttendanceLogModel{},
		&correctionModel.AttendanceCorrectionModel{},
	))
	return db
}

func seedLog(t *testing.T, db *gorm.DB, ownerID uuid.UUID) attendanceModel.AttendanceLogModel {
	t.Helper()
	entry := attendanceModel.AttendanceLogModel{
		Timestamp: time.Now().UTC(),
		UserID:    ownerID,
		SchoolID:  uuid.New(),
	}
	require.NoError(t, db.Create(&entry).Error)
	return entry
}

func TestCreateCorrection_OwnerDerivedFromLog(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	logEntry := seedLog(t, db, owner)

	got, err := CreateCorrection(context.Background(), db, notify.LogNotifier{},
		owner, logEntry.ID, "jam pulang tidak tercatat")
	require.NoError(t, err)

	assert.Equal(t, owner, got.UserID)
	assert.Equal(t, logEntry.ID, got.AttendanceLogID)
	assert.Equal(t, correctionModel.CorrectionPending, got.Status)
}

func TestCreateCorrection_NotOwner(t *testing.T) {
	db := setupTestDB(t)
	logEntry := seedLog(t, db, uuid.New())

	_, err := CreateCorrection(context.Background(), db, notify.LogNotifier{},
		uuid.New(), logEntry.ID, "bukan punya saya")
	assert.ErrorIs(t, err, ErrNotLogOwner)
}

func TestCreateCorrection_LogNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreateCorrection(context.Background(), db, notify.LogNotifier{},
		uuid.New(), uuid.New(), "log hilang")
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestReviewCorrection_Approve(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	logEntry := seedLog(t, db, owner)
	correction, err := CreateCorrection(context.Background(), db, notify.LogNotifier{},
		owner, logEntry.ID, "salah tanggal")
	require.NoError(t, err)

	adminID := uuid.New()
	note := "bukti diterima"
	got, err := ReviewCorrection(context.Background(), db, notify.LogNotifier{},
		correction.ID, adminID, constants.RoleAdmin, &logEntry.SchoolID,
		CorrectionReview{Approve: true, Note: &note})
	require.NoError(t, err)

	assert.Equal(t, correctionModel.CorrectionApproved, got.Status)
	require.NotNil(t, got.AdminID)
	assert.Equal(t, adminID, *got.AdminID)
	require.NotNil(t, got.ReviewedAt)

	// Approval tidak menyentuh log absensi aslinya
	var stored attendanceModel.AttendanceLogModel
	require.NoError(t, db.First(&stored, "id = ?", logEntry.ID).Error)
	assert.Equal(t, logEntry.UserID, stored.UserID)
	assert.WithinDuration(t, logEntry.Timestamp, stored.Timestamp, time.Second)
}

func TestReviewCorrection_SecondReviewConflicts(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	logEntry := seedLog(t, db, owner)
	correction, err := CreateCorrection(context.Background(), db, notify.LogNotifier{},
		owner, logEntry.ID, "salah jam")
	require.NoError(t, err)

	_, err = ReviewCorrection(context.Background(), db, notify.LogNotifier{},
		correction.ID, uuid.New(), constants.RoleMasterAdmin, nil,
		CorrectionReview{Approve: false})
	require.NoError(t, err)

	_, err = ReviewCorrection(context.Background(), db, notify.LogNotifier{},
		correction.ID, uuid.New(), constants.RoleMasterAdmin, nil,
		CorrectionReview{Approve: true})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	// Keputusan pertama yang bertahan
	var stored correctionModel.AttendanceCorrectionModel
	require.NoError(t, db.First(&stored, "id = ?", correction.ID).Error)
	assert.Equal(t, correctionModel.CorrectionRejected, stored.Status)
}

func TestReviewCorrection_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := ReviewCorrection(context.Background(), db, notify.LogNotifier{},
		uuid.New(), uuid.New(), constants.RoleMasterAdmin, nil,
		CorrectionReview{Approve: true})
	assert.ErrorIs(t, err, ErrCorrectionNotFound)
}

func TestReviewCorrection_ConcurrentExactlyOneWins(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	logEntry := seedLog(t, db, owner)
	correction, err := CreateCorrection(context.Background(), db, notify.LogNotifier{},
		owner, logEntry.ID, "rebutan review")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ReviewCorrection(context.Background(), db, notify.LogNotifier{},
				correction.ID, uuid.New(), constants.RoleMasterAdmin, nil,
				CorrectionReview{Approve: i == 0})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
}

func TestReviewCorrection_OtherSchoolAdminForbidden(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	logEntry := seedLog(t, db, owner)
	correction, err := CreateCorrection(context.Background(), db, notify.LogNotifier{},
		owner, logEntry.ID, "salah tanggal")
	require.NoError(t, err)

	otherSchool := uuid.New()
	_, err = ReviewCorrection(context.Background(), db, notify.LogNotifier{},
		correction.ID, uuid.New(), constants.RoleAdmin, &otherSchool,
		CorrectionReview{Approve: true})
	assert.ErrorIs(t, err, ErrSchoolScope)

	// Scope check kalah berarti status tidak berubah
	var stored correctionModel.AttendanceCorrectionModel
	require.NoError(t, db.First(&stored, "id = ?", correction.ID).Error)
	assert.Equal(t, correctionModel.CorrectionPending, stored.Status)
}

func TestReviewCorrection_MasterAdminBypassesScope(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	logEntry := seedLog(t, db, owner)
	correction, err := CreateCorrection(context.Background(), db, notify.LogNotifier{},
		owner, logEntry.ID, "salah jam")
	require.NoError(t, err)

	got, err := ReviewCorrection(context.Background(), db, notify.LogNotifier{},
		correction.ID, uuid.New(), constants.RoleMasterAdmin, nil,
		CorrectionReview{Approve: true})
	require.NoError(t, err)
	assert.Equal(t, correctionModel.CorrectionApproved, got.Status)
}
