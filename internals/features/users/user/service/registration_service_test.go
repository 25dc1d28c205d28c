package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mbg_backend/internals/constants"
	userModel "mbg_backend/internals/features/users/user/model"
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
		&userModel.UserModel{},
		&userModel.RegistrationAuditModel{},
	))
	return db
}

func seedPendingSiswa(t *testing.T, db *gorm.DB, schoolID uuid.UUID) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		NamaLengkap:        "Siswa Uji",
		Email:              uuid.NewString() + "@test.local",
		Password:           "hash",
		Role:               constants.RoleSiswa,
		SchoolID:           &schoolID,
		RegistrationStatus: userModel.RegistrationPending,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestDecideRegistration_Approve(t *testing.T) {
	db := setupTestDB(t)
	schoolID := uuid.New()
	subject := seedPendingSiswa(t, db, schoolID)
	adminID := uuid.New()

	got, err := DecideRegistration(context.Background(), db, notify.LogNotifier{},
		subject.ID, adminID, constants.RoleAdmin, &schoolID,
		RegistrationDecision{Approve: true})
	require.NoError(t, err)
	assert.Equal(t, userModel.RegistrationApproved, got.RegistrationStatus)

	var stored userModel.UserModel
	require.NoError(t, db.First(&stored, "id = ?", subject.ID).Error)
	assert.Equal(t, userModel.RegistrationApproved, stored.RegistrationStatus)

	// Tepat satu baris audit
	var audits []userModel.RegistrationAuditModel
	require.NoError(t, db.Where("user_id = ?", subject.ID).Find(&audits).Error)
	require.Len(t, audits, 1)
	assert.Equal(t, adminID, audits[0].AdminID)
	assert.Equal(t, userModel.RegistrationApproved, audits[0].Status)
}

func TestDecideRegistration_RejectWithReason(t *testing.T) {
	db := setupTestDB(t)
	schoolID := uuid.New()
	subject := seedPendingSiswa(t, db, schoolID)
	reason := "data tidak lengkap"

	got, err := DecideRegistration(context.Background(), db, notify.LogNotifier{},
		subject.ID, uuid.New(), constants.RoleAdmin, &schoolID,
		RegistrationDecision{Approve: false, Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, userModel.RegistrationRejected, got.RegistrationStatus)

	var audit userModel.RegistrationAuditModel
	require.NoError(t, db.First(&audit, "user_id = ?", subject.ID).Error)
	require.NotNil(t, audit.Reason)
	assert.Equal(t, reason, *audit.Reason)
}

func TestDecideRegistration_SecondDecisionConflicts(t *testing.T) {
	db := setupTestDB(t)
	schoolID := uuid.New()
	subject := seedPendingSiswa(t, db, schoolID)

	_, err := DecideRegistration(context.Background(), db, notify.LogNotifier{},
		subject.ID, uuid.New(), constants.RoleAdmin, &schoolID,
		RegistrationDecision{Approve: true})
	require.NoError(t, err)

	_, err = DecideRegistration(context.Background(), db, notify.LogNotifier{},
		subject.ID, uuid.New(), constants.RoleAdmin, &schoolID,
		RegistrationDecision{Approve: false})
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	// Keputusan kedua tidak menulis audit tambahan
	var count int64
	db.Model(&userModel.RegistrationAuditModel{}).Where("user_id = ?", subject.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDecideRegistration_NotFound(t *testing.T) {
	db := setupTestDB(t)
	schoolID := uuid.New()

	_, err := DecideRegistration(context.Background(), db, notify.LogNotifier{},
		uuid.New(), uuid.New(), constants.RoleAdmin, &schoolID,
		RegistrationDecision{Approve: true})
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestDecideRegistration_SchoolScope(t *testing.T) {
	db := setupTestDB(t)
	subjectSchool := uuid.New()
	otherSchool := uuid.New()
	subject := seedPendingSiswa(t, db, subjectSchool)

	_, err := DecideRegistration(context.Background(), db, notify.LogNotifier{},
		subject.ID, uuid.New(), constants.RoleAdmin, &otherSchool,
		RegistrationDecision{Approve: true})
	assert.ErrorIs(t, err, ErrSchoolScope)
}

func TestDecideRegistration_MasterAdminBypassesScope(t *testing.T) {
	db := setupTestDB(t)
	subject := seedPendingSiswa(t, db, uuid.New())

	_, err := DecideRegistration(context.Background(), db, notify.LogNotifier{},
		subject.ID, uuid.New(), constants.RoleMasterAdmin, nil,
		RegistrationDecision{Approve: true})
	assert.NoError(t, err)
}

func TestDecideRegistration_NonSelfServiceRejected(t *testing.T) {
	db := setupTestDB(t)
	schoolID := uuid.New()
	admin := userModel.UserModel{
		NamaLengkap:        "Admin Uji",
		Email:              uuid.NewString() + "@test.local",
		Password:           "hash",
		Role:               constants.RoleAdmin,
		SchoolID:           &schoolID,
		RegistrationStatus: userModel.RegistrationApproved,
	}
	require.NoError(t, db.Create(&admin).Error)

	_, err := DecideRegistration(context.Background(), db, notify.LogNotifier{},
		admin.ID, uuid.New(), constants.RoleMasterAdmin, nil,
		RegistrationDecision{Approve: true})
	assert.ErrorIs(t, err, ErrNotSelfService)
}

func TestDecideRegistration_ConcurrentExactlyOneWins(t *testing.T) {
	db := setupTestDB(t)
	schoolID := uuid.New()
	subject := seedPendingSiswa(t, db, schoolID)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = DecideRegistration(context.Background(), db, notify.LogNotifier{},
				subject.ID, uuid.New(), constants.RoleAdmin, &schoolID,
				RegistrationDecision{Approve: i == 0})
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

	var count int64
	db.Model(&userModel.RegistrationAuditModel{}).Where("user_id = ?", subject.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}
