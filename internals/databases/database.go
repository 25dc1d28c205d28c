package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mbg_backend/internals/configs"
	attendanceModel "mbg_backend/internals/features/attendance/attendance/model"
	correctionModel "mbg_backend/internals/features/attendance/correction/model"
	cateringModel "mbg_backend/internals/features/catering/catering/model"
	emergencyModel "mbg_backend/internals/features/emergency/report/model"
	feedbackModel "mbg_backend/internals/features/feedback/feedback/model"
	schoolModel "mbg_backend/internals/features/schools/school/model"
	userModel "mbg_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=mbg_backend&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua tabel MBG.
func Migrate() {
	if err := DB.AutoMigrate(
		&schoolModel.SchoolModel{},
		&userModel.UserModel{},
		&userModel.RegistrationAuditModel{},
		&attendanceModel.AttendanceLogModel{},
		&correctionModel.AttendanceCorrectionModel{},
		&cateringModel.CateringLogModel{},
		&feedbackModel.FeedbackModel{},
		&emergencyModel.EmergencyReportModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi DB: %v", err)
	}
	log.Println("✅ Migrasi DB selesai.")
}

// SeedMasterAdmin membuat akun MASTERADMIN pertama jika belum ada.
func SeedMasterAdmin() {
	if getenv("SEED_MASTER_ADMIN", "true") != "true" {
		return
	}

	var count int64
	if err := DB.Model(&userModel.UserModel{}).
		Where("role = ?", "MASTERADMIN").
		Count(&count).Error; err != nil {
		log.Printf("[WARN] cek master admin gagal: %v", err)
		return
	}
	if count > 0 {
		return
	}

	email := getenv("MASTER_ADMIN_EMAIL", "masteradmin@mbg.local")
	password := getenv("MASTER_ADMIN_PASSWORD", "masteradmin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Printf("[WARN] hash master admin gagal: %v", err)
		return
	}

	admin := userModel.UserModel{
		NamaLengkap:        "Master Admin",
		Email:              email,
		Password:           string(hash),
		Role:               "MASTERADMIN",
		RegistrationStatus: userModel.RegistrationApproved,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("[WARN] seed master admin gagal: %v", err)
		return
	}
	log.Printf("✅ Master admin dibuat: %s", email)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
