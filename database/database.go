package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/yuvraj-revolt-motors/license-tracker/logger"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// 지원하는 드라이버
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

var DB *sql.DB

// Initialize 전역 데이터베이스 초기화
// driver: "sqlite" 또는 "mysql"
// dsn: SQLite 파일 경로 또는 MySQL DSN
func Initialize(driver, dsn string) error {
	db, err := Open(driver, dsn)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Open 연결을 열고 라이선스/티켓 스키마를 보장합니다.
func Open(driver, dsn string) (*sql.DB, error) {
	// 기본값 설정
	if driver == "" {
		driver = DriverSQLite
	}
	if dsn == "" && driver == DriverSQLite {
		dsn = "./license_tracker.db"
	}
	if driver != DriverSQLite && driver != DriverMySQL {
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite 메모리 DB는 커넥션마다 별도 DB가 되므로 1개로 고정
	if driver == DriverSQLite && strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// 연결 테스트
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.Info("Database initialized successfully (driver: %s)", driver)
	return db, nil
}

// createTables 테이블 생성
func createTables(db *sql.DB, driver string) error {
	var statements []string
	if driver == DriverSQLite {
		// SQLite: 날짜는 업스트림 문자열 그대로 TEXT로 보관
		statements = []string{
			`CREATE TABLE IF NOT EXISTS licenses (
				id TEXT PRIMARY KEY,
				ticket_id TEXT NOT NULL DEFAULT '',
				` + "`system`" + ` TEXT NOT NULL,
				name TEXT NOT NULL DEFAULT '',
				mobile TEXT,
				email TEXT,
				request_type TEXT,
				assignment_date TEXT,
				expiry_date TEXT,
				status TEXT NOT NULL DEFAULT 'Active',
				details_json TEXT,
				removal_details_json TEXT,
				attachment_data TEXT,
				created_at TEXT,
				updated_at TEXT,
				requested_date TEXT,
				requestor_name TEXT
			)`,
			`CREATE TABLE IF NOT EXISTS tickets (
				ticket_id TEXT NOT NULL,
				action_description TEXT NOT NULL DEFAULT '',
				timestamp TEXT,
				status TEXT NOT NULL DEFAULT 'Open',
				notes TEXT
			)`,
			`CREATE INDEX IF NOT EXISTS idx_licenses_system ON licenses(` + "`system`" + `)`,
			`CREATE INDEX IF NOT EXISTS idx_licenses_status ON licenses(status)`,
			`CREATE INDEX IF NOT EXISTS idx_licenses_assignment ON licenses(assignment_date)`,
		}
	} else {
		// MySQL: 업스트림 백엔드와 동일한 스키마
		statements = []string{
			"CREATE TABLE IF NOT EXISTS `licenses` (" +
				"`id` VARCHAR(36) PRIMARY KEY," +
				"`ticket_id` VARCHAR(100) NOT NULL," +
				"`system` VARCHAR(20) NOT NULL," +
				"`name` VARCHAR(255) NOT NULL," +
				"`mobile` VARCHAR(20)," +
				"`email` VARCHAR(255)," +
				"`request_type` VARCHAR(50)," +
				"`assignment_date` DATE," +
				"`expiry_date` DATE," +
				"`status` VARCHAR(20) NOT NULL DEFAULT 'Active'," +
				"`details_json` JSON," +
				"`removal_details_json` JSON," +
				"`attachment_data` LONGTEXT," +
				"`created_at` DATETIME DEFAULT CURRENT_TIMESTAMP," +
				"`updated_at` DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP," +
				"`requested_date` DATE," +
				"`requestor_name` VARCHAR(255)," +
				"INDEX idx_licenses_system (`system`)," +
				"INDEX idx_licenses_status (`status`)," +
				"INDEX idx_licenses_assignment (`assignment_date`)" +
				") CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci",
			"CREATE TABLE IF NOT EXISTS `tickets` (" +
				"`ticket_id` VARCHAR(100) NOT NULL," +
				"`action_description` TEXT NOT NULL," +
				"`timestamp` DATETIME," +
				"`status` VARCHAR(20) NOT NULL DEFAULT 'Open'," +
				"`notes` TEXT," +
				"INDEX idx_tickets_id (`ticket_id`)" +
				") CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci",
		}
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			// 이미 존재하는 인덱스/테이블 오류 무시
			if !strings.Contains(err.Error(), "already exists") {
				return fmt.Errorf("failed to execute SQL: %w", err)
			}
		}
	}
	return nil
}

// Close 데이터베이스 연결 종료
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
