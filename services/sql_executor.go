package services

import (
	"context"
	"database/sql"
)

// SQLExecutor는 SQL 소스가 데이터베이스 구현 세부사항으로부터 분리되도록 해주는 최소한의 인터페이스입니다.
// *sql.DB와 *sql.Tx 모두 만족합니다.
type SQLExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Pinger는 상태 확인을 지원하는 소스가 구현합니다.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping 데이터베이스 연결과 licenses 테이블 접근을 확인합니다.
func (s *SQLSource) Ping(ctx context.Context) error {
	var n int
	return s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM `licenses` WHERE 1=0").Scan(&n)
}
