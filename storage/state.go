// Package storage は作成済みイシューの状態をSQLiteで永続化します。
// 再実行時に作成済みのバックログ項目をスキップできるようにするための
// 小さな状態DBで、実行ごとの集計も記録します。
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	// SQLiteドライバ
	_ "modernc.org/sqlite"

	"csvtogithub/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS created_issues (
	issue_id   TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	url        TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS import_runs (
	id          TEXT PRIMARY KEY,
	started_at  TIMESTAMP NOT NULL,
	finished_at TIMESTAMP,
	skipped     INTEGER NOT NULL DEFAULT 0,
	created     INTEGER NOT NULL DEFAULT 0,
	failed      INTEGER NOT NULL DEFAULT 0
);
`

// StateStore は作成済みイシューの記録を保持します
type StateStore struct {
	db *sql.DB
}

// Open は状態DBを開き、スキーマを初期化します
func Open(path string) (*StateStore, error) {
	// ":memory:" は接続ごとに別のDBにならないよう共有キャッシュURLに変換する
	dbPath := path
	if path == ":memory:" {
		dbPath = "file::memory:?cache=shared"
	}

	connStr := dbPath
	if strings.Contains(dbPath, "?") {
		connStr += "&_pragma=busy_timeout(5000)&_time_format=sqlite"
	} else {
		connStr += "?_pragma=busy_timeout(5000)&_time_format=sqlite"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("状態DBオープンエラー: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("状態DB接続エラー: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("状態DBスキーマ初期化エラー: %w", err)
	}

	return &StateStore{db: db}, nil
}

// Close は状態DBを閉じます
func (s *StateStore) Close() error {
	return s.db.Close()
}

// CreatedIDs は作成済みイシューIDの集合を返します
func (s *StateStore) CreatedIDs() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT issue_id FROM created_issues`)
	if err != nil {
		return nil, fmt.Errorf("作成済みID取得エラー: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("作成済みID読み取りエラー: %w", err)
		}
		ids[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("作成済みID走査エラー: %w", err)
	}
	return ids, nil
}

// RecordCreated は作成済みイシューを記録します（同一IDは上書き）
func (s *StateStore) RecordCreated(issue models.CreatedIssue) error {
	_, err := s.db.Exec(`
		INSERT INTO created_issues (issue_id, title, url, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(issue_id) DO UPDATE SET
			title = excluded.title,
			url = excluded.url,
			created_at = excluded.created_at`,
		issue.IssueID, issue.Title, issue.URL, issue.CreatedAt)
	if err != nil {
		return fmt.Errorf("作成済みイシュー記録エラー: %w", err)
	}
	return nil
}

// BeginRun は新しいインポート実行を記録し、実行IDを返します
func (s *StateStore) BeginRun() (string, error) {
	runID := uuid.New().String()

	_, err := s.db.Exec(`INSERT INTO import_runs (id, started_at) VALUES (?, ?)`,
		runID, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("実行開始記録エラー: %w", err)
	}
	return runID, nil
}

// FinishRun はインポート実行の集計を記録します
func (s *StateStore) FinishRun(runID string, summary models.ImportSummary) error {
	_, err := s.db.Exec(`
		UPDATE import_runs
		SET finished_at = ?, skipped = ?, created = ?, failed = ?
		WHERE id = ?`,
		time.Now().UTC(), summary.Skipped, summary.Created, summary.Failed, runID)
	if err != nil {
		return fmt.Errorf("実行集計記録エラー: %w", err)
	}
	return nil
}
