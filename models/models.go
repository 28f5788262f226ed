package models

import "time"

// BacklogItem はバックログCSVの1行（作成するイシュー）を表します
type BacklogItem struct {
	IssueID            string
	Type               string
	Priority           string
	Title              string
	Story              string
	AcceptanceCriteria string
	Epic               string
	EstimatedPoints    string
	Dependencies       string
	Labels             string
}

// CreatedIssue は作成済みGitHubイシューの記録を表します
type CreatedIssue struct {
	IssueID   string
	Title     string
	URL       string
	CreatedAt time.Time
}

// ImportSummary はインポート結果の集計を表します
type ImportSummary struct {
	Skipped int
	Created int
	Failed  int
}

// Total は処理対象となった行数を返します（スキップを含む）
func (s ImportSummary) Total() int {
	return s.Skipped + s.Created + s.Failed
}

// CSVRecord はCSVの1行を表します (ヘッダー名→値のマップ)
type CSVRecord map[string]string
