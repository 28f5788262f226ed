package services

import (
	"encoding/csv"
	"fmt"
	"os"

	"csvtogithub/config"
	"csvtogithub/models"
	"csvtogithub/utils"
)

// requiredColumns はバックログCSVに必須のヘッダー名です
var requiredColumns = []string{
	"Issue ID", "Type", "Priority", "Title", "Story",
	"Acceptance Criteria", "Epic", "Estimated Points", "Dependencies", "Labels",
}

// CSVProcessor はバックログCSVの読み込みを担当します
type CSVProcessor struct {
	config *config.Config
}

// NewCSVProcessor は新しいCSVプロセッサーを作成します
func NewCSVProcessor(cfg *config.Config) *CSVProcessor {
	return &CSVProcessor{
		config: cfg,
	}
}

// ReadBacklogCSV はバックログCSVをファイル内の順序で読み込みます。
// ファイルが存在しない場合は errors.Is(err, fs.ErrNotExist) で判定できる
// エラーを返します。
func (p *CSVProcessor) ReadBacklogCSV() ([]models.BacklogItem, error) {
	file, err := os.Open(p.config.BacklogCSV)
	if err != nil {
		return nil, fmt.Errorf("CSVオープンエラー: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// フィールド数の検証は行単位で自前で行う
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV読み込みエラー: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("CSVヘッダーがありません")
	}

	headers := records[0]
	if err := checkRequiredColumns(headers); err != nil {
		return nil, err
	}

	items := make([]models.BacklogItem, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(headers) {
			utils.LogWarn("行 %d: フィールド数が不一致（ヘッダー: %d, 行: %d）", i+2, len(headers), len(record))
			continue
		}

		row := make(models.CSVRecord)
		for j, value := range record {
			row[headers[j]] = value
		}
		items = append(items, backlogItemFromRecord(row))
	}

	utils.LogInfo("バックログCSVを読み込みました: %d 行", len(items))
	return items, nil
}

// checkRequiredColumns は必須カラムが全て揃っているか検証します
func checkRequiredColumns(headers []string) error {
	have := make(map[string]bool, len(headers))
	for _, header := range headers {
		have[header] = true
	}

	for _, column := range requiredColumns {
		if !have[column] {
			return fmt.Errorf("必須カラム '%s' が見つかりません", column)
		}
	}
	return nil
}

// backlogItemFromRecord はCSVの1行をバックログ項目に変換します
func backlogItemFromRecord(row models.CSVRecord) models.BacklogItem {
	return models.BacklogItem{
		IssueID:            row["Issue ID"],
		Type:               row["Type"],
		Priority:           row["Priority"],
		Title:              row["Title"],
		Story:              row["Story"],
		AcceptanceCriteria: row["Acceptance Criteria"],
		Epic:               row["Epic"],
		EstimatedPoints:    row["Estimated Points"],
		Dependencies:       row["Dependencies"],
		Labels:             row["Labels"],
	}
}
