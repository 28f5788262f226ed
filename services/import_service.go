package services

import (
	"time"

	"csvtogithub/config"
	"csvtogithub/models"
	"csvtogithub/storage"
	"csvtogithub/utils"
)

// IssueCreator は外部のイシュー作成コマンドへのインターフェースです
type IssueCreator interface {
	CreateIssue(title, body string, labels []string) (string, error)
}

// ImportService はバックログCSVからGitHubへのイシュー一括作成を処理します
type ImportService struct {
	config  *config.Config
	creator IssueCreator
	csvProc *CSVProcessor
	store   *storage.StateStore
}

// NewImportService は新しいインポートサービスを作成します
func NewImportService(cfg *config.Config, creator IssueCreator, csvProc *CSVProcessor, store *storage.StateStore) *ImportService {
	return &ImportService{
		config:  cfg,
		creator: creator,
		csvProc: csvProc,
		store:   store,
	}
}

// ImportIssues はバックログCSVの各行を順番に処理してイシューを作成します。
// skipCreated が true の場合、状態DBに記録済みのIDはスキップします。
// 個々の行の作成失敗は集計に数えるだけで処理は続行します。
func (m *ImportService) ImportIssues(skipCreated bool) (models.ImportSummary, error) {
	startTime := time.Now()
	defer utils.TrackTime(startTime, "イシューインポート")

	items, err := m.csvProc.ReadBacklogCSV()
	if err != nil {
		return models.ImportSummary{}, err
	}

	var createdIDs map[string]bool
	if skipCreated {
		createdIDs, err = m.store.CreatedIDs()
		if err != nil {
			return models.ImportSummary{}, err
		}
		utils.LogInfo("作成済みイシューをスキップします: %d 件", len(createdIDs))
	}

	runID, err := m.store.BeginRun()
	if err != nil {
		return models.ImportSummary{}, err
	}

	delay := m.config.RateLimit()
	var summary models.ImportSummary

	for _, item := range items {
		// 作成済みの行はスキップ（外部コマンドは呼ばず、待機もしない）
		if skipCreated && createdIDs[item.IssueID] {
			summary.Skipped++
			continue
		}

		title := IssueTitle(item)
		body := BuildIssueBody(item)
		labels := ApplyPriorityLabel(ParseLabels(item.Labels), item.Priority)

		url, err := m.creator.CreateIssue(title, body, labels)
		if err != nil {
			utils.PrintFailed(item.IssueID, item.Title, err.Error())
			summary.Failed++
		} else {
			utils.PrintCreated(item.IssueID, item.Title, url)
			summary.Created++

			record := models.CreatedIssue{
				IssueID:   item.IssueID,
				Title:     item.Title,
				URL:       url,
				CreatedAt: time.Now().UTC(),
			}
			if err := m.store.RecordCreated(record); err != nil {
				utils.LogWarn("作成済みイシューの記録に失敗 %s: %v", item.IssueID, err)
			}
		}

		// レート制限対策の待機
		time.Sleep(delay)
	}

	if err := m.store.FinishRun(runID, summary); err != nil {
		utils.LogWarn("実行集計の記録に失敗: %v", err)
	}

	return summary, nil
}
