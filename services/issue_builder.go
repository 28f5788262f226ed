package services

import (
	"fmt"
	"strings"

	"csvtogithub/models"
)

// ParseLabels はセミコロン区切りのラベル文字列を分解します。
// 各トークンは前後の空白を除去し、空のトークンは捨てます。
func ParseLabels(labelStr string) []string {
	labels := []string{}
	if strings.TrimSpace(labelStr) == "" {
		return labels
	}

	for _, label := range strings.Split(labelStr, ";") {
		label = strings.TrimSpace(label)
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// ApplyPriorityLabel は優先度がcritical（大文字小文字問わず）の場合、
// "critical" ラベルがまだ無ければ末尾に追加します
func ApplyPriorityLabel(labels []string, priority string) []string {
	if !strings.EqualFold(priority, "critical") {
		return labels
	}

	for _, label := range labels {
		if label == "critical" {
			return labels
		}
	}
	return append(labels, "critical")
}

// IssueTitle はイシューのタイトル（"<Issue ID>: <Title>"）を組み立てます
func IssueTitle(item models.BacklogItem) string {
	return fmt.Sprintf("%s: %s", item.IssueID, item.Title)
}

// BuildIssueBody はバックログ項目からイシュー本文を組み立てます。
// Dependencies行は値が空でない場合のみ出力します。
func BuildIssueBody(item models.BacklogItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Type:** %s\n", item.Type)
	fmt.Fprintf(&b, "**Priority:** %s\n", item.Priority)
	fmt.Fprintf(&b, "**Epic:** %s\n", item.Epic)
	fmt.Fprintf(&b, "**Story Points:** %s\n", item.EstimatedPoints)
	if strings.TrimSpace(item.Dependencies) != "" {
		fmt.Fprintf(&b, "**Dependencies:** %s\n", item.Dependencies)
	}
	fmt.Fprintf(&b, "\n## Story\n\n%s\n", item.Story)
	fmt.Fprintf(&b, "\n## Acceptance Criteria\n\n%s\n", item.AcceptanceCriteria)

	return b.String()
}
