package utils

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 成功・失敗マークの装飾（元のスクリプトの出力形式を維持）
var (
	greenMark = color.New(color.FgGreen).SprintFunc()
	redMark   = color.New(color.FgRed).SprintFunc()
	boldText  = color.New(color.Bold).SprintFunc()
)

// PrintCreated はイシュー作成成功の行を出力します
func PrintCreated(issueID, title, url string) {
	fmt.Printf("%s Created %s: %s\n", greenMark("✓"), issueID, title)
	fmt.Printf("  URL: %s\n", url)
}

// PrintFailed はイシュー作成失敗の行を出力します
func PrintFailed(issueID, title, diag string) {
	fmt.Printf("%s Failed to create %s: %s\n", redMark("✗"), issueID, title)
	fmt.Printf("  Error: %s\n", diag)
}

// PrintSummary はインポート結果のサマリーブロックを出力します。
// withSkipped が true の場合はスキップ件数とGitHub上の合計も表示します。
func PrintSummary(skipped, created, failed int, withSkipped bool) {
	separator := strings.Repeat("=", 60)

	fmt.Printf("\n%s\n", separator)
	fmt.Println(boldText("Import complete!"))
	if withSkipped {
		fmt.Printf("  Skipped: %d issues (already created)\n", skipped)
	}
	fmt.Printf("  Created: %d issues\n", created)
	fmt.Printf("  Failed:  %d issues\n", failed)
	if withSkipped {
		fmt.Printf("  Total:   %d issues in GitHub\n", skipped+created)
	}
	fmt.Printf("%s\n", separator)
}
