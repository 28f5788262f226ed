package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"csvtogithub/api"
	"csvtogithub/config"
	"csvtogithub/services"
	"csvtogithub/storage"
	"csvtogithub/utils"
)

func main() {
	// コマンドラインフラグの定義
	input := flag.String("input", "", "バックログCSVファイルのパス（指定しない場合は環境変数から取得）")
	repo := flag.String("repo", "", "イシュー作成先のGitHubリポジトリ (owner/name)")
	delay := flag.Int("delay", -1, "各行の処理後に待機するミリ秒数（-1の場合は設定値を使用）")
	stateDB := flag.String("state", "", "作成済みイシューを記録する状態DBのパス")
	help := flag.Bool("help", false, "ヘルプを表示する")

	// フラグのパース
	flag.Parse()

	// ヘルプフラグが指定された場合はヘルプを表示
	if *help {
		printHelp()
		return
	}

	// 開始時間の記録
	startTime := time.Now()

	utils.LogInfo("GitHub イシューインポートツール")

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	// コマンドラインで指定された場合、設定を上書き
	if *input != "" {
		cfg.BacklogCSV = *input
		utils.LogInfo("入力ファイルを指定: %s", cfg.BacklogCSV)
	}
	if *repo != "" {
		cfg.GitHubRepo = *repo
		utils.LogInfo("リポジトリを指定: %s", cfg.GitHubRepo)
	}
	if *delay >= 0 {
		cfg.RateLimitMS = *delay
		utils.LogInfo("待機時間を指定: %d ms", cfg.RateLimitMS)
	}
	if *stateDB != "" {
		cfg.StateDB = *stateDB
	}

	fmt.Printf("Importing issues from %s...\n", cfg.BacklogCSV)
	fmt.Printf("Repository: %s\n\n", cfg.GitHubRepo)

	// 状態DBを開く
	store, err := storage.Open(cfg.StateDB)
	if err != nil {
		utils.LogError("状態DBオープンエラー: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	// サービスの初期化
	ghClient := api.NewGHClient(cfg)
	csvProc := services.NewCSVProcessor(cfg)
	importService := services.NewImportService(cfg, ghClient, csvProc, store)

	// イシューのインポート実行（全行を処理）
	summary, err := importService.ImportIssues(false)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("Error: %s not found!\n", cfg.BacklogCSV)
			fmt.Println("Please run this tool from the project root directory.")
		} else {
			utils.LogError("イシューインポートエラー: %v", err)
		}
		os.Exit(1)
	}

	// サマリーの表示
	utils.PrintSummary(summary.Skipped, summary.Created, summary.Failed, false)

	// 処理時間の表示
	elapsed := time.Since(startTime)
	utils.LogInfo("イシューインポートが完了しました。処理時間: %s", elapsed)
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
GitHub イシューインポートツール

使用方法:
  %s [オプション]

オプション:
  -input ファイル      バックログCSVファイル
  -repo owner/name    イシュー作成先のGitHubリポジトリ
  -delay ミリ秒        各行の処理後に待機する時間
  -state ファイル      作成済みイシューを記録する状態DB
  -help               このヘルプを表示する

環境変数:
  GITHUB_REPO         GitHubリポジトリ (デフォルト: Presstronic/recontronic-cli-client)
  MVP_CSV             バックログCSVファイルパス (デフォルト: mvp-issues.csv)
  RATE_LIMIT_MS       各行の処理後に待機するミリ秒数 (デフォルト: 500)
  STATE_DB            状態DBファイルパス (デフォルト: .import-state.db)
  GH_PATH             gh コマンドのパス (デフォルト: gh)

説明:
  このツールはバックログCSVの各行から gh CLI を使ってGitHubイシューを
  作成します。gh CLI がインストールされ、認証済みである必要があります。

  作成したイシューのIDとURLは状態DBに記録されるため、
  remaining_import ツールで未作成の行だけを再実行できます。
`, os.Args[0])
}
