package main

import (
	"flag"
	"fmt"
	"os"

	"csvtogithub/api"
	"csvtogithub/config"
	"csvtogithub/utils"
)

func main() {
	// ヘルプフラグの定義
	help := flag.Bool("help", false, "ヘルプを表示する")

	// フラグのパース
	flag.Parse()

	// ヘルプフラグが指定された場合はヘルプを表示
	if *help {
		printHelp()
		return
	}

	utils.LogInfo("gh 認証確認ツール")

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	// ghクライアントの初期化
	ghClient := api.NewGHClient(cfg)

	// 認証チェック
	utils.LogInfo("gh CLI の認証を確認しています...")
	err = ghClient.CheckAuth()
	if err != nil {
		utils.LogError("gh認証エラー: %v", err)
		utils.LogError("gh auth login で認証してください。")
		os.Exit(1)
	}

	utils.LogInfo("gh認証成功！ リポジトリ: %s", cfg.GitHubRepo)
	utils.LogInfo("イシューインポートツールを実行できます。")
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
gh 認証確認ツール

使用方法:
  %s [オプション]

オプション:
  -help               このヘルプを表示する

環境変数:
  GH_PATH             gh コマンドのパス (デフォルト: gh)
  GITHUB_REPO         GitHubリポジトリ (デフォルト: Presstronic/recontronic-cli-client)

説明:
  このツールは gh CLI の認証状態を確認します。
  認証が成功すれば、イシューインポートツールも正常に動作する
  可能性が高いです。
`, os.Args[0])
}
