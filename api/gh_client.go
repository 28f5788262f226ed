package api

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"csvtogithub/config"
)

// GHClient は gh CLI を介したGitHubとのやり取りを処理します
type GHClient struct {
	config *config.Config
}

// NewGHClient は新しいghクライアントを作成します
func NewGHClient(cfg *config.Config) *GHClient {
	return &GHClient{
		config: cfg,
	}
}

// CheckAuth は gh CLI の認証状態をチェックします
func (g *GHClient) CheckAuth() error {
	cmd := exec.Command(g.config.GHPath, "auth", "status")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		return fmt.Errorf("gh認証確認失敗: %s", diag)
	}

	return nil
}

// CreateIssue は gh issue create を実行してGitHubイシューを作成します。
// 成功時は標準出力（作成されたイシューのURL）を返し、
// 失敗時は標準エラー出力を診断メッセージとして含むエラーを返します。
func (g *GHClient) CreateIssue(title, body string, labels []string) (string, error) {
	args := []string{
		"issue", "create",
		"--repo", g.config.GitHubRepo,
		"--title", title,
		"--body", body,
	}
	for _, label := range labels {
		args = append(args, "--label", label)
	}

	cmd := exec.Command(g.config.GHPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		return "", fmt.Errorf("gh issue create: %s", diag)
	}

	return strings.TrimSpace(stdout.String()), nil
}
