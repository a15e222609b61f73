package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"license-audit/internal/ports"
	"license-audit/internal/shared"
)

const defaultGitHubAPIBase = "https://api.github.com"
const defaultIssueTimeout = 30 * time.Second
const defaultIssueRetries = 3
const defaultIssueRetryDelay = 200 * time.Millisecond

// GitHubIssueAdapter files issues through the GitHub REST API. Transient
// 5xx responses are retried with a fixed delay.
type GitHubIssueAdapter struct {
	APIBase    string
	Repository string
	Token      string
	Client     *http.Client
	Retries    int
	RetryDelay time.Duration
}

func NewGitHubIssueAdapter(apiBase string, repository string, token string) GitHubIssueAdapter {
	if strings.TrimSpace(apiBase) == "" {
		apiBase = defaultGitHubAPIBase
	}
	return GitHubIssueAdapter{
		APIBase:    strings.TrimSuffix(apiBase, "/"),
		Repository: repository,
		Token:      token,
		Client:     &http.Client{Timeout: defaultIssueTimeout},
		Retries:    defaultIssueRetries,
		RetryDelay: defaultIssueRetryDelay,
	}
}

func (a GitHubIssueAdapter) CreateIssue(ctx context.Context, title string, body string) error {
	if strings.TrimSpace(a.Repository) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("github repository is empty")
	}
	if strings.TrimSpace(a.Token) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("github token is empty")
	}
	payload, err := json.Marshal(struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}{Title: title, Body: body})
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal issue payload").
			WithCause(err)
	}
	url := fmt.Sprintf("%s/repos/%s/issues", a.APIBase, a.Repository)

	var lastErr error
	attempts := a.Retries
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(a.RetryDelay):
			}
		}
		retry, err := a.post(ctx, url, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			break
		}
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to create issue").
		WithCause(lastErr)
}

// post performs one create attempt; the bool says whether a retry could
// help.
func (a GitHubIssueAdapter) post(ctx context.Context, url string, payload []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+a.Token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.Client.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusCreated {
		return false, nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	err = shared.HTTPStatusErrorWithBody(resp.StatusCode, url, strings.TrimSpace(string(body)))
	return resp.StatusCode >= http.StatusInternalServerError, err
}

var _ ports.IssueCreatorPort = GitHubIssueAdapter{}
