package ports

import "context"

// IssueCreatorPort files a tracked issue in the host repository.
// Failures are surfaced to the caller but must never abort a run.
type IssueCreatorPort interface {
	CreateIssue(ctx context.Context, title string, body string) error
}
