package contract

import "context"

// ScoreQueryRepository executes validated read-only SQL against the
// admission score lookup view.
type ScoreQueryRepository interface {
	Execute(ctx context.Context, query string) ([]map[string]interface{}, error)
}
