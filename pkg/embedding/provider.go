package embedding

import "context"

// Task types passed to providers that distinguish query and document encoding.
const (
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

type EmbeddingValues struct {
	Values []float32 `json:"values"`
}

type EmbeddingResponse struct {
	Embedding EmbeddingValues `json:"embedding"`
}

// EmbeddingProvider defines the interface for generating text embeddings.
// Implementations carry their own per-call timeout via the HTTP client.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error)
}
