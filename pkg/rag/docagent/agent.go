package docagent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"admission-advisor-be/internal/constant"
	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/repository/contract"
	"admission-advisor-be/pkg/embedding"
	"admission-advisor-be/pkg/llm"
	"admission-advisor-be/pkg/store"
)

// Config holds the retrieval tunables.
type Config struct {
	TopK           int
	MaxRewrites    int     // query rewrites allowed before giving up
	MinSimilarity  float64 // retrieval floor, below it a chunk is not even graded
	CacheThreshold float64 // semantic answer cache similarity
}

func DefaultConfig() Config {
	return Config{
		TopK:           5,
		MaxRewrites:    1,
		MinSimilarity:  0.3,
		CacheThreshold: 0.92,
	}
}

// Result is one answered document question.
type Result struct {
	Answer   string
	Evidence []entity.Evidence
	Rewrites int
	Cached   bool
}

// Agent answers regulation questions with corrective retrieval: retrieve,
// grade, and either generate, rewrite the query once and retry, or give
// up. Passages graded irrelevant are never cited.
type Agent struct {
	llmProvider llm.LLMProvider
	embedder    embedding.EmbeddingProvider
	chunks      contract.ChunkRepository
	cache       *AnswerCache
	config      Config
	logger      *log.Logger
}

func NewAgent(
	llmProvider llm.LLMProvider,
	embedder embedding.EmbeddingProvider,
	chunks contract.ChunkRepository,
	cache *AnswerCache,
	config Config,
	logger *log.Logger,
) *Agent {
	if config.TopK <= 0 {
		config.TopK = 5
	}
	if config.MinSimilarity <= 0 {
		config.MinSimilarity = 0.3
	}
	if config.CacheThreshold <= 0 {
		config.CacheThreshold = 0.92
	}
	return &Agent{
		llmProvider: llmProvider,
		embedder:    embedder,
		chunks:      chunks,
		cache:       cache,
		config:      config,
		logger:      logger,
	}
}

// passage pairs a retrieved chunk with its nearest ancestor so grading
// and generation always see the full hierarchical context.
type passage struct {
	chunk    *entity.Chunk
	ancestor *entity.Chunk
}

// gradeResult is the grader model's JSON reply.
type gradeResult struct {
	Verdict         string `json:"verdict"`
	RelevantIndices []int  `json:"relevant_indices"`
	Reason          string `json:"reason"`
}

const (
	verdictRelevant   = "relevant"
	verdictIrrelevant = "irrelevant"
	verdictAmbiguous  = "ambiguous"
)

// Process runs the corrective retrieval loop for one question. It returns
// store.ErrNoRelevantSource when no reliable source is found after the
// rewrite budget is spent.
func (a *Agent) Process(ctx context.Context, question string) (*Result, error) {
	queryEmbed, err := a.embed(ctx, question)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		if cached, ok := a.cache.Lookup(queryEmbed); ok {
			a.logger.Printf("[DOC] cache hit for %q", truncate(question, 60))
			hit := *cached
			hit.Cached = true
			return &hit, nil
		}
	}

	query := question
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			// Rewritten query needs its own embedding.
			queryEmbed, err = a.embed(ctx, query)
			if err != nil {
				return nil, err
			}
		}

		scored, err := a.chunks.SearchSimilarWithScore(ctx, queryEmbed, a.config.TopK, a.config.MinSimilarity)
		if err != nil {
			return nil, store.ClassifyInfraErr(fmt.Errorf("chunk retrieval failed: %w", err))
		}
		a.logger.Printf("[DOC] attempt %d: retrieved %d chunks for %q", attempt+1, len(scored), truncate(query, 60))

		passages := a.enrich(ctx, scored)

		grade, relevant, err := a.grade(ctx, question, passages)
		if err != nil {
			if !errors.Is(err, store.ErrInfraTimeout) {
				return nil, err
			}
			// A grader timeout spends the attempt, it does not fail the
			// whole step.
			a.logger.Printf("[DOC] attempt %d: grading timed out", attempt+1)
			grade = &gradeResult{Verdict: verdictAmbiguous, Reason: "không đánh giá được độ liên quan"}
			relevant = nil
		}
		a.logger.Printf("[DOC] attempt %d: verdict=%s relevant=%d", attempt+1, grade.Verdict, len(relevant))

		if grade.Verdict == verdictRelevant && len(relevant) > 0 {
			result, err := a.generate(ctx, question, relevant)
			if err == nil {
				result.Rewrites = attempt
				if a.cache != nil {
					a.cache.Add(queryEmbed, result)
				}
				return result, nil
			}
			if !errors.Is(err, store.ErrInfraTimeout) {
				return nil, err
			}
			a.logger.Printf("[DOC] attempt %d: generation timed out", attempt+1)
		}

		if attempt >= a.config.MaxRewrites {
			return nil, store.ErrNoRelevantSource
		}

		query, err = a.rewrite(ctx, question, grade.Reason)
		if err != nil {
			if errors.Is(err, store.ErrInfraTimeout) {
				return nil, store.ErrNoRelevantSource
			}
			return nil, err
		}
		a.logger.Printf("[DOC] rewrote query to %q", truncate(query, 80))
	}
}

// enrich attaches each hit's nearest ancestor chunk. Ancestor lookups are
// best effort: a failed fetch leaves the hit without context instead of
// failing retrieval.
func (a *Agent) enrich(ctx context.Context, scored []*contract.ScoredChunk) []*passage {
	passages := make([]*passage, len(scored))
	for i, sc := range scored {
		p := &passage{chunk: sc.Chunk}
		if sc.Chunk.ParentId != nil {
			ancestor, err := a.chunks.FindParent(ctx, sc.Chunk.Id)
			if err != nil {
				a.logger.Printf("[DOC] ancestor fetch failed for %s: %v", sc.Chunk.Id, err)
			} else {
				p.ancestor = ancestor
			}
		}
		passages[i] = p
	}
	return passages
}

func (a *Agent) embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := a.embedder.Generate(ctx, text, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, store.ClassifyInfraErr(fmt.Errorf("failed to embed question: %w", err))
	}
	return resp.Embedding.Values, nil
}

// grade asks the grader model which retrieved passages actually answer
// the question. An empty retrieval shortcuts to irrelevant without an
// LLM call.
func (a *Agent) grade(ctx context.Context, question string, passages []*passage) (*gradeResult, []*passage, error) {
	if len(passages) == 0 {
		return &gradeResult{Verdict: verdictIrrelevant, Reason: "không tìm thấy đoạn văn bản nào"}, nil, nil
	}

	var sb strings.Builder
	for i, p := range passages {
		fmt.Fprintf(&sb, "[%d] (%s)\n", i, p.chunk.Path())
		if p.ancestor != nil {
			fmt.Fprintf(&sb, "Ngữ cảnh (%s): %s\n", p.ancestor.Path(), truncate(p.ancestor.Content, 300))
		}
		fmt.Fprintf(&sb, "%s\n\n", truncate(p.chunk.Content, 600))
	}

	prompt := fmt.Sprintf(constant.DocGradePrompt, question, sb.String())
	response, err := a.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.1))
	if err != nil {
		return nil, nil, store.ClassifyInfraErr(fmt.Errorf("grading failed: %w", err))
	}

	var grade gradeResult
	if err := json.Unmarshal([]byte(extractJSON(response)), &grade); err != nil {
		// An unparseable grade is treated as ambiguous rather than
		// trusting ungraded passages.
		a.logger.Printf("[DOC] unparseable grade response, treating as ambiguous: %v", err)
		grade = gradeResult{Verdict: verdictAmbiguous, Reason: "không đánh giá được độ liên quan"}
	}

	var relevant []*passage
	for _, idx := range grade.RelevantIndices {
		if idx >= 0 && idx < len(passages) {
			relevant = append(relevant, passages[idx])
		}
	}
	if grade.Verdict == verdictRelevant && len(relevant) == 0 {
		// Grader said relevant but named no passages; keep them all.
		relevant = append(relevant, passages...)
	}
	return &grade, relevant, nil
}

func (a *Agent) generate(ctx context.Context, question string, relevant []*passage) (*Result, error) {
	var sb strings.Builder
	for _, p := range relevant {
		if p.ancestor != nil {
			fmt.Fprintf(&sb, "### %s\n%s\n\n", p.ancestor.Path(), p.ancestor.Content)
		}
		fmt.Fprintf(&sb, "### %s\n%s\n\n", p.chunk.Path(), p.chunk.Content)
	}

	prompt := fmt.Sprintf(constant.DocAnswerPrompt, sb.String(), question)
	answer, err := a.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.2))
	if err != nil {
		return nil, store.ClassifyInfraErr(fmt.Errorf("answer generation failed: %w", err))
	}

	// Only passages graded relevant become evidence.
	evidence := make([]entity.Evidence, len(relevant))
	for i, p := range relevant {
		evidence[i] = entity.Evidence{
			Kind:    entity.EvidenceKindDocument,
			Path:    p.chunk.Path(),
			Preview: truncate(p.chunk.Content, 200),
			Score:   p.chunk.Score,
		}
	}

	return &Result{Answer: answer, Evidence: evidence}, nil
}

func (a *Agent) rewrite(ctx context.Context, question, reason string) (string, error) {
	if reason == "" {
		reason = "các đoạn tìm được chưa trả lời được câu hỏi"
	}
	prompt := fmt.Sprintf(constant.DocRewritePrompt, question, reason)
	rewritten, err := a.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return "", store.ClassifyInfraErr(fmt.Errorf("query rewrite failed: %w", err))
	}
	rewritten = strings.TrimSpace(strings.Trim(strings.TrimSpace(rewritten), `"`))
	if rewritten == "" {
		return question, nil
	}
	return rewritten, nil
}

// extractJSON isolates JSON content from a model response
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")
	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return response
	}
	return response[startIdx : endIdx+1]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
