package sqlagent

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
	"admission-advisor-be/pkg/vietnamese"
)

// Config holds the generation tunables.
type Config struct {
	MaxAttempts      int     // generate/repair attempts before giving up
	FewShotLimit     int     // examples included in the prompt
	ExampleThreshold float64 // min similarity for a selected example
	RowLimit         int     // LIMIT injected when the model omits one
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:      3,
		FewShotLimit:     3,
		ExampleThreshold: 0.5,
		RowLimit:         50,
	}
}

// Entities are the structured values pre-extracted from the question and
// fed to the prompt alongside the few-shot examples.
type Entities struct {
	Year      *int
	Score     *float64
	ExamBlock string
}

// Result is one answered numeric question.
type Result struct {
	Answer   string
	SQL      string
	Rows     []map[string]interface{}
	Entities Entities
	Attempts int
}

// Agent turns a natural-language question into a validated SELECT against
// the score lookup view, executing it with an error-feedback repair loop.
type Agent struct {
	llmProvider llm.LLMProvider
	embedder    embedding.EmbeddingProvider
	examples    contract.SQLExampleRepository
	queries     contract.ScoreQueryRepository
	config      Config
	logger      *log.Logger
}

func NewAgent(
	llmProvider llm.LLMProvider,
	embedder embedding.EmbeddingProvider,
	examples contract.SQLExampleRepository,
	queries contract.ScoreQueryRepository,
	config Config,
	logger *log.Logger,
) *Agent {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 3
	}
	if config.FewShotLimit <= 0 {
		config.FewShotLimit = 3
	}
	if config.RowLimit <= 0 {
		config.RowLimit = 50
	}
	return &Agent{
		llmProvider: llmProvider,
		embedder:    embedder,
		examples:    examples,
		queries:     queries,
		config:      config,
		logger:      logger,
	}
}

// Process answers one numeric question. It returns store.ErrQueryExhausted
// after the attempt budget is spent without a successful execution.
func (a *Agent) Process(ctx context.Context, question string) (*Result, error) {
	entities := extractEntities(question)
	examples := a.selectExamples(ctx, question)

	var errorHistory []string
	var lastSQL string

	for attempt := 1; attempt <= a.config.MaxAttempts; attempt++ {
		sql, err := a.generateSQL(ctx, question, examples, entities, errorHistory)
		if err != nil {
			// A completion timeout is a local failure of this attempt,
			// not of the whole step.
			if !errors.Is(err, store.ErrInfraTimeout) {
				return nil, err
			}
			errorHistory = append(errorHistory, "generation timed out")
			a.logger.Printf("[SQL] attempt %d: generation timed out", attempt)
			continue
		}
		lastSQL = sql
		a.logger.Printf("[SQL] attempt %d: %s", attempt, sql)

		if err := ValidateSQL(sql); err != nil {
			errorHistory = append(errorHistory, fmt.Sprintf("Validation error: %v", err))
			a.logger.Printf("[SQL] attempt %d rejected: %v", attempt, err)
			continue
		}

		sql = EnsureLimit(sql, a.config.RowLimit)
		rows, err := a.queries.Execute(ctx, sql)
		if err != nil {
			// Infra failures abort the loop; only generation errors are
			// worth a repair attempt.
			if errors.Is(err, store.ErrInfraTimeout) || errors.Is(err, store.ErrInfraUnavailable) {
				return nil, err
			}
			errorHistory = append(errorHistory, err.Error())
			a.logger.Printf("[SQL] attempt %d failed: %v", attempt, err)
			continue
		}

		answer, err := a.renderAnswer(ctx, question, rows)
		if err != nil {
			return nil, err
		}

		return &Result{
			Answer:   answer,
			SQL:      sql,
			Rows:     rows,
			Entities: entities,
			Attempts: attempt,
		}, nil
	}

	a.logger.Printf("[SQL] exhausted %d attempts, last sql: %s", a.config.MaxAttempts, lastSQL)
	return nil, store.ErrQueryExhausted
}

func extractEntities(question string) Entities {
	var e Entities
	if year, ok := vietnamese.ExtractYear(question); ok {
		e.Year = &year
	}
	if score, ok := vietnamese.ExtractScore(question); ok {
		e.Score = &score
	}
	if block, ok := vietnamese.ExtractExamBlock(question); ok {
		e.ExamBlock = block
	}
	return e
}

// selectExamples picks few-shot examples by embedding similarity, falling
// back to the curated defaults when the store is empty or unreachable.
func (a *Agent) selectExamples(ctx context.Context, question string) []*entity.SQLExample {
	resp, err := a.embedder.Generate(ctx, question, embedding.TaskRetrievalQuery)
	if err != nil {
		a.logger.Printf("[SQL] example embedding failed, using defaults: %v", err)
		return DefaultExamples
	}

	examples, err := a.examples.SearchSimilar(ctx, resp.Embedding.Values, a.config.FewShotLimit, a.config.ExampleThreshold)
	if err != nil || len(examples) == 0 {
		if err != nil {
			a.logger.Printf("[SQL] example search failed, using defaults: %v", err)
		}
		return DefaultExamples
	}
	return examples
}

func (a *Agent) generateSQL(
	ctx context.Context,
	question string,
	examples []*entity.SQLExample,
	entities Entities,
	errorHistory []string,
) (string, error) {
	var sb strings.Builder

	sb.WriteString("## Ví dụ:\n")
	for _, ex := range examples {
		fmt.Fprintf(&sb, "Câu hỏi: %s\nSQL: %s\n\n", ex.Question, ex.SQL)
	}

	if len(errorHistory) > 0 {
		sb.WriteString("\nCác lỗi trước đó cần tránh:\n")
		start := 0
		if len(errorHistory) > 3 {
			start = len(errorHistory) - 3
		}
		for _, e := range errorHistory[start:] {
			fmt.Fprintf(&sb, "- %s\n", e)
		}
	}

	if parts := entityContext(entities); parts != "" {
		fmt.Fprintf(&sb, "\nThông tin trích xuất: %s\n", parts)
	}

	fmt.Fprintf(&sb, "\n## Câu hỏi cần trả lời:\n%s\n\n## SQL:", question)

	response, err := a.llmProvider.Generate(ctx, sb.String(),
		llm.WithSystemPrompt(constant.SQLSystemPrompt),
		llm.WithTemperature(0.1),
	)
	if err != nil {
		return "", store.ClassifyInfraErr(fmt.Errorf("sql generation failed: %w", err))
	}
	return ExtractSQL(response), nil
}

func entityContext(e Entities) string {
	var parts []string
	if e.Year != nil {
		parts = append(parts, fmt.Sprintf("Năm: %d", *e.Year))
	}
	if e.Score != nil {
		parts = append(parts, fmt.Sprintf("Điểm: %g", *e.Score))
	}
	if e.ExamBlock != "" {
		parts = append(parts, fmt.Sprintf("Khối: %s", e.ExamBlock))
	}
	return strings.Join(parts, ", ")
}

func (a *Agent) renderAnswer(ctx context.Context, question string, rows []map[string]interface{}) (string, error) {
	if len(rows) == 0 {
		return constant.NoDataResponse, nil
	}

	preview := rows
	if len(preview) > 10 {
		preview = preview[:10]
	}
	rowsJSON, err := json.MarshalIndent(preview, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode rows: %w", err)
	}

	prompt := fmt.Sprintf(constant.SQLResultAnswerPrompt, question, string(rowsJSON), len(rows))
	answer, err := a.llmProvider.Generate(ctx, prompt,
		llm.WithSystemPrompt(constant.SQLAnswerSystemPrompt),
		llm.WithTemperature(0.2),
	)
	if err != nil {
		return "", store.ClassifyInfraErr(fmt.Errorf("answer rendering failed: %w", err))
	}
	return answer, nil
}
