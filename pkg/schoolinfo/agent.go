package schoolinfo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"admission-advisor-be/internal/constant"
	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/repository/contract"
	"admission-advisor-be/pkg/llm"
	"admission-advisor-be/pkg/store"
	"admission-advisor-be/pkg/vietnamese"
)

// ErrSchoolNotFound means no school name or code matched the question.
// The caller falls back to document lookup.
var ErrSchoolNotFound = errors.New("no school matched the question")

// Result is one answered school profile question.
type Result struct {
	Answer   string
	Evidence []entity.Evidence
}

var upperRunRe = regexp.MustCompile(`([A-Z]+)\s+([A-Z]+)`)

// Agent answers "giới thiệu về trường X" questions from the school table,
// matching names after diacritic folding and abbreviation expansion.
type Agent struct {
	llmProvider llm.LLMProvider
	schools     contract.SchoolRepository
	logger      *log.Logger
}

func NewAgent(llmProvider llm.LLMProvider, schools contract.SchoolRepository, logger *log.Logger) *Agent {
	return &Agent{
		llmProvider: llmProvider,
		schools:     schools,
		logger:      logger,
	}
}

func (a *Agent) Process(ctx context.Context, question string) (*Result, error) {
	school, err := a.MatchSchool(ctx, question)
	if err != nil {
		return nil, err
	}

	majorList := "Chưa có thông tin"
	if len(school.Majors) > 0 {
		names := make([]string, len(school.Majors))
		for i, m := range school.Majors {
			names[i] = fmt.Sprintf("%s (%s)", m.Name, m.Code)
		}
		majorList = strings.Join(names, ", ")
	}

	prompt := fmt.Sprintf(constant.SchoolInfoPrompt,
		school.Name,
		orDefault(school.Description, "Chưa có mô tả"),
		orDefault(school.Address, "Chưa có thông tin"),
		orDefault(school.Website, "Chưa có thông tin"),
		majorList,
		question,
	)

	answer, err := a.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return nil, store.ClassifyInfraErr(fmt.Errorf("school info generation failed: %w", err))
	}

	a.logger.Printf("[SCHOOL] answered profile for %q", school.Name)
	return &Result{
		Answer: answer,
		Evidence: []entity.Evidence{
			{Kind: entity.EvidenceKindDatabase, Detail: fmt.Sprintf("truong: %s", school.Name)},
		},
	}, nil
}

// MatchSchool finds the school the question refers to. Longest folded
// name first, so "học viện kỹ thuật quân sự" wins over a school whose
// name is a substring of it; school codes ("HVKTQS") are the fallback.
func (a *Agent) MatchSchool(ctx context.Context, question string) (*entity.School, error) {
	// Collapse split uppercase codes ("HV KTQS" -> "HVKTQS") before
	// abbreviation expansion.
	collapsed := question
	for upperRunRe.MatchString(collapsed) {
		collapsed = upperRunRe.ReplaceAllString(collapsed, "$1$2")
	}
	normalized := vietnamese.Normalize(vietnamese.ExpandAbbreviations(collapsed))
	questionLower := strings.ToLower(strings.TrimSpace(question))

	schools, err := a.schools.FindAllActive(ctx)
	if err != nil {
		return nil, store.ClassifyInfraErr(fmt.Errorf("failed to load schools: %w", err))
	}

	candidates := make([]*entity.School, len(schools))
	copy(candidates, schools)
	for _, s := range candidates {
		if s.NameFolded == "" {
			s.NameFolded = vietnamese.Normalize(s.Name)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].NameFolded) > len(candidates[j].NameFolded)
	})

	for _, s := range candidates {
		if strings.Contains(normalized, strings.ToLower(strings.TrimSpace(s.NameFolded))) {
			return s, nil
		}
	}
	for _, s := range candidates {
		code := strings.ToLower(s.Code)
		if code != "" && strings.Contains(questionLower, code) {
			a.logger.Printf("[SCHOOL] matched by code %q", s.Code)
			return s, nil
		}
	}

	a.logger.Printf("[SCHOOL] no match in %q", normalized)
	return nil, ErrSchoolNotFound
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
