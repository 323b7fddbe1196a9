package entity

// StepAgent names the specialist a plan step is dispatched to.
type StepAgent string

const (
	StepAgentSQL        StepAgent = "sql"
	StepAgentDocument   StepAgent = "document"
	StepAgentSchoolInfo StepAgent = "school_info"
)

// PlanStep is one unit of work. Question is the (possibly decomposed)
// sub-question the agent receives, not necessarily the raw user text.
type PlanStep struct {
	Agent    StepAgent
	Question string
}

// Plan orders the steps for one turn. Numeric steps always precede
// document steps so a document sub-question can be parameterized with the
// numeric result.
type Plan struct {
	Steps   []PlanStep
	Clarify bool
}

// StepOutcome classifies how a single step finished.
type StepOutcome string

const (
	StepDone          StepOutcome = "done"
	StepFailed        StepOutcome = "failed"
	StepLowConfidence StepOutcome = "low_confidence"
)

// StepResult is the supervisor's record of one executed step.
type StepResult struct {
	Step     PlanStep
	Outcome  StepOutcome
	Fragment Fragment
	Evidence []Evidence
	Err      error
}

// StepRecord is the serializable trace of one executed step, persisted
// with the checkpoint so past answers can be inspected.
type StepRecord struct {
	Agent    StepAgent   `json:"agent"`
	Question string      `json:"question"`
	Outcome  StepOutcome `json:"outcome"`
}
