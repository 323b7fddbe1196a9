package entity

// Fragment is one answer piece produced by a single agent. Fragments are
// concatenated in plan order, never interleaved.
type Fragment struct {
	Text   string
	Source StepAgent
}

const (
	EvidenceKindDocument = "document"
	EvidenceKindSQL      = "sql"
	EvidenceKindDatabase = "database"
)

// Evidence is a citation attached to an answer. Document evidence carries
// the hierarchy path of the cited passage; SQL evidence carries the
// executed query.
type Evidence struct {
	Kind    string  `json:"kind"`
	Path    string  `json:"path,omitempty"`
	SQL     string  `json:"sql,omitempty"`
	Detail  string  `json:"detail,omitempty"`
	Preview string  `json:"preview,omitempty"`
	Score   float64 `json:"score,omitempty"`
}

// MergedAnswer is the final product of one turn. Degraded is set when at
// least one plan step ended in a failure or a give-up, so the answer
// covers only part of the question. Steps traces what was executed.
type MergedAnswer struct {
	Fragments []Fragment
	Evidence  []Evidence
	Steps     []StepRecord
	Degraded  bool
}
