package entity

// Intent is the coarse classification a turn is routed under.
type Intent string

const (
	IntentTrivialFAQ     Intent = "trivial_faq"
	IntentDocumentLookup Intent = "document_lookup"
	IntentNumericLookup  Intent = "numeric_lookup"
	IntentHybrid         Intent = "hybrid"
	IntentSchoolInfo     Intent = "school_info"
	IntentUnknown        Intent = "unknown"
)

// RouteDecision is the router's output for one utterance. Route is the
// fine-grained matched route name (e.g. "score_lookup"); Intent is the
// coarse class it maps to. Response carries the canned reply for fast-path
// routes that have one.
type RouteDecision struct {
	Intent     Intent
	Route      string
	Confidence float64
	Matched    bool
	Response   string
}
