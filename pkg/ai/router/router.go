package router

import (
	"context"
	"log"
	"strings"

	"admission-advisor-be/internal/constant"
	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/repository/contract"
	"admission-advisor-be/pkg/embedding"
)

// routeIntents maps fine-grained route names to the coarse intent class
// the planner works with.
var routeIntents = map[string]entity.Intent{
	"greeting":  entity.IntentTrivialFAQ,
	"about_bot": entity.IntentTrivialFAQ,

	"score_lookup": entity.IntentNumericLookup,
	"score_check":  entity.IntentNumericLookup,
	"quota_lookup": entity.IntentNumericLookup,
	"comparison":   entity.IntentNumericLookup,

	"regulation": entity.IntentDocumentLookup,
	"procedure":  entity.IntentDocumentLookup,
	"priority":   entity.IntentDocumentLookup,
	"faq":        entity.IntentDocumentLookup,

	"hybrid_eligibility": entity.IntentHybrid,

	"school_info": entity.IntentSchoolInfo,
}

// Router classifies an utterance by embedding it and finding the nearest
// labeled examples. No LLM call is involved, which keeps the fast path
// fast.
type Router struct {
	embedder  embedding.EmbeddingProvider
	routes    contract.IntentRouteRepository
	threshold float64
	topK      int
	logger    *log.Logger
}

// NewRouter creates a semantic intent router. threshold is the minimum
// cosine similarity required to accept a match.
func NewRouter(
	embedder embedding.EmbeddingProvider,
	routes contract.IntentRouteRepository,
	threshold float64,
	logger *log.Logger,
) *Router {
	if threshold <= 0 {
		threshold = 0.85
	}
	return &Router{
		embedder:  embedder,
		routes:    routes,
		threshold: threshold,
		topK:      5,
		logger:    logger,
	}
}

// Route classifies text. When no example clears the threshold the
// decision comes back with IntentUnknown and Matched=false; the caller
// decides whether to ask for clarification. An embedding or route-store
// failure also degrades to IntentUnknown with confidence 0 so the turn
// still reaches the planner instead of being dropped.
func (r *Router) Route(ctx context.Context, text string) (*entity.RouteDecision, error) {
	resp, err := r.embedder.Generate(ctx, text, embedding.TaskRetrievalQuery)
	if err != nil {
		r.logger.Printf("[ROUTER] embedding failed, routing as unknown: %v", err)
		return unknownDecision(), nil
	}

	examples, err := r.routes.SearchSimilar(ctx, resp.Embedding.Values, r.topK)
	if err != nil {
		r.logger.Printf("[ROUTER] route search failed, routing as unknown: %v", err)
		return unknownDecision(), nil
	}

	// Max similarity per route wins.
	var bestRoute, bestResponse string
	var bestScore float64
	for _, ex := range examples {
		if ex.Score > bestScore {
			bestScore = ex.Score
			bestRoute = ex.Route
			bestResponse = ex.Response
		}
	}

	if bestRoute == "" || bestScore < r.threshold {
		r.logger.Printf("[ROUTER] no match above threshold %.2f (best=%q %.3f)", r.threshold, bestRoute, bestScore)
		return &entity.RouteDecision{
			Intent:     entity.IntentUnknown,
			Route:      bestRoute,
			Confidence: bestScore,
			Matched:    false,
		}, nil
	}

	intent, ok := routeIntents[bestRoute]
	if !ok {
		intent = fallbackIntent(bestRoute)
	}

	decision := &entity.RouteDecision{
		Intent:     intent,
		Route:      bestRoute,
		Confidence: bestScore,
		Matched:    true,
	}

	if intent == entity.IntentTrivialFAQ {
		decision.Response = bestResponse
		if decision.Response == "" {
			decision.Response = constant.GreetingResponse
		}
	}

	r.logger.Printf("[ROUTER] route=%s intent=%s confidence=%.3f", bestRoute, intent, bestScore)
	return decision, nil
}

func unknownDecision() *entity.RouteDecision {
	return &entity.RouteDecision{Intent: entity.IntentUnknown, Confidence: 0, Matched: false}
}

// fallbackIntent guesses the intent class for a route name that is not
// in the static table, e.g. a new "regulation_health" sub-route added to
// the database after deployment.
func fallbackIntent(route string) entity.Intent {
	switch {
	case strings.HasPrefix(route, "regulation"),
		strings.HasPrefix(route, "procedure"),
		strings.HasPrefix(route, "faq"),
		strings.HasPrefix(route, "priority"):
		return entity.IntentDocumentLookup
	case strings.HasPrefix(route, "score"), strings.HasPrefix(route, "quota"):
		return entity.IntentNumericLookup
	case strings.HasPrefix(route, "hybrid"):
		return entity.IntentHybrid
	default:
		return entity.IntentUnknown
	}
}
