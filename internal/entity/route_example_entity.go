package entity

// RouteExample is one labeled utterance the router classifies against.
// Response is non-empty only for fast-path routes with a canned reply.
type RouteExample struct {
	Route    string
	Example  string
	Response string
	Score    float64
}
