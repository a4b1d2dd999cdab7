package model

// RecommendationSet holds the three independently-labeled collections the
// collaborator computes for a user. Any of them may be empty; none of them
// is ever nil after assembly.
type RecommendationSet struct {
	Location  []Movie `json:"locationRecommendations"`
	Basic     []Movie `json:"basicRecommendations"`
	Streaming []Movie `json:"streamingRecommendations"`
}

func EmptyRecommendationSet() RecommendationSet {
	return RecommendationSet{
		Location:  []Movie{},
		Basic:     []Movie{},
		Streaming: []Movie{},
	}
}
