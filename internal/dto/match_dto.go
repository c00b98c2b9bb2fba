package dto

// SwipeRequest records a directional like/dislike on another profile.
type SwipeRequest struct {
	SwipeeID uint `json:"swipee_id"`
	Liked    bool `json:"liked"`
}

// SwipeResult reports whether the swipe completed the mutual match. The
// value is a point-in-time snapshot: a concurrent unmatch may already have
// invalidated it by the time the client reads it.
type SwipeResult struct {
	Matched bool `json:"matched"`
}

type SendMessageRequest struct {
	MatchID uint   `json:"match_id"`
	Message string `json:"message"`
}

// ChatEntry is one decrypted message as served to clients. Timestamp is
// canonical ISO-8601 UTC regardless of the storage engine's native type.
type ChatEntry struct {
	SenderID  uint   `json:"sender_id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type BlockRequest struct {
	BlockedID uint `json:"blocked_id"`
}

type ReportRequest struct {
	ReportedID uint   `json:"reported_id"`
	Reason     string `json:"reason"`
}

type ActionReportRequest struct {
	Status    string `json:"status"`
	AdminNote string `json:"admin_note"`
}

type Suggestion struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	Bio         string  `json:"bio"`
	SportType   string  `json:"sport_type"`
	AvgDistance float64 `json:"avg_distance"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DistanceKm  float64 `json:"distance_km"`
}

type RouteSuggestion struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DistanceKm  float64 `json:"distance_km"`
	MapLink     string  `json:"map_link"`
}
