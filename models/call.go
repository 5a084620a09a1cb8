package models

// Call outcome classifications reported by the sales workflow.
const (
	OutcomeAgreed      = "agreed"
	OutcomeDeclined    = "declined"
	OutcomeNoMatch     = "no_match"
	OutcomeTransferred = "transferred"
)

// Sentiment classifications for caller tone.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// CallOutcome documents the expected record shape for POST /api/call-results.
// Payloads are accepted without schema validation (missing fields are kept
// missing), so the recorder itself operates on Record; this struct is the
// reference for API consumers. The server stamps ID and Timestamp at write
// time, the rest comes from the caller.
type CallOutcome struct {
	ID                string                 `json:"id"`        // call_<YYYYMMDD_HHMMSS>, server-assigned
	Timestamp         string                 `json:"timestamp"` // ISO-8601, server-assigned
	CallID            string                 `json:"call_id"`
	MCNumber          string                 `json:"mc_number"`
	CarrierName       string                 `json:"carrier_name"`
	LoadID            string                 `json:"load_id"`
	Origin            string                 `json:"origin"`
	Destination       string                 `json:"destination"`
	Equipment         string                 `json:"equipment"`
	Miles             float64                `json:"miles"`
	PickupDatetime    string                 `json:"pickup_datetime"`
	InitialRate       float64                `json:"initial_rate"`
	CarrierOffer      *float64               `json:"carrier_offer"`
	AgreedRate        *float64               `json:"agreed_rate"`
	NegotiationRounds int                    `json:"negotiation_rounds"`
	Outcome           string                 `json:"outcome"`
	Sentiment         string                 `json:"sentiment"`
	Transcript        string                 `json:"transcript"`
	ExtractedData     map[string]interface{} `json:"extracted_data"`
}

// AnalyticsSummary aggregates the entire call store. When no calls are
// recorded the API returns a bare {total_calls: 0} envelope instead.
type AnalyticsSummary struct {
	TotalCalls       int                  `json:"total_calls"`
	SuccessfulCalls  int                  `json:"successful_calls"`
	TransferredCalls int                  `json:"transferred_calls"`
	ConversionRate   float64              `json:"conversion_rate"`
	Sentiment        SentimentBreakdown   `json:"sentiment"`
	Negotiation      NegotiationBreakdown `json:"negotiation"`
}

// SentimentBreakdown counts calls per sentiment bucket. Calls without a
// sentiment field count as neutral.
type SentimentBreakdown struct {
	Positive     int     `json:"positive"`
	Neutral      int     `json:"neutral"`
	Negative     int     `json:"negative"`
	PositiveRate float64 `json:"positive_rate"`
}

// NegotiationBreakdown averages negotiation stats across calls where the
// value is non-zero. Calls that never negotiated (zero or missing rounds)
// are excluded from the denominator.
type NegotiationBreakdown struct {
	AvgRounds     float64 `json:"avg_rounds"`
	AvgAgreedRate float64 `json:"avg_agreed_rate"`
}
