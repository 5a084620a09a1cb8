package services

import (
	"math"

	"github.com/brokerdesk/carrier-sales-api/models"
	"github.com/brokerdesk/carrier-sales-api/store"
)

// AnalyticsService computes summary statistics over the entire call store.
// Aggregation is a pure read-only fold: the store is never modified.
type AnalyticsService struct {
	store     store.RecordStore
	callsFile string
}

// NewAnalyticsService creates an analytics engine backed by the given store.
func NewAnalyticsService(recordStore store.RecordStore, callsFile string) *AnalyticsService {
	return &AnalyticsService{
		store:     recordStore,
		callsFile: callsFile,
	}
}

// Summarize aggregates all recorded calls. TotalCalls is zero for an empty
// store; the handler renders that as the bare {total_calls: 0} envelope.
//
// Negotiation averages count only calls with a non-zero value: a call with
// zero rounds never negotiated and a zero agreed rate means no agreement was
// reached, so both are excluded from the averages' denominators.
func (s *AnalyticsService) Summarize() (*models.AnalyticsSummary, error) {
	calls, err := s.store.Load(s.callsFile)
	if err != nil {
		return nil, err
	}

	summary := &models.AnalyticsSummary{
		TotalCalls: len(calls),
	}
	if summary.TotalCalls == 0 {
		return summary, nil
	}

	var roundsSum float64
	var roundsCount int
	var rateSum float64
	var rateCount int

	for _, call := range calls {
		switch call.String("outcome") {
		case models.OutcomeAgreed:
			summary.SuccessfulCalls++
		case models.OutcomeTransferred:
			summary.TransferredCalls++
		}

		switch call.String("sentiment") {
		case models.SentimentPositive:
			summary.Sentiment.Positive++
		case models.SentimentNegative:
			summary.Sentiment.Negative++
		default:
			// Missing or unrecognized sentiment buckets as neutral.
			summary.Sentiment.Neutral++
		}

		if rounds := call.Float("negotiation_rounds"); rounds != 0 {
			roundsSum += rounds
			roundsCount++
		}
		if rate := call.Float("agreed_rate"); rate != 0 {
			rateSum += rate
			rateCount++
		}
	}

	total := float64(summary.TotalCalls)
	summary.ConversionRate = float64(summary.SuccessfulCalls) / total * 100
	summary.Sentiment.PositiveRate = float64(summary.Sentiment.Positive) / total * 100

	if roundsCount > 0 {
		summary.Negotiation.AvgRounds = round2(roundsSum / float64(roundsCount))
	}
	if rateCount > 0 {
		summary.Negotiation.AvgAgreedRate = round2(rateSum / float64(rateCount))
	}

	return summary, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
