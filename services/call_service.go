package services

import (
	"sort"
	"time"

	"github.com/brokerdesk/carrier-sales-api/models"
	"github.com/brokerdesk/carrier-sales-api/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CallService records sales call outcomes into the append-only call store
// and lists them back newest first. Records are never mutated or deleted
// after they are written.
type CallService struct {
	store     store.RecordStore
	callsFile string
	now       func() time.Time
}

// NewCallService creates a call outcome recorder backed by the given store.
func NewCallService(recordStore store.RecordStore, callsFile string) *CallService {
	return &CallService{
		store:     recordStore,
		callsFile: callsFile,
		now:       time.Now,
	}
}

// Record stamps the payload with a server-assigned id and timestamp, appends
// it to the call store and returns the assigned values. The id is derived
// from the write timestamp at second granularity, so two calls recorded
// within the same second share an id; callers needing a unique handle use
// call_id, which is filled with a UUID when the payload omits it.
func (s *CallService) Record(payload models.Record) (string, string, error) {
	record := payload.Clone()

	stamped := s.now()
	record["timestamp"] = stamped.Format(time.RFC3339)
	record["id"] = "call_" + stamped.Format("20060102_150405")
	if record.String("call_id") == "" {
		record["call_id"] = uuid.NewString()
	}

	if err := s.store.Append(s.callsFile, record); err != nil {
		return "", "", err
	}

	logrus.WithFields(logrus.Fields{
		"component": "CallService",
		"id":        record["id"],
		"outcome":   record.String("outcome"),
	}).Info("Call outcome recorded")

	return record.String("id"), record.String("timestamp"), nil
}

// List returns recorded calls sorted newest first by timestamp. A positive
// limit caps the result; zero or negative means no limit.
func (s *CallService) List(limit int) ([]models.Record, error) {
	calls, err := s.store.Load(s.callsFile)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(calls, func(i, j int) bool {
		return calls[i].String("timestamp") > calls[j].String("timestamp")
	})

	if limit > 0 && limit < len(calls) {
		calls = calls[:limit]
	}

	return calls, nil
}
