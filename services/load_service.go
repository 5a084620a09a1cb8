package services

import (
	"strings"

	"github.com/brokerdesk/carrier-sales-api/models"
	"github.com/brokerdesk/carrier-sales-api/store"
	"github.com/sirupsen/logrus"
)

// LoadService searches the load catalog. The catalog is immutable reference
// data, loaded fresh from the record store on every call and never mutated
// by filtering.
type LoadService struct {
	store     store.RecordStore
	loadsFile string
}

// NewLoadService creates a load search service backed by the given store.
func NewLoadService(recordStore store.RecordStore, loadsFile string) *LoadService {
	return &LoadService{
		store:     recordStore,
		loadsFile: loadsFile,
	}
}

// Search filters the catalog by the given criteria. Every present criterion
// is an AND condition matched as case-insensitive substring containment;
// absent criteria are ignored, so empty criteria return the whole catalog.
// Results keep catalog order.
//
// Origin city and state are both matched against the combined origin field
// ("City, ST"), so a state filter also matches state text occurring inside a
// city name. That is documented surface behavior carried over from the
// original API contract.
func (s *LoadService) Search(criteria models.SearchCriteria) ([]models.Record, error) {
	originCity, originState := resolveCityState(criteria.Origin, criteria.OriginCity, criteria.OriginState)
	destinationCity, destinationState := resolveCityState(criteria.Destination, criteria.DestinationCity, criteria.DestinationState)
	equipmentType := strings.ToLower(criteria.EquipmentType)
	commodity := strings.ToLower(criteria.Commodity)
	pickupDate := criteria.PickupDate

	catalog, err := s.store.Load(s.loadsFile)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Record, 0, len(catalog))
	for _, load := range catalog {
		origin := strings.ToLower(load.String("origin"))
		destination := strings.ToLower(load.String("destination"))
		equipment := strings.ToLower(load.String("equipment_type"))
		commodityType := strings.ToLower(load.String("commodity_type"))

		if originCity != "" && !strings.Contains(origin, originCity) {
			continue
		}
		if originState != "" && !strings.Contains(origin, originState) {
			continue
		}
		if destinationCity != "" && !strings.Contains(destination, destinationCity) {
			continue
		}
		if destinationState != "" && !strings.Contains(destination, destinationState) {
			continue
		}
		if equipmentType != "" && !strings.Contains(equipment, equipmentType) {
			continue
		}
		if commodity != "" && !strings.Contains(commodityType, commodity) {
			continue
		}
		if pickupDate != "" && !strings.Contains(load.String("pickup_datetime"), pickupDate) {
			continue
		}
		filtered = append(filtered, load)
	}

	logrus.WithFields(logrus.Fields{
		"component": "LoadService",
		"catalog":   len(catalog),
		"matched":   len(filtered),
	}).Debug("Load search completed")

	return filtered, nil
}

// GetByID returns the catalog load with the given load_id, or nil when no
// such load exists.
func (s *LoadService) GetByID(loadID string) (models.Record, error) {
	catalog, err := s.store.Load(s.loadsFile)
	if err != nil {
		return nil, err
	}

	for _, load := range catalog {
		if load.String("load_id") == loadID {
			return load, nil
		}
	}

	return nil, nil
}

// resolveCityState merges the two accepted origin/destination forms: a
// combined "City, ST" value is split on the first comma and takes precedence
// over separately supplied city/state parameters. All parts are lowercased
// for substring matching.
func resolveCityState(combined, city, state string) (string, string) {
	if combined != "" {
		city, state = splitCityState(combined)
	}
	return strings.ToLower(strings.TrimSpace(city)), strings.ToLower(strings.TrimSpace(state))
}

func splitCityState(value string) (string, string) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(value), ""
}
