package services

import (
	"testing"

	"github.com/brokerdesk/carrier-sales-api/models"
	"github.com/brokerdesk/carrier-sales-api/store"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

const testLoadsFile = "loads"

func seedCatalog(t *testing.T) (*LoadService, []models.Record) {
	t.Helper()

	catalog := []models.Record{
		{
			"load_id":         "L001",
			"origin":          "Dallas, TX",
			"destination":     "Atlanta, GA",
			"equipment_type":  "Dry Van",
			"commodity_type":  "Electronics",
			"pickup_datetime": "2026-07-15T08:00:00",
			"miles":           float64(780),
			"rate":            float64(1850),
		},
		{
			"load_id":         "L002",
			"origin":          "Austin, TX",
			"destination":     "Miami, FL",
			"equipment_type":  "Reefer",
			"commodity_type":  "Produce",
			"pickup_datetime": "2026-07-16T06:30:00",
			"miles":           float64(1330),
			"rate":            float64(2900),
		},
		{
			"load_id":         "L003",
			"origin":          "Phoenix, AZ",
			"destination":     "Denver, CO",
			"equipment_type":  "Flatbed",
			"commodity_type":  "Steel Coils",
			"pickup_datetime": "2026-08-01T10:00:00",
			"miles":           float64(860),
			"rate":            float64(2100),
		},
	}

	memStore := store.NewMemoryStore()
	require.NoError(t, memStore.Save(testLoadsFile, catalog))
	return NewLoadService(memStore, testLoadsFile), catalog
}

func loadIDs(records []models.Record) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.String("load_id"))
	}
	return ids
}

func TestSearchNoCriteriaReturnsFullCatalog(t *testing.T) {
	service, catalog := seedCatalog(t)

	result, err := service.Search(models.SearchCriteria{})
	require.NoError(t, err)
	require.Len(t, result, len(catalog))
	require.Equal(t, loadIDs(catalog), loadIDs(result))
}

func TestSearchFilterSemantics(t *testing.T) {
	service, _ := seedCatalog(t)

	tests := []struct {
		name     string
		criteria models.SearchCriteria
		want     []string
	}{
		{
			name:     "combined origin city and state",
			criteria: models.SearchCriteria{Origin: "Dallas, TX"},
			want:     []string{"L001"},
		},
		{
			name:     "state filter is substring over combined origin",
			criteria: models.SearchCriteria{OriginState: "TX"},
			want:     []string{"L001", "L002"},
		},
		{
			name:     "combined form wins over separate city param",
			criteria: models.SearchCriteria{Origin: "Austin, TX", OriginCity: "Dallas"},
			want:     []string{"L002"},
		},
		{
			name:     "case-insensitive partial equipment match",
			criteria: models.SearchCriteria{EquipmentType: "van"},
			want:     []string{"L001"},
		},
		{
			name:     "commodity substring",
			criteria: models.SearchCriteria{Commodity: "steel"},
			want:     []string{"L003"},
		},
		{
			name:     "pickup_date is a substring match, not a range",
			criteria: models.SearchCriteria{PickupDate: "2026-07"},
			want:     []string{"L001", "L002"},
		},
		{
			name:     "criteria AND together",
			criteria: models.SearchCriteria{OriginState: "TX", EquipmentType: "Reefer"},
			want:     []string{"L002"},
		},
		{
			name:     "destination city and state separately",
			criteria: models.SearchCriteria{DestinationCity: "Denver", DestinationState: "CO"},
			want:     []string{"L003"},
		},
		{
			name:     "no match",
			criteria: models.SearchCriteria{Origin: "Chicago, IL"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Search(tt.criteria)
			require.NoError(t, err)
			require.Equal(t, tt.want, loadIDs(result))
		})
	}
}

func TestSearchEmptyCatalog(t *testing.T) {
	service := NewLoadService(store.NewMemoryStore(), testLoadsFile)

	result, err := service.Search(models.SearchCriteria{Origin: "Dallas, TX"})
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestSearchDoesNotMutateCatalog(t *testing.T) {
	service, catalog := seedCatalog(t)

	_, err := service.Search(models.SearchCriteria{OriginState: "TX"})
	require.NoError(t, err)

	after, err := service.Search(models.SearchCriteria{})
	require.NoError(t, err)
	require.Equal(t, loadIDs(catalog), loadIDs(after))
}

func TestGetByID(t *testing.T) {
	service, _ := seedCatalog(t)

	load, err := service.GetByID("L002")
	require.NoError(t, err)
	require.NotNil(t, load)
	require.Equal(t, "Austin, TX", load.String("origin"))

	missing, err := service.GetByID("L999")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSearchProperties(t *testing.T) {
	service, catalog := seedCatalog(t)

	properties := gopter.NewProperties(nil)

	properties.Property("any criteria yield an ordered subset of the catalog", prop.ForAll(
		func(originState, equipment, commodity string) bool {
			result, err := service.Search(models.SearchCriteria{
				OriginState:   originState,
				EquipmentType: equipment,
				Commodity:     commodity,
			})
			if err != nil {
				return false
			}

			// Every result must appear in the catalog, in catalog order.
			position := 0
			for _, matched := range result {
				found := false
				for ; position < len(catalog); position++ {
					if catalog[position].String("load_id") == matched.String("load_id") {
						found = true
						position++
						break
					}
				}
				if !found {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("filtering by a load's own equipment value includes that load", prop.ForAll(
		func(index int) bool {
			load := catalog[index%len(catalog)]
			result, err := service.Search(models.SearchCriteria{
				EquipmentType: load.String("equipment_type"),
			})
			if err != nil {
				return false
			}
			for _, matched := range result {
				if matched.String("load_id") == load.String("load_id") {
					return true
				}
			}
			return false
		},
		gen.IntRange(0, 2),
	))

	properties.Property("repeated searches with identical criteria are idempotent", prop.ForAll(
		func(state string) bool {
			first, err1 := service.Search(models.SearchCriteria{OriginState: state})
			second, err2 := service.Search(models.SearchCriteria{OriginState: state})
			if err1 != nil || err2 != nil {
				return false
			}
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i].String("load_id") != second[i].String("load_id") {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
