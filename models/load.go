package models

// Load describes a single shippable freight opportunity from the catalog.
// Catalog records may carry extra free-form fields beyond these; the search
// engine therefore works on Record and this struct documents the known shape
// used by API consumers.
type Load struct {
	LoadID         string  `json:"load_id"`
	Origin         string  `json:"origin"`      // "City, ST"
	Destination    string  `json:"destination"` // "City, ST"
	EquipmentType  string  `json:"equipment_type"`
	CommodityType  string  `json:"commodity_type"`
	PickupDatetime string  `json:"pickup_datetime"` // ISO-8601
	Miles          float64 `json:"miles"`
	Rate           float64 `json:"rate"`
}

// SearchCriteria holds the optional load search filters. Empty fields are
// ignored; all matching is case-insensitive substring containment.
type SearchCriteria struct {
	Origin           string `json:"origin"` // combined "City, ST"; wins over city/state below
	OriginCity       string `json:"origin_city"`
	OriginState      string `json:"origin_state"`
	Destination      string `json:"destination"`
	DestinationCity  string `json:"destination_city"`
	DestinationState string `json:"destination_state"`
	EquipmentType    string `json:"equipment_type"`
	Commodity        string `json:"commodity"`
	PickupDate       string `json:"pickup_date"` // substring match against pickup_datetime
}
