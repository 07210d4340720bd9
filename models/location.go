package models

import "time"

// Manager roles.
const (
	RoleStoreManager    = "store_manager"
	RoleDistrictManager = "district_manager"
)

// Location is a single store of the chain.
type Location struct {
	ID                string    `json:"id"`
	StoreNumber       string    `json:"storeNumber"`
	StoreName         string    `json:"storeName"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	ZipCode           string    `json:"zipCode"`
	PhoneNumber       *string   `json:"phoneNumber"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
	GooglePlaceID     *string   `json:"googlePlaceId"`
	DistrictID        *string   `json:"districtId"`
	StoreManagerID    *string   `json:"storeManagerId"`
	DistrictManagerID *string   `json:"districtManagerId"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// District groups locations.
type District struct {
	ID             string `json:"districtId"`
	DistrictNumber string `json:"districtNumber"`
	DistrictName   string `json:"districtName"`
}

// Manager is a store or district manager referenced by locations.
type Manager struct {
	ID          string  `json:"managerId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Role        string  `json:"role"`
}

// StoreHours is the schedule of a location for one day of the week
// (0 = Sunday). Times are "HH:MM" in 24-hour format.
type StoreHours struct {
	ID         string  `json:"id"`
	LocationID string  `json:"locationId"`
	DayOfWeek  int     `json:"dayOfWeek"`
	OpenTime   *string `json:"openTime"`
	CloseTime  *string `json:"closeTime"`
	IsClosed   bool    `json:"isClosed"`
}

// LocationDetails is a location joined with its district, store manager
// and (for single-location reads) its hours.
type LocationDetails struct {
	Location
	District     *District    `json:"district"`
	StoreManager *Manager     `json:"storeManager"`
	Hours        []StoreHours `json:"hours,omitempty"`
}

// LocationFilter narrows location listings. Nil fields are not applied.
type LocationFilter struct {
	Active     *bool
	DistrictID *string
	State      *string
}

// LocationUpdate is a partial update of a location. Only non-nil fields are
// written; Hours, when non-nil, replaces the whole schedule.
type LocationUpdate struct {
	ID                string        `json:"-"`
	StoreNumber       *string       `json:"storeNumber,omitempty"`
	StoreName         *string       `json:"storeName,omitempty"`
	Address           *string       `json:"address,omitempty"`
	City              *string       `json:"city,omitempty"`
	State             *string       `json:"state,omitempty"`
	ZipCode           *string       `json:"zipCode,omitempty"`
	PhoneNumber       *string       `json:"phoneNumber,omitempty"`
	Latitude          *float64      `json:"latitude,omitempty"`
	Longitude         *float64      `json:"longitude,omitempty"`
	GooglePlaceID     *string       `json:"googlePlaceId,omitempty"`
	DistrictID        *string       `json:"districtId,omitempty"`
	StoreManagerID    *string       `json:"storeManagerId,omitempty"`
	DistrictManagerID *string       `json:"districtManagerId,omitempty"`
	IsActive          *bool         `json:"isActive,omitempty"`
	Hours             *[]StoreHours `json:"hours,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u LocationUpdate) IsEmpty() bool {
	return u.StoreNumber == nil && u.StoreName == nil && u.Address == nil &&
		u.City == nil && u.State == nil && u.ZipCode == nil &&
		u.PhoneNumber == nil && u.Latitude == nil && u.Longitude == nil &&
		u.GooglePlaceID == nil && u.DistrictID == nil && u.StoreManagerID == nil &&
		u.DistrictManagerID == nil && u.IsActive == nil && u.Hours == nil
}
