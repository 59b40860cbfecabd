package attendance

import (
	"github.com/kelolahr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Address      string   `json:"address"`
	WorkLocation string   `json:"work_location"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateLocation(r.Latitude, r.Longitude)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Location returns the optional geo point carried by the request. Both
// coordinates must be present for a point to be recorded.
func (r *CheckInRequest) Location() *GeoPoint {
	return geoPoint(r.Latitude, r.Longitude, r.Address)
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateLocation(r.Latitude, r.Longitude)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CheckOutRequest) Location() *GeoPoint {
	return geoPoint(r.Latitude, r.Longitude, r.Address)
}

type BreakStartRequest struct {
	Type string `json:"type"`
}

func (r *BreakStartRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "break type is required",
		})
	} else if !validator.IsInSlice(r.Type, []string{"lunch", "tea", "dinner", "other"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "break type must be one of lunch, tea, dinner, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkCheckInRequest struct {
	EmployeeIDs  []string `json:"employee_ids"`
	WorkLocation string   `json:"work_location"`
}

func (r *BulkCheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "at least one employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkCheckInResult is the per-employee outcome of a bulk check-in. One
// employee's failure never aborts the rest of the batch.
type BulkCheckInResult struct {
	EmployeeID string `json:"employee_id"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

type BulkCheckInResponse struct {
	Processed int                 `json:"processed"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Results   []BulkCheckInResult `json:"results"`
}

type MyAttendanceFilter struct {
	StartDate string
	EndDate   string
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateLocation(lat, lon *float64) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if lat != nil && !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if lon != nil && !validator.IsValidLongitude(*lon) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if (lat == nil) != (lon == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be provided together",
		})
	}
	return errs
}

func geoPoint(lat, lon *float64, address string) *GeoPoint {
	if lat == nil || lon == nil {
		return nil
	}
	return &GeoPoint{Latitude: *lat, Longitude: *lon, Address: address}
}
