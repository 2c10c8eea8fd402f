package station

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Station identifies a fixed physical production step on the shop floor.
// Every kiosk scanner is homed to exactly one station, and every scan event is
// attributed to the station where it happened.
//
// Office is special: it both starts production (first scan of a new item) and
// finalizes finished items. The remaining stations form the production line in
// workflow order.
type Station int

const (
	// Unknown represents an invalid or undefined station.
	// This value (0) helps catch uninitialized Station values.
	Unknown Station = iota

	// Office starts production for new items and finalizes finished ones.
	Office

	// Cutting is the fabric cutting station.
	Cutting

	// Sewing is the sewing station.
	Sewing

	// FoamCutting is the foam cutting station.
	FoamCutting

	// Stuffing is the stuffing station.
	Stuffing

	// Packaging is the packaging station.
	Packaging
)

// getStationStrings returns a map of Station values to their string representations.
func getStationStrings() map[Station]string {
	return map[Station]string{
		Unknown:     "Unknown",
		Office:      "Office",
		Cutting:     "Cutting",
		Sewing:      "Sewing",
		FoamCutting: "FoamCutting",
		Stuffing:    "Stuffing",
		Packaging:   "Packaging",
	}
}

// getStationCodes returns the known station-code table: the single-character codes
// that appear as the first character of a scanner prefix on item barcodes.
func getStationCodes() map[Station]string {
	//nolint:exhaustive // Unknown has no barcode code by definition
	return map[Station]string{
		Office:      "O",
		Cutting:     "C",
		Sewing:      "S",
		FoamCutting: "F",
		Stuffing:    "T",
		Packaging:   "P",
	}
}

// Validate checks if the Station value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Station) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("station is invalid",
			fmt.Errorf("%d is not a valid station", int(s)))
	}
	if _, ok := getStationStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("station is invalid",
			fmt.Errorf("%d is not a valid station", int(s)))
	}
	return nil
}

// String returns the human-readable name of the station.
// Implements fmt.Stringer and is safe to call on any Station value.
func (s Station) String() string {
	if str, ok := getStationStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the single-character barcode code for the station.
// Returns an empty string for Unknown or invalid stations.
func (s Station) Code() string {
	return getStationCodes()[s]
}

// FromCode resolves a single-character station code from the known station-code
// table. Returns a ValueIsInvalidError for codes not in the table.
func FromCode(code string) (Station, error) {
	for station, c := range getStationCodes() {
		if c == code {
			return station, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("station code is invalid",
		fmt.Errorf("%q is not a known station code", code))
}

// All returns every valid station in workflow order, Office first.
func All() []Station {
	return []Station{Office, Cutting, Sewing, FoamCutting, Stuffing, Packaging}
}
