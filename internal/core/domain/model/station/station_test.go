package station_test

import (
	"fmt"
	"testing"

	"workshop/internal/core/domain/model/station"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStation_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(station.Unknown))
		assert.Equal(t, 1, int(station.Office))
		assert.Equal(t, 2, int(station.Cutting))
		assert.Equal(t, 3, int(station.Sewing))
		assert.Equal(t, 4, int(station.FoamCutting))
		assert.Equal(t, 5, int(station.Stuffing))
		assert.Equal(t, 6, int(station.Packaging))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		stations := append([]station.Station{station.Unknown}, station.All()...)

		for i, station1 := range stations {
			for j, station2 := range stations {
				if i != j {
					assert.NotEqual(t, station1, station2,
						"stations at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStation_Validate(t *testing.T) {
	t.Run("should validate valid stations", func(t *testing.T) {
		for _, s := range station.All() {
			t.Run(fmt.Sprintf("should validate %s station", s.String()), func(t *testing.T) {
				err := s.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown station", func(t *testing.T) {
		err := station.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "station is invalid")
	})

	t.Run("should reject invalid station values", func(t *testing.T) {
		invalidStations := []station.Station{
			station.Station(-1),
			station.Station(7),
			station.Station(100),
		}

		for _, s := range invalidStations {
			t.Run(fmt.Sprintf("should reject station value %d", int(s)), func(t *testing.T) {
				err := s.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStation_String(t *testing.T) {
	t.Run("should return correct string for valid stations", func(t *testing.T) {
		testCases := []struct {
			station  station.Station
			expected string
		}{
			{station.Office, "Office"},
			{station.Cutting, "Cutting"},
			{station.Sewing, "Sewing"},
			{station.FoamCutting, "FoamCutting"},
			{station.Stuffing, "Stuffing"},
			{station.Packaging, "Packaging"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.station.String())
		}
	})

	t.Run("should return Unknown for invalid stations", func(t *testing.T) {
		assert.Equal(t, "Unknown", station.Unknown.String())
		assert.Equal(t, "Unknown", station.Station(99).String())
	})
}

func TestStation_Code(t *testing.T) {
	t.Run("should return the known station-code table", func(t *testing.T) {
		testCases := []struct {
			station station.Station
			code    string
		}{
			{station.Office, "O"},
			{station.Cutting, "C"},
			{station.Sewing, "S"},
			{station.FoamCutting, "F"},
			{station.Stuffing, "T"},
			{station.Packaging, "P"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should map %s to %q", tc.station.String(), tc.code), func(t *testing.T) {
				assert.Equal(t, tc.code, tc.station.Code())
			})
		}
	})

	t.Run("should return empty code for Unknown", func(t *testing.T) {
		assert.Empty(t, station.Unknown.Code())
	})
}

func TestStation_FromCode(t *testing.T) {
	t.Run("should round-trip every station code", func(t *testing.T) {
		for _, s := range station.All() {
			resolved, err := station.FromCode(s.Code())

			require.NoError(t, err)
			assert.Equal(t, s, resolved)
		}
	})

	t.Run("should reject unknown codes", func(t *testing.T) {
		for _, code := range []string{"", "X", "o", "OO", "1"} {
			t.Run(fmt.Sprintf("should reject code %q", code), func(t *testing.T) {
				resolved, err := station.FromCode(code)

				require.Error(t, err)
				assert.Equal(t, station.Unknown, resolved)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStation_All(t *testing.T) {
	t.Run("should list stations in workflow order with Office first", func(t *testing.T) {
		assert.Equal(t, []station.Station{
			station.Office,
			station.Cutting,
			station.Sewing,
			station.FoamCutting,
			station.Stuffing,
			station.Packaging,
		}, station.All())
	})
}
