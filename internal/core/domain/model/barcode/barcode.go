package barcode

import (
	"errors"
	"fmt"
	"strings"

	"workshop/internal/core/domain/model/station"
)

// ErrMalformedBarcode is the sentinel for every scan string that cannot be decoded.
// Use errors.Is against it; the concrete MalformedBarcodeError carries the input
// and the reason for UI guidance.
var ErrMalformedBarcode = errors.New("malformed barcode")

// MalformedBarcodeError describes why a scan string failed to decode.
type MalformedBarcodeError struct {
	Input  string
	Reason string
}

func (e *MalformedBarcodeError) Error() string {
	return fmt.Sprintf("%s: %q: %s", ErrMalformedBarcode, e.Input, e.Reason)
}

func (e *MalformedBarcodeError) Unwrap() error {
	return ErrMalformedBarcode
}

func newMalformed(input, reason string) error {
	return &MalformedBarcodeError{Input: input, Reason: reason}
}

const (
	prefixLength  = 3
	segmentCount  = 3
	segmentDelim  = "-"
	workerCodes   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	sequenceCodes = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Barcode is the decoded form of a scan string `PPP-ORDERNUMBER-ITEMREF`, where
// PPP is a three-character prefix: station code, worker code, sequence code.
// OrderNumber and ItemRef are opaque non-empty tokens. Pure value, no I/O.
type Barcode struct {
	prefix      string
	orderNumber string
	itemRef     string
	station     station.Station
	workerCode  string
	sequence    string
}

// Decode parses a scan string. It fails with an error unwrapping to
// ErrMalformedBarcode when the string does not split into exactly three
// dash-separated non-empty segments, when the prefix is not exactly three
// characters, or when any prefix character is not in its known code table.
func Decode(s string) (Barcode, error) {
	segments := strings.Split(s, segmentDelim)
	if len(segments) != segmentCount {
		return Barcode{}, newMalformed(s,
			fmt.Sprintf("expected %d dash-separated segments, got %d", segmentCount, len(segments)))
	}

	prefix, orderNumber, itemRef := segments[0], segments[1], segments[2]
	if orderNumber == "" {
		return Barcode{}, newMalformed(s, "order number segment is empty")
	}
	if itemRef == "" {
		return Barcode{}, newMalformed(s, "item reference segment is empty")
	}
	if len(prefix) != prefixLength {
		return Barcode{}, newMalformed(s,
			fmt.Sprintf("prefix must be exactly %d characters, got %d", prefixLength, len(prefix)))
	}

	stationCode := prefix[0:1]
	workerCode := prefix[1:2]
	sequence := prefix[2:3]

	st, err := station.FromCode(stationCode)
	if err != nil {
		return Barcode{}, newMalformed(s, fmt.Sprintf("unknown station code %q", stationCode))
	}
	if !strings.Contains(workerCodes, workerCode) {
		return Barcode{}, newMalformed(s, fmt.Sprintf("unknown worker code %q", workerCode))
	}
	if !strings.Contains(sequenceCodes, sequence) {
		return Barcode{}, newMalformed(s, fmt.Sprintf("unknown sequence code %q", sequence))
	}

	return Barcode{
		prefix:      prefix,
		orderNumber: orderNumber,
		itemRef:     itemRef,
		station:     st,
		workerCode:  workerCode,
		sequence:    sequence,
	}, nil
}

// Encode reconstructs a scan string from its parts. The result round-trips
// through Decode: Encode of a decoded barcode's parts yields the original string.
func Encode(prefix, orderNumber, itemRef string) string {
	return strings.Join([]string{prefix, orderNumber, itemRef}, segmentDelim)
}

// String returns the encoded scan string for the barcode.
func (b Barcode) String() string {
	return Encode(b.prefix, b.orderNumber, b.itemRef)
}

// Prefix returns the three-character scanner prefix.
func (b Barcode) Prefix() string {
	return b.prefix
}

// OrderNumber returns the opaque order number token.
func (b Barcode) OrderNumber() string {
	return b.orderNumber
}

// ItemRef returns the opaque item reference token.
func (b Barcode) ItemRef() string {
	return b.itemRef
}

// Station returns the station resolved from the first prefix character.
func (b Barcode) Station() station.Station {
	return b.station
}

// WorkerCode returns the single-character worker code.
func (b Barcode) WorkerCode() string {
	return b.workerCode
}

// Sequence returns the single-character sequence code.
func (b Barcode) Sequence() string {
	return b.sequence
}
