package report

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

var (
	recordEncMode cbor.EncMode
	recordDecMode cbor.DecMode
)

func init() {
	var err error

	recordEncMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic("report: failed to create CBOR encoder mode: " + err.Error())
	}

	recordDecMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
		// Records written by newer releases may carry extra fields.
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}.DecMode()
	if err != nil {
		panic("report: failed to create CBOR decoder mode: " + err.Error())
	}
}

// EncodeRecord encodes a record to CBOR bytes.
func EncodeRecord(r Record) ([]byte, error) {
	return recordEncMode.Marshal(r)
}

// DecodeRecord decodes a record from CBOR bytes.
func DecodeRecord(data []byte) (Record, error) {
	var r Record
	err := recordDecMode.Unmarshal(data, &r)
	return r, err
}

// NewEncoder returns a streaming record encoder writing to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return recordEncMode.NewEncoder(w)
}

// NewDecoder returns a streaming record decoder reading from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return recordDecMode.NewDecoder(r)
}
