package inventory

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// Snapshot is the serialized form of an Inventory together with where it
// came from. CBOR encoding uses integer keys for compactness.
type Snapshot struct {
	Version   uint8      `cbor:"1,keyasint"`
	Source    string     `cbor:"2,keyasint,omitempty"`
	RunID     string     `cbor:"3,keyasint,omitempty"`
	Inventory *Inventory `cbor:"4,keyasint"`
}

// snapshotEncMode is deterministic so identical inventories encode to
// identical bytes.
var snapshotEncMode cbor.EncMode

var snapshotDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	snapshotEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}
	snapshotDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// EncodeSnapshot encodes a snapshot to CBOR bytes.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	if s.Version == 0 {
		s.Version = SnapshotVersion
	}
	if s.Inventory == nil {
		s.Inventory = New()
	}
	return snapshotEncMode.Marshal(s)
}

// DecodeSnapshot decodes CBOR bytes into a Snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := snapshotDecMode.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	if s.Inventory == nil {
		s.Inventory = New()
	}
	return s, nil
}

// WriteSnapshot encodes s to w.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	data, err := EncodeSnapshot(s)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadSnapshot decodes a snapshot from r.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	return DecodeSnapshot(data)
}
