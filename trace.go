package localize

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Op identifies what a provenance entry records.
type Op string

const (
	// OpLocalize records a value being pushed and a replacement installed.
	OpLocalize Op = "localize"
	// OpRestore records a guard release popping and restoring a value.
	OpRestore Op = "restore"
	// OpVoid records a zero-duration override.
	OpVoid Op = "void"
)

// Trace captures the ordered override history for one attribute, used
// when debugging nested overrides and their release order.
type Trace struct {
	Attr   string       `json:"attr"`
	Events []Provenance `json:"events"`
}

// Provenance details a single push, restore, or void override on the
// value stack. Depth is the stack depth observed after the operation.
type Provenance struct {
	GuardID uuid.UUID `json:"guard_id"`
	Op      Op        `json:"op"`
	Depth   int       `json:"depth"`
	At      time.Time `json:"at"`
}

// ToJSON serialises the trace into JSON for logging or transport
// helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously
// generated via ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
