package mission

import (
	"encoding/json"
	"time"
)

// Optional tracks whether a JSON key was supplied at all, and if so whether
// it carried null. A zero Optional means the key was absent.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that was supplied as null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsNull reports whether the key was supplied with a null value.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// UnmarshalJSON marks the value as supplied. encoding/json only calls this
// for keys present in the document, null included.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Ptr returns the supplied pointer when set, otherwise fallback.
func (o Optional[T]) Ptr(fallback *T) *T {
	if !o.Set {
		return fallback
	}
	return o.Value
}

// Fields is the mutable content of a mission, identifier excluded.
type Fields struct {
	Name           string
	LaunchDate     time.Time
	Destination    string
	State          string
	Crew           *string
	Payload        *string
	Duration       *string
	Cost           *float64
	DetailedStatus *string
}

// Patch is a partial update. Only supplied keys change the target.
type Patch struct {
	Name           Optional[string]  `json:"nome"`
	LaunchDate     Optional[string]  `json:"data_lancamento"`
	Destination    Optional[string]  `json:"destino"`
	State          Optional[string]  `json:"estado_missao"`
	Crew           Optional[string]  `json:"tripulacao"`
	Payload        Optional[string]  `json:"carga_util"`
	Duration       Optional[string]  `json:"duracao"`
	Cost           Optional[float64] `json:"custo"`
	DetailedStatus Optional[string]  `json:"status_detalhado"`
}

// ApplyPatch merges p over current and returns the result.
// The launch date is always re-parsed: from the patch when supplied,
// otherwise from the current value's wire form.
func ApplyPatch(current Fields, p Patch) (Fields, error) {
	if result := CanApplyPatch(p); !result.Allowed {
		return Fields{}, result.Error()
	}

	rawDate := FormatLaunchDate(current.LaunchDate)
	if p.LaunchDate.Set {
		rawDate = *p.LaunchDate.Value
	}
	launch, err := ParseLaunchDate(rawDate)
	if err != nil {
		return Fields{}, err
	}

	next := current
	next.LaunchDate = launch
	if p.Name.Set {
		next.Name = *p.Name.Value
	}
	if p.Destination.Set {
		next.Destination = *p.Destination.Value
	}
	if p.State.Set {
		next.State = *p.State.Value
	}
	next.Crew = p.Crew.Ptr(current.Crew)
	next.Payload = p.Payload.Ptr(current.Payload)
	next.Duration = p.Duration.Ptr(current.Duration)
	next.Cost = p.Cost.Ptr(current.Cost)
	next.DetailedStatus = p.DetailedStatus.Ptr(current.DetailedStatus)

	return next, nil
}
