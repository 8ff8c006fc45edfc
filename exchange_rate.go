package commodity

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the textual form of an exchange rate's civil date.
const dateLayout = "2006-01-02"

// ExchangeRate is a snapshot of conversion rates between commodity types.
//
// When a base type is set, each entry maps a type id to the number of units
// of that type obtained for one unit of the base, enabling one-hop
// conversion to and from the base. Without a base the entries are
// free-standing reference rates, and conversions compose the two rates
// involved (a cross rate). A base-set table also falls back to the cross
// rate when a direct hop is missing from the table.
//
// An ExchangeRate is constructed once and treated as immutable; the rate
// table is copied on construction, so a shared ExchangeRate needs no
// synchronization between readers.
type ExchangeRate struct {
	date       *time.Time                 // the date the rates apply to
	obtainedAt *time.Time                 // when the snapshot was captured
	base       *TypeID                    // the type the rates are quoted against
	rates      map[TypeID]decimal.Decimal // rate per type id
}

// Rate is a single entry of an [ExchangeRate] table.
type Rate struct {
	ID   TypeID
	Rate decimal.Decimal
}

// NewExchangeRate returns an exchange rate holding free-standing reference
// rates, with no base type. The rates map is copied.
func NewExchangeRate(rates map[TypeID]decimal.Decimal) ExchangeRate {
	return ExchangeRate{rates: copyRates(rates)}
}

// NewExchangeRateWithBase returns an exchange rate whose entries are quoted
// against the base type. The rates map is copied.
//
// An entry for the base itself is redundant; callers should not rely on it
// being either used or ignored.
func NewExchangeRateWithBase(base TypeID, rates map[TypeID]decimal.Decimal) ExchangeRate {
	r := NewExchangeRate(rates)
	r.base = &base
	return r
}

func copyRates(rates map[TypeID]decimal.Decimal) map[TypeID]decimal.Decimal {
	copied := make(map[TypeID]decimal.Decimal, len(rates))
	for id, rate := range rates {
		copied[id] = rate
	}
	return copied
}

// WithDate returns a copy of the exchange rate carrying the date the rates
// apply to.
func (r ExchangeRate) WithDate(date time.Time) ExchangeRate {
	r.date = &date
	return r
}

// WithObtainedAt returns a copy of the exchange rate carrying the time the
// snapshot was captured.
func (r ExchangeRate) WithObtainedAt(obtainedAt time.Time) ExchangeRate {
	r.obtainedAt = &obtainedAt
	return r
}

// Date returns the date the rates apply to, if one was set.
func (r ExchangeRate) Date() (time.Time, bool) {
	if r.date == nil {
		return time.Time{}, false
	}
	return *r.date, true
}

// ObtainedAt returns the time the snapshot was captured, if one was set.
func (r ExchangeRate) ObtainedAt() (time.Time, bool) {
	if r.obtainedAt == nil {
		return time.Time{}, false
	}
	return *r.obtainedAt, true
}

// Base returns the type id the rates are quoted against, if one was set.
func (r ExchangeRate) Base() (TypeID, bool) {
	if r.base == nil {
		return TypeID{}, false
	}
	return *r.base, true
}

// Rate returns the table entry for the given type id.
func (r ExchangeRate) Rate(id TypeID) (decimal.Decimal, bool) {
	rate, ok := r.rates[id]
	return rate, ok
}

// Rates returns the table entries ordered lexicographically by id.
// The deterministic order makes printed and serialized output reproducible.
func (r ExchangeRate) Rates() []Rate {
	ids := make([]TypeID, 0, len(r.rates))
	for id := range r.rates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	entries := make([]Rate, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, Rate{ID: id, Rate: r.rates[id]})
	}
	return entries
}

// Convert converts the commodity to the target type using this exchange rate.
//
// When a base type is set and the commodity is denominated in it, the
// target's table entry converts directly; when the target is the base, the
// commodity's entry divides directly. If the needed entry is missing at the
// direct hop, Convert falls back to the cross rate, which requires both the
// commodity's type and the target to be present in the table.
//
// Convert returns a [TypeNotPresentError] naming the first missing id
// (checking the commodity's type before the target), or a
// [DivideOverflowError] if a division is rejected by the decimal layer.
func (r ExchangeRate) Convert(c Commodity, target TypeID) (Commodity, error) {
	if base, ok := r.Base(); ok {
		if c.TypeID() == base {
			if rate, ok := r.Rate(target); ok {
				return New(c.Value().Mul(rate), target), nil
			}
		}

		if target == base {
			if rate, ok := r.Rate(c.TypeID()); ok {
				if rate.IsZero() {
					return Commodity{}, &DivideOverflowError{Numerator: c.Value(), Denominator: rate}
				}
				return New(c.Value().DivRound(rate, divisionScale), target), nil
			}
		}
	}

	// There is no base type, neither side of the conversion is the base,
	// or a direct rate was missing: compose the cross rate from the table.
	from, ok := r.Rate(c.TypeID())
	if !ok {
		return Commodity{}, &TypeNotPresentError{ID: c.TypeID()}
	}
	to, ok := r.Rate(target)
	if !ok {
		return Commodity{}, &TypeNotPresentError{ID: target}
	}
	if from.IsZero() {
		return Commodity{}, &DivideOverflowError{Numerator: c.Value(), Denominator: from}
	}
	return New(c.Value().DivRound(from, divisionScale).Mul(to), target), nil
}

// RateBetween returns the rate converting one unit of type from into units
// of type to, mirroring the lookup logic of [ExchangeRate.Convert].
// It returns ok = false, with no error, when a type needed by the cross
// rate is not present in the table.
func (r ExchangeRate) RateBetween(from, to TypeID) (rate decimal.Decimal, ok bool, err error) {
	if base, ok := r.Base(); ok {
		if from == base {
			if rate, ok := r.Rate(to); ok {
				return rate, true, nil
			}
		}

		if to == base {
			if rate, ok := r.Rate(from); ok {
				one := decimal.New(1, 0)
				if rate.IsZero() {
					return decimal.Decimal{}, false, &DivideOverflowError{Numerator: one, Denominator: rate}
				}
				return one.DivRound(rate, divisionScale), true, nil
			}
		}
	}

	fromRate, ok := r.Rate(from)
	if !ok {
		return decimal.Decimal{}, false, nil
	}
	toRate, ok := r.Rate(to)
	if !ok {
		return decimal.Decimal{}, false, nil
	}
	if fromRate.IsZero() {
		return decimal.Decimal{}, false, &DivideOverflowError{Numerator: toRate, Denominator: fromRate}
	}
	return toRate.DivRound(fromRate, divisionScale), true, nil
}

// Equal reports whether two exchange rates have the same date, obtained-at
// time, base, and numerically equal table entries.
func (r ExchangeRate) Equal(q ExchangeRate) bool {
	if !equalTime(r.date, q.date) || !equalTime(r.obtainedAt, q.obtainedAt) {
		return false
	}
	if (r.base == nil) != (q.base == nil) {
		return false
	}
	if r.base != nil && *r.base != *q.base {
		return false
	}
	if len(r.rates) != len(q.rates) {
		return false
	}
	for id, rate := range r.rates {
		other, ok := q.rates[id]
		if !ok || !rate.Equal(other) {
			return false
		}
	}
	return true
}

func equalTime(a, b *time.Time) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(*b)
}

// exchangeRateJSON is the serialized form of an ExchangeRate.
// Absent optionals serialize as null.
type exchangeRateJSON struct {
	Date       *string                    `json:"date"`
	ObtainedAt *time.Time                 `json:"obtained_datetime"`
	Base       *TypeID                    `json:"base"`
	Rates      map[TypeID]decimal.Decimal `json:"rates"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The date serializes as "2006-01-02", the obtained time as RFC 3339, the
// rates as an object keyed by id in lexicographic order with decimal values
// rendered as strings.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (r ExchangeRate) MarshalJSON() ([]byte, error) {
	aux := exchangeRateJSON{
		ObtainedAt: r.obtainedAt,
		Base:       r.base,
		Rates:      r.rates,
	}
	if r.date != nil {
		date := r.date.Format(dateLayout)
		aux.Date = &date
	}
	if aux.Rates == nil {
		aux.Rates = map[TypeID]decimal.Decimal{}
	}
	return json.Marshal(aux)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Rate values may be given either as JSON strings or as JSON numbers.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (r *ExchangeRate) UnmarshalJSON(data []byte) error {
	var aux exchangeRateJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", ExchangeRate{}, err)
	}
	out := ExchangeRate{
		obtainedAt: aux.ObtainedAt,
		base:       aux.Base,
		rates:      aux.Rates,
	}
	if out.rates == nil {
		out.rates = map[TypeID]decimal.Decimal{}
	}
	if aux.Date != nil {
		date, err := time.Parse(dateLayout, *aux.Date)
		if err != nil {
			return fmt.Errorf("unmarshaling %T date: %w", ExchangeRate{}, err)
		}
		out.date = &date
	}
	*r = out
	return nil
}
