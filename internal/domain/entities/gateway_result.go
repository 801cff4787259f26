package entities

import "fmt"

// Result codes returned by the gateway in result.code.
const (
	ResultCodeApproved      = "00000"
	ResultCodeDuplicate     = "01913"
	ResultCodeTokenNotFound = "02304"
	ResultCodeCanceled      = "02319"
	ResultCodeInProgress    = "02000"
	ResultCodeInternalError = "02101"
)

// GatewayResult is a read-only view over a raw gateway response.
type GatewayResult struct {
	raw Options
}

// NewGatewayResult wraps a copy of the raw response.
func NewGatewayResult(raw map[string]any) GatewayResult {
	return GatewayResult{raw: Options(raw).Clone()}
}

// Raw returns a deep copy of the wrapped response.
func (r GatewayResult) Raw() Options {
	if r.raw == nil {
		return Options{}
	}
	return r.raw.Clone()
}

// Get reads a value by option path, e.g. "transaction.id" or "[result][code]".
func (r GatewayResult) Get(path string) (any, bool) {
	v, ok := r.raw.Get(path)
	if !ok {
		return nil, false
	}
	if section, isSection := asOptions(v); isSection {
		return section.Clone(), true
	}
	return v, true
}

func (r GatewayResult) str(path string) string {
	v, ok := r.raw.Get(path)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (r GatewayResult) Code() string         { return r.str("result.code") }
func (r GatewayResult) ShortMessage() string { return r.str("result.shortMessage") }
func (r GatewayResult) LongMessage() string  { return r.str("result.longMessage") }

// Token is the session token returned by doWebPayment.
func (r GatewayResult) Token() string { return r.str("token") }

// RedirectURL is the hosted payment page the payer is sent to.
func (r GatewayResult) RedirectURL() string { return r.str("redirectURL") }

func (r GatewayResult) TransactionID() string { return r.str("transaction.id") }
func (r GatewayResult) OrderRef() string      { return r.str("order.ref") }

func (r GatewayResult) IsSuccessful() bool    { return r.Code() == ResultCodeApproved }
func (r GatewayResult) IsCanceled() bool      { return r.Code() == ResultCodeCanceled }
func (r GatewayResult) IsDuplicate() bool     { return r.Code() == ResultCodeDuplicate }
func (r GatewayResult) IsTokenNotFound() bool { return r.Code() == ResultCodeTokenNotFound }

// PrivateData returns the shop data sent at initiation, keyed by name.
// The gateway returns it as privateDataList.privateData, either a list of
// {key, value} entries or a single entry.
func (r GatewayResult) PrivateData() map[string]string {
	out := map[string]string{}
	for _, entry := range r.privateDataEntries() {
		key, _ := entry["key"].(string)
		if key == "" {
			continue
		}
		out[key] = fmt.Sprint(entry["value"])
	}
	return out
}

func (r GatewayResult) privateDataEntries() []Options {
	v, ok := r.raw.Get("privateDataList.privateData")
	if !ok || v == nil {
		return nil
	}

	var entries []Options
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if entry, ok := asOptions(item); ok {
				entries = append(entries, entry)
			}
		}
	case []map[string]any:
		for _, item := range t {
			entries = append(entries, Options(item))
		}
	case []Options:
		entries = append(entries, t...)
	default:
		if entry, ok := asOptions(t); ok {
			if _, keyed := entry["key"]; keyed {
				entries = append(entries, entry)
			}
		}
	}
	return entries
}
