package domain

// RawRecord is one loosely-typed record as delivered by the external feed.
// Nothing about its shape is trusted before validation.
type RawRecord map[string]any

// RecordError pairs a rejected record with everything wrong with it.
type RecordError struct {
	Record RawRecord `json:"record"`
	Errors []string  `json:"errors"`
}

// SyncResult is the convenience summary a sync run returns to its immediate
// caller. The APIStatus row, not this value, is the source of truth for what
// happened.
type SyncResult struct {
	Processed int           `json:"processed"`
	Failed    int           `json:"failed"`
	Errors    []RecordError `json:"errors"`
	Status    string        `json:"status"`
	Message   string        `json:"message,omitempty"`
}
