package models

// Record is one fiscal year's extracted (label -> value) mapping for one schema.
// Labels keep their first-seen order.
type Record struct {
	// Year is the 4-digit fiscal year.
	Year int `json:"year"`
	// Labels lists the normalized labels in insertion order.
	Labels []string `json:"labels"`
	// Values maps each label to its amount.
	Values map[string]float64 `json:"values"`
}

// NewRecord creates an empty Record for year.
func NewRecord(year int) Record {
	return Record{
		Year:   year,
		Values: make(map[string]float64),
	}
}

// Set stores value under label. A repeated label keeps its original
// position and takes the new value.
func (r *Record) Set(label string, value float64) {
	if r.Values == nil {
		r.Values = make(map[string]float64)
	}
	if _, ok := r.Values[label]; !ok {
		r.Labels = append(r.Labels, label)
	}
	r.Values[label] = value
}

// Get returns the value stored under label.
func (r Record) Get(label string) (float64, bool) {
	v, ok := r.Values[label]
	return v, ok
}

// Len returns the number of labels.
func (r Record) Len() int {
	return len(r.Labels)
}
