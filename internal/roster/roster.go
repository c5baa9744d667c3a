package roster

// Roster is an ordered list of records. Operations never modify the receiver;
// they return a new Roster so earlier states stay valid.
type Roster struct {
	records []Record
}

// New builds a roster from the supplied records, preserving their order.
func New(records []Record) Roster {
	return Roster{records: cloneRecords(records)}
}

// Records returns a copy of the records in insertion order.
func (r Roster) Records() []Record {
	return cloneRecords(r.records)
}

// Len returns the number of records.
func (r Roster) Len() int {
	return len(r.records)
}

// IndexOf returns the position of the record with id, or -1.
func (r Roster) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, rec := range r.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the record with id.
func (r Roster) Find(id string) (Record, bool) {
	idx := r.IndexOf(id)
	if idx < 0 {
		return Record{}, false
	}
	return r.records[idx], true
}

// Contains reports whether a record with id exists.
func (r Roster) Contains(id string) bool {
	return r.IndexOf(id) >= 0
}

// Add appends rec at the end.
func (r Roster) Add(rec Record) Roster {
	next := make([]Record, len(r.records), len(r.records)+1)
	copy(next, r.records)
	return Roster{records: append(next, rec)}
}

// Update replaces the fields of the record with id, keeping its id and
// position. The second result is false when id is unknown, in which case the
// receiver is returned unchanged.
func (r Roster) Update(id string, fields Fields) (Roster, bool) {
	idx := r.IndexOf(id)
	if idx < 0 {
		return r, false
	}
	next := cloneRecords(r.records)
	next[idx] = fields.WithID(id)
	return Roster{records: next}, true
}

// Remove drops the record with id.
func (r Roster) Remove(id string) (Roster, bool) {
	idx := r.IndexOf(id)
	if idx < 0 {
		return r, false
	}
	next := make([]Record, 0, len(r.records)-1)
	next = append(next, r.records[:idx]...)
	next = append(next, r.records[idx+1:]...)
	return Roster{records: next}, true
}

func cloneRecords(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]Record, len(records))
	copy(dup, records)
	return dup
}
