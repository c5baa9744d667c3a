package roster

// Stats summarises the whole roster, independent of any active search.
type Stats struct {
	Total       int
	WithPhone   int
	WithAddress int
}

// ComputeStats counts records and the records carrying a phone or address.
func ComputeStats(records []Record) Stats {
	stats := Stats{Total: len(records)}
	for _, rec := range records {
		if rec.PhoneNo != "" {
			stats.WithPhone++
		}
		if rec.Address != "" {
			stats.WithAddress++
		}
	}
	return stats
}
