package attendance

import "sort"

// Summarize groups records by staff and derives the report lines: one
// day per record, hours summed only over closed sessions. Staff with no
// records in the input do not appear; names missing from the roster map
// fall back to "Unknown" (the staff row may have been deleted after the
// records were, e.g. in a race with a cascade).
func Summarize(records []*Record, names map[string]string) []StaffSummary {
	byStaff := make(map[string]*StaffSummary)
	order := make([]string, 0)

	for _, r := range records {
		entry, ok := byStaff[r.StaffID]
		if !ok {
			name, known := names[r.StaffID]
			if !known {
				name = "Unknown"
			}
			entry = &StaffSummary{StaffID: r.StaffID, Name: name}
			byStaff[r.StaffID] = entry
			order = append(order, r.StaffID)
		}
		entry.Days++
		entry.TotalHours += r.Hours()
	}

	sort.Strings(order)
	result := make([]StaffSummary, 0, len(order))
	for _, id := range order {
		result = append(result, *byStaff[id])
	}
	return result
}
