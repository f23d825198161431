package v1

import (
	"sort"
	"strconv"
	"strings"
)

const hashCodeDelimiter = "_"

// ReconcileHashCode computes the hash code legacy clients use to detect registry changes:
// the number of instances per status, statuses in lexical order, each rendered as
// STATUS_count_ (for example "DOWN_1_UP_2_"). An empty snapshot hashes to "".
//
// Clients recompute the same value from their local copy after applying a delta and fall back
// to a full fetch on mismatch, so the format must not change.
func ReconcileHashCode(apps []Application) string {
	counts := make(map[InstanceStatus]int)
	for _, app := range apps {
		for _, i := range app.Instances {
			counts[i.Status]++
		}
	}

	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)

	var b strings.Builder
	for _, s := range statuses {
		b.WriteString(s)
		b.WriteString(hashCodeDelimiter)
		b.WriteString(strconv.Itoa(counts[InstanceStatus(s)]))
		b.WriteString(hashCodeDelimiter)
	}
	return b.String()
}
