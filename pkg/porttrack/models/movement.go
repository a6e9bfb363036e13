package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Movement is one scheduled vessel movement from the daily movements
// table: the table headings mapped to cell values, with the date/time
// column parsed to a DateTime.
type Movement struct {
	Time   time.Time
	Fields Record
}

// String renders the movement as "time: key=value ..." with keys in
// stable order, for CLI listings.
func (m Movement) String() string {
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(m.Time.Format("Mon 02 Jan 15:04"))
	for _, k := range keys {
		v := m.Fields[k]
		if v.Kind() == KindDateTime {
			continue
		}
		fmt.Fprintf(&b, " | %s: %s", k, v.String())
	}
	return b.String()
}
