package conversation

import "fmt"

// Lookup maps a user or hotel id to its display name. Entries may be
// missing; the accessors then return a stable synthetic label.
type Lookup map[int64]string

func (l Lookup) UserName(id int64) string {
	return l.label(id, "User")
}

func (l Lookup) HotelName(id int64) string {
	return l.label(id, "Hotel")
}

func (l Lookup) label(id int64, kind string) string {
	if name, ok := l[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("%s %d", kind, id)
}
