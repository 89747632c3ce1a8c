package smpls

import "sort"

// pendingEvents is the sorted multiset of events emitted on a path and not
// processed yet. Equal events are adjacent; the order is lexicographic.
type pendingEvents []string

func (p pendingEvents) clone() pendingEvents {
	return append(pendingEvents(nil), p...)
}

// insert adds ev after every element equal to it.
func (p pendingEvents) insert(ev string) pendingEvents {
	i := p.upperBound(ev)
	p = append(p, "")
	copy(p[i+1:], p[i:])
	p[i] = ev

	return p
}

// indexOf returns the position of the first occurrence of ev, or len(p).
func (p pendingEvents) indexOf(ev string) int {
	i := sort.SearchStrings(p, ev)
	if i < len(p) && p[i] == ev {
		return i
	}

	return len(p)
}

// upperBound returns the number of elements ≤ ev, which is also the index
// of ev's last occurrence once it has been inserted.
func (p pendingEvents) upperBound(ev string) int {
	return sort.Search(len(p), func(i int) bool { return p[i] > ev })
}

// remove drops the first occurrence of ev, if any.
func (p pendingEvents) remove(ev string) pendingEvents {
	i := p.indexOf(ev)
	if i == len(p) {
		return p
	}

	return append(p[:i], p[i+1:]...)
}
