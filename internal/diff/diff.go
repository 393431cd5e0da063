// Package diff compares two snapshots of a repository's file list and
// classifies the changes as created, deleted, or renamed paths.
package diff

import (
	"path"
	"sort"
	"strings"
)

// Rename pairs a path from the old snapshot with its new location.
type Rename struct {
	From string
	To   string
}

// Diff is the result of comparing two path lists.
type Diff struct {
	Created []string
	Deleted []string
	Renamed []Rename
}

// Paths compares two lists of relative slash-separated paths.
//
// A file that disappeared from one folder while a file with the same name
// appeared in another is treated as a rename rather than a delete plus a
// create, so its tags survive a move. When several candidates share the
// name, the one whose path shares the most leading and trailing components
// wins.
func Paths(before, after []string) Diff {
	beforeSet := toSet(before)
	afterSet := toSet(after)

	deletedByName := groupByName(setDifference(beforeSet, afterSet))
	createdByName := groupByName(setDifference(afterSet, beforeSet))

	var d Diff
	for _, name := range sortedKeys(deletedByName) {
		deletedPaths := deletedByName[name]
		createdPaths, ok := createdByName[name]
		if !ok {
			d.Deleted = append(d.Deleted, deletedPaths...)
			continue
		}
		for _, deleted := range deletedPaths {
			if len(createdPaths) == 0 {
				d.Deleted = append(d.Deleted, deleted)
				continue
			}
			best := 0
			bestScore := similarity(deleted, createdPaths[0])
			for i, created := range createdPaths[1:] {
				if score := similarity(deleted, created); score > bestScore {
					best = i + 1
					bestScore = score
				}
			}
			d.Renamed = append(d.Renamed, Rename{From: deleted, To: createdPaths[best]})
			createdPaths = append(createdPaths[:best], createdPaths[best+1:]...)
		}
		if len(createdPaths) == 0 {
			delete(createdByName, name)
		} else {
			createdByName[name] = createdPaths
		}
	}
	for _, name := range sortedKeys(createdByName) {
		d.Created = append(d.Created, createdByName[name]...)
	}
	return d
}

// similarity counts path components shared with the other path, walking
// forward from the root and, if the paths diverge, backward from the
// filename as well.
func similarity(path1, path2 string) int {
	a := strings.Split(path1, "/")
	b := strings.Split(path2, "/")

	forward := 0
	diverged := false
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			diverged = true
			break
		}
		forward++
	}
	if !diverged {
		return forward
	}

	backward := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			break
		}
		backward++
	}
	return forward + backward
}

func toSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}

// setDifference returns the members of a that are not in b, sorted.
func setDifference(a, b map[string]struct{}) []string {
	var out []string
	for p := range a {
		if _, ok := b[p]; !ok {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func groupByName(paths []string) map[string][]string {
	byName := make(map[string][]string)
	for _, p := range paths {
		name := path.Base(p)
		byName[name] = append(byName[name], p)
	}
	return byName
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
