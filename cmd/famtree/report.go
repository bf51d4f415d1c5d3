package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bluesky-social/kin/familytree"
)

// writeReport prints the grandparent of member followed by the family-wide
// queries and the tree diagram. An empty member picks the first grandchild of
// the root, or the root itself in a shallower family.
func writeReport(w io.Writer, f *familytree.Family, member string, treeOnly bool) error {
	if treeOnly {
		return f.Print(w)
	}

	if member == "" {
		member = defaultMember(f)
	}
	gp, err := f.GrandParent(member)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The grandparent of %s is %s\n", member, gp)
	fmt.Fprintf(w, "The people who have no siblings are: %s\n", strings.Join(f.OnlyChildren(), " "))
	fmt.Fprintf(w, "The people who don't have kids are: %s\n", strings.Join(f.PeopleWithoutKids(), " "))

	most, err := f.MostGrandKids()
	switch {
	case errors.Is(err, familytree.ErrNoGrandKids):
		fmt.Fprintln(w, "Nobody has grandkids")
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "%s has the most grandkids\n", most)
	}

	return f.Print(w)
}

func defaultMember(f *familytree.Family) string {
	for _, name := range f.Members() {
		if n := f.Find(name); n != nil && n.Depth() == 2 {
			return name
		}
	}
	return f.Root()
}
