// Package fakefamily populates a family tree with randomly named members, for demos and tests.
package fakefamily

import (
	"fmt"

	"github.com/bluesky-social/kin/familytree"

	"github.com/brianvoe/gofakeit/v6"
)

type Options struct {
	// Members is the number of members to add.
	Members int
	// MaxChildren caps the children of any one member; 0 means no cap.
	MaxChildren int
	// Seed makes generation reproducible; 0 picks a random seed.
	Seed int64
}

func DefaultOptions() Options {
	return Options{
		Members:     12,
		MaxChildren: 4,
		Seed:        0,
	}
}

// Generate adds opts.Members new members to f, each under an existing member
// chosen uniformly from those with room for another child. The same seed
// against the same starting family gives the same result.
func Generate(f *familytree.Family, opts Options) error {
	if opts.Members < 0 {
		return fmt.Errorf("fakefamily: negative member count %d", opts.Members)
	}
	faker := gofakeit.New(opts.Seed)

	members := f.Members()
	taken := make(map[string]bool, len(members)+opts.Members)
	kids := make(map[string]int, len(members)+opts.Members)
	for _, name := range members {
		taken[name] = true
		if n := f.Find(name); n != nil {
			kids[name] = len(n.Children())
		}
	}

	var open []string
	for _, name := range members {
		if hasRoom(kids[name], opts.MaxChildren) {
			open = append(open, name)
		}
	}

	for i := 0; i < opts.Members; i++ {
		if len(open) == 0 {
			return fmt.Errorf("fakefamily: no member has room for another child after %d additions", i)
		}
		idx := faker.Number(0, len(open)-1)
		parent := open[idx]

		name := uniqueName(faker.FirstName(), taken)
		if err := f.Add(parent, name); err != nil {
			return err
		}
		taken[name] = true

		kids[parent]++
		if !hasRoom(kids[parent], opts.MaxChildren) {
			open = append(open[:idx], open[idx+1:]...)
		}
		open = append(open, name)
	}
	return nil
}

func hasRoom(children, limit int) bool {
	return limit <= 0 || children < limit
}

// uniqueName suffixes base with the lowest number that makes it unused.
func uniqueName(base string, taken map[string]bool) string {
	if !taken[base] {
		return base
	}
	for i := 2; ; i++ {
		name := fmt.Sprintf("%s %d", base, i)
		if !taken[name] {
			return name
		}
	}
}
