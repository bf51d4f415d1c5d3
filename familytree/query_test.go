package familytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrandParent(t *testing.T) {
	assert := assert.New(t)

	root := referenceFamily(t)
	tests := []struct {
		member string
		want   string
	}{
		{"Kevin", "Nancy"},
		{"George", "Jill"},
		{"Mary", "Kevin"},
		{"Catherine", "Nancy"},
		{"Nancy", NoGrandParent},
		{"Adam", NoGrandParent},
		{"Carl", NoGrandParent},
	}
	for _, tc := range tests {
		got, err := root.GrandParent(tc.member)
		assert.NoError(err)
		assert.Equal(tc.want, got, tc.member)
	}

	_, err := root.GrandParent("Nobody")
	assert.ErrorIs(err, ErrNotFound)
}

func TestGrandParentFromDetached(t *testing.T) {
	assert := assert.New(t)

	root := referenceFamily(t)
	kevin := root.Find("Kevin")
	assert.NoError(root.RemoveChild("Kevin"))

	// links above the detached node are left as they were
	got, err := kevin.GrandParent("Kevin")
	assert.NoError(err)
	assert.Equal("Nancy", got)

	got, err = kevin.GrandParent("Patrick")
	assert.NoError(err)
	assert.Equal("Kevin", got)
}

func TestOnlyChildren(t *testing.T) {
	assert := assert.New(t)

	root := referenceFamily(t)
	assert.Equal([]string{"Nancy", "Kevin", "Mary"}, root.OnlyChildren())

	// a non-root receiver is tested by its own parent's child count
	assert.Equal([]string{"Kevin", "Mary"}, root.Find("Kevin").OnlyChildren())
	assert.Empty(root.Find("George").OnlyChildren())

	assert.Equal([]string{"Solo"}, NewRoot("Solo").OnlyChildren())
}

func TestPeopleWithoutKids(t *testing.T) {
	assert := assert.New(t)

	root := referenceFamily(t)
	assert.Equal([]string{
		"Adam", "Catherine", "Joseph", "Samuel", "Aaron", "Patrick", "Robert", "Mary",
	}, root.PeopleWithoutKids())

	// the receiver is never included, even as a leaf
	assert.Empty(NewRoot("Solo").PeopleWithoutKids())
	assert.Empty(root.Find("Adam").PeopleWithoutKids())
	assert.Equal([]string{"Mary"}, root.Find("James").PeopleWithoutKids())
}

func TestGrandKidCount(t *testing.T) {
	assert := assert.New(t)

	root := referenceFamily(t)
	counts := map[string]int{
		"Nancy": 3,
		"Adam":  0,
		"Jill":  4,
		"Carl":  0,
		"Kevin": 3,
		"James": 0,
	}
	for name, want := range counts {
		assert.Equal(want, root.Find(name).GrandKidCount(), name)
	}
}

func TestMostGrandKids(t *testing.T) {
	assert := assert.New(t)

	root := referenceFamily(t)
	// Jill (4, through Kevin) is visited before Kevin (3)
	got, err := root.MostGrandKids()
	assert.NoError(err)
	assert.Equal("Jill", got)

	got, err = root.Find("Jill").MostGrandKids()
	assert.NoError(err)
	assert.Equal("Kevin", got)

	_, err = NewRoot("Solo").MostGrandKids()
	assert.ErrorIs(err, ErrNoGrandKids)

	_, err = root.Find("Carl").MostGrandKids()
	assert.ErrorIs(err, ErrNoGrandKids)
}

func TestMostGrandKidsTies(t *testing.T) {
	assert := assert.New(t)

	root := NewRoot("R")
	for _, e := range [][2]string{
		{"R", "A"}, {"R", "B"},
		{"A", "A1"}, {"B", "B1"},
		{"A1", "A2"}, {"B1", "B2"},
	} {
		_, err := root.AddChild(e[0], e[1])
		assert.NoError(err)
	}

	// A and B both have one grandchild; A is first breadth-first
	got, err := root.MostGrandKids()
	assert.NoError(err)
	assert.Equal("A", got)
}
