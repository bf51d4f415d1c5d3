package main

import (
	"bytes"
	"testing"

	"github.com/bluesky-social/kin/familytree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEdge(t *testing.T) {
	assert := assert.New(t)

	e, err := parseEdge("Nancy:Adam")
	assert.NoError(err)
	assert.Equal(edge{Parent: "Nancy", Child: "Adam"}, e)

	e, err = parseEdge(" Mary Ann : Bob ")
	assert.NoError(err)
	assert.Equal(edge{Parent: "Mary Ann", Child: "Bob"}, e)

	for _, bad := range []string{"", "Nancy", ":Adam", "Nancy:", " : "} {
		_, err := parseEdge(bad)
		assert.Error(err, bad)
	}
}

func TestDemoReport(t *testing.T) {
	assert := assert.New(t)

	f := familytree.NewFamily("Nancy")
	require.NoError(t, buildFamily(f, demoEdges))

	var buf bytes.Buffer
	assert.NoError(writeReport(&buf, f, "", false))
	want := "The grandparent of Kevin is Nancy\n" +
		"The people who have no siblings are: Nancy Kevin Mary\n" +
		"The people who don't have kids are: Adam Catherine Joseph Samuel Aaron Patrick Robert Mary\n" +
		"Jill has the most grandkids\n" +
		f.String()
	assert.Equal(want, buf.String())
}

func TestReportShallowFamily(t *testing.T) {
	assert := assert.New(t)

	f := familytree.NewFamily("Solo")
	assert.NoError(f.Add("Solo", "Kid"))

	var buf bytes.Buffer
	assert.NoError(writeReport(&buf, f, "", false))
	assert.Contains(buf.String(), "The grandparent of Solo is No Grandparent\n")
	assert.Contains(buf.String(), "Nobody has grandkids\n")

	buf.Reset()
	assert.ErrorIs(writeReport(&buf, f, "Nobody", false), familytree.ErrNotFound)

	buf.Reset()
	assert.NoError(writeReport(&buf, f, "Nobody", true))
	assert.Equal("Solo\n└── Kid\n", buf.String())
}

func TestBuildFamilyUnknownParent(t *testing.T) {
	assert := assert.New(t)

	f := familytree.NewFamily("Nancy")
	err := buildFamily(f, []edge{{"Nancy", "Adam"}, {"Ghost", "Bob"}})
	assert.ErrorIs(err, familytree.ErrNotFound)
	assert.Equal(2, f.Size())
}

func TestRunBuild(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(run([]string{"famtree", "--log-level", "error", "build", "--root", "A", "-e", "A:B", "--tree-only", "B:C"}))
	assert.Error(run([]string{"famtree", "--log-level", "error", "build", "--root", "A", "-e", "X:B"}))
	assert.Error(run([]string{"famtree", "--log-level", "error", "build", "--root", "A", "bogus"}))
}
