package main

import (
	"fmt"
	"strings"

	"github.com/bluesky-social/kin/familytree"
	"github.com/bluesky-social/kin/familytree/fakefamily"

	"github.com/urfave/cli/v2"
)

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "report on the built-in example family",
	Flags:  reportFlags,
	Action: runDemo,
}

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "report on a family given as parent:child edges",
	ArgsUsage: `[<parent>:<child>...]`,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "root",
			Usage:    "name of the root member",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:    "edge",
			Aliases: []string{"e"},
			Usage:   "parent:child pair, applied in order; may be repeated",
		},
	}, reportFlags...),
	Action: runBuild,
}

var cmdRandom = &cli.Command{
	Name:  "random",
	Usage: "report on a randomly generated family",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "root",
			Usage: "name of the root member",
			Value: "Eve",
		},
		&cli.IntFlag{
			Name:  "members",
			Usage: "number of members to generate below the root",
			Value: fakefamily.DefaultOptions().Members,
		},
		&cli.IntFlag{
			Name:  "max-children",
			Usage: "most children any one member may have; 0 for no limit",
			Value: fakefamily.DefaultOptions().MaxChildren,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed; 0 picks one",
			EnvVars: []string{"FAMTREE_SEED"},
		},
	}, reportFlags...),
	Action: runRandom,
}

// the family from the original coding exercise
var demoEdges = []edge{
	{"Nancy", "Adam"},
	{"Nancy", "Jill"},
	{"Nancy", "Carl"},
	{"Jill", "Kevin"},
	{"Carl", "Catherine"},
	{"Carl", "Joseph"},
	{"Kevin", "Samuel"},
	{"Kevin", "George"},
	{"Kevin", "James"},
	{"Kevin", "Aaron"},
	{"George", "Patrick"},
	{"George", "Robert"},
	{"James", "Mary"},
}

type edge struct {
	Parent string
	Child  string
}

func parseEdge(raw string) (edge, error) {
	parent, child, ok := strings.Cut(raw, ":")
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	if !ok || parent == "" || child == "" {
		return edge{}, fmt.Errorf("invalid edge %q: expected <parent>:<child>", raw)
	}
	return edge{Parent: parent, Child: child}, nil
}

func buildFamily(f *familytree.Family, edges []edge) error {
	for _, e := range edges {
		if err := f.Add(e.Parent, e.Child); err != nil {
			return err
		}
	}
	return nil
}

func runDemo(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)

	f := familytree.NewFamily("Nancy", familytree.WithLogger(logger))
	if err := buildFamily(f, demoEdges); err != nil {
		return err
	}
	member := cctx.String("member")
	if member == "" {
		member = "Kevin"
	}
	return writeReport(cctx.App.Writer, f, member, cctx.Bool("tree-only"))
}

func runBuild(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)

	raw := append(cctx.StringSlice("edge"), cctx.Args().Slice()...)
	edges := make([]edge, 0, len(raw))
	for _, r := range raw {
		e, err := parseEdge(r)
		if err != nil {
			return err
		}
		edges = append(edges, e)
	}

	f := familytree.NewFamily(cctx.String("root"), familytree.WithLogger(logger))
	if err := buildFamily(f, edges); err != nil {
		return err
	}
	logger.Info("built family", "members", f.Size())
	return writeReport(cctx.App.Writer, f, cctx.String("member"), cctx.Bool("tree-only"))
}

func runRandom(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)

	f := familytree.NewFamily(cctx.String("root"), familytree.WithLogger(logger))
	opts := fakefamily.Options{
		Members:     cctx.Int("members"),
		MaxChildren: cctx.Int("max-children"),
		Seed:        cctx.Int64("seed"),
	}
	if err := fakefamily.Generate(f, opts); err != nil {
		return err
	}
	logger.Info("generated family", "members", f.Size(), "seed", opts.Seed)
	return writeReport(cctx.App.Writer, f, cctx.String("member"), cctx.Bool("tree-only"))
}
