package familytree

import (
	"io"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 1024

// Family owns a tree rooted at a single member and makes it safe to share
// between goroutines. Add and Remove take the write lock; queries share the
// read lock.
type Family struct {
	lk     sync.RWMutex
	root   *Node
	lookup *lru.Cache[string, *Node]

	logger *slog.Logger
}

type Option func(*familyConfig)

type familyConfig struct {
	logger    *slog.Logger
	cacheSize int
}

// WithLogger sets the logger used to record mutations. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *familyConfig) {
		c.logger = logger
	}
}

// WithCacheSize bounds the number of name lookups remembered between mutations.
func WithCacheSize(size int) Option {
	return func(c *familyConfig) {
		c.cacheSize = size
	}
}

func NewFamily(rootName string, opts ...Option) *Family {
	cfg := familyConfig{
		logger:    slog.Default(),
		cacheSize: defaultCacheSize,
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.cacheSize <= 0 {
		cfg.cacheSize = defaultCacheSize
	}

	// only errors on a non-positive size
	lookup, _ := lru.New[string, *Node](cfg.cacheSize)

	return &Family{
		root:   NewRoot(rootName),
		lookup: lookup,
		logger: cfg.logger.With("component", "familytree", "root", rootName),
	}
}

// Root returns the name of the family's root member.
func (f *Family) Root() string {
	return f.root.name
}

func (f *Family) Add(parentName, childName string) error {
	f.lk.Lock()
	defer f.lk.Unlock()

	if _, err := f.root.AddChild(parentName, childName); err != nil {
		return err
	}
	f.lookup.Purge()
	f.logger.Debug("added member", "parent", parentName, "member", childName)
	return nil
}

// Remove detaches the named member and everyone below it.
func (f *Family) Remove(name string) error {
	f.lk.Lock()
	defer f.lk.Unlock()

	if err := f.root.RemoveChild(name); err != nil {
		return err
	}
	f.lookup.Purge()
	f.logger.Debug("removed member", "member", name)
	return nil
}

// Find returns the named member, or nil. The returned node must not be mutated
// while the family is shared.
func (f *Family) Find(name string) *Node {
	f.lk.RLock()
	defer f.lk.RUnlock()

	if n, ok := f.lookup.Get(name); ok && n.Root() == f.root {
		return n
	}
	n := f.root.Find(name)
	if n != nil {
		f.lookup.Add(name, n)
	}
	return n
}

func (f *Family) GrandParent(name string) (string, error) {
	f.lk.RLock()
	defer f.lk.RUnlock()
	return f.root.GrandParent(name)
}

func (f *Family) OnlyChildren() []string {
	f.lk.RLock()
	defer f.lk.RUnlock()
	return f.root.OnlyChildren()
}

func (f *Family) PeopleWithoutKids() []string {
	f.lk.RLock()
	defer f.lk.RUnlock()
	return f.root.PeopleWithoutKids()
}

func (f *Family) MostGrandKids() (string, error) {
	f.lk.RLock()
	defer f.lk.RUnlock()
	return f.root.MostGrandKids()
}

// Members lists every member reachable from the root in breadth-first order.
func (f *Family) Members() []string {
	f.lk.RLock()
	defer f.lk.RUnlock()
	return f.root.Members()
}

// Size is the number of members reachable from the root.
func (f *Family) Size() int {
	f.lk.RLock()
	defer f.lk.RUnlock()
	return f.root.Size()
}

func (f *Family) String() string {
	f.lk.RLock()
	defer f.lk.RUnlock()
	return f.root.String()
}

func (f *Family) Print(w io.Writer) error {
	f.lk.RLock()
	defer f.lk.RUnlock()
	return f.root.Print(w)
}
