package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/danmuck/fixwire/internal/protocol/field"
	"github.com/danmuck/fixwire/internal/protocol/schema"
	"github.com/danmuck/fixwire/internal/testutil/testlog"
)

func single(name string) *schema.Schema {
	return schema.MustDefine(name, schema.Field("v", field.Number(2)))
}

func TestLookupAndNames(t *testing.T) {
	testlog.Start(t)
	c, err := New(single("b"), single("a"))
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	names := c.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected names: %v", names)
	}
	s, err := c.Lookup("a")
	if err != nil || s.Name() != "a" {
		t.Fatalf("lookup a: %v %v", s, err)
	}
	if _, err := c.Lookup("zz"); !errors.Is(err, ErrUnknownSchema) {
		t.Fatalf("expected ErrUnknownSchema, got %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	testlog.Start(t)
	if _, err := New(single("a"), single("a")); !errors.Is(err, ErrDuplicateSchema) {
		t.Fatalf("expected ErrDuplicateSchema, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	testlog.Start(t)
	c, _ := New(single("a"))
	other, _ := New(single("b"))
	if err := c.Merge(other); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(c.Names()) != 2 {
		t.Fatalf("expected 2 schemas, got %v", c.Names())
	}
	if err := c.Merge(other); !errors.Is(err, ErrDuplicateSchema) {
		t.Fatalf("expected ErrDuplicateSchema on re-merge, got %v", err)
	}
}

func TestConcurrentLookup(t *testing.T) {
	testlog.Start(t)
	c, _ := New(single("a"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := c.Lookup("a"); err != nil {
					t.Errorf("lookup: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestOverrideReplacesSameName(t *testing.T) {
	testlog.Start(t)
	builtin := single("a")
	c, _ := New(builtin, single("b"))
	wide := schema.MustDefine("a", schema.Field("v", field.Number(4)))
	other, _ := New(wide, single("c"))

	replaced := c.Override(other)
	if len(replaced) != 1 || replaced[0] != "a" {
		t.Fatalf("expected [a] replaced, got %v", replaced)
	}
	s, err := c.Lookup("a")
	if err != nil {
		t.Fatalf("lookup a: %v", err)
	}
	if s != wide || s.Len() != 4 {
		t.Fatalf("expected file schema to win, got len %d", s.Len())
	}
	if names := c.Names(); len(names) != 3 {
		t.Fatalf("expected 3 schemas, got %v", names)
	}
}
