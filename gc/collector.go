/*
File    : lumen/gc/collector.go

A mark-and-sweep collector grounded on the reference interpreter's gc.c.
Go already garbage-collects the process heap, so this package cannot (and
does not try to) free memory by hand; instead it reproduces the reference
algorithm's bookkeeping faithfully — a tracked list, a mark pass that walks
the live environment graph, and a sweep pass that drops unreachable
entries from the tracked list so nothing but the Go runtime's own
collector decides when the underlying memory is actually reclaimed. What
this package owns is the reachability computation itself, not the free().
*/
package gc

import "github.com/cmertz/lumen/values"

// node is one entry in the collector's tracked list, mirroring gc_node in
// the reference's gc.h.
type node struct {
	object values.Trackable
	next   *node
}

// Collector tracks every allocated values.Trackable reachable from root
// and reclaims the ones that are not, the way gc_run walks gc->root and
// sweeps gc->list in the reference implementation.
type Collector struct {
	root *values.Environment
	list *node
}

// NewCollector creates a collector rooted at root, mirroring gc_init.
func NewCollector(root *values.Environment) *Collector {
	return &Collector{root: root}
}

// Add registers obj for tracking. Singletons and builtins are never
// tracked, matching gc_add's early return for OBJ_BOOL/OBJ_NULL/OBJ_BUILTIN
// — package values simply never hands this function one of those, since
// only Trackable implementors (Integer, Error, String, Array, Function)
// can be passed at all.
func (c *Collector) Add(obj values.Trackable) {
	c.list = &node{object: obj, next: c.list}
}

// markEnv marks every value directly bound in env, and — when a marked
// value is a Function whose captured environment differs from env —
// recurses into that captured environment. This is the one rule that lets
// the walk reach closures without needing reference counting to model
// cycles: a function's closure can outlive the scope that created it, and
// marking must follow that edge explicitly.
func markEnv(env *values.Environment, current *values.Environment) {
	env.ForEach(func(v values.Value) {
		if t, ok := v.(values.Trackable); ok {
			t.SetMarked(true)
		}
		if fn, ok := v.(*values.Function); ok && fn.Env != current {
			markEnv(fn.Env, fn.Env)
		}
	})
}

// mark marks everything reachable from the collector's root environment.
func (c *Collector) mark() {
	markEnv(c.root, c.root)
}

// sweep drops every untracked-as-reachable object from the tracked list
// and clears the mark bit on every survivor, readying the list for the
// next Run. Unlike the reference's gc_sweep, it does not call free(): the
// dropped node simply stops holding a reference, and the Go runtime
// reclaims the underlying memory in its own time.
func (c *Collector) sweep() {
	var head *node
	for n := c.list; n != nil; {
		next := n.next
		if n.object.Marked() {
			n.object.SetMarked(false)
			n.next = head
			head = n
		}
		n = next
	}
	c.list = head
}

// Run performs one full mark-and-sweep cycle: mark everything reachable
// from root, then sweep everything that wasn't.
func (c *Collector) Run() {
	c.mark()
	c.sweep()
}

// Destroy drops every tracked object except except, mirroring gc_destroy's
// use at program exit to release everything but the value the REPL is
// about to print.
func (c *Collector) Destroy(except values.Value) {
	var head *node
	for n := c.list; n != nil; n = n.next {
		if values.Value(n.object) == except {
			head = &node{object: n.object, next: head}
		}
	}
	c.list = head
}

// Tracked reports how many objects the collector currently holds, used by
// tests asserting how many objects survive a Run.
func (c *Collector) Tracked() int {
	count := 0
	for n := c.list; n != nil; n = n.next {
		count++
	}
	return count
}
