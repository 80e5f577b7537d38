package shortcut

import "errors"

type bindCall struct {
	combo   string
	handler func()
	kinds   []EventKind
	global  bool
}

// fakeDetector records calls and has no global bind.
type fakeDetector struct {
	binds   []bindCall
	unbinds []string
	failOn  string
}

func (d *fakeDetector) Bind(combo string, h func(), kind ...EventKind) error {
	if combo == d.failOn {
		return errors.New("bad combo")
	}
	d.binds = append(d.binds, bindCall{combo: combo, handler: h, kinds: kind})
	return nil
}

func (d *fakeDetector) Unbind(combo string) error {
	d.unbinds = append(d.unbinds, combo)
	return nil
}

type fakeGlobalDetector struct {
	fakeDetector
}

func (d *fakeGlobalDetector) BindGlobal(combo string, h func(), kind ...EventKind) error {
	d.binds = append(d.binds, bindCall{combo: combo, handler: h, kinds: kind, global: true})
	return nil
}

type fakeElement struct{ focused bool }

func (e *fakeElement) HasFocus() bool { return e.focused }

type fakeProvider struct {
	shared   Detector
	attached []*fakeDetector
	elements []Element
}

func (p *fakeProvider) Shared() Detector { return p.shared }

func (p *fakeProvider) AttachedTo(el Element) Detector {
	d := &fakeDetector{}
	p.attached = append(p.attached, d)
	p.elements = append(p.elements, el)
	return d
}

type fakeContext struct {
	events    []string
	flushes   int
	onDestroy []func()
}

func (c *fakeContext) Broadcast(event string) { c.events = append(c.events, event) }
func (c *fakeContext) OnDestroy(fn func())    { c.onDestroy = append(c.onDestroy, fn) }
func (c *fakeContext) Flush()                 { c.flushes++ }

func (c *fakeContext) destroy() {
	fns := c.onDestroy
	c.onDestroy = nil
	for _, fn := range fns {
		fn()
	}
}

// plainContext has no Flush method.
type plainContext struct {
	events []string
}

func (c *plainContext) Broadcast(event string) { c.events = append(c.events, event) }
func (c *plainContext) OnDestroy(func())       {}
