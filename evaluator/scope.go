package evaluator

type binding struct {
	value Value
	// initialized is false while a let/const is in its temporal dead zone.
	initialized bool
	constant    bool
}

// Scope is one environment record of the scope chain.
type Scope struct {
	parent   *Scope
	bindings map[string]*binding

	// function scopes receive var and function declarations and carry the
	// call's this value.
	function bool
	this     Value
}

func newScope(parent *Scope) *Scope {
	return &Scope{
		parent:   parent,
		bindings: make(map[string]*binding),
	}
}

func newFunctionScope(parent *Scope, this Value) *Scope {
	s := newScope(parent)
	s.function = true
	s.this = this
	return s
}

// lookup walks outward for name.
func (s *Scope) lookup(name string) (*binding, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if b, ok := scope.bindings[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// declareVar binds name to undefined unless it is already bound here.
func (s *Scope) declareVar(name string) {
	if _, ok := s.bindings[name]; !ok {
		s.bindings[name] = &binding{initialized: true}
	}
}

// declareLexical creates an uninitialized let/const binding.
func (s *Scope) declareLexical(name string, constant bool) {
	s.bindings[name] = &binding{constant: constant}
}

// set binds name to v in this scope, replacing any existing binding.
func (s *Scope) set(name string, v Value) {
	s.bindings[name] = &binding{value: v, initialized: true}
}

// thisValue returns the this of the nearest function scope.
func (s *Scope) thisValue() Value {
	for scope := s; scope != nil; scope = scope.parent {
		if scope.function {
			return scope.this
		}
	}
	return undefinedValue
}

// copyBindings returns a sibling scope holding fresh copies of the
// bindings, used for the per-iteration scope of `for (let ...)`.
func (s *Scope) copyBindings() *Scope {
	c := newScope(s.parent)
	for name, b := range s.bindings {
		nb := *b
		c.bindings[name] = &nb
	}
	return c
}

// Define binds name to v in this scope.
func (s *Scope) Define(name string, v Value) {
	s.set(name, v)
}

// Lookup resolves name along the scope chain. Bindings in their temporal
// dead zone are not visible.
func (s *Scope) Lookup(name string) (Value, bool) {
	b, ok := s.lookup(name)
	if !ok || !b.initialized {
		return Value{}, false
	}
	return b.value, true
}
