package parser

type scope struct {
	outer       *scope
	allowIn     bool
	inIteration bool
	inSwitch    bool
	inFunction  bool

	labels []label
}

type label struct {
	name string
	// loop is set when the labelled statement is an iteration, so the label
	// is a valid continue target.
	loop bool
}

func (p *parser) openScope() {
	p.scope = &scope{
		outer:   p.scope,
		allowIn: true,
	}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}

// findLabel looks up a label visible from the current statement. Labels do
// not cross function boundaries since every function opens a new scope.
func (s *scope) findLabel(name string) (label, bool) {
	for i := len(s.labels) - 1; i >= 0; i-- {
		if s.labels[i].name == name {
			return s.labels[i], true
		}
	}
	return label{}, false
}
