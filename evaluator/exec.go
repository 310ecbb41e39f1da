package evaluator

import (
	"fmt"
	"strconv"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/token"
)

func (in *Interpreter) execList(list ast.Statements, scope *Scope) completion {
	result := emptyCompletion
	for i := range list {
		c := in.exec(list[i].Stmt, scope)
		if c.kind != completionNormal {
			if c.empty && !result.empty {
				c.value, c.empty = result.value, false
			}
			return c
		}
		if !c.empty {
			result = c
		}
	}
	return result
}

func (in *Interpreter) exec(stmt ast.Stmt, scope *Scope) completion {
	switch n := stmt.(type) {
	case *ast.ExpressionStatement:
		v, c := in.eval(n.Expression.Expr, scope)
		if c != nil {
			return *c
		}
		return normalCompletion(v)
	case *ast.VariableDeclaration:
		return in.execVariableDeclaration(n, scope)
	case *ast.FunctionDeclaration, *ast.EmptyStatement:
		return emptyCompletion
	case *ast.BlockStatement:
		return in.execBlock(n, scope)
	case *ast.IfStatement:
		test, c := in.eval(n.Test.Expr, scope)
		if c != nil {
			return *c
		}
		if test.bool() {
			return in.exec(n.Consequent.Stmt, scope).updateEmpty(undefinedValue)
		}
		if n.Alternate != nil {
			return in.exec(n.Alternate.Stmt, scope).updateEmpty(undefinedValue)
		}
		return normalCompletion(undefinedValue)
	case *ast.WhileStatement:
		return in.execWhile(n, scope, nil)
	case *ast.DoWhileStatement:
		return in.execDoWhile(n, scope, nil)
	case *ast.ForStatement:
		return in.execFor(n, scope, nil)
	case *ast.ForInStatement:
		return in.execForIn(n, scope, nil)
	case *ast.LabelledStatement:
		return in.execLabelled(n, scope, nil)
	case *ast.ReturnStatement:
		v := undefinedValue
		if n.Argument != nil {
			var c *completion
			if v, c = in.eval(n.Argument.Expr, scope); c != nil {
				return *c
			}
		}
		return completion{kind: completionReturn, value: v}
	case *ast.BreakStatement:
		c := completion{kind: completionBreak, empty: true}
		if n.Label != nil {
			c.target = n.Label.Name
		}
		return c
	case *ast.ContinueStatement:
		c := completion{kind: completionContinue, empty: true}
		if n.Label != nil {
			c.target = n.Label.Name
		}
		return c
	case *ast.ThrowStatement:
		v, c := in.eval(n.Argument.Expr, scope)
		if c != nil {
			return *c
		}
		return *in.throwValue(v, n.Throw)
	case *ast.TryStatement:
		return in.execTry(n, scope)
	case *ast.SwitchStatement:
		return in.execSwitch(n, scope)
	}
	panic(fmt.Sprintf("exec: unexpected statement type %T", stmt))
}

func (in *Interpreter) execBlock(n *ast.BlockStatement, scope *Scope) completion {
	if hasBlockDeclarations(n.Declarations) {
		scope = newScope(scope)
		in.declare(n.Declarations, scope)
	}
	return in.execList(n.List, scope)
}

func (in *Interpreter) execVariableDeclaration(n *ast.VariableDeclaration, scope *Scope) completion {
	for _, decl := range n.List {
		v := undefinedValue
		if decl.Initializer != nil {
			var c *completion
			if v, c = in.eval(decl.Initializer.Expr, scope); c != nil {
				return *c
			}
			in.nameAnonymous(v, decl.Target.Name)
		} else if n.Token == token.Var {
			continue
		}
		if n.Token == token.Var {
			if c := in.assignIdentifier(decl.Target, v, scope); c != nil {
				return *c
			}
			continue
		}
		b, ok := scope.bindings[decl.Target.Name]
		if !ok {
			b = &binding{constant: n.Token == token.Const}
			scope.bindings[decl.Target.Name] = b
		}
		b.value = v
		b.initialized = true
	}
	return emptyCompletion
}

func (in *Interpreter) execLabelled(n *ast.LabelledStatement, scope *Scope, labels []string) completion {
	labels = append(labels, n.Label.Name)
	var c completion
	switch body := n.Statement.Stmt.(type) {
	case *ast.LabelledStatement:
		c = in.execLabelled(body, scope, labels)
	case *ast.WhileStatement:
		c = in.execWhile(body, scope, labels)
	case *ast.DoWhileStatement:
		c = in.execDoWhile(body, scope, labels)
	case *ast.ForStatement:
		c = in.execFor(body, scope, labels)
	case *ast.ForInStatement:
		c = in.execForIn(body, scope, labels)
	default:
		c = in.exec(body, scope)
	}
	if c.kind == completionBreak && c.target == n.Label.Name {
		return normalCompletion(c.updateEmpty(undefinedValue).value)
	}
	return c
}

func (in *Interpreter) execWhile(n *ast.WhileStatement, scope *Scope, labels []string) completion {
	v := undefinedValue
	for {
		if c := in.tick(n.While); c != nil {
			return *c
		}
		test, c := in.eval(n.Test.Expr, scope)
		if c != nil {
			return *c
		}
		if !test.bool() {
			return normalCompletion(v)
		}
		body := in.exec(n.Body.Stmt, scope)
		if !body.empty {
			v = body.value
		}
		if !loopContinues(body, labels) {
			return loopExit(body, v)
		}
	}
}

func (in *Interpreter) execDoWhile(n *ast.DoWhileStatement, scope *Scope, labels []string) completion {
	v := undefinedValue
	for {
		if c := in.tick(n.Do); c != nil {
			return *c
		}
		body := in.exec(n.Body.Stmt, scope)
		if !body.empty {
			v = body.value
		}
		if !loopContinues(body, labels) {
			return loopExit(body, v)
		}
		test, c := in.eval(n.Test.Expr, scope)
		if c != nil {
			return *c
		}
		if !test.bool() {
			return normalCompletion(v)
		}
	}
}

// execFor runs a C-style loop. A let/const head gets a fresh copy of its
// bindings for every iteration so closures capture that iteration's values.
func (in *Interpreter) execFor(n *ast.ForStatement, scope *Scope, labels []string) completion {
	loopScope := scope
	perIteration := false
	if n.Initializer != nil {
		switch init := n.Initializer.Initializer.(type) {
		case *ast.VariableDeclaration:
			if init.Token != token.Var {
				loopScope = newScope(scope)
				for _, decl := range init.List {
					loopScope.declareLexical(decl.Target.Name, init.Token == token.Const)
				}
				perIteration = true
			}
			if c := in.execVariableDeclaration(init, loopScope); c.kind != completionNormal {
				return c
			}
		case *ast.Expression:
			if _, c := in.eval(init.Expr, scope); c != nil {
				return *c
			}
		}
	}

	iterScope := loopScope
	if perIteration {
		iterScope = loopScope.copyBindings()
	}
	v := undefinedValue
	for {
		if c := in.tick(n.For); c != nil {
			return *c
		}
		if n.Test != nil {
			test, c := in.eval(n.Test.Expr, iterScope)
			if c != nil {
				return *c
			}
			if !test.bool() {
				return normalCompletion(v)
			}
		}
		body := in.exec(n.Body.Stmt, iterScope)
		if !body.empty {
			v = body.value
		}
		if !loopContinues(body, labels) {
			return loopExit(body, v)
		}
		if perIteration {
			iterScope = iterScope.copyBindings()
		}
		if n.Update != nil {
			if _, c := in.eval(n.Update.Expr, iterScope); c != nil {
				return *c
			}
		}
	}
}

// execForIn iterates the enumerable keys of the source, own keys first then
// inherited ones. The keys are collected up front; a key deleted during
// iteration is skipped.
func (in *Interpreter) execForIn(n *ast.ForInStatement, scope *Scope, labels []string) completion {
	src, c := in.eval(n.Source.Expr, scope)
	if c != nil {
		return *c
	}
	keys := in.enumerableKeys(src)
	obj := src.Object()

	v := undefinedValue
	for _, key := range keys {
		if c := in.tick(n.For); c != nil {
			return *c
		}
		if obj != nil && !obj.Has(key) {
			continue
		}
		iterScope := scope
		switch into := n.Into.Into.(type) {
		case *ast.VariableDeclaration:
			target := into.List[0].Target
			if into.Token == token.Var {
				if c := in.assignIdentifier(target, stringValue(key), scope); c != nil {
					return *c
				}
				break
			}
			iterScope = newScope(scope)
			iterScope.bindings[target.Name] = &binding{
				value:       stringValue(key),
				initialized: true,
				constant:    into.Token == token.Const,
			}
		case *ast.Expression:
			if c := in.assign(into.Expr, stringValue(key), scope); c != nil {
				return *c
			}
		}
		body := in.exec(n.Body.Stmt, iterScope)
		if !body.empty {
			v = body.value
		}
		if !loopContinues(body, labels) {
			return loopExit(body, v)
		}
	}
	return normalCompletion(v)
}

func (in *Interpreter) enumerableKeys(v Value) []string {
	if v.IsString() {
		n := utf16Length(v.string())
		keys := make([]string, n)
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	}
	o := v.Object()
	if o == nil {
		return nil
	}
	var keys []string
	seen := make(map[string]struct{})
	for obj := o; obj != nil; obj = obj.proto {
		for _, k := range obj.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
		for _, k := range obj.keys {
			seen[k] = struct{}{}
		}
	}
	return keys
}

// execTry runs the try block, the catch clause for a thrown completion and
// then the finally block, whose own abrupt completion replaces the pending
// one. Interrupts skip both clauses.
func (in *Interpreter) execTry(n *ast.TryStatement, scope *Scope) completion {
	c := in.execBlock(n.Body, scope)
	if c.uncatchable() {
		return c
	}
	if c.kind == completionThrow && n.Catch != nil {
		catchScope := scope
		if n.Catch.Parameter != nil {
			catchScope = newScope(scope)
			catchScope.set(n.Catch.Parameter.Name, c.value)
		}
		c = in.execBlock(n.Catch.Body, catchScope)
		if c.uncatchable() {
			return c
		}
	}
	if n.Finally != nil {
		f := in.execBlock(n.Finally, scope)
		if f.kind != completionNormal {
			return f
		}
	}
	return c.updateEmpty(undefinedValue)
}

// execSwitch compares the discriminant with each case test using strict
// equality, falls back to the default clause, and falls through from the
// matching clause until a break.
func (in *Interpreter) execSwitch(n *ast.SwitchStatement, scope *Scope) completion {
	d, c := in.eval(n.Discriminant.Expr, scope)
	if c != nil {
		return *c
	}
	if hasBlockDeclarations(n.Declarations) {
		scope = newScope(scope)
		in.declare(n.Declarations, scope)
	}

	matched := -1
	for i := range n.Body {
		clause := &n.Body[i]
		if clause.Test == nil {
			continue
		}
		test, c := in.eval(clause.Test.Expr, scope)
		if c != nil {
			return *c
		}
		if strictEquals(d, test) {
			matched = i
			break
		}
	}
	if matched < 0 {
		matched = n.Default
	}
	v := undefinedValue
	if matched < 0 {
		return normalCompletion(v)
	}
	for i := matched; i < len(n.Body); i++ {
		body := in.execList(n.Body[i].Consequent, scope)
		if !body.empty {
			v = body.value
		}
		if body.kind != completionNormal {
			return loopExit(body, v)
		}
	}
	return normalCompletion(v)
}
