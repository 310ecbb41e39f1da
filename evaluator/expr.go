package evaluator

import (
	"fmt"
	"strings"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/generator"
	"github.com/t14raptor/fastscript/token"
)

func (in *Interpreter) eval(e ast.Expr, scope *Scope) (Value, *completion) {
	switch n := e.(type) {
	case *ast.NumberLiteral:
		return float64Value(n.Value), nil
	case *ast.StringLiteral:
		return stringValue(n.Value), nil
	case *ast.BooleanLiteral:
		return boolValue(n.Value), nil
	case *ast.NullLiteral:
		return nullValue, nil
	case *ast.UndefinedLiteral:
		return undefinedValue, nil
	case *ast.Identifier:
		return in.resolve(n, scope)
	case *ast.ThisExpression:
		return scope.thisValue(), nil
	case *ast.ArrayLiteral:
		elements := make([]Value, len(n.Value))
		for i := range n.Value {
			if n.Value[i].Expr == nil {
				continue
			}
			v, c := in.eval(n.Value[i].Expr, scope)
			if c != nil {
				return Value{}, c
			}
			elements[i] = v
		}
		return in.newArray(elements), nil
	case *ast.ObjectLiteral:
		return in.evalObjectLiteral(n, scope)
	case *ast.FunctionLiteral:
		return in.newFunctionExpression(n, scope), nil
	case *ast.UnaryExpression:
		return in.evalUnary(n, scope)
	case *ast.UpdateExpression:
		return in.evalUpdate(n, scope)
	case *ast.BinaryExpression:
		return in.evalBinary(n, scope)
	case *ast.AssignExpression:
		return in.evalAssign(n, scope)
	case *ast.ConditionalExpression:
		test, c := in.eval(n.Test.Expr, scope)
		if c != nil {
			return Value{}, c
		}
		if test.bool() {
			return in.eval(n.Consequent.Expr, scope)
		}
		return in.eval(n.Alternate.Expr, scope)
	case *ast.CallExpression:
		return in.evalCall(n, scope)
	case *ast.NewExpression:
		callee, c := in.eval(n.Callee.Expr, scope)
		if c != nil {
			return Value{}, c
		}
		args, c := in.evalArguments(n.ArgumentList, scope)
		if c != nil {
			return Value{}, c
		}
		return in.construct(callee, args, n.New, n.Callee.Expr)
	case *ast.MemberExpression:
		obj, key, c := in.evalMemberReference(n, scope)
		if c != nil {
			return Value{}, c
		}
		return in.getMember(obj, key, n.Idx0())
	case *ast.SequenceExpression:
		var v Value
		for i := range n.Sequence {
			var c *completion
			if v, c = in.eval(n.Sequence[i].Expr, scope); c != nil {
				return Value{}, c
			}
		}
		return v, nil
	}
	panic(fmt.Sprintf("eval: unexpected expression type %T", e))
}

func (in *Interpreter) resolve(n *ast.Identifier, scope *Scope) (Value, *completion) {
	b, ok := scope.lookup(n.Name)
	if !ok {
		return Value{}, in.throwError(UnresolvedIdentifier, n.Idx, "%s is not defined", n.Name)
	}
	if !b.initialized {
		return Value{}, in.throwError(ReferenceError, n.Idx, "Cannot access '%s' before initialization", n.Name)
	}
	return b.value, nil
}

// assignIdentifier writes an existing binding. There are no implicit
// globals: assigning an undeclared name or a const is a ReferenceError.
func (in *Interpreter) assignIdentifier(n *ast.Identifier, v Value, scope *Scope) *completion {
	b, ok := scope.lookup(n.Name)
	switch {
	case !ok:
		return in.throwError(ReferenceError, n.Idx, "%s is not defined", n.Name)
	case !b.initialized:
		return in.throwError(ReferenceError, n.Idx, "Cannot access '%s' before initialization", n.Name)
	case b.constant:
		return in.throwError(ReferenceError, n.Idx, "Assignment to constant variable '%s'", n.Name)
	}
	b.value = v
	return nil
}

// assign stores v into an assignment target.
func (in *Interpreter) assign(target ast.Expr, v Value, scope *Scope) *completion {
	switch t := target.(type) {
	case *ast.Identifier:
		return in.assignIdentifier(t, v, scope)
	case *ast.MemberExpression:
		obj, key, c := in.evalMemberReference(t, scope)
		if c != nil {
			return c
		}
		return in.setMember(obj, key, v, t.Idx0())
	}
	return in.throwError(ReferenceError, target.Idx0(), "Invalid assignment target")
}

func (in *Interpreter) evalMemberReference(n *ast.MemberExpression, scope *Scope) (Value, string, *completion) {
	obj, c := in.eval(n.Object.Expr, scope)
	if c != nil {
		return Value{}, "", c
	}
	if !n.Computed {
		return obj, n.Property.Expr.(*ast.StringLiteral).Value, nil
	}
	prop, c := in.eval(n.Property.Expr, scope)
	if c != nil {
		return Value{}, "", c
	}
	if obj.IsUndefined() || obj.IsNull() {
		return Value{}, "", in.throwError(TypeError, n.Idx0(), "Cannot read properties of %s (reading '%s')", obj.string(), prop.string())
	}
	key, c := in.toPropertyKey(prop, n.Idx0())
	return obj, key, c
}

func (in *Interpreter) evalObjectLiteral(n *ast.ObjectLiteral, scope *Scope) (Value, *completion) {
	obj := newObject(classObject, in.objectPrototype)
	for _, prop := range n.Value {
		var key string
		switch k := prop.Key.Expr.(type) {
		case *ast.StringLiteral:
			key = k.Value
		case *ast.NumberLiteral:
			key = float64Value(k.Value).string()
		}
		if prop.Computed {
			kv, c := in.eval(prop.Key.Expr, scope)
			if c != nil {
				return Value{}, c
			}
			if key, c = in.toPropertyKey(kv, prop.Key.Idx0()); c != nil {
				return Value{}, c
			}
		}
		v, c := in.eval(prop.Value.Expr, scope)
		if c != nil {
			return Value{}, c
		}
		in.nameAnonymous(v, key)
		obj.Set(key, v)
	}
	return ObjectValue(obj), nil
}

func (in *Interpreter) evalUnary(n *ast.UnaryExpression, scope *Scope) (Value, *completion) {
	switch n.Operator {
	case token.Typeof:
		if id, ok := n.Operand.Expr.(*ast.Identifier); ok {
			if _, found := scope.lookup(id.Name); !found {
				return stringValue("undefined"), nil
			}
		}
		v, c := in.eval(n.Operand.Expr, scope)
		if c != nil {
			return Value{}, c
		}
		return stringValue(typeOf(v)), nil
	case token.Delete:
		switch operand := n.Operand.Expr.(type) {
		case *ast.MemberExpression:
			obj, key, c := in.evalMemberReference(operand, scope)
			if c != nil {
				return Value{}, c
			}
			if obj.IsUndefined() || obj.IsNull() {
				return Value{}, in.throwError(TypeError, n.Idx, "Cannot convert undefined or null to object")
			}
			if o := obj.Object(); o != nil {
				return boolValue(o.Delete(key)), nil
			}
			return trueValue, nil
		case *ast.Identifier:
			return falseValue, nil
		}
		if _, c := in.eval(n.Operand.Expr, scope); c != nil {
			return Value{}, c
		}
		return trueValue, nil
	}

	v, c := in.eval(n.Operand.Expr, scope)
	if c != nil {
		return Value{}, c
	}
	switch n.Operator {
	case token.Void:
		return undefinedValue, nil
	case token.Not:
		return boolValue(!v.bool()), nil
	}
	if v, c = in.toPrimitive(v, hintNumber, n.Idx); c != nil {
		return Value{}, c
	}
	res, ok := ApplyUnary(n.Operator, v)
	if !ok {
		return Value{}, in.throwError(TypeError, n.Idx, "Invalid operand for %s", n.Operator)
	}
	return res, nil
}

func (in *Interpreter) evalUpdate(n *ast.UpdateExpression, scope *Scope) (Value, *completion) {
	var (
		obj Value
		key string
		old Value
		c   *completion
	)
	switch target := n.Operand.Expr.(type) {
	case *ast.Identifier:
		if old, c = in.resolve(target, scope); c != nil {
			return Value{}, c
		}
	case *ast.MemberExpression:
		if obj, key, c = in.evalMemberReference(target, scope); c != nil {
			return Value{}, c
		}
		if old, c = in.getMember(obj, key, target.Idx0()); c != nil {
			return Value{}, c
		}
	}
	num, c := in.toNumber(old, n.Idx)
	if c != nil {
		return Value{}, c
	}
	updated := num + 1
	if n.Operator == token.Decrement {
		updated = num - 1
	}

	switch target := n.Operand.Expr.(type) {
	case *ast.Identifier:
		c = in.assignIdentifier(target, float64Value(updated), scope)
	case *ast.MemberExpression:
		c = in.setMember(obj, key, float64Value(updated), target.Idx0())
	}
	if c != nil {
		return Value{}, c
	}
	if n.Postfix {
		return float64Value(num), nil
	}
	return float64Value(updated), nil
}

func (in *Interpreter) evalBinary(n *ast.BinaryExpression, scope *Scope) (Value, *completion) {
	left, c := in.eval(n.Left.Expr, scope)
	if c != nil {
		return Value{}, c
	}
	switch n.Operator {
	case token.LogicalAnd:
		if !left.bool() {
			return left, nil
		}
		return in.eval(n.Right.Expr, scope)
	case token.LogicalOr:
		if left.bool() {
			return left, nil
		}
		return in.eval(n.Right.Expr, scope)
	}
	right, c := in.eval(n.Right.Expr, scope)
	if c != nil {
		return Value{}, c
	}
	return in.binary(n.Operator, left, right, n.Left.Idx0())
}

func (in *Interpreter) evalAssign(n *ast.AssignExpression, scope *Scope) (Value, *completion) {
	if n.Operator == token.Assign {
		switch target := n.Left.Expr.(type) {
		case *ast.Identifier:
			if _, ok := scope.lookup(target.Name); !ok {
				return Value{}, in.throwError(ReferenceError, target.Idx, "%s is not defined", target.Name)
			}
			v, c := in.eval(n.Right.Expr, scope)
			if c != nil {
				return Value{}, c
			}
			in.nameAnonymous(v, target.Name)
			return v, in.assignIdentifier(target, v, scope)
		case *ast.MemberExpression:
			obj, key, c := in.evalMemberReference(target, scope)
			if c != nil {
				return Value{}, c
			}
			v, c := in.eval(n.Right.Expr, scope)
			if c != nil {
				return Value{}, c
			}
			return v, in.setMember(obj, key, v, target.Idx0())
		}
		return Value{}, in.throwError(ReferenceError, n.Left.Idx0(), "Invalid assignment target")
	}

	op := n.Operator.BinaryOf()
	switch target := n.Left.Expr.(type) {
	case *ast.Identifier:
		old, c := in.resolve(target, scope)
		if c != nil {
			return Value{}, c
		}
		right, c := in.eval(n.Right.Expr, scope)
		if c != nil {
			return Value{}, c
		}
		v, c := in.binary(op, old, right, target.Idx)
		if c != nil {
			return Value{}, c
		}
		return v, in.assignIdentifier(target, v, scope)
	case *ast.MemberExpression:
		obj, key, c := in.evalMemberReference(target, scope)
		if c != nil {
			return Value{}, c
		}
		old, c := in.getMember(obj, key, target.Idx0())
		if c != nil {
			return Value{}, c
		}
		right, c := in.eval(n.Right.Expr, scope)
		if c != nil {
			return Value{}, c
		}
		v, c := in.binary(op, old, right, target.Idx0())
		if c != nil {
			return Value{}, c
		}
		return v, in.setMember(obj, key, v, target.Idx0())
	}
	return Value{}, in.throwError(ReferenceError, n.Left.Idx0(), "Invalid assignment target")
}

func (in *Interpreter) evalCall(n *ast.CallExpression, scope *Scope) (Value, *completion) {
	var fn, this Value
	if member, ok := n.Callee.Expr.(*ast.MemberExpression); ok {
		obj, key, c := in.evalMemberReference(member, scope)
		if c != nil {
			return Value{}, c
		}
		if fn, c = in.getMember(obj, key, member.Idx0()); c != nil {
			return Value{}, c
		}
		this = obj
	} else {
		var c *completion
		if fn, c = in.eval(n.Callee.Expr, scope); c != nil {
			return Value{}, c
		}
	}
	args, c := in.evalArguments(n.ArgumentList, scope)
	if c != nil {
		return Value{}, c
	}
	return in.call(fn, this, args, n.Idx0(), n.Callee.Expr)
}

func (in *Interpreter) evalArguments(list ast.Expressions, scope *Scope) ([]Value, *completion) {
	if len(list) == 0 {
		return nil, nil
	}
	args := make([]Value, len(list))
	for i := range list {
		v, c := in.eval(list[i].Expr, scope)
		if c != nil {
			return nil, c
		}
		args[i] = v
	}
	return args, nil
}

// calleeText renders a callee for error messages such as "o.f is not a
// function". An object or function literal heading a member chain keeps the
// parentheses it needs in statement position.
func calleeText(callee ast.Expr, v Value) string {
	if callee == nil {
		return Inspect(v)
	}
	text := generator.Generate(callee)
	head := callee
	for {
		switch n := head.(type) {
		case *ast.MemberExpression:
			head = n.Object.Expr
			continue
		case *ast.CallExpression:
			head = n.Callee.Expr
			continue
		}
		break
	}
	switch head.(type) {
	case *ast.ObjectLiteral, *ast.FunctionLiteral:
		if head != callee {
			if h := generator.Generate(head); strings.HasPrefix(text, h) {
				return "(" + h + ")" + text[len(h):]
			}
		}
	}
	return text
}

func typeOf(v Value) string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "object"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	}
	return "object"
}
