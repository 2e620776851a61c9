package rules

import (
	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/jsast"
	"github.com/yaklabco/gojscs/pkg/lint"
)

// DisallowMultipleVarDeclRule requires one declarator per declaration.
type DisallowMultipleVarDeclRule struct {
	lint.BaseRule
	strict          bool
	exceptUndefined bool
	exceptRequire   bool
}

// NewDisallowMultipleVarDeclRule creates the disallowMultipleVarDecl rule.
func NewDisallowMultipleVarDeclRule() *DisallowMultipleVarDeclRule {
	return &DisallowMultipleVarDeclRule{
		BaseRule: lint.NewBaseRule("disallowMultipleVarDecl", "Disallows multiple variable declarations in one statement"),
	}
}

// Configure accepts true, "strict", "exceptUndefined" or
// {allExcept: ["undefined", "require"]}.
func (r *DisallowMultipleVarDeclRule) Configure(value any) error {
	r.strict, r.exceptUndefined, r.exceptRequire = false, false, false

	if b, ok := config.AsBool(value); ok && b {
		return nil
	}
	if s, ok := config.AsString(value); ok {
		switch s {
		case "strict":
			r.strict = true
			return nil
		case "exceptUndefined":
			r.exceptUndefined = true
			return nil
		}
	}
	if obj, ok := config.AsSettings(value); ok {
		raw, _ := obj.Get("allExcept")
		list, ok := config.AsStringList(raw)
		if !ok {
			return r.OptionError(`disallowMultipleVarDecl "allExcept" option requires an array`)
		}
		for _, item := range list {
			switch item {
			case "undefined":
				r.exceptUndefined = true
			case "require":
				r.exceptRequire = true
			default:
				return r.OptionError("disallowMultipleVarDecl unknown exception %q", item)
			}
		}
		return nil
	}
	return r.OptionError(`disallowMultipleVarDecl option requires true, "strict", "exceptUndefined" or an object with "allExcept"`)
}

// Check reports declarations with more than one declarator.
func (r *DisallowMultipleVarDeclRule) Check(file *lint.File, errs *lint.Errors) {
	tree := file.Tree()

	file.IterateNodesByType(func(n *jsast.Node) {
		declarators := tree.ChildrenOfType(n, jsast.TypeVariableDeclarator)
		if len(declarators) < 2 {
			return
		}
		if !r.strict {
			if parent := tree.Parent(n); parent != nil &&
				(parent.Type == jsast.TypeForStatement || parent.Type == jsast.TypeForInStatement) {
				return
			}
		}
		if r.exceptUndefined && allDeclarators(declarators, func(d *jsast.Node) bool {
			return isUndefinedInit(file, tree.ChildByField(d, "value"))
		}) {
			return
		}
		if r.exceptRequire && allDeclarators(declarators, func(d *jsast.Node) bool {
			return isRequireCall(file, tree.ChildByField(d, "value"))
		}) {
			return
		}
		errs.Add("Multiple var declaration", n)
	}, jsast.TypeVariableDeclaration)
}

func allDeclarators(declarators []*jsast.Node, pred func(*jsast.Node) bool) bool {
	for _, d := range declarators {
		if !pred(d) {
			return false
		}
	}
	return true
}

// isUndefinedInit reports a missing initializer or a literal undefined.
func isUndefinedInit(file *lint.File, init *jsast.Node) bool {
	return init == nil || (init.Type == jsast.TypeIdentifier && nodeText(file, init) == "undefined")
}

// isRequireCall reports an initializer of the form require(...).
func isRequireCall(file *lint.File, init *jsast.Node) bool {
	if init == nil || init.Type != jsast.TypeCallExpression {
		return false
	}
	callee := file.Tree().ChildByField(init, "function")
	return callee != nil && callee.Type == jsast.TypeIdentifier && nodeText(file, callee) == "require"
}

// nodeText returns the source text a node spans.
func nodeText(file *lint.File, n *jsast.Node) string {
	src := file.Source()
	if n.Range.Start < 0 || n.Range.End > len(src) || n.Range.Start > n.Range.End {
		return ""
	}
	return string(src[n.Range.Start:n.Range.End])
}
