package treesitter

import (
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gojscs/pkg/jsast"
)

// atomicKinds are grammar kinds that form a single token even though
// the grammar gives them children.
//
//nolint:gochecknoglobals // Read-only lookup table.
var atomicKinds = map[string]bool{
	"string":          true,
	"template_string": true,
	"regex":           true,
	"jsx_text":        true,
}

// estreeTypes maps grammar kinds to ESTree node types.
//
//nolint:gochecknoglobals // Read-only lookup table.
var estreeTypes = map[string]string{
	"program":                               jsast.TypeProgram,
	"variable_declaration":                  jsast.TypeVariableDeclaration,
	"lexical_declaration":                   jsast.TypeVariableDeclaration,
	"variable_declarator":                   jsast.TypeVariableDeclarator,
	"function_declaration":                  jsast.TypeFunctionDeclaration,
	"generator_function_declaration":        jsast.TypeFunctionDeclaration,
	"function":                              jsast.TypeFunctionExpression,
	"function_expression":                   jsast.TypeFunctionExpression,
	"generator_function":                    jsast.TypeFunctionExpression,
	"arrow_function":                        jsast.TypeArrowFunctionExpression,
	"class_declaration":                     jsast.TypeClassDeclaration,
	"class":                                 jsast.TypeClassExpression,
	"method_definition":                     jsast.TypeMethodDefinition,
	"statement_block":                       jsast.TypeBlockStatement,
	"expression_statement":                  jsast.TypeExpressionStatement,
	"empty_statement":                       jsast.TypeEmptyStatement,
	"if_statement":                          jsast.TypeIfStatement,
	"else_clause":                           jsast.TypeElseClause,
	"for_statement":                         jsast.TypeForStatement,
	"for_in_statement":                      jsast.TypeForInStatement,
	"while_statement":                       jsast.TypeWhileStatement,
	"do_statement":                          jsast.TypeDoWhileStatement,
	"with_statement":                        jsast.TypeWithStatement,
	"return_statement":                      jsast.TypeReturnStatement,
	"throw_statement":                       jsast.TypeThrowStatement,
	"try_statement":                         jsast.TypeTryStatement,
	"catch_clause":                          jsast.TypeCatchClause,
	"switch_statement":                      jsast.TypeSwitchStatement,
	"switch_case":                           jsast.TypeSwitchCase,
	"switch_default":                        jsast.TypeSwitchCase,
	"break_statement":                       jsast.TypeBreakStatement,
	"continue_statement":                    jsast.TypeContinueStatement,
	"labeled_statement":                     jsast.TypeLabeledStatement,
	"debugger_statement":                    jsast.TypeDebuggerStatement,
	"import_statement":                      jsast.TypeImportDeclaration,
	"export_statement":                      jsast.TypeExportNamedDeclaration,
	"object":                                jsast.TypeObjectExpression,
	"array":                                 jsast.TypeArrayExpression,
	"object_pattern":                        jsast.TypeObjectPattern,
	"array_pattern":                         jsast.TypeArrayPattern,
	"pair":                                  jsast.TypeProperty,
	"call_expression":                       jsast.TypeCallExpression,
	"new_expression":                        jsast.TypeNewExpression,
	"member_expression":                     jsast.TypeMemberExpression,
	"subscript_expression":                  jsast.TypeMemberExpression,
	"assignment_expression":                 jsast.TypeAssignmentExpression,
	"augmented_assignment_expression":       jsast.TypeAssignmentExpression,
	"binary_expression":                     jsast.TypeBinaryExpression,
	"unary_expression":                      jsast.TypeUnaryExpression,
	"update_expression":                     jsast.TypeUpdateExpression,
	"ternary_expression":                    jsast.TypeConditionalExpression,
	"sequence_expression":                   jsast.TypeSequenceExpression,
	"this":                                  jsast.TypeThisExpression,
	"template_string":                       jsast.TypeTemplateLiteral,
	"identifier":                            jsast.TypeIdentifier,
	"property_identifier":                   jsast.TypeIdentifier,
	"shorthand_property_identifier":         jsast.TypeIdentifier,
	"shorthand_property_identifier_pattern": jsast.TypeIdentifier,
	"statement_identifier":                  jsast.TypeIdentifier,
	"private_property_identifier":           jsast.TypeIdentifier,
	"undefined":                             jsast.TypeIdentifier,
	"string":                                jsast.TypeLiteral,
	"number":                                jsast.TypeLiteral,
	"regex":                                 jsast.TypeLiteral,
	"true":                                  jsast.TypeLiteral,
	"false":                                 jsast.TypeLiteral,
	"null":                                  jsast.TypeLiteral,
	"parenthesized_expression":              jsast.TypeParenthesizedExpression,
	"spread_element":                        jsast.TypeSpreadElement,
	"await_expression":                      jsast.TypeAwaitExpression,
	"yield_expression":                      jsast.TypeYieldExpression,
	"formal_parameters":                     jsast.TypeFormalParameters,
	"arguments":                             jsast.TypeArguments,
}

// nodeType returns the ESTree type for kind, or kind itself.
func nodeType(kind string) string {
	if typ, ok := estreeTypes[kind]; ok {
		return typ
	}
	return kind
}

// identifierKinds are named leaves that lex as identifiers.
//
//nolint:gochecknoglobals // Read-only lookup table.
var identifierKinds = map[string]bool{
	"identifier":                            true,
	"property_identifier":                   true,
	"shorthand_property_identifier":         true,
	"shorthand_property_identifier_pattern": true,
	"statement_identifier":                  true,
	"private_property_identifier":           true,
	"undefined":                             true,
}

// contextualKeywords are words the grammar spells as anonymous tokens
// but which lex as identifiers.
//
//nolint:gochecknoglobals // Read-only lookup table.
var contextualKeywords = map[string]bool{
	"get":    true,
	"set":    true,
	"of":     true,
	"async":  true,
	"static": true,
	"from":   true,
	"as":     true,
	"target": true,
	"meta":   true,
}

// tokenType classifies a leaf.
func tokenType(kind, value string, named bool) string {
	switch {
	case identifierKinds[kind]:
		return jsast.TokenIdentifier
	case kind == "string":
		return jsast.TokenString
	case kind == "template_string":
		return jsast.TokenTemplate
	case kind == "regex":
		return jsast.TokenRegExp
	case kind == "number":
		return jsast.TokenNumeric
	case kind == "true" || kind == "false":
		return jsast.TokenBoolean
	case kind == "null":
		return jsast.TokenNull
	case kind == "jsx_text":
		return jsast.TokenJSXText
	case kind == "this" || kind == "super":
		return jsast.TokenKeyword
	}

	r, _ := utf8.DecodeRuneInString(value)
	if !unicode.IsLetter(r) {
		return jsast.TokenPunctuator
	}
	if named || contextualKeywords[value] {
		return jsast.TokenIdentifier
	}
	return jsast.TokenKeyword
}
