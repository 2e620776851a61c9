package jsast

// Node types produced by the parser for the constructs rules look at.
const (
	TypeProgram                 = "Program"
	TypeVariableDeclaration     = "VariableDeclaration"
	TypeVariableDeclarator      = "VariableDeclarator"
	TypeFunctionDeclaration     = "FunctionDeclaration"
	TypeFunctionExpression      = "FunctionExpression"
	TypeArrowFunctionExpression = "ArrowFunctionExpression"
	TypeClassDeclaration        = "ClassDeclaration"
	TypeClassExpression         = "ClassExpression"
	TypeMethodDefinition        = "MethodDefinition"
	TypeBlockStatement          = "BlockStatement"
	TypeExpressionStatement     = "ExpressionStatement"
	TypeEmptyStatement          = "EmptyStatement"
	TypeIfStatement             = "IfStatement"
	TypeElseClause              = "ElseClause"
	TypeForStatement            = "ForStatement"
	TypeForInStatement          = "ForInStatement"
	TypeWhileStatement          = "WhileStatement"
	TypeDoWhileStatement        = "DoWhileStatement"
	TypeWithStatement           = "WithStatement"
	TypeReturnStatement         = "ReturnStatement"
	TypeThrowStatement          = "ThrowStatement"
	TypeTryStatement            = "TryStatement"
	TypeCatchClause             = "CatchClause"
	TypeSwitchStatement         = "SwitchStatement"
	TypeSwitchCase              = "SwitchCase"
	TypeBreakStatement          = "BreakStatement"
	TypeContinueStatement       = "ContinueStatement"
	TypeLabeledStatement        = "LabeledStatement"
	TypeDebuggerStatement       = "DebuggerStatement"
	TypeImportDeclaration       = "ImportDeclaration"
	TypeExportNamedDeclaration  = "ExportNamedDeclaration"
	TypeObjectExpression        = "ObjectExpression"
	TypeArrayExpression         = "ArrayExpression"
	TypeObjectPattern           = "ObjectPattern"
	TypeArrayPattern            = "ArrayPattern"
	TypeProperty                = "Property"
	TypeCallExpression          = "CallExpression"
	TypeNewExpression           = "NewExpression"
	TypeMemberExpression        = "MemberExpression"
	TypeAssignmentExpression    = "AssignmentExpression"
	TypeBinaryExpression        = "BinaryExpression"
	TypeUnaryExpression         = "UnaryExpression"
	TypeUpdateExpression        = "UpdateExpression"
	TypeConditionalExpression   = "ConditionalExpression"
	TypeSequenceExpression      = "SequenceExpression"
	TypeThisExpression          = "ThisExpression"
	TypeTemplateLiteral         = "TemplateLiteral"
	TypeIdentifier              = "Identifier"
	TypeLiteral                 = "Literal"
	TypeParenthesizedExpression = "ParenthesizedExpression"
	TypeSpreadElement           = "SpreadElement"
	TypeAwaitExpression         = "AwaitExpression"
	TypeYieldExpression         = "YieldExpression"
	TypeFormalParameters        = "FormalParameters"
	TypeArguments               = "Arguments"
)
