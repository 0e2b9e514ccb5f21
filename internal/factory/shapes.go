package factory

import "jsgreen/internal/kind"

var (
	varKinds      = []kind.Kind{kind.VarKw, kind.LetKw, kind.ConstKw}
	memberNames   = []kind.Kind{kind.JsName, kind.JsPrivateName}
	memberAccess  = []kind.Kind{kind.Dot, kind.QuestionDot}
	unaryOps      = []kind.Kind{kind.DeleteKw, kind.VoidKw, kind.TypeofKw, kind.Plus, kind.Minus, kind.Tilde, kind.Bang}
	updateOps     = []kind.Kind{kind.Plus2, kind.Minus2}
	logicalOps    = []kind.Kind{kind.Question2, kind.Pipe2, kind.Amp2}
	booleanValues = []kind.Kind{kind.TrueKw, kind.FalseKw}
	binaryOps     = []kind.Kind{
		kind.LAngle, kind.RAngle, kind.LtEq, kind.GtEq, kind.Eq2, kind.Eq3, kind.Neq, kind.Neq2,
		kind.Plus, kind.Minus, kind.Star, kind.Slash, kind.Percent, kind.Star2,
		kind.Shl, kind.Shr, kind.UShr, kind.Amp, kind.Pipe, kind.Caret,
	}
	assignOps = []kind.Kind{
		kind.Eq, kind.PlusEq, kind.MinusEq, kind.StarEq, kind.SlashEq, kind.PercentEq, kind.Star2Eq,
		kind.ShlEq, kind.ShrEq, kind.UShrEq, kind.AmpEq, kind.PipeEq, kind.CaretEq, kind.Amp2Eq, kind.Pipe2Eq, kind.Question2Eq,
	}
)

// shapeTable lists the slots of every shaped node kind.
var shapeTable = map[kind.Kind][]Slot{
	kind.JsModule: {
		optTok("interpreter_token", kind.JsShebang),
		child("directives", kind.JsDirectiveList),
		child("items", kind.JsModuleItemList),
		tok("eof_token", kind.EOF),
	},
	kind.JsScript: {
		optTok("interpreter_token", kind.JsShebang),
		child("directives", kind.JsDirectiveList),
		child("statements", kind.JsStatementList),
		tok("eof_token", kind.EOF),
	},
	kind.JsDirective: {
		tok("value_token", kind.JsStringLiteral),
		optTok("semicolon_token", kind.Semicolon),
	},

	// statements
	kind.JsBlockStatement: {
		tok("l_curly_token", kind.LCurly),
		child("statements", kind.JsStatementList),
		tok("r_curly_token", kind.RCurly),
	},
	kind.JsEmptyStatement: {
		tok("semicolon_token", kind.Semicolon),
	},
	kind.JsExpressionStatement: {
		cast("expression", kind.AnyJsExpression),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsIfStatement: {
		tok("if_token", kind.IfKw),
		tok("l_paren_token", kind.LParen),
		cast("test", kind.AnyJsExpression),
		tok("r_paren_token", kind.RParen),
		cast("consequent", kind.AnyJsStatement),
		optChild("else_clause", kind.JsElseClause),
	},
	kind.JsElseClause: {
		tok("else_token", kind.ElseKw),
		cast("alternate", kind.AnyJsStatement),
	},
	kind.JsDoWhileStatement: {
		tok("do_token", kind.DoKw),
		cast("body", kind.AnyJsStatement),
		tok("while_token", kind.WhileKw),
		tok("l_paren_token", kind.LParen),
		cast("test", kind.AnyJsExpression),
		tok("r_paren_token", kind.RParen),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsWhileStatement: {
		tok("while_token", kind.WhileKw),
		tok("l_paren_token", kind.LParen),
		cast("test", kind.AnyJsExpression),
		tok("r_paren_token", kind.RParen),
		cast("body", kind.AnyJsStatement),
	},
	kind.JsForStatement: {
		tok("for_token", kind.ForKw),
		tok("l_paren_token", kind.LParen),
		optCast("initializer", kind.AnyJsForInitializer),
		tok("first_semi_token", kind.Semicolon),
		optCast("test", kind.AnyJsExpression),
		tok("second_semi_token", kind.Semicolon),
		optCast("update", kind.AnyJsExpression),
		tok("r_paren_token", kind.RParen),
		cast("body", kind.AnyJsStatement),
	},
	kind.JsForInStatement: {
		tok("for_token", kind.ForKw),
		tok("l_paren_token", kind.LParen),
		cast("initializer", kind.AnyJsForInOrOfInitializer),
		tok("in_token", kind.InKw),
		cast("expression", kind.AnyJsExpression),
		tok("r_paren_token", kind.RParen),
		cast("body", kind.AnyJsStatement),
	},
	kind.JsForOfStatement: {
		tok("for_token", kind.ForKw),
		optTok("await_token", kind.AwaitKw),
		tok("l_paren_token", kind.LParen),
		cast("initializer", kind.AnyJsForInOrOfInitializer),
		tok("of_token", kind.OfKw),
		cast("expression", kind.AnyJsExpression),
		tok("r_paren_token", kind.RParen),
		cast("body", kind.AnyJsStatement),
	},
	kind.JsForVariableDeclaration: {
		oneOf("kind_token", varKinds...),
		child("declarator", kind.JsVariableDeclarator),
	},
	kind.JsContinueStatement: {
		tok("continue_token", kind.ContinueKw),
		optTok("label_token", kind.Ident),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsBreakStatement: {
		tok("break_token", kind.BreakKw),
		optTok("label_token", kind.Ident),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsReturnStatement: {
		tok("return_token", kind.ReturnKw),
		optCast("argument", kind.AnyJsExpression),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsWithStatement: {
		tok("with_token", kind.WithKw),
		tok("l_paren_token", kind.LParen),
		cast("object", kind.AnyJsExpression),
		tok("r_paren_token", kind.RParen),
		cast("body", kind.AnyJsStatement),
	},
	kind.JsLabeledStatement: {
		tok("label_token", kind.Ident),
		tok("colon_token", kind.Colon),
		cast("body", kind.AnyJsStatement),
	},
	kind.JsSwitchStatement: {
		tok("switch_token", kind.SwitchKw),
		tok("l_paren_token", kind.LParen),
		cast("discriminant", kind.AnyJsExpression),
		tok("r_paren_token", kind.RParen),
		tok("l_curly_token", kind.LCurly),
		child("cases", kind.JsSwitchCaseList),
		tok("r_curly_token", kind.RCurly),
	},
	kind.JsCaseClause: {
		tok("case_token", kind.CaseKw),
		cast("test", kind.AnyJsExpression),
		tok("colon_token", kind.Colon),
		child("consequent", kind.JsStatementList),
	},
	kind.JsDefaultClause: {
		tok("default_token", kind.DefaultKw),
		tok("colon_token", kind.Colon),
		child("consequent", kind.JsStatementList),
	},
	kind.JsThrowStatement: {
		tok("throw_token", kind.ThrowKw),
		cast("argument", kind.AnyJsExpression),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsTryStatement: {
		tok("try_token", kind.TryKw),
		child("body", kind.JsBlockStatement),
		child("catch_clause", kind.JsCatchClause),
	},
	kind.JsTryFinallyStatement: {
		tok("try_token", kind.TryKw),
		child("body", kind.JsBlockStatement),
		optChild("catch_clause", kind.JsCatchClause),
		child("finally_clause", kind.JsFinallyClause),
	},
	kind.JsCatchClause: {
		tok("catch_token", kind.CatchKw),
		optChild("declaration", kind.JsCatchDeclaration),
		child("body", kind.JsBlockStatement),
	},
	kind.JsCatchDeclaration: {
		tok("l_paren_token", kind.LParen),
		cast("binding", kind.AnyJsBindingPattern),
		tok("r_paren_token", kind.RParen),
	},
	kind.JsFinallyClause: {
		tok("finally_token", kind.FinallyKw),
		child("body", kind.JsBlockStatement),
	},
	kind.JsDebuggerStatement: {
		tok("debugger_token", kind.DebuggerKw),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsFunctionDeclaration: {
		optTok("async_token", kind.AsyncKw),
		tok("function_token", kind.FunctionKw),
		optTok("star_token", kind.Star),
		cast("id", kind.AnyJsBinding),
		child("parameters", kind.JsParameters),
		child("body", kind.JsFunctionBody),
	},
	kind.JsClassDeclaration: {
		tok("class_token", kind.ClassKw),
		cast("id", kind.AnyJsBinding),
		optChild("extends_clause", kind.JsExtendsClause),
		tok("l_curly_token", kind.LCurly),
		child("members", kind.JsClassMemberList),
		tok("r_curly_token", kind.RCurly),
	},
	kind.JsExtendsClause: {
		tok("extends_token", kind.ExtendsKw),
		cast("super_class", kind.AnyJsExpression),
	},
	kind.JsVariableStatement: {
		child("declaration", kind.JsVariableDeclaration),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsVariableDeclaration: {
		oneOf("kind_token", varKinds...),
		child("declarators", kind.JsVariableDeclaratorList),
	},
	kind.JsVariableDeclarator: {
		cast("id", kind.AnyJsBindingPattern),
		optChild("initializer", kind.JsInitializerClause),
	},
	kind.JsVariableDeclarationClause: {
		child("declaration", kind.JsVariableDeclaration),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsInitializerClause: {
		tok("eq_token", kind.Eq),
		cast("expression", kind.AnyJsExpression),
	},

	// functions and parameters
	kind.JsParameters: {
		tok("l_paren_token", kind.LParen),
		child("items", kind.JsParameterList),
		tok("r_paren_token", kind.RParen),
	},
	kind.JsFormalParameter: {
		cast("binding", kind.AnyJsBindingPattern),
		optChild("initializer", kind.JsInitializerClause),
	},
	kind.JsRestParameter: {
		tok("dotdotdot_token", kind.Dot3),
		cast("binding", kind.AnyJsBindingPattern),
	},
	kind.JsFunctionBody: {
		tok("l_curly_token", kind.LCurly),
		child("directives", kind.JsDirectiveList),
		child("statements", kind.JsStatementList),
		tok("r_curly_token", kind.RCurly),
	},
	kind.JsCallArguments: {
		tok("l_paren_token", kind.LParen),
		child("args", kind.JsCallArgumentList),
		tok("r_paren_token", kind.RParen),
	},
	kind.JsSpread: {
		tok("dotdotdot_token", kind.Dot3),
		cast("argument", kind.AnyJsExpression),
	},
	kind.JsArrayHole: {},

	// names
	kind.JsName: {
		cast("value_token", kind.JsNameToken),
	},
	kind.JsPrivateName: {
		tok("hash_token", kind.Hash),
		cast("value_token", kind.JsNameToken),
	},
	kind.JsReferenceIdentifier: {
		cast("value_token", kind.JsIdentifierToken),
	},

	// expressions
	kind.JsIdentifierExpression: {
		child("name", kind.JsReferenceIdentifier),
	},
	kind.JsThisExpression: {
		tok("this_token", kind.ThisKw),
	},
	kind.JsSuperExpression: {
		tok("super_token", kind.SuperKw),
	},
	kind.JsNumberLiteralExpression: {
		tok("value_token", kind.JsNumberLiteral),
	},
	kind.JsBigintLiteralExpression: {
		tok("value_token", kind.JsBigintLiteral),
	},
	kind.JsStringLiteralExpression: {
		tok("value_token", kind.JsStringLiteral),
	},
	kind.JsBooleanLiteralExpression: {
		oneOf("value_token", booleanValues...),
	},
	kind.JsNullLiteralExpression: {
		tok("value_token", kind.NullKw),
	},
	kind.JsRegexLiteralExpression: {
		tok("value_token", kind.JsRegexLiteral),
	},
	kind.JsArrayExpression: {
		tok("l_brack_token", kind.LBrack),
		child("elements", kind.JsArrayElementList),
		tok("r_brack_token", kind.RBrack),
	},
	kind.JsObjectExpression: {
		tok("l_curly_token", kind.LCurly),
		child("members", kind.JsObjectMemberList),
		tok("r_curly_token", kind.RCurly),
	},
	kind.JsParenthesizedExpression: {
		tok("l_paren_token", kind.LParen),
		cast("expression", kind.AnyJsExpression),
		tok("r_paren_token", kind.RParen),
	},
	kind.JsFunctionExpression: {
		optTok("async_token", kind.AsyncKw),
		tok("function_token", kind.FunctionKw),
		optTok("star_token", kind.Star),
		optCast("id", kind.AnyJsBinding),
		child("parameters", kind.JsParameters),
		child("body", kind.JsFunctionBody),
	},
	kind.JsArrowFunctionExpression: {
		optTok("async_token", kind.AsyncKw),
		cast("parameters", kind.AnyJsArrowFunctionParameters),
		tok("fat_arrow_token", kind.FatArrow),
		cast("body", kind.AnyJsFunctionBody),
	},
	kind.JsClassExpression: {
		tok("class_token", kind.ClassKw),
		optCast("id", kind.AnyJsBinding),
		optChild("extends_clause", kind.JsExtendsClause),
		tok("l_curly_token", kind.LCurly),
		child("members", kind.JsClassMemberList),
		tok("r_curly_token", kind.RCurly),
	},
	kind.JsStaticMemberExpression: {
		cast("object", kind.AnyJsExpression),
		oneOf("operator_token", memberAccess...),
		oneOf("member", memberNames...),
	},
	kind.JsComputedMemberExpression: {
		cast("object", kind.AnyJsExpression),
		optTok("optional_chain_token", kind.QuestionDot),
		tok("l_brack_token", kind.LBrack),
		cast("member", kind.AnyJsExpression),
		tok("r_brack_token", kind.RBrack),
	},
	kind.JsCallExpression: {
		cast("callee", kind.AnyJsExpression),
		optTok("optional_chain_token", kind.QuestionDot),
		child("arguments", kind.JsCallArguments),
	},
	kind.JsNewExpression: {
		tok("new_token", kind.NewKw),
		cast("callee", kind.AnyJsExpression),
		optChild("arguments", kind.JsCallArguments),
	},
	kind.JsNewTargetExpression: {
		tok("new_token", kind.NewKw),
		tok("dot_token", kind.Dot),
		tok("target_token", kind.TargetKw),
	},
	kind.JsImportCallExpression: {
		tok("import_token", kind.ImportKw),
		child("arguments", kind.JsCallArguments),
	},
	kind.JsUnaryExpression: {
		oneOf("operator_token", unaryOps...),
		cast("argument", kind.AnyJsExpression),
	},
	kind.JsPreUpdateExpression: {
		oneOf("operator_token", updateOps...),
		cast("operand", kind.AnyJsAssignment),
	},
	kind.JsPostUpdateExpression: {
		cast("operand", kind.AnyJsAssignment),
		oneOf("operator_token", updateOps...),
	},
	kind.JsAwaitExpression: {
		tok("await_token", kind.AwaitKw),
		cast("argument", kind.AnyJsExpression),
	},
	kind.JsYieldExpression: {
		tok("yield_token", kind.YieldKw),
		optChild("argument", kind.JsYieldArgument),
	},
	kind.JsYieldArgument: {
		optTok("star_token", kind.Star),
		cast("expression", kind.AnyJsExpression),
	},
	kind.JsBinaryExpression: {
		cast("left", kind.AnyJsExpression),
		oneOf("operator_token", binaryOps...),
		cast("right", kind.AnyJsExpression),
	},
	kind.JsInstanceofExpression: {
		cast("left", kind.AnyJsExpression),
		tok("instanceof_token", kind.InstanceofKw),
		cast("right", kind.AnyJsExpression),
	},
	kind.JsInExpression: {
		cast("property", kind.AnyJsExpression),
		tok("in_token", kind.InKw),
		cast("object", kind.AnyJsExpression),
	},
	kind.JsLogicalExpression: {
		cast("left", kind.AnyJsExpression),
		oneOf("operator_token", logicalOps...),
		cast("right", kind.AnyJsExpression),
	},
	kind.JsConditionalExpression: {
		cast("test", kind.AnyJsExpression),
		tok("question_mark_token", kind.Question),
		cast("consequent", kind.AnyJsExpression),
		tok("colon_token", kind.Colon),
		cast("alternate", kind.AnyJsExpression),
	},
	kind.JsAssignmentExpression: {
		cast("left", kind.AnyJsAssignmentPattern),
		oneOf("operator_token", assignOps...),
		cast("right", kind.AnyJsExpression),
	},
	kind.JsSequenceExpression: {
		cast("left", kind.AnyJsExpression),
		tok("comma_token", kind.Comma),
		cast("right", kind.AnyJsExpression),
	},

	// object members
	kind.JsPropertyObjectMember: {
		cast("name", kind.AnyJsObjectMemberName),
		tok("colon_token", kind.Colon),
		cast("value", kind.AnyJsExpression),
	},
	kind.JsShorthandPropertyObjectMember: {
		child("name", kind.JsReferenceIdentifier),
	},
	kind.JsMethodObjectMember: {
		optTok("async_token", kind.AsyncKw),
		optTok("star_token", kind.Star),
		cast("name", kind.AnyJsObjectMemberName),
		child("parameters", kind.JsParameters),
		child("body", kind.JsFunctionBody),
	},
	kind.JsGetterObjectMember: {
		tok("get_token", kind.GetKw),
		cast("name", kind.AnyJsObjectMemberName),
		tok("l_paren_token", kind.LParen),
		tok("r_paren_token", kind.RParen),
		child("body", kind.JsFunctionBody),
	},
	kind.JsSetterObjectMember: {
		tok("set_token", kind.SetKw),
		cast("name", kind.AnyJsObjectMemberName),
		tok("l_paren_token", kind.LParen),
		cast("parameter", kind.AnyJsFormalParameter),
		tok("r_paren_token", kind.RParen),
		child("body", kind.JsFunctionBody),
	},
	kind.JsLiteralMemberName: {
		cast("value", kind.JsMemberNameToken),
	},
	kind.JsComputedMemberName: {
		tok("l_brack_token", kind.LBrack),
		cast("expression", kind.AnyJsExpression),
		tok("r_brack_token", kind.RBrack),
	},
	kind.JsPrivateClassMemberName: {
		tok("hash_token", kind.Hash),
		cast("id_token", kind.JsNameToken),
	},

	// class members
	kind.JsConstructorClassMember: {
		child("name", kind.JsLiteralMemberName),
		child("parameters", kind.JsParameters),
		child("body", kind.JsFunctionBody),
	},
	kind.JsMethodClassMember: {
		optTok("static_token", kind.StaticKw),
		optTok("async_token", kind.AsyncKw),
		optTok("star_token", kind.Star),
		cast("name", kind.AnyJsClassMemberName),
		child("parameters", kind.JsParameters),
		child("body", kind.JsFunctionBody),
	},
	kind.JsPropertyClassMember: {
		optTok("static_token", kind.StaticKw),
		cast("name", kind.AnyJsClassMemberName),
		optChild("value", kind.JsInitializerClause),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsGetterClassMember: {
		optTok("static_token", kind.StaticKw),
		tok("get_token", kind.GetKw),
		cast("name", kind.AnyJsClassMemberName),
		tok("l_paren_token", kind.LParen),
		tok("r_paren_token", kind.RParen),
		child("body", kind.JsFunctionBody),
	},
	kind.JsSetterClassMember: {
		optTok("static_token", kind.StaticKw),
		tok("set_token", kind.SetKw),
		cast("name", kind.AnyJsClassMemberName),
		tok("l_paren_token", kind.LParen),
		cast("parameter", kind.AnyJsFormalParameter),
		tok("r_paren_token", kind.RParen),
		child("body", kind.JsFunctionBody),
	},
	kind.JsEmptyClassMember: {
		tok("semicolon_token", kind.Semicolon),
	},
	kind.JsStaticInitializationBlockClassMember: {
		tok("static_token", kind.StaticKw),
		tok("l_curly_token", kind.LCurly),
		child("statements", kind.JsStatementList),
		tok("r_curly_token", kind.RCurly),
	},

	// bindings
	kind.JsIdentifierBinding: {
		cast("name_token", kind.JsIdentifierToken),
	},
	kind.JsArrayBindingPattern: {
		tok("l_brack_token", kind.LBrack),
		child("elements", kind.JsArrayBindingPatternElementList),
		tok("r_brack_token", kind.RBrack),
	},
	kind.JsObjectBindingPattern: {
		tok("l_curly_token", kind.LCurly),
		child("properties", kind.JsObjectBindingPatternPropertyList),
		tok("r_curly_token", kind.RCurly),
	},
	kind.JsBindingPatternWithDefault: {
		cast("pattern", kind.AnyJsBindingPattern),
		tok("eq_token", kind.Eq),
		cast("default", kind.AnyJsExpression),
	},
	kind.JsArrayBindingPatternRestElement: {
		tok("dotdotdot_token", kind.Dot3),
		cast("pattern", kind.AnyJsBindingPattern),
	},
	kind.JsObjectBindingPatternProperty: {
		cast("member", kind.AnyJsObjectMemberName),
		tok("colon_token", kind.Colon),
		cast("pattern", kind.AnyJsBindingPattern),
		optChild("init", kind.JsInitializerClause),
	},
	kind.JsObjectBindingPatternShorthandProperty: {
		cast("identifier", kind.AnyJsBinding),
		optChild("init", kind.JsInitializerClause),
	},
	kind.JsObjectBindingPatternRest: {
		tok("dotdotdot_token", kind.Dot3),
		cast("binding", kind.AnyJsBinding),
	},

	// assignment targets
	kind.JsIdentifierAssignment: {
		cast("name_token", kind.JsIdentifierToken),
	},
	kind.JsStaticMemberAssignment: {
		cast("object", kind.AnyJsExpression),
		tok("dot_token", kind.Dot),
		oneOf("member", memberNames...),
	},
	kind.JsComputedMemberAssignment: {
		cast("object", kind.AnyJsExpression),
		tok("l_brack_token", kind.LBrack),
		cast("member", kind.AnyJsExpression),
		tok("r_brack_token", kind.RBrack),
	},
	kind.JsParenthesizedAssignment: {
		tok("l_paren_token", kind.LParen),
		cast("assignment", kind.AnyJsAssignment),
		tok("r_paren_token", kind.RParen),
	},
	kind.JsArrayAssignmentPattern: {
		tok("l_brack_token", kind.LBrack),
		child("elements", kind.JsArrayAssignmentPatternElementList),
		tok("r_brack_token", kind.RBrack),
	},
	kind.JsObjectAssignmentPattern: {
		tok("l_curly_token", kind.LCurly),
		child("properties", kind.JsObjectAssignmentPatternPropertyList),
		tok("r_curly_token", kind.RCurly),
	},
	kind.JsAssignmentWithDefault: {
		cast("pattern", kind.AnyJsAssignmentPattern),
		tok("eq_token", kind.Eq),
		cast("default", kind.AnyJsExpression),
	},
	kind.JsArrayAssignmentPatternRestElement: {
		tok("dotdotdot_token", kind.Dot3),
		cast("pattern", kind.AnyJsAssignmentPattern),
	},
	kind.JsObjectAssignmentPatternProperty: {
		cast("member", kind.AnyJsObjectMemberName),
		tok("colon_token", kind.Colon),
		cast("pattern", kind.AnyJsAssignmentPattern),
		optChild("init", kind.JsInitializerClause),
	},
	kind.JsObjectAssignmentPatternShorthandProperty: {
		cast("identifier", kind.AnyJsAssignment),
		optChild("init", kind.JsInitializerClause),
	},
	kind.JsObjectAssignmentPatternRest: {
		tok("dotdotdot_token", kind.Dot3),
		cast("target", kind.AnyJsAssignment),
	},

	// modules
	kind.JsImport: {
		tok("import_token", kind.ImportKw),
		cast("import_clause", kind.AnyJsImportClause),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsImportBareClause: {
		child("source", kind.JsModuleSource),
	},
	kind.JsModuleSource: {
		tok("value_token", kind.JsStringLiteral),
	},
	kind.JsImportDefaultClause: {
		cast("local_name", kind.AnyJsBinding),
		tok("from_token", kind.FromKw),
		child("source", kind.JsModuleSource),
	},
	kind.JsImportNamedClause: {
		child("named_import", kind.JsNamedImportSpecifiers),
		tok("from_token", kind.FromKw),
		child("source", kind.JsModuleSource),
	},
	kind.JsImportNamespaceClause: {
		tok("star_token", kind.Star),
		tok("as_token", kind.AsKw),
		cast("local_name", kind.AnyJsBinding),
		tok("from_token", kind.FromKw),
		child("source", kind.JsModuleSource),
	},
	kind.JsNamedImportSpecifiers: {
		tok("l_curly_token", kind.LCurly),
		child("specifiers", kind.JsNamedImportSpecifierList),
		tok("r_curly_token", kind.RCurly),
	},
	kind.JsNamedImportSpecifier: {
		child("name", kind.JsLiteralExportName),
		tok("as_token", kind.AsKw),
		cast("local_name", kind.AnyJsBinding),
	},
	kind.JsShorthandNamedImportSpecifier: {
		cast("local_name", kind.AnyJsBinding),
	},
	kind.JsLiteralExportName: {
		cast("value", kind.JsExportNameToken),
	},
	kind.JsExport: {
		tok("export_token", kind.ExportKw),
		cast("export_clause", kind.AnyJsExportClause),
	},
	kind.JsExportNamedClause: {
		tok("l_curly_token", kind.LCurly),
		child("specifiers", kind.JsExportNamedSpecifierList),
		tok("r_curly_token", kind.RCurly),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsExportNamedSpecifier: {
		child("local_name", kind.JsReferenceIdentifier),
		tok("as_token", kind.AsKw),
		child("exported_name", kind.JsLiteralExportName),
	},
	kind.JsExportNamedShorthandSpecifier: {
		child("name", kind.JsReferenceIdentifier),
	},
	kind.JsExportDefaultExpressionClause: {
		tok("default_token", kind.DefaultKw),
		cast("expression", kind.AnyJsExpression),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsExportFromClause: {
		tok("star_token", kind.Star),
		optChild("export_as", kind.JsExportAsClause),
		tok("from_token", kind.FromKw),
		child("source", kind.JsModuleSource),
		optTok("semicolon_token", kind.Semicolon),
	},
	kind.JsExportAsClause: {
		tok("as_token", kind.AsKw),
		child("exported_name", kind.JsLiteralExportName),
	},
}

var nodeListTable = map[kind.Kind]NodeListConfig{
	kind.JsModuleItemList:  {Item: Cast(kind.AnyJsModuleItem)},
	kind.JsStatementList:   {Item: Cast(kind.AnyJsStatement)},
	kind.JsDirectiveList:   {Item: ExactKind(kind.JsDirective)},
	kind.JsSwitchCaseList:  {Item: Cast(kind.AnyJsSwitchClause)},
	kind.JsClassMemberList: {Item: Cast(kind.AnyJsClassMember)},
}

var separatedListTable = map[kind.Kind]SeparatedListConfig{
	// `let a = 1,` is not valid; every other comma list may trail.
	kind.JsVariableDeclaratorList:              {Item: ExactKind(kind.JsVariableDeclarator), Separator: kind.Comma},
	kind.JsArrayElementList:                    {Item: Cast(kind.AnyJsArrayElement), Separator: kind.Comma, AllowTrailing: true},
	kind.JsObjectMemberList:                    {Item: Cast(kind.AnyJsObjectMember), Separator: kind.Comma, AllowTrailing: true},
	kind.JsCallArgumentList:                    {Item: Cast(kind.AnyJsCallArgument), Separator: kind.Comma, AllowTrailing: true},
	kind.JsParameterList:                       {Item: Cast(kind.AnyJsParameter), Separator: kind.Comma, AllowTrailing: true},
	kind.JsArrayBindingPatternElementList:      {Item: Cast(kind.AnyJsArrayBindingPatternElement), Separator: kind.Comma, AllowTrailing: true},
	kind.JsObjectBindingPatternPropertyList:    {Item: Cast(kind.AnyJsObjectBindingPatternMember), Separator: kind.Comma, AllowTrailing: true},
	kind.JsArrayAssignmentPatternElementList:   {Item: Cast(kind.AnyJsArrayAssignmentPatternElement), Separator: kind.Comma, AllowTrailing: true},
	kind.JsObjectAssignmentPatternPropertyList: {Item: Cast(kind.AnyJsObjectAssignmentPatternMember), Separator: kind.Comma, AllowTrailing: true},
	kind.JsNamedImportSpecifierList:            {Item: Cast(kind.AnyJsNamedImportSpecifier), Separator: kind.Comma, AllowTrailing: true},
	kind.JsExportNamedSpecifierList:            {Item: Cast(kind.AnyJsExportNamedSpecifier), Separator: kind.Comma, AllowTrailing: true},
}
