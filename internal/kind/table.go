package kind

import "strings"

// Class groups kinds by the role they play in the tree.
type Class uint8

const (
	ClassSpecial Class = iota // Tombstone, EOF, ErrorToken
	ClassPunct
	ClassKeyword
	ClassLiteral
	ClassNode
	ClassUnknown
	ClassNodeList
	ClassSeparatedList
)

func (c Class) String() string {
	switch c {
	case ClassSpecial:
		return "special"
	case ClassPunct:
		return "punct"
	case ClassKeyword:
		return "keyword"
	case ClassLiteral:
		return "literal"
	case ClassNode:
		return "node"
	case ClassUnknown:
		return "unknown"
	case ClassNodeList:
		return "node-list"
	case ClassSeparatedList:
		return "separated-list"
	}
	return "invalid"
}

type info struct {
	name    string
	text    string // fixed source text for punctuation and keywords
	class   Class
	unknown Kind
}

func special(name string) info { return info{name: name, class: ClassSpecial} }
func punct(name, text string) info { return info{name: name, text: text, class: ClassPunct} }
func literal(name string) info { return info{name: name, class: ClassLiteral} }
func node(name string, unk Kind) info { return info{name: name, class: ClassNode, unknown: unk} }
func unknown(name string) info { return info{name: name, class: ClassUnknown} }
func nodeList(name string) info { return info{name: name, class: ClassNodeList, unknown: JsUnknown} }
func separatedList(name string) info { return info{name: name, class: ClassSeparatedList, unknown: JsUnknown} }
func keyword(text string) info {
	return info{name: strings.ToUpper(text) + "_KW", text: text, class: ClassKeyword}
}

var infos = [kindCount]info{
	Tombstone:  special("TOMBSTONE"),
	EOF:        special("EOF"),
	ErrorToken: special("ERROR_TOKEN"),

	Semicolon:   punct("SEMICOLON", ";"),
	Comma:       punct("COMMA", ","),
	LParen:      punct("L_PAREN", "("),
	RParen:      punct("R_PAREN", ")"),
	LCurly:      punct("L_CURLY", "{"),
	RCurly:      punct("R_CURLY", "}"),
	LBrack:      punct("L_BRACK", "["),
	RBrack:      punct("R_BRACK", "]"),
	LAngle:      punct("L_ANGLE", "<"),
	RAngle:      punct("R_ANGLE", ">"),
	Tilde:       punct("TILDE", "~"),
	Question:    punct("QUESTION", "?"),
	Question2:   punct("QUESTION2", "??"),
	QuestionDot: punct("QUESTION_DOT", "?."),
	Amp:         punct("AMP", "&"),
	Pipe:        punct("PIPE", "|"),
	Plus:        punct("PLUS", "+"),
	Plus2:       punct("PLUS2", "++"),
	Star:        punct("STAR", "*"),
	Star2:       punct("STAR2", "**"),
	Slash:       punct("SLASH", "/"),
	Caret:       punct("CARET", "^"),
	Percent:     punct("PERCENT", "%"),
	Dot:         punct("DOT", "."),
	Dot3:        punct("DOT3", "..."),
	Colon:       punct("COLON", ":"),
	Eq:          punct("EQ", "="),
	Eq2:         punct("EQ2", "=="),
	Eq3:         punct("EQ3", "==="),
	FatArrow:    punct("FAT_ARROW", "=>"),
	Bang:        punct("BANG", "!"),
	Neq:         punct("NEQ", "!="),
	Neq2:        punct("NEQ2", "!=="),
	Minus:       punct("MINUS", "-"),
	Minus2:      punct("MINUS2", "--"),
	LtEq:        punct("LTEQ", "<="),
	GtEq:        punct("GTEQ", ">="),
	PlusEq:      punct("PLUSEQ", "+="),
	MinusEq:     punct("MINUSEQ", "-="),
	PipeEq:      punct("PIPEEQ", "|="),
	AmpEq:       punct("AMPEQ", "&="),
	CaretEq:     punct("CARETEQ", "^="),
	SlashEq:     punct("SLASHEQ", "/="),
	StarEq:      punct("STAREQ", "*="),
	PercentEq:   punct("PERCENTEQ", "%="),
	Amp2:        punct("AMP2", "&&"),
	Pipe2:       punct("PIPE2", "||"),
	Shl:         punct("SHL", "<<"),
	Shr:         punct("SHR", ">>"),
	UShr:        punct("USHR", ">>>"),
	ShlEq:       punct("SHLEQ", "<<="),
	ShrEq:       punct("SHREQ", ">>="),
	UShrEq:      punct("USHREQ", ">>>="),
	Star2Eq:     punct("STAR2EQ", "**="),
	Amp2Eq:      punct("AMP2EQ", "&&="),
	Pipe2Eq:     punct("PIPE2EQ", "||="),
	Question2Eq: punct("QUESTION2EQ", "??="),
	At:          punct("AT", "@"),
	Hash:        punct("HASH", "#"),
	Backtick:    punct("BACKTICK", "`"),

	BreakKw:      keyword("break"),
	CaseKw:       keyword("case"),
	CatchKw:      keyword("catch"),
	ClassKw:      keyword("class"),
	ConstKw:      keyword("const"),
	ContinueKw:   keyword("continue"),
	DebuggerKw:   keyword("debugger"),
	DefaultKw:    keyword("default"),
	DeleteKw:     keyword("delete"),
	DoKw:         keyword("do"),
	ElseKw:       keyword("else"),
	EnumKw:       keyword("enum"),
	ExportKw:     keyword("export"),
	ExtendsKw:    keyword("extends"),
	FalseKw:      keyword("false"),
	FinallyKw:    keyword("finally"),
	ForKw:        keyword("for"),
	FunctionKw:   keyword("function"),
	IfKw:         keyword("if"),
	InKw:         keyword("in"),
	InstanceofKw: keyword("instanceof"),
	ImportKw:     keyword("import"),
	NewKw:        keyword("new"),
	NullKw:       keyword("null"),
	ReturnKw:     keyword("return"),
	SuperKw:      keyword("super"),
	SwitchKw:     keyword("switch"),
	ThisKw:       keyword("this"),
	ThrowKw:      keyword("throw"),
	TryKw:        keyword("try"),
	TrueKw:       keyword("true"),
	TypeofKw:     keyword("typeof"),
	VarKw:        keyword("var"),
	VoidKw:       keyword("void"),
	WhileKw:      keyword("while"),
	WithKw:       keyword("with"),

	LetKw:    keyword("let"),
	StaticKw: keyword("static"),
	YieldKw:  keyword("yield"),
	AsyncKw:  keyword("async"),
	AwaitKw:  keyword("await"),
	OfKw:     keyword("of"),
	GetKw:    keyword("get"),
	SetKw:    keyword("set"),
	AsKw:     keyword("as"),
	FromKw:   keyword("from"),
	TargetKw: keyword("target"),
	MetaKw:   keyword("meta"),

	JsNumberLiteral: literal("JS_NUMBER_LITERAL"),
	JsBigintLiteral: literal("JS_BIGINT_LITERAL"),
	JsStringLiteral: literal("JS_STRING_LITERAL"),
	JsRegexLiteral:  literal("JS_REGEX_LITERAL"),
	Ident:           literal("IDENT"),
	JsShebang:       literal("JS_SHEBANG"),

	JsModule:                        node("JS_MODULE", JsUnknown),
	JsScript:                        node("JS_SCRIPT", JsUnknown),
	JsDirective:                     node("JS_DIRECTIVE", JsUnknown),
	JsElseClause:                    node("JS_ELSE_CLAUSE", JsUnknown),
	JsCaseClause:                    node("JS_CASE_CLAUSE", JsUnknown),
	JsDefaultClause:                 node("JS_DEFAULT_CLAUSE", JsUnknown),
	JsCatchClause:                   node("JS_CATCH_CLAUSE", JsUnknown),
	JsCatchDeclaration:              node("JS_CATCH_DECLARATION", JsUnknown),
	JsFinallyClause:                 node("JS_FINALLY_CLAUSE", JsUnknown),
	JsVariableDeclaration:           node("JS_VARIABLE_DECLARATION", JsUnknown),
	JsForVariableDeclaration:        node("JS_FOR_VARIABLE_DECLARATION", JsUnknown),
	JsVariableDeclarator:            node("JS_VARIABLE_DECLARATOR", JsUnknown),
	JsVariableDeclarationClause:     node("JS_VARIABLE_DECLARATION_CLAUSE", JsUnknown),
	JsInitializerClause:             node("JS_INITIALIZER_CLAUSE", JsUnknown),
	JsParameters:                    node("JS_PARAMETERS", JsUnknown),
	JsFunctionBody:                  node("JS_FUNCTION_BODY", JsUnknown),
	JsCallArguments:                 node("JS_CALL_ARGUMENTS", JsUnknown),
	JsExtendsClause:                 node("JS_EXTENDS_CLAUSE", JsUnknown),
	JsName:                          node("JS_NAME", JsUnknown),
	JsPrivateName:                   node("JS_PRIVATE_NAME", JsUnknown),
	JsReferenceIdentifier:           node("JS_REFERENCE_IDENTIFIER", JsUnknown),
	JsYieldArgument:                 node("JS_YIELD_ARGUMENT", JsUnknown),
	JsSpread:                        node("JS_SPREAD", JsUnknownExpression),
	JsArrayHole:                     node("JS_ARRAY_HOLE", JsUnknown),
	JsModuleSource:                  node("JS_MODULE_SOURCE", JsUnknown),
	JsImportBareClause:              node("JS_IMPORT_BARE_CLAUSE", JsUnknown),
	JsImportDefaultClause:           node("JS_IMPORT_DEFAULT_CLAUSE", JsUnknown),
	JsImportNamedClause:             node("JS_IMPORT_NAMED_CLAUSE", JsUnknown),
	JsImportNamespaceClause:         node("JS_IMPORT_NAMESPACE_CLAUSE", JsUnknown),
	JsNamedImportSpecifiers:         node("JS_NAMED_IMPORT_SPECIFIERS", JsUnknown),
	JsNamedImportSpecifier:          node("JS_NAMED_IMPORT_SPECIFIER", JsUnknown),
	JsShorthandNamedImportSpecifier: node("JS_SHORTHAND_NAMED_IMPORT_SPECIFIER", JsUnknown),
	JsLiteralExportName:             node("JS_LITERAL_EXPORT_NAME", JsUnknown),
	JsExportNamedClause:             node("JS_EXPORT_NAMED_CLAUSE", JsUnknown),
	JsExportNamedSpecifier:          node("JS_EXPORT_NAMED_SPECIFIER", JsUnknown),
	JsExportNamedShorthandSpecifier: node("JS_EXPORT_NAMED_SHORTHAND_SPECIFIER", JsUnknown),
	JsExportDefaultExpressionClause: node("JS_EXPORT_DEFAULT_EXPRESSION_CLAUSE", JsUnknown),
	JsExportFromClause:              node("JS_EXPORT_FROM_CLAUSE", JsUnknown),
	JsExportAsClause:                node("JS_EXPORT_AS_CLAUSE", JsUnknown),

	JsBlockStatement:      node("JS_BLOCK_STATEMENT", JsUnknownStatement),
	JsEmptyStatement:      node("JS_EMPTY_STATEMENT", JsUnknownStatement),
	JsExpressionStatement: node("JS_EXPRESSION_STATEMENT", JsUnknownStatement),
	JsIfStatement:         node("JS_IF_STATEMENT", JsUnknownStatement),
	JsDoWhileStatement:    node("JS_DO_WHILE_STATEMENT", JsUnknownStatement),
	JsWhileStatement:      node("JS_WHILE_STATEMENT", JsUnknownStatement),
	JsForStatement:        node("JS_FOR_STATEMENT", JsUnknownStatement),
	JsForInStatement:      node("JS_FOR_IN_STATEMENT", JsUnknownStatement),
	JsForOfStatement:      node("JS_FOR_OF_STATEMENT", JsUnknownStatement),
	JsContinueStatement:   node("JS_CONTINUE_STATEMENT", JsUnknownStatement),
	JsBreakStatement:      node("JS_BREAK_STATEMENT", JsUnknownStatement),
	JsReturnStatement:     node("JS_RETURN_STATEMENT", JsUnknownStatement),
	JsWithStatement:       node("JS_WITH_STATEMENT", JsUnknownStatement),
	JsLabeledStatement:    node("JS_LABELED_STATEMENT", JsUnknownStatement),
	JsSwitchStatement:     node("JS_SWITCH_STATEMENT", JsUnknownStatement),
	JsThrowStatement:      node("JS_THROW_STATEMENT", JsUnknownStatement),
	JsTryStatement:        node("JS_TRY_STATEMENT", JsUnknownStatement),
	JsTryFinallyStatement: node("JS_TRY_FINALLY_STATEMENT", JsUnknownStatement),
	JsDebuggerStatement:   node("JS_DEBUGGER_STATEMENT", JsUnknownStatement),
	JsFunctionDeclaration: node("JS_FUNCTION_DECLARATION", JsUnknownStatement),
	JsClassDeclaration:    node("JS_CLASS_DECLARATION", JsUnknownStatement),
	JsVariableStatement:   node("JS_VARIABLE_STATEMENT", JsUnknownStatement),
	JsImport:              node("JS_IMPORT", JsUnknownStatement),
	JsExport:              node("JS_EXPORT", JsUnknownStatement),

	JsIdentifierExpression:     node("JS_IDENTIFIER_EXPRESSION", JsUnknownExpression),
	JsThisExpression:           node("JS_THIS_EXPRESSION", JsUnknownExpression),
	JsSuperExpression:          node("JS_SUPER_EXPRESSION", JsUnknownExpression),
	JsNumberLiteralExpression:  node("JS_NUMBER_LITERAL_EXPRESSION", JsUnknownExpression),
	JsBigintLiteralExpression:  node("JS_BIGINT_LITERAL_EXPRESSION", JsUnknownExpression),
	JsStringLiteralExpression:  node("JS_STRING_LITERAL_EXPRESSION", JsUnknownExpression),
	JsBooleanLiteralExpression: node("JS_BOOLEAN_LITERAL_EXPRESSION", JsUnknownExpression),
	JsNullLiteralExpression:    node("JS_NULL_LITERAL_EXPRESSION", JsUnknownExpression),
	JsRegexLiteralExpression:   node("JS_REGEX_LITERAL_EXPRESSION", JsUnknownExpression),
	JsArrayExpression:          node("JS_ARRAY_EXPRESSION", JsUnknownExpression),
	JsObjectExpression:         node("JS_OBJECT_EXPRESSION", JsUnknownExpression),
	JsParenthesizedExpression:  node("JS_PARENTHESIZED_EXPRESSION", JsUnknownExpression),
	JsFunctionExpression:       node("JS_FUNCTION_EXPRESSION", JsUnknownExpression),
	JsArrowFunctionExpression:  node("JS_ARROW_FUNCTION_EXPRESSION", JsUnknownExpression),
	JsClassExpression:          node("JS_CLASS_EXPRESSION", JsUnknownExpression),
	JsStaticMemberExpression:   node("JS_STATIC_MEMBER_EXPRESSION", JsUnknownExpression),
	JsComputedMemberExpression: node("JS_COMPUTED_MEMBER_EXPRESSION", JsUnknownExpression),
	JsCallExpression:           node("JS_CALL_EXPRESSION", JsUnknownExpression),
	JsNewExpression:            node("JS_NEW_EXPRESSION", JsUnknownExpression),
	JsNewTargetExpression:      node("JS_NEW_TARGET_EXPRESSION", JsUnknownExpression),
	JsImportCallExpression:     node("JS_IMPORT_CALL_EXPRESSION", JsUnknownExpression),
	JsUnaryExpression:          node("JS_UNARY_EXPRESSION", JsUnknownExpression),
	JsPreUpdateExpression:      node("JS_PRE_UPDATE_EXPRESSION", JsUnknownExpression),
	JsPostUpdateExpression:     node("JS_POST_UPDATE_EXPRESSION", JsUnknownExpression),
	JsAwaitExpression:          node("JS_AWAIT_EXPRESSION", JsUnknownExpression),
	JsYieldExpression:          node("JS_YIELD_EXPRESSION", JsUnknownExpression),
	JsBinaryExpression:         node("JS_BINARY_EXPRESSION", JsUnknownExpression),
	JsInstanceofExpression:     node("JS_INSTANCEOF_EXPRESSION", JsUnknownExpression),
	JsInExpression:             node("JS_IN_EXPRESSION", JsUnknownExpression),
	JsLogicalExpression:        node("JS_LOGICAL_EXPRESSION", JsUnknownExpression),
	JsConditionalExpression:    node("JS_CONDITIONAL_EXPRESSION", JsUnknownExpression),
	JsAssignmentExpression:     node("JS_ASSIGNMENT_EXPRESSION", JsUnknownExpression),
	JsSequenceExpression:       node("JS_SEQUENCE_EXPRESSION", JsUnknownExpression),

	JsPropertyObjectMember:          node("JS_PROPERTY_OBJECT_MEMBER", JsUnknownMember),
	JsShorthandPropertyObjectMember: node("JS_SHORTHAND_PROPERTY_OBJECT_MEMBER", JsUnknownMember),
	JsMethodObjectMember:            node("JS_METHOD_OBJECT_MEMBER", JsUnknownMember),
	JsGetterObjectMember:            node("JS_GETTER_OBJECT_MEMBER", JsUnknownMember),
	JsSetterObjectMember:            node("JS_SETTER_OBJECT_MEMBER", JsUnknownMember),
	JsLiteralMemberName:             node("JS_LITERAL_MEMBER_NAME", JsUnknownMember),
	JsComputedMemberName:            node("JS_COMPUTED_MEMBER_NAME", JsUnknownMember),
	JsPrivateClassMemberName:        node("JS_PRIVATE_CLASS_MEMBER_NAME", JsUnknownMember),

	JsConstructorClassMember:               node("JS_CONSTRUCTOR_CLASS_MEMBER", JsUnknownMember),
	JsMethodClassMember:                    node("JS_METHOD_CLASS_MEMBER", JsUnknownMember),
	JsPropertyClassMember:                  node("JS_PROPERTY_CLASS_MEMBER", JsUnknownMember),
	JsGetterClassMember:                    node("JS_GETTER_CLASS_MEMBER", JsUnknownMember),
	JsSetterClassMember:                    node("JS_SETTER_CLASS_MEMBER", JsUnknownMember),
	JsEmptyClassMember:                     node("JS_EMPTY_CLASS_MEMBER", JsUnknownMember),
	JsStaticInitializationBlockClassMember: node("JS_STATIC_INITIALIZATION_BLOCK_CLASS_MEMBER", JsUnknownMember),

	JsIdentifierBinding:                     node("JS_IDENTIFIER_BINDING", JsUnknownBinding),
	JsArrayBindingPattern:                   node("JS_ARRAY_BINDING_PATTERN", JsUnknownBinding),
	JsObjectBindingPattern:                  node("JS_OBJECT_BINDING_PATTERN", JsUnknownBinding),
	JsBindingPatternWithDefault:             node("JS_BINDING_PATTERN_WITH_DEFAULT", JsUnknownBinding),
	JsArrayBindingPatternRestElement:        node("JS_ARRAY_BINDING_PATTERN_REST_ELEMENT", JsUnknownBinding),
	JsObjectBindingPatternProperty:          node("JS_OBJECT_BINDING_PATTERN_PROPERTY", JsUnknownBinding),
	JsObjectBindingPatternShorthandProperty: node("JS_OBJECT_BINDING_PATTERN_SHORTHAND_PROPERTY", JsUnknownBinding),
	JsObjectBindingPatternRest:              node("JS_OBJECT_BINDING_PATTERN_REST", JsUnknownBinding),

	JsIdentifierAssignment:                     node("JS_IDENTIFIER_ASSIGNMENT", JsUnknownAssignment),
	JsStaticMemberAssignment:                   node("JS_STATIC_MEMBER_ASSIGNMENT", JsUnknownAssignment),
	JsComputedMemberAssignment:                 node("JS_COMPUTED_MEMBER_ASSIGNMENT", JsUnknownAssignment),
	JsParenthesizedAssignment:                  node("JS_PARENTHESIZED_ASSIGNMENT", JsUnknownAssignment),
	JsArrayAssignmentPattern:                   node("JS_ARRAY_ASSIGNMENT_PATTERN", JsUnknownAssignment),
	JsObjectAssignmentPattern:                  node("JS_OBJECT_ASSIGNMENT_PATTERN", JsUnknownAssignment),
	JsAssignmentWithDefault:                    node("JS_ASSIGNMENT_WITH_DEFAULT", JsUnknownAssignment),
	JsArrayAssignmentPatternRestElement:        node("JS_ARRAY_ASSIGNMENT_PATTERN_REST_ELEMENT", JsUnknownAssignment),
	JsObjectAssignmentPatternProperty:          node("JS_OBJECT_ASSIGNMENT_PATTERN_PROPERTY", JsUnknownAssignment),
	JsObjectAssignmentPatternShorthandProperty: node("JS_OBJECT_ASSIGNMENT_PATTERN_SHORTHAND_PROPERTY", JsUnknownAssignment),
	JsObjectAssignmentPatternRest:              node("JS_OBJECT_ASSIGNMENT_PATTERN_REST", JsUnknownAssignment),

	JsFormalParameter: node("JS_FORMAL_PARAMETER", JsUnknownParameter),
	JsRestParameter:   node("JS_REST_PARAMETER", JsUnknownParameter),

	JsUnknown:           unknown("JS_UNKNOWN"),
	JsUnknownStatement:  unknown("JS_UNKNOWN_STATEMENT"),
	JsUnknownExpression: unknown("JS_UNKNOWN_EXPRESSION"),
	JsUnknownMember:     unknown("JS_UNKNOWN_MEMBER"),
	JsUnknownBinding:    unknown("JS_UNKNOWN_BINDING"),
	JsUnknownAssignment: unknown("JS_UNKNOWN_ASSIGNMENT"),
	JsUnknownParameter:  unknown("JS_UNKNOWN_PARAMETER"),

	JsModuleItemList:  nodeList("JS_MODULE_ITEM_LIST"),
	JsStatementList:   nodeList("JS_STATEMENT_LIST"),
	JsDirectiveList:   nodeList("JS_DIRECTIVE_LIST"),
	JsSwitchCaseList:  nodeList("JS_SWITCH_CASE_LIST"),
	JsClassMemberList: nodeList("JS_CLASS_MEMBER_LIST"),

	JsVariableDeclaratorList:              separatedList("JS_VARIABLE_DECLARATOR_LIST"),
	JsArrayElementList:                    separatedList("JS_ARRAY_ELEMENT_LIST"),
	JsObjectMemberList:                    separatedList("JS_OBJECT_MEMBER_LIST"),
	JsCallArgumentList:                    separatedList("JS_CALL_ARGUMENT_LIST"),
	JsParameterList:                       separatedList("JS_PARAMETER_LIST"),
	JsArrayBindingPatternElementList:      separatedList("JS_ARRAY_BINDING_PATTERN_ELEMENT_LIST"),
	JsObjectBindingPatternPropertyList:    separatedList("JS_OBJECT_BINDING_PATTERN_PROPERTY_LIST"),
	JsArrayAssignmentPatternElementList:   separatedList("JS_ARRAY_ASSIGNMENT_PATTERN_ELEMENT_LIST"),
	JsObjectAssignmentPatternPropertyList: separatedList("JS_OBJECT_ASSIGNMENT_PATTERN_PROPERTY_LIST"),
	JsNamedImportSpecifierList:            separatedList("JS_NAMED_IMPORT_SPECIFIER_LIST"),
	JsExportNamedSpecifierList:            separatedList("JS_EXPORT_NAMED_SPECIFIER_LIST"),
}

var byName map[string]Kind

func init() {
	byName = make(map[string]Kind, kindCount)
	for k := range kindCount {
		byName[infos[k].name] = k
	}
}

// String returns the SCREAMING_SNAKE name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "INVALID_KIND"
	}
	return infos[k].name
}

// Text returns the fixed source text of a punctuation or keyword kind, or "".
func (k Kind) Text() string {
	if k >= kindCount {
		return ""
	}
	return infos[k].text
}

// Class reports the role of the kind in the tree.
func (k Kind) Class() Class {
	if k >= kindCount {
		return ClassSpecial
	}
	return infos[k].class
}

// IsValid reports whether k is a defined kind other than Tombstone.
func (k Kind) IsValid() bool { return k > Tombstone && k < kindCount }

// IsToken reports whether k tags a token (leaf).
func (k Kind) IsToken() bool {
	switch k.Class() {
	case ClassSpecial, ClassPunct, ClassKeyword, ClassLiteral:
		return k != Tombstone
	}
	return false
}

// IsNode reports whether k tags an interior node.
func (k Kind) IsNode() bool {
	switch k.Class() {
	case ClassNode, ClassUnknown, ClassNodeList, ClassSeparatedList:
		return true
	}
	return false
}

func (k Kind) IsKeyword() bool { return k.Class() == ClassKeyword }
func (k Kind) IsPunct() bool   { return k.Class() == ClassPunct }
func (k Kind) IsLiteral() bool { return k.Class() == ClassLiteral }
func (k Kind) IsUnknown() bool { return k.Class() == ClassUnknown }

// IsList reports whether k is a node list or a separated list.
func (k Kind) IsList() bool {
	c := k.Class()
	return c == ClassNodeList || c == ClassSeparatedList
}

// IsContextualKeyword reports keywords that are valid identifiers outside
// their special position.
func (k Kind) IsContextualKeyword() bool { return k >= LetKw && k <= MetaKw }

// ToUnknown returns the fallback kind used when a node of kind k does not
// match its shape. Unknown kinds and tokens return themselves.
func (k Kind) ToUnknown() Kind {
	if k >= kindCount {
		return JsUnknown
	}
	switch infos[k].class {
	case ClassNode, ClassNodeList, ClassSeparatedList:
		return infos[k].unknown
	case ClassUnknown:
		return k
	}
	return k
}

// FromName parses a SCREAMING_SNAKE kind name.
func FromName(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}
