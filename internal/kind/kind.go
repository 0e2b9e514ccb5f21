package kind

// Kind tags every token and every node of the green tree.
type Kind uint16

const (
	// Tombstone is the zero kind; it never appears in a finished tree.
	Tombstone Kind = iota
	// EOF marks the end of the source input.
	EOF
	// ErrorToken represents text the lexer could not classify.
	ErrorToken

	// punctuation
	Semicolon   // ;
	Comma       // ,
	LParen      // (
	RParen      // )
	LCurly      // {
	RCurly      // }
	LBrack      // [
	RBrack      // ]
	LAngle      // <
	RAngle      // >
	Tilde       // ~
	Question    // ?
	Question2   // ??
	QuestionDot // ?.
	Amp         // &
	Pipe        // |
	Plus        // +
	Plus2       // ++
	Star        // *
	Star2       // **
	Slash       // /
	Caret       // ^
	Percent     // %
	Dot         // .
	Dot3        // ...
	Colon       // :
	Eq          // =
	Eq2         // ==
	Eq3         // ===
	FatArrow    // =>
	Bang        // !
	Neq         // !=
	Neq2        // !==
	Minus       // -
	Minus2      // --
	LtEq        // <=
	GtEq        // >=
	PlusEq      // +=
	MinusEq     // -=
	PipeEq      // |=
	AmpEq       // &=
	CaretEq     // ^=
	SlashEq     // /=
	StarEq      // *=
	PercentEq   // %=
	Amp2        // &&
	Pipe2       // ||
	Shl         // <<
	Shr         // >>
	UShr        // >>>
	ShlEq       // <<=
	ShrEq       // >>=
	UShrEq      // >>>=
	Star2Eq     // **=
	Amp2Eq      // &&=
	Pipe2Eq     // ||=
	Question2Eq // ??=
	At          // @
	Hash        // #
	Backtick    // `

	// reserved words
	BreakKw
	CaseKw
	CatchKw
	ClassKw
	ConstKw
	ContinueKw
	DebuggerKw
	DefaultKw
	DeleteKw
	DoKw
	ElseKw
	EnumKw
	ExportKw
	ExtendsKw
	FalseKw
	FinallyKw
	ForKw
	FunctionKw
	IfKw
	InKw
	InstanceofKw
	ImportKw
	NewKw
	NullKw
	ReturnKw
	SuperKw
	SwitchKw
	ThisKw
	ThrowKw
	TryKw
	TrueKw
	TypeofKw
	VarKw
	VoidKw
	WhileKw
	WithKw

	// contextual keywords
	LetKw
	StaticKw
	YieldKw
	AsyncKw
	AwaitKw
	OfKw
	GetKw
	SetKw
	AsKw
	FromKw
	TargetKw
	MetaKw

	// literals and names
	JsNumberLiteral
	JsBigintLiteral
	JsStringLiteral
	JsRegexLiteral
	Ident
	JsShebang

	// roots, clauses and auxiliary nodes
	JsModule
	JsScript
	JsDirective
	JsElseClause
	JsCaseClause
	JsDefaultClause
	JsCatchClause
	JsCatchDeclaration
	JsFinallyClause
	JsVariableDeclaration
	JsForVariableDeclaration
	JsVariableDeclarator
	JsVariableDeclarationClause
	JsInitializerClause
	JsParameters
	JsFunctionBody
	JsCallArguments
	JsExtendsClause
	JsName
	JsPrivateName
	JsReferenceIdentifier
	JsYieldArgument
	JsSpread
	JsArrayHole
	JsModuleSource
	JsImportBareClause
	JsImportDefaultClause
	JsImportNamedClause
	JsImportNamespaceClause
	JsNamedImportSpecifiers
	JsNamedImportSpecifier
	JsShorthandNamedImportSpecifier
	JsLiteralExportName
	JsExportNamedClause
	JsExportNamedSpecifier
	JsExportNamedShorthandSpecifier
	JsExportDefaultExpressionClause
	JsExportFromClause
	JsExportAsClause

	// statements
	JsBlockStatement
	JsEmptyStatement
	JsExpressionStatement
	JsIfStatement
	JsDoWhileStatement
	JsWhileStatement
	JsForStatement
	JsForInStatement
	JsForOfStatement
	JsContinueStatement
	JsBreakStatement
	JsReturnStatement
	JsWithStatement
	JsLabeledStatement
	JsSwitchStatement
	JsThrowStatement
	JsTryStatement
	JsTryFinallyStatement
	JsDebuggerStatement
	JsFunctionDeclaration
	JsClassDeclaration
	JsVariableStatement
	JsImport
	JsExport

	// expressions
	JsIdentifierExpression
	JsThisExpression
	JsSuperExpression
	JsNumberLiteralExpression
	JsBigintLiteralExpression
	JsStringLiteralExpression
	JsBooleanLiteralExpression
	JsNullLiteralExpression
	JsRegexLiteralExpression
	JsArrayExpression
	JsObjectExpression
	JsParenthesizedExpression
	JsFunctionExpression
	JsArrowFunctionExpression
	JsClassExpression
	JsStaticMemberExpression
	JsComputedMemberExpression
	JsCallExpression
	JsNewExpression
	JsNewTargetExpression
	JsImportCallExpression
	JsUnaryExpression
	JsPreUpdateExpression
	JsPostUpdateExpression
	JsAwaitExpression
	JsYieldExpression
	JsBinaryExpression
	JsInstanceofExpression
	JsInExpression
	JsLogicalExpression
	JsConditionalExpression
	JsAssignmentExpression
	JsSequenceExpression

	// object members and member names
	JsPropertyObjectMember
	JsShorthandPropertyObjectMember
	JsMethodObjectMember
	JsGetterObjectMember
	JsSetterObjectMember
	JsLiteralMemberName
	JsComputedMemberName
	JsPrivateClassMemberName

	// class members
	JsConstructorClassMember
	JsMethodClassMember
	JsPropertyClassMember
	JsGetterClassMember
	JsSetterClassMember
	JsEmptyClassMember
	JsStaticInitializationBlockClassMember

	// bindings
	JsIdentifierBinding
	JsArrayBindingPattern
	JsObjectBindingPattern
	JsBindingPatternWithDefault
	JsArrayBindingPatternRestElement
	JsObjectBindingPatternProperty
	JsObjectBindingPatternShorthandProperty
	JsObjectBindingPatternRest

	// assignment targets
	JsIdentifierAssignment
	JsStaticMemberAssignment
	JsComputedMemberAssignment
	JsParenthesizedAssignment
	JsArrayAssignmentPattern
	JsObjectAssignmentPattern
	JsAssignmentWithDefault
	JsArrayAssignmentPatternRestElement
	JsObjectAssignmentPatternProperty
	JsObjectAssignmentPatternShorthandProperty
	JsObjectAssignmentPatternRest

	// parameters
	JsFormalParameter
	JsRestParameter

	// unknown (shape-free) kinds
	JsUnknown
	JsUnknownStatement
	JsUnknownExpression
	JsUnknownMember
	JsUnknownBinding
	JsUnknownAssignment
	JsUnknownParameter

	// node lists
	JsModuleItemList
	JsStatementList
	JsDirectiveList
	JsSwitchCaseList
	JsClassMemberList

	// separated lists
	JsVariableDeclaratorList
	JsArrayElementList
	JsObjectMemberList
	JsCallArgumentList
	JsParameterList
	JsArrayBindingPatternElementList
	JsObjectBindingPatternPropertyList
	JsArrayAssignmentPatternElementList
	JsObjectAssignmentPatternPropertyList
	JsNamedImportSpecifierList
	JsExportNamedSpecifierList

	kindCount
)

// Count is the number of defined kinds, Tombstone included.
const Count = int(kindCount)

// All returns every defined kind in declaration order.
func All() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Tombstone; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
