package kind

// Category is an abstract grammar category ("any statement", "any
// expression", ...). Category membership is the can-cast test used by node
// slots and list items.
type Category uint8

const (
	AnyJsStatement Category = iota
	AnyJsModuleItem
	AnyJsExpression
	AnyJsBinding
	AnyJsBindingPattern
	AnyJsArrayBindingPatternElement
	AnyJsObjectBindingPatternMember
	AnyJsAssignment
	AnyJsAssignmentPattern
	AnyJsArrayAssignmentPatternElement
	AnyJsObjectAssignmentPatternMember
	AnyJsArrayElement
	AnyJsObjectMember
	AnyJsObjectMemberName
	AnyJsClassMember
	AnyJsClassMemberName
	AnyJsCallArgument
	AnyJsFormalParameter
	AnyJsParameter
	AnyJsSwitchClause
	AnyJsForInitializer
	AnyJsForInOrOfInitializer
	AnyJsArrowFunctionParameters
	AnyJsFunctionBody
	AnyJsImportClause
	AnyJsNamedImportSpecifier
	AnyJsExportClause
	AnyJsExportNamedSpecifier

	// token categories
	JsIdentifierToken // identifiers and contextual keywords
	JsNameToken       // identifiers and every keyword (property names)
	JsMemberNameToken // names, string and number literals
	JsExportNameToken // names and string literals

	categoryCount
)

type categoryDef struct {
	name     string
	kinds    []Kind
	includes []Category
}

var categoryDefs = [categoryCount]categoryDef{
	AnyJsStatement: {name: "AnyJsStatement", kinds: []Kind{
		JsBlockStatement, JsEmptyStatement, JsExpressionStatement, JsIfStatement,
		JsDoWhileStatement, JsWhileStatement, JsForStatement, JsForInStatement,
		JsForOfStatement, JsContinueStatement, JsBreakStatement, JsReturnStatement,
		JsWithStatement, JsLabeledStatement, JsSwitchStatement, JsThrowStatement,
		JsTryStatement, JsTryFinallyStatement, JsDebuggerStatement,
		JsFunctionDeclaration, JsClassDeclaration, JsVariableStatement,
		JsUnknownStatement,
	}},
	AnyJsModuleItem: {name: "AnyJsModuleItem",
		kinds:    []Kind{JsImport, JsExport},
		includes: []Category{AnyJsStatement},
	},
	AnyJsExpression: {name: "AnyJsExpression", kinds: []Kind{
		JsIdentifierExpression, JsThisExpression, JsSuperExpression,
		JsNumberLiteralExpression, JsBigintLiteralExpression, JsStringLiteralExpression,
		JsBooleanLiteralExpression, JsNullLiteralExpression, JsRegexLiteralExpression,
		JsArrayExpression, JsObjectExpression, JsParenthesizedExpression,
		JsFunctionExpression, JsArrowFunctionExpression, JsClassExpression,
		JsStaticMemberExpression, JsComputedMemberExpression, JsCallExpression,
		JsNewExpression, JsNewTargetExpression, JsImportCallExpression,
		JsUnaryExpression, JsPreUpdateExpression, JsPostUpdateExpression,
		JsAwaitExpression, JsYieldExpression, JsBinaryExpression,
		JsInstanceofExpression, JsInExpression, JsLogicalExpression,
		JsConditionalExpression, JsAssignmentExpression, JsSequenceExpression,
		JsUnknownExpression,
	}},
	AnyJsBinding: {name: "AnyJsBinding", kinds: []Kind{JsIdentifierBinding, JsUnknownBinding}},
	AnyJsBindingPattern: {name: "AnyJsBindingPattern",
		kinds:    []Kind{JsArrayBindingPattern, JsObjectBindingPattern},
		includes: []Category{AnyJsBinding},
	},
	AnyJsArrayBindingPatternElement: {name: "AnyJsArrayBindingPatternElement",
		kinds:    []Kind{JsArrayHole, JsBindingPatternWithDefault, JsArrayBindingPatternRestElement},
		includes: []Category{AnyJsBindingPattern},
	},
	AnyJsObjectBindingPatternMember: {name: "AnyJsObjectBindingPatternMember", kinds: []Kind{
		JsObjectBindingPatternProperty, JsObjectBindingPatternShorthandProperty,
		JsObjectBindingPatternRest, JsUnknownBinding,
	}},
	AnyJsAssignment: {name: "AnyJsAssignment", kinds: []Kind{
		JsIdentifierAssignment, JsStaticMemberAssignment, JsComputedMemberAssignment,
		JsParenthesizedAssignment, JsUnknownAssignment,
	}},
	AnyJsAssignmentPattern: {name: "AnyJsAssignmentPattern",
		kinds:    []Kind{JsArrayAssignmentPattern, JsObjectAssignmentPattern},
		includes: []Category{AnyJsAssignment},
	},
	AnyJsArrayAssignmentPatternElement: {name: "AnyJsArrayAssignmentPatternElement",
		kinds:    []Kind{JsArrayHole, JsAssignmentWithDefault, JsArrayAssignmentPatternRestElement},
		includes: []Category{AnyJsAssignmentPattern},
	},
	AnyJsObjectAssignmentPatternMember: {name: "AnyJsObjectAssignmentPatternMember", kinds: []Kind{
		JsObjectAssignmentPatternProperty, JsObjectAssignmentPatternShorthandProperty,
		JsObjectAssignmentPatternRest, JsUnknownAssignment,
	}},
	AnyJsArrayElement: {name: "AnyJsArrayElement",
		kinds:    []Kind{JsSpread, JsArrayHole},
		includes: []Category{AnyJsExpression},
	},
	AnyJsObjectMember: {name: "AnyJsObjectMember", kinds: []Kind{
		JsPropertyObjectMember, JsShorthandPropertyObjectMember, JsMethodObjectMember,
		JsGetterObjectMember, JsSetterObjectMember, JsSpread, JsUnknownMember,
	}},
	AnyJsObjectMemberName: {name: "AnyJsObjectMemberName", kinds: []Kind{JsLiteralMemberName, JsComputedMemberName}},
	AnyJsClassMember: {name: "AnyJsClassMember", kinds: []Kind{
		JsConstructorClassMember, JsMethodClassMember, JsPropertyClassMember,
		JsGetterClassMember, JsSetterClassMember, JsEmptyClassMember,
		JsStaticInitializationBlockClassMember, JsUnknownMember,
	}},
	AnyJsClassMemberName: {name: "AnyJsClassMemberName",
		kinds:    []Kind{JsPrivateClassMemberName},
		includes: []Category{AnyJsObjectMemberName},
	},
	AnyJsCallArgument: {name: "AnyJsCallArgument",
		kinds:    []Kind{JsSpread},
		includes: []Category{AnyJsExpression},
	},
	AnyJsFormalParameter: {name: "AnyJsFormalParameter", kinds: []Kind{JsFormalParameter, JsUnknownParameter}},
	AnyJsParameter: {name: "AnyJsParameter",
		kinds:    []Kind{JsRestParameter},
		includes: []Category{AnyJsFormalParameter},
	},
	AnyJsSwitchClause: {name: "AnyJsSwitchClause", kinds: []Kind{JsCaseClause, JsDefaultClause}},
	AnyJsForInitializer: {name: "AnyJsForInitializer",
		kinds:    []Kind{JsVariableDeclaration},
		includes: []Category{AnyJsExpression},
	},
	AnyJsForInOrOfInitializer: {name: "AnyJsForInOrOfInitializer",
		kinds:    []Kind{JsForVariableDeclaration},
		includes: []Category{AnyJsAssignmentPattern},
	},
	AnyJsArrowFunctionParameters: {name: "AnyJsArrowFunctionParameters",
		kinds:    []Kind{JsParameters},
		includes: []Category{AnyJsBinding},
	},
	AnyJsFunctionBody: {name: "AnyJsFunctionBody",
		kinds:    []Kind{JsFunctionBody},
		includes: []Category{AnyJsExpression},
	},
	AnyJsImportClause: {name: "AnyJsImportClause", kinds: []Kind{
		JsImportBareClause, JsImportDefaultClause, JsImportNamedClause, JsImportNamespaceClause,
	}},
	AnyJsNamedImportSpecifier: {name: "AnyJsNamedImportSpecifier", kinds: []Kind{
		JsNamedImportSpecifier, JsShorthandNamedImportSpecifier,
	}},
	AnyJsExportClause: {name: "AnyJsExportClause", kinds: []Kind{
		JsFunctionDeclaration, JsClassDeclaration, JsVariableDeclarationClause,
		JsExportNamedClause, JsExportDefaultExpressionClause, JsExportFromClause,
	}},
	AnyJsExportNamedSpecifier: {name: "AnyJsExportNamedSpecifier", kinds: []Kind{
		JsExportNamedSpecifier, JsExportNamedShorthandSpecifier,
	}},

	JsIdentifierToken: {name: "JsIdentifierToken", kinds: []Kind{Ident}},
	JsNameToken:       {name: "JsNameToken", kinds: []Kind{Ident}},
	JsMemberNameToken: {name: "JsMemberNameToken",
		kinds:    []Kind{JsStringLiteral, JsNumberLiteral},
		includes: []Category{JsNameToken},
	},
	JsExportNameToken: {name: "JsExportNameToken",
		kinds:    []Kind{JsStringLiteral},
		includes: []Category{JsNameToken},
	},
}

// membership[k] has bit c set when k belongs to category c.
var membership [kindCount]uint64

func init() {
	for k := range kindCount {
		if k.IsContextualKeyword() {
			categoryDefs[JsIdentifierToken].kinds = append(categoryDefs[JsIdentifierToken].kinds, k)
		}
		if k.IsKeyword() {
			categoryDefs[JsNameToken].kinds = append(categoryDefs[JsNameToken].kinds, k)
		}
	}
	for c := range categoryCount {
		for _, k := range c.expand(nil) {
			membership[k] |= 1 << c
		}
	}
}

// expand flattens the category with its includes; visiting guards against a
// malformed table with an include cycle.
func (c Category) expand(visiting []Category) []Kind {
	for _, v := range visiting {
		if v == c {
			panic("kind: category include cycle at " + c.String())
		}
	}
	def := categoryDefs[c]
	out := append([]Kind(nil), def.kinds...)
	for _, inc := range def.includes {
		out = append(out, inc.expand(append(visiting, c))...)
	}
	return out
}

// Contains reports whether a node or token of kind k can be cast to c.
func (c Category) Contains(k Kind) bool {
	if k >= kindCount || c >= categoryCount {
		return false
	}
	return membership[k]&(1<<c) != 0
}

// Members returns the flattened member kinds in declaration order.
func (c Category) Members() []Kind {
	var out []Kind
	for k := range kindCount {
		if c.Contains(k) {
			out = append(out, k)
		}
	}
	return out
}

func (c Category) String() string {
	if c >= categoryCount {
		return "InvalidCategory"
	}
	return categoryDefs[c].name
}

// Categories returns every category.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := range categoryCount {
		out = append(out, c)
	}
	return out
}
