package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexBadEscape                Code = 1006
	LexNonNFCIdent              Code = 1007
	LexMisplacedShebang         Code = 1008

	// Дерево: потребители фабрики
	SynInfo            Code = 2000
	SynUnknownNode     Code = 2001
	SynMissingRequired Code = 2002
	SynMissingListItem Code = 2003
	SynMissingListSep  Code = 2004

	// Фикстуры (s-expression)
	FixInfo            Code = 2100
	FixUnknownKind     Code = 2101
	FixUnbalancedParen Code = 2102
	FixUnexpectedChar  Code = 2103
	FixBadTokenText    Code = 2104
	FixUnterminated    Code = 2105
	FixTokenKindAsNode Code = 2106
	FixNodeKindAsToken Code = 2107
	FixMultipleRoots   Code = 2108
	FixEmptyInput      Code = 2109
	FixTrailingGarbage Code = 2110
	FixQuotedLexError  Code = 2111

	// Ошибки I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Ошибки проекта / конфигурации
	ProjInfo      Code = 5000
	ProjBadConfig Code = 5001

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number",
		LexTokenTooLong:             "Token too long",
		LexBadEscape:                "Bad escape sequence",
		LexNonNFCIdent:              "Identifier is not in NFC form",
		LexMisplacedShebang:         "Shebang is only allowed at the start of the file",
		SynInfo:                     "Syntax information",
		SynUnknownNode:              "Children do not match the node shape",
		SynMissingRequired:          "Required child is missing",
		SynMissingListItem:          "List item is missing",
		SynMissingListSep:           "List separator is missing",
		FixInfo:                     "Fixture information",
		FixUnknownKind:              "Unknown kind name",
		FixUnbalancedParen:          "Unbalanced parenthesis",
		FixUnexpectedChar:           "Unexpected character",
		FixBadTokenText:             "Token text does not lex as one token",
		FixUnterminated:             "Unterminated quoted text",
		FixTokenKindAsNode:          "Token kind used as a node",
		FixNodeKindAsToken:          "Node kind used as a token",
		FixMultipleRoots:            "More than one root node",
		FixEmptyInput:               "Fixture has no root node",
		FixTrailingGarbage:          "Unexpected input after the root node",
		FixQuotedLexError:           "Quoted text produced lexer diagnostics",
		IOLoadFileError:             "I/O error",
		IOCacheError:                "Tree cache error",
		ProjInfo:                    "Project information",
		ProjBadConfig:               "Invalid jsgreen.toml",
		ObsInfo:                     "Observability information",
		ObsTimings:                  "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 2100:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 2100 && ic < 3000:
		return fmt.Sprintf("FIX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
