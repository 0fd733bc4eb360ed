package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnterminatedString Code = 1001
	LexUnterminatedRawLit Code = 1002
	LexUnknownChar        Code = 1003

	// Синтаксические (начало оператора, ожидаемые токены, блоки)
	SynInfo             Code = 2000
	SynInvalidStatement Code = 2001
	SynUnexpectedToken  Code = 2002
	SynExpectIdentifier Code = 2003
	SynExpectOperand    Code = 2004
	SynUnmatchedEnd     Code = 2005
	SynUnclosedBlock    Code = 2006
	SynElseWithoutIf    Code = 2007

	// Транспиляция
	TrnInfo            Code = 3000
	TrnUnboundIdent    Code = 3001
	TrnRedeclared      Code = 3002
	TrnRenameCollision Code = 3003
	TrnUnsupported     Code = 3004

	// I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		LexUnterminatedString: "Unterminated string",
		LexUnterminatedRawLit: "Unterminated raw literal",
		LexUnknownChar:        "Unknown character",
		SynInfo:               "Syntax information",
		SynInvalidStatement:   "Invalid start to statement",
		SynUnexpectedToken:    "Unexpected token",
		SynExpectIdentifier:   "Expected identifier",
		SynExpectOperand:      "Expected identifier or number",
		SynUnmatchedEnd:       "End without an open block",
		SynUnclosedBlock:      "Block is not closed",
		SynElseWithoutIf:      "Else without if",
		TrnInfo:               "Transpiler information",
		TrnUnboundIdent:       "Unbound identifier",
		TrnRedeclared:         "Identifier redeclared",
		TrnRenameCollision:    "Renamed identifiers collide",
		TrnUnsupported:        "Unsupported statement",
		IOLoadFileError:       "I/O load file error",
		IOCacheError:          "I/O cache error",
		ObsInfo:               "Observability information",
		ObsTimings:            "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TRN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
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

// Origin reports the phase a code belongs to.
func (c Code) Origin() Origin {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return OriginLexer
	case ic >= 2000 && ic < 4000:
		return OriginTranspiler
	case ic >= 4000 && ic < 7000:
		return OriginDriver
	}
	return OriginUnknown
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
