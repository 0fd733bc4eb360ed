package diag

// Origin names the pipeline phase that produced a diagnostic.
type Origin uint8

const (
	OriginUnknown Origin = iota
	OriginLexer
	OriginTranspiler
	OriginDriver
)

func (o Origin) String() string {
	switch o {
	case OriginLexer:
		return "lexer"
	case OriginTranspiler:
		return "transpiler"
	case OriginDriver:
		return "driver"
	default:
		return "unknown"
	}
}
