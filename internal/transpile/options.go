package transpile

import "lugha/internal/diag"

const (
	// PreludeBanner opens the output when Options.Prelude is set.
	PreludeBanner = "/* START OF LANGUAGE BUFFER */\n\n"
	// ClosingBanner is the fragment emitted for the end-of-input token.
	ClosingBanner = "\n\n/* END OF LANGUAGE BUFFER */"
)

type Options struct {
	// Reporter also receives every diagnostic; Result.Bag is filled regardless.
	Reporter diag.Reporter
	// Renamer spells bound names; nil means IdentityRenamer.
	Renamer Renamer
	// Banner emits ClosingBanner at end of input.
	Banner bool
	// Prelude emits PreludeBanner as the first fragment.
	Prelude bool
	// StrictBlocks diagnoses unmatched end/else and unclosed blocks.
	// Without it end always emits "}" like a plain counterless closer.
	StrictBlocks bool
	// MaxDiagnostics caps Result.Bag; 0 means no cap.
	MaxDiagnostics int
}

// DefaultOptions returns the options the CLI starts from.
func DefaultOptions() Options {
	return Options{
		Renamer:      IdentityRenamer{},
		Banner:       true,
		StrictBlocks: true,
	}
}


