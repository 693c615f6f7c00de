package cli

import "strings"

// FormatPreference is the outcome of resolving the mutually exclusive
// full/simple output flags against the raw argument vector.
type FormatPreference struct {
	// PreferFull selects the hyphenated 36-character form over the
	// 32-character simple form.
	PreferFull bool
	// Conflict reports that both format families appeared.
	Conflict bool
}

// orderStride spaces composite ordering keys so that argument position
// always outranks position within a short-flag cluster. No cluster
// comes anywhere near this many characters.
const orderStride = 1000

// valueTakingLong lists long options whose value may arrive as the
// following token. That token is an option value, not a flag, and must
// never be scanned.
var valueTakingLong = map[string]bool{
	"count":        true,
	"uuid-version": true,
	"log-level":    true,
	"log-format":   true,
}

// valueTakingShort lists short options whose value is either attached
// to the rest of the cluster (-n5) or arrives as the following token
// (-n 5). Both spellings of the version shorthand are listed because
// this map is consulted before alias normalization.
var valueTakingShort = map[byte]bool{
	'n': true,
	'V': true,
	'v': true,
}

// ResolveFormat decides between full and simple output by re-scanning
// the raw argument vector. Structured parsing collapses repeated and
// clustered flags into booleans and discards their order, so conflict
// tie-breaking has to happen here, on the unmodified tokens.
//
// Every format-flag occurrence gets the composite ordering key
// argIndex*orderStride + offsetInCluster, and the family holding the
// smallest key wins. Family membership goes by letter identity,
// case-insensitive: f and F are full, s and S are simple. Value slots
// and =-attached values are skipped, and a bare "--" ends the scan.
func ResolveFormat(args []string) FormatPreference {
	const unseen = -1
	firstFull, firstSimple := unseen, unseen

	record := func(first *int, key int) {
		if *first == unseen {
			*first = key
		}
	}

	skipNext := false
	for i, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if arg == "--" {
			break
		}
		switch {
		case strings.HasPrefix(arg, "--"):
			name := arg[2:]
			hasInlineValue := false
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				name, hasInlineValue = name[:eq], true
			}
			switch {
			case name == "full":
				record(&firstFull, i*orderStride)
			case name == "simple":
				record(&firstSimple, i*orderStride)
			case valueTakingLong[name] && !hasInlineValue:
				skipNext = true
			}
		case len(arg) > 1 && arg[0] == '-':
		cluster:
			for j := 1; j < len(arg); j++ {
				switch c := arg[j]; {
				case c == '=':
					// The rest of the token is the preceding
					// option's value, as in -U=true.
					break cluster
				case c == 'f' || c == 'F':
					record(&firstFull, i*orderStride+j-1)
				case c == 's' || c == 'S':
					record(&firstSimple, i*orderStride+j-1)
				case valueTakingShort[c]:
					// The rest of the cluster is this option's value;
					// with nothing attached, the next token is.
					if j == len(arg)-1 {
						skipNext = true
					}
					break cluster
				}
			}
		}
	}

	switch {
	case firstFull != unseen && firstSimple != unseen:
		return FormatPreference{PreferFull: firstFull < firstSimple, Conflict: true}
	case firstSimple != unseen:
		return FormatPreference{PreferFull: false}
	default:
		return FormatPreference{PreferFull: true}
	}
}
