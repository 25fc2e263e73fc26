// Package format builds the fallback-aware format selection expression
// handed to yt-dlp. The ordering encodes a strict preference: match
// container and quality first, degrade container before degrading
// quality, degrade quality before falling back to an unconstrained pick.
package format

import (
	"fmt"
	"strings"

	"grabarr/internal/domain/consts"
	"grabarr/internal/domain/enums"
)

// FallbackOperator joins alternatives; yt-dlp tries them left to right.
const FallbackOperator = "/"

// Expression is an ordered sequence of selector alternatives. The final
// alternative is always the unconstrained "b", so the expression can
// never fail to resolve purely due to an overly specific constraint.
type Expression struct {
	alternatives []string
}

// String renders the expression in yt-dlp syntax.
func (e Expression) String() string {
	return strings.Join(e.alternatives, FallbackOperator)
}

// Alternatives returns a copy of the ordered selector alternatives.
func (e Expression) Alternatives() []string {
	out := make([]string, len(e.alternatives))
	copy(out, e.alternatives)
	return out
}

// BuildExpression builds the format expression for a mode and quality target.
func BuildExpression(mode enums.Mode, quality enums.QualityTarget) Expression {
	if mode.IsAudioOnly() {
		// Audio-only modes use direct audio extraction, not a fallback chain.
		return Expression{alternatives: []string{"ba", "b"}}
	}

	var (
		height   = quality.Height()
		capped   = heightFilter(height)
		withMP4  = capped + extFilter(consts.PreferredVideoExt)
		m4aAudio = "ba[ext=" + consts.PreferredAudioExt + "]"
		alts     = make([]string, 0, 8)
	)

	add := func(alt string) {
		// The chain collapses when no height cap is requested; a
		// duplicate alternative can never match where the first
		// occurrence did not, so drop repeats.
		for _, existing := range alts {
			if existing == alt {
				return
			}
		}
		alts = append(alts, alt)
	}

	if mode == enums.ModeVideoOnly {
		add("bv*" + withMP4)
		add("bv*" + capped)
		add("b" + withMP4)
		add("b" + capped)
		add("b" + extFilter(consts.PreferredVideoExt))
		add("b")
	} else {
		add("bv*" + withMP4 + "+" + m4aAudio)
		add("bv*" + withMP4 + "+ba")
		add("bv*" + capped + "+" + m4aAudio)
		add("bv*" + capped + "+ba")
		add("b" + withMP4)
		add("b" + capped)
		add("b" + extFilter(consts.PreferredVideoExt))
		add("b")
	}

	return Expression{alternatives: alts}
}

func heightFilter(height int) string {
	if height == 0 {
		return ""
	}
	return fmt.Sprintf("[height<=%d]", height)
}

func extFilter(ext string) string {
	return "[ext=" + ext + "]"
}
