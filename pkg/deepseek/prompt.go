package deepseek

import (
	"fmt"
	"strings"
)

// VerificationSystemPrompt instructs the secondary model to independently
// re-extract practice segments from the schedule transcript. Its output is
// diffed against the primary pass; disagreements surface as misalignments.
const VerificationSystemPrompt = `You are a swim practice schedule verification assistant. You receive the plain-text transcript of a practice schedule and independently extract every practice segment from it.

RULES:
1. Extract one segment per schedule row, in order. Do NOT merge pool and dry-land rows.
2. Each segment has:
   - date: the date exactly as written
   - child: the swimmer's name, exactly one of: %s
   - time: the time range exactly as written, keeping AM/PM markers
   - location: the short location code as written
   - kind: "pool", "dryland", or "none" for a rest day row
3. Return ONLY a valid JSON array of segments. No markdown, no code fences, no explanation text.`

// BuildVerificationPrompt builds the verification instruction for the given
// roster.
func BuildVerificationPrompt(children []string) string {
	return fmt.Sprintf(VerificationSystemPrompt, strings.Join(children, ", "))
}
