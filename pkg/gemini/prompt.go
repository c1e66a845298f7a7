package gemini

import (
	"fmt"
	"strings"
)

// ScheduleExtractionSystemPrompt is the instruction document sent to Gemini
// for schedule extraction. Segments are reported raw, one per row: the
// dry-land/pool merge rule is implemented in code, not delegated here.
const ScheduleExtractionSystemPrompt = `You are a swim practice schedule extraction assistant. You receive one practice schedule PDF and return its content as structured JSON.

RULES:
1. Transcribe the schedule into "transcript": the plain text of every schedule row, one line per row, in document order.
2. Extract every practice segment into "segments", in chronological order. One segment per schedule cell — do NOT merge pool and dry-land rows, report them separately.
3. Each segment has:
   - date: the date exactly as printed (e.g. "June 3, 2026" or "6/3/2026")
   - child: the swimmer's name, exactly one of: %s
   - time: the time range exactly as printed, keeping AM/PM markers as written
   - location: the short location code as printed (known codes: %s; keep unknown codes verbatim)
   - kind: "pool" for water practice, "dryland" for dry-land conditioning, "none" for a row that says no practice / rest day
4. A "none" segment must still carry its date and child so rest days are visible.
5. Return ONLY one valid JSON object: {"transcript": "...", "segments": [...]}. No markdown, no code fences, no explanation text.`

// BuildExtractionPrompt builds the extraction instruction for the given
// roster and known location codes.
func BuildExtractionPrompt(children []string, locationCodes []string) string {
	return fmt.Sprintf(ScheduleExtractionSystemPrompt,
		strings.Join(children, ", "),
		strings.Join(locationCodes, ", "),
	)
}
