package segment

import (
	"sort"
	"strings"

	"github.com/edulab/atividades/activity"
)

// fingerprintStrategy matches the known content fingerprints against the
// plain text. For each catalogue entry the first fingerprint matching
// anywhere wins; unmatched entries are skipped. Matches are re-sorted by
// position and each section's content runs from the end of its own match
// to the start of the next one.
type fingerprintStrategy struct{}

func (s *fingerprintStrategy) Name() string { return "fingerprint" }

type fingerprintMatch struct {
	entry catalogEntry
	start int
	end   int
}

func (s *fingerprintStrategy) TrySegment(rawText, _ string) (*activity.SectionMap, bool) {
	var matches []fingerprintMatch
	for _, entry := range catalog {
		for _, fp := range entry.fingerprints {
			loc := fp.FindStringIndex(rawText)
			if loc == nil {
				continue
			}
			matches = append(matches, fingerprintMatch{entry: entry, start: loc[0], end: loc[1]})
			break
		}
	}
	if len(matches) == 0 {
		return nil, false
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	sm := activity.NewSectionMap()
	for i, m := range matches {
		contentEnd := len(rawText)
		if i+1 < len(matches) {
			contentEnd = matches[i+1].start
		}
		content := strings.TrimSpace(rawText[m.end:contentEnd])
		content = strings.TrimSpace(attributionRe.ReplaceAllString(content, ""))
		if len(content) < MinSectionLen {
			continue
		}
		sm.Add(activity.Section{
			Key:  m.entry.kind.Key(),
			Kind: m.entry.kind,
			Text: content,
		})
	}
	if sm.Len() == 0 {
		return nil, false
	}
	return sm, true
}
