package segment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/edulab/atividades/activity"
)

// delimiterStrategy splits the text on the recurring attribution
// delimiter and classifies each chunk by counting catalogue keywords in
// its opening window. Each catalogue entry is claimed by the first chunk
// that scores at least its required minimum; oversized chunks get a
// slicing sub-pass since they may hold several sections. Chunks matching
// nothing are kept under synthesized secao_N keys.
type delimiterStrategy struct{}

func (s *delimiterStrategy) Name() string { return "delimiter" }

func (s *delimiterStrategy) TrySegment(rawText, _ string) (*activity.SectionMap, bool) {
	parts := attributionSplitRe.Split(rawText, -1)
	if len(parts) < 2 {
		// No delimiter present — the heading strategy takes over.
		return nil, false
	}

	claimed := make(map[activity.Kind]bool)
	sm := activity.NewSectionMap()

	for idx, chunk := range parts {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) < MinChunkLen {
			continue
		}

		entry, ok := bestEntry(chunk, claimed)
		if ok {
			claimed[entry.kind] = true
			sm.Add(activity.Section{
				Key:  entry.kind.Key(),
				Kind: entry.kind,
				Text: chunk,
			})
			continue
		}

		// Oversized chunks may contain several sections back to back.
		if len(chunk) > MultiSectionChunk && sliceMultiSection(chunk, claimed, sm) {
			continue
		}

		sm.Add(activity.Section{
			Key:  fmt.Sprintf("secao_%d", idx+1),
			Kind: activity.KindGeneric,
			Text: chunk,
		})
	}

	if sm.Len() == 0 {
		return nil, false
	}
	return sm, true
}

// bestEntry scores the chunk's opening window against every unclaimed
// catalogue entry and returns the highest scorer meeting its minimum.
func bestEntry(chunk string, claimed map[activity.Kind]bool) (catalogEntry, bool) {
	window := strings.ToLower(chunk)
	if len(window) > KeywordWindow {
		window = window[:KeywordWindow]
	}

	best := catalogEntry{}
	bestCount := 0
	found := false
	for _, entry := range catalog {
		if claimed[entry.kind] {
			continue
		}
		count := 0
		for _, kw := range entry.keywords {
			if strings.Contains(window, kw) {
				count++
			}
		}
		if count >= entry.minKeywords && count > bestCount {
			best = entry
			bestCount = count
			found = true
		}
	}
	return best, found
}

// sliceMultiSection searches the full chunk for the earliest keyword
// occurrence of each unclaimed entry and slices the chunk at those
// offsets. Reports whether at least one section was recovered.
func sliceMultiSection(chunk string, claimed map[activity.Kind]bool, sm *activity.SectionMap) bool {
	lower := strings.ToLower(chunk)

	type hit struct {
		entry  catalogEntry
		offset int
	}
	var hits []hit
	for _, entry := range catalog {
		if claimed[entry.kind] {
			continue
		}
		earliest := -1
		for _, kw := range entry.keywords {
			if i := strings.Index(lower, kw); i >= 0 && (earliest < 0 || i < earliest) {
				earliest = i
			}
		}
		if earliest >= 0 {
			hits = append(hits, hit{entry: entry, offset: earliest})
		}
	}
	if len(hits) == 0 {
		return false
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].offset < hits[j].offset })

	added := false
	for i, h := range hits {
		end := len(chunk)
		if i+1 < len(hits) {
			end = hits[i+1].offset
		}
		content := strings.TrimSpace(chunk[h.offset:end])
		if len(content) < MinSectionLen {
			continue
		}
		claimed[h.entry.kind] = true
		sm.Add(activity.Section{
			Key:  h.entry.kind.Key(),
			Kind: h.entry.kind,
			Text: content,
		})
		added = true
	}
	return added
}
