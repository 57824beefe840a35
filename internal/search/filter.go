package search

import (
	"regexp"
	"strings"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

// DueTag narrows task results by due date.
type DueTag string

const (
	DueToday    DueTag = "today"
	DueTomorrow DueTag = "tomorrow"
	DueWeek     DueTag = "week"
	DueOverdue  DueTag = "overdue"
)

// Filters is the structured form of a raw query. Zero values mean "not set";
// CleanQuery holds whatever free text remains after tag extraction.
type Filters struct {
	Type       model.EntityType
	Operation  string
	Priority   model.TaskPriority
	Due        DueTag
	Region     string
	CleanQuery string
}

// HasFilter reports whether any structural filter is set.
func (f Filters) HasFilter() bool {
	return f.Type != "" || f.Operation != "" || f.Priority != "" || f.Due != "" || f.Region != ""
}

var (
	rePriority = regexp.MustCompile(`(?i)(^|\s)priority:(high|medium|low)`)
	reDue      = regexp.MustCompile(`(?i)(^|\s)due:(today|tomorrow|week|overdue)`)
	reRegion   = regexp.MustCompile(`(?i)(^|\s)region:([\w-]+)`)
	reOpKey    = regexp.MustCompile(`(?i)(^|\s)operation:`)

	// Word-and-space run that an operation value may span. Values stop at the
	// first other rune, so a following "key:" tag is never swallowed whole.
	reWordSpan = regexp.MustCompile(`^[\w][\w ]*`)
)

// ParseFilters extracts recognized filter tags from a raw query, in a fixed
// order: type prefix, operation, priority, due, region. Each matched tag is
// removed from the string before the next pattern runs; whatever remains,
// trimmed, becomes the clean query. Unrecognized or malformed tags are left
// in the free text; parsing is always lenient and never fails.
func ParseFilters(raw string) Filters {
	f := Filters{}
	s := strings.TrimSpace(raw)

	s = parseTypePrefix(s, &f)
	s = parseOperation(s, &f)

	if m := rePriority.FindStringSubmatchIndex(s); m != nil {
		f.Priority = model.TaskPriority(strings.ToLower(s[m[4]:m[5]]))
		s = s[:m[0]] + s[m[1]:]
	}
	if m := reDue.FindStringSubmatchIndex(s); m != nil {
		f.Due = DueTag(strings.ToLower(s[m[4]:m[5]]))
		s = s[:m[0]] + s[m[1]:]
	}
	if m := reRegion.FindStringSubmatchIndex(s); m != nil {
		f.Region = s[m[4]:m[5]]
		s = s[:m[0]] + s[m[1]:]
	}

	f.CleanQuery = strings.Join(strings.Fields(s), " ")
	return f
}

// parseTypePrefix strips a leading "task:", "wiki:", "operation:" or "event:"
// tag. "operation:" doubles as the operation-name tag, so it only counts as a
// type prefix when no value is attached to it ("operation: standup" filters
// by type, "operation:Rescue Alpha" names an operation).
func parseTypePrefix(s string, f *Filters) string {
	lower := strings.ToLower(s)
	for _, t := range model.SearchableTypes {
		tag := string(t) + ":"
		if !strings.HasPrefix(lower, tag) {
			continue
		}
		rest := s[len(tag):]
		if t == model.EntityOperation && rest != "" && !strings.HasPrefix(rest, " ") {
			continue
		}
		f.Type = t
		return rest
	}
	return s
}

// parseOperation extracts "operation:<name>", where the name may span several
// words but ends at the next recognized tag.
func parseOperation(s string, f *Filters) string {
	key := reOpKey.FindStringIndex(s)
	if key == nil {
		return s
	}

	rest := s[key[1]:]
	span := reWordSpan.FindString(rest)
	end := key[1] + len(span)
	// The span stops right before any ':', which means its final word is the
	// key of the next tag. Give that word back.
	if end < len(s) && s[end] == ':' {
		if i := strings.LastIndexByte(strings.TrimRight(span, " "), ' '); i >= 0 {
			span = span[:i]
			end = key[1] + i
		} else {
			span = ""
			end = key[1]
		}
	}

	if v := strings.TrimSpace(span); v != "" {
		f.Operation = v
	}
	return s[:key[0]] + s[end:]
}
