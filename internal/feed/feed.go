// Package feed builds the materialized shout-out feed a viewer sees: posts
// joined with reaction counts, the viewer's own reactions, tagged recipient
// names and comment counts. Everything here is a pure transformation over
// snapshots the repositories already loaded; nothing mutates its inputs.
package feed

import (
	"sort"
	"strings"
	"time"

	"bragboard/internal/models"
)

// UnknownName is shown when an author or tagged user is missing from the
// directory. Posts with dangling user ids still appear in the feed.
const UnknownName = "Unknown"

type Item struct {
	ShoutOut           models.ShoutOut `json:"shoutout"`
	AuthorDisplayName  string          `json:"authorDisplayName"`
	AuthorDepartment   string          `json:"authorDepartment"`
	TaggedDisplayNames []string        `json:"taggedDisplayNames"`
	ReactionCounts     map[string]int  `json:"reactionCounts"`
	ViewerReactions    []string        `json:"viewerReactions"`
	CommentCount       int             `json:"commentCount"`
}

// Build aggregates raw rows into feed items for viewerID, ordered by
// createdAt descending, ties broken by id descending.
func Build(viewerID string, posts []models.ShoutOut, reactions []models.Reaction, comments []models.Comment, directory map[string]models.User) []Item {
	reactionCounts := make(map[string]map[string]int)
	viewerReactions := make(map[string][]string)
	for _, r := range reactions {
		counts, ok := reactionCounts[r.ShoutOutID]
		if !ok {
			counts = make(map[string]int)
			reactionCounts[r.ShoutOutID] = counts
		}
		counts[r.Emoji]++

		if r.UserID == viewerID {
			viewerReactions[r.ShoutOutID] = append(viewerReactions[r.ShoutOutID], r.Emoji)
		}
	}

	commentCounts := make(map[string]int)
	for _, c := range comments {
		commentCounts[c.ShoutOutID]++
	}

	items := make([]Item, 0, len(posts))
	for _, p := range posts {
		counts := reactionCounts[p.ShoutOutID]
		if counts == nil {
			counts = map[string]int{}
		}

		viewer := viewerReactions[p.ShoutOutID]
		sort.Strings(viewer)

		author, department := UnknownName, ""
		if u, ok := directory[p.AuthorID]; ok {
			author = displayName(u)
			department = u.Department
		}

		items = append(items, Item{
			ShoutOut:           p,
			AuthorDisplayName:  author,
			AuthorDepartment:   department,
			TaggedDisplayNames: ResolveTags(p.TaggedUserIDs, directory),
			ReactionCounts:     counts,
			ViewerReactions:    viewer,
			CommentCount:       commentCounts[p.ShoutOutID],
		})
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i].ShoutOut, items[j].ShoutOut
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ShoutOutID > b.ShoutOutID
	})

	return items
}

type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

type Criteria struct {
	Department string
	Sender     string
	Range      DateRange
	// Now anchors the date-range cutoffs; the zero value means time.Now().
	Now time.Time
}

// Filter applies viewer-side criteria to an aggregated feed. It returns a new
// slice and leaves items untouched, so successive filters compose in any
// order.
func Filter(items []Item, c Criteria) []Item {
	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}

	var cutoff time.Time
	switch c.Range {
	case RangeToday:
		cutoff = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case RangeWeek:
		cutoff = now.AddDate(0, 0, -7)
	case RangeMonth:
		cutoff = now.AddDate(0, -1, 0)
	}

	sender := strings.ToLower(strings.TrimSpace(c.Sender))

	out := make([]Item, 0, len(items))
	for _, item := range items {
		if c.Department != "" && item.AuthorDepartment != c.Department {
			continue
		}
		if sender != "" && !strings.Contains(strings.ToLower(item.AuthorDisplayName), sender) {
			continue
		}
		if !cutoff.IsZero() && item.ShoutOut.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, item)
	}

	return out
}

// ResolveTags maps tagged user ids to display names, preserving tag order.
func ResolveTags(taggedUserIDs []string, directory map[string]models.User) []string {
	names := make([]string, 0, len(taggedUserIDs))
	for _, id := range taggedUserIDs {
		if u, ok := directory[id]; ok {
			names = append(names, displayName(u))
		} else {
			names = append(names, UnknownName)
		}
	}
	return names
}

// ToggleTag adds userID to the selection if absent, removes it if present.
// Selection order of the remaining entries is preserved.
func ToggleTag(selected []string, userID string) []string {
	out := make([]string, 0, len(selected)+1)
	removed := false
	for _, id := range selected {
		if id == userID {
			removed = true
			continue
		}
		out = append(out, id)
	}
	if !removed {
		out = append(out, userID)
	}
	return out
}

func displayName(u models.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.Username != "" {
		return u.Username
	}
	return UnknownName
}
