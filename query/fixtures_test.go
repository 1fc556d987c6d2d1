package query

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// The tests build a deterministic timeline corpus instead of checking in a
// multi-megabyte capture: one hundred statuses with unicode user names,
// nested entities, and a search_metadata trailer, shaped like a twitter
// search response.

const (
	statusCount = 100

	name10  = "モテモテ大作戦★男子編"
	name50  = "イイヒト"
	color50 = "0084B4"

	userID10 = 2278053589
	userID42 = 2714526565
	userID56 = 2714868440
)

// userName returns the user name for status i.
func userName(i int) string {
	switch i {
	case 10:
		return name10
	case 50:
		return name50
	default:
		return fmt.Sprintf("ユーザー%d", i)
	}
}

// userID returns the user id for status i.
func userID(i int) int64 {
	switch i {
	case 10:
		return userID10
	case 42:
		return userID42
	case 56:
		return userID56
	default:
		return 1000000 + int64(i)
	}
}

// linkColor returns the profile link colour for status i. Exactly one status
// carries color50.
func linkColor(i int) string {
	if i == 50 {
		return color50
	}
	return "009999"
}

// timelineFixture builds the whole document. Statuses 0 and 1 carry a user
// mention so entity paths resolve; user.url is always null and protected is
// always false, mirroring fields the index tests walk.
func timelineFixture() string {
	var b strings.Builder
	b.WriteString("{\n  \"statuses\": [\n")
	for i := range statusCount {
		if i > 0 {
			b.WriteString(",\n")
		}
		mentions := ""
		if i < 2 {
			mentions = `{"screen_name": "somebody", "name": "Some Body"}`
		}
		fmt.Fprintf(&b, `    {
      "created_at": "Sun Aug 31 00:29:%02d +0000 2014",
      "id": %d,
      "text": "ツイート本文 %d",
      "metadata": {"iso_language_code": "ja", "result_type": "recent"},
      "entities": {"hashtags": [], "user_mentions": [%s]},
      "user": {
        "id": %d,
        "name": %s,
        "screen_name": "user_%d",
        "protected": false,
        "url": null,
        "profile_link_color": %s,
        "followers_count": %d
      }
    }`,
			i%60, 505874000000000000+int64(i), i, mentions,
			userID(i), string(appendJSONString(nil, userName(i))), i,
			string(appendJSONString(nil, linkColor(i))), i*3)
	}
	b.WriteString("\n  ],\n")
	fmt.Fprintf(&b, "  \"search_metadata\": {\"count\": %d, \"completed_in\": 0.087}\n}\n", statusCount)
	return b.String()
}

// escapeNonASCII rewrites every rune above 0x7F as a \uXXXX escape (surrogate
// pairs above the BMP). The fixture only holds such runes inside strings, so
// the result is the same document with its unicode escaped.
func escapeNonASCII(json string) string {
	var b strings.Builder
	b.Grow(len(json))
	for _, r := range json {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
			continue
		}
		fmt.Fprintf(&b, `\u%04x`, r)
	}
	return b.String()
}

// Small fixtures shared across tests.

const exampleDoc = `
{
  "name": {"first": "Tom", "last": "Anderson"},
  "age":37,
  "children": ["Sara","Alex","Jack"],
  "fav.movie": "Deer Hunter",
  "friends": [
    {"first": "Dale", "last": "Murphy", "age": 44, "nets": ["ig", "fb", "tw"]},
    {"first": "Roger", "last": "Craig", "age": 68, "nets": ["fb", "tw"]},
    {"first": "Jane", "last": "Murphy", "age": 47, "nets": ["ig", "tw"]}
  ]
}
`

const friendsNestedDoc = `{
  "friends": [
    {"first": "Dale", "last": "Murphy", "age": 44, "nets": [{"net":"ig"}, "fb", "tw"]},
    {"first": "Roger", "last": "Craig", "age": 68, "nets": ["fb", "tw"]},
    {"first": "Jane", "last": "Murphy", "age": 47, "nets": ["ig", "tw"]}
  ]
}`

const boolConvertDoc = `{
  "vals": [
    { "a": 1, "b": true },
    { "a": 2, "b": true },
    { "a": 3, "b": false },
    { "a": 4, "b": "0" },
    { "a": 5, "b": 0 },
    { "a": 6, "b": "1" },
    { "a": 7, "b": 1 },
    { "a": 8, "b": "true" },
    { "a": 9, "b": false },
    { "a": 10, "b": null },
    { "a": 11 }
  ]
}`

const jsonLinesDoc = `
    {"a": 1 }
    {"a": 2 }
    true
    false
    4
`
