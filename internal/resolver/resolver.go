// Package resolver turns one line of chat input into an intent and an
// ordered list of matching documents.
package resolver

import (
	"fmt"
	"strings"
	"unicode"

	"ChatVault/internal/attachment"
	"ChatVault/internal/model"
)

// Canned replies.
const (
	ReplyGreeting   = "Hello! How can I help you today?"
	ReplyEmptyVault = "Your vault is empty. Add a document first!"
	ReplyNotFound   = "No record found for that query."
)

var (
	greetings = []string{"hi", "hello", "hey", "hola", "yo", "sup", "good morning", "good evening"}

	intentMarkers = []string{"give me", "show me", "open", "get", "my", "card", "file", "document", "info"}

	// longest first, so "give me my" wins over "give me"
	fillers = [][]string{
		{"give", "me", "my"},
		{"show", "me", "my"},
		{"give", "me"},
		{"show", "me"},
		{"show"},
		{"open"},
		{"get"},
		{"my"},
	}

	listAllPhrases = []string{
		"show all", "show all documents", "show my documents", "show my docs",
		"list all", "list documents", "list all documents", "show everything",
		"all documents", "all files", "my documents", "my files",
	}
)

// Intent is the classification of a chat line.
type Intent int

const (
	IntentNotFound Intent = iota
	IntentGreeting
	IntentTargeted
	IntentListAll
	IntentEmptyVault
	IntentLookup
)

func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentTargeted:
		return "targeted"
	case IntentListAll:
		return "list_all"
	case IntentEmptyVault:
		return "empty_vault"
	case IntentLookup:
		return "lookup"
	default:
		return "not_found"
	}
}

// Source supplies the documents to match against, in store order.
type Source interface {
	Current() []model.Document
}

// Match is one numbered hit.
type Match struct {
	Position int             `json:"position"`
	Document model.Document  `json:"document"`
	Kind     attachment.Kind `json:"-"`
	Text     string          `json:"text"`
}

// Result is what the presentation layer renders.
type Result struct {
	Intent  Intent  `json:"-"`
	Reply   string  `json:"reply,omitempty"`
	Matches []Match `json:"matches"`
}

// Lines returns the reply followed by every rendered match.
func (r Result) Lines() []string {
	lines := make([]string, 0, len(r.Matches)+1)
	if r.Reply != "" {
		lines = append(lines, r.Reply)
	}
	for _, m := range r.Matches {
		lines = append(lines, m.Text)
	}
	return lines
}

type Resolver struct {
	src Source
}

func New(src Source) *Resolver {
	return &Resolver{src: src}
}

// Resolve classifies text and matches it against the current documents.
// It never fails: anything unmatched degrades to IntentNotFound.
func (r *Resolver) Resolve(text string) Result {
	q := normalize(text)
	if q == "" {
		return Result{Intent: IntentNotFound, Reply: ReplyNotFound}
	}

	if isGreeting(q) {
		return Result{Intent: IntentGreeting, Reply: ReplyGreeting}
	}

	docs := r.src.Current()

	if containsAny(q, intentMarkers) {
		kw := Keyword(q)
		if kw == "" {
			// одни служебные слова: искать нечего
			return Result{Intent: IntentNotFound, Reply: ReplyNotFound}
		}
		if found := Find(docs, kw); len(found) > 0 {
			return Result{Intent: IntentTargeted, Matches: number(found)}
		}
	}

	if containsAny(q, listAllPhrases) {
		if len(docs) == 0 {
			return Result{Intent: IntentEmptyVault, Reply: ReplyEmptyVault}
		}
		return Result{
			Intent:  IntentListAll,
			Reply:   fmt.Sprintf("You have %d stored documents:", len(docs)),
			Matches: number(docs),
		}
	}

	if found := Find(docs, q); len(found) > 0 {
		return Result{Intent: IntentLookup, Matches: number(found)}
	}

	return Result{Intent: IntentNotFound, Reply: ReplyNotFound}
}

// Find returns every document whose name contains query or is contained
// in it, case-insensitively, in the given order. An empty query or an empty
// name never matches.
func Find(docs []model.Document, query string) []model.Document {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []model.Document
	for _, d := range docs {
		name := strings.ToLower(strings.TrimSpace(d.Name))
		if name == "" {
			continue
		}
		if strings.Contains(q, name) || strings.Contains(name, q) {
			out = append(out, d)
		}
	}
	return out
}

// Keyword strips filler phrases (whole words only) from normalized input.
func Keyword(q string) string {
	words := strings.Fields(q)
	kept := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		if n := fillerAt(words, i); n > 0 {
			i += n
			continue
		}
		kept = append(kept, words[i])
		i++
	}
	return strings.Join(kept, " ")
}

// Render formats a single numbered match line.
func Render(pos int, d model.Document) string {
	s := fmt.Sprintf("%d. %s: %s", pos, d.Name, d.Value)
	if d.Info != "" {
		s += "\n" + d.Info
	}
	return s
}

func number(docs []model.Document) []Match {
	out := make([]Match, 0, len(docs))
	for i, d := range docs {
		m := Match{Position: i + 1, Document: d, Kind: attachment.KindOther, Text: Render(i+1, d)}
		if d.HasFile() {
			m.Kind = attachment.Classify(d.File.Type)
		}
		out = append(out, m)
	}
	return out
}

func fillerAt(words []string, i int) int {
	for _, f := range fillers {
		if i+len(f) > len(words) {
			continue
		}
		ok := true
		for j, w := range f {
			if words[i+j] != w {
				ok = false
				break
			}
		}
		if ok {
			return len(f)
		}
	}
	return 0
}

func normalize(text string) string {
	s := strings.ToLower(strings.Join(strings.Fields(text), " "))
	return strings.TrimRightFunc(s, func(r rune) bool {
		return r == '?' || r == '!' || r == '.'
	})
}

func isGreeting(q string) bool {
	for _, g := range greetings {
		rest, ok := strings.CutPrefix(q, g)
		if !ok {
			continue
		}
		if rest == "" {
			return true
		}
		if r := []rune(rest)[0]; !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsAny(q string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(q, p) {
			return true
		}
	}
	return false
}
