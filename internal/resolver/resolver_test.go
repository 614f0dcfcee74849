package resolver

import (
	"testing"

	"ChatVault/internal/attachment"
	"ChatVault/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource []model.Document

func (s staticSource) Current() []model.Document { return s }

func docs(names ...string) staticSource {
	out := make(staticSource, 0, len(names))
	for i, n := range names {
		out = append(out, model.Document{ID: int64(i + 1), Name: n, Value: "v" + n})
	}
	return out
}

func names(ms []Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Document.Name)
	}
	return out
}

func TestResolve_QueryIsSubstringOfName(t *testing.T) {
	res := New(docs("Passport")).Resolve("pass")
	assert.Equal(t, IntentLookup, res.Intent)
	assert.Equal(t, []string{"Passport"}, names(res.Matches))
}

func TestResolve_NameIsSubstringOfKeyword(t *testing.T) {
	res := New(docs("ID")).Resolve("my ID card please")
	assert.Equal(t, IntentTargeted, res.Intent)
	assert.Equal(t, []string{"ID"}, names(res.Matches))
}

func TestResolve_GreetingShortCircuits(t *testing.T) {
	r := New(docs("hello"))
	for _, in := range []string{"hello there", "Hello!", "hi", "good morning vault", "hey, you"} {
		res := r.Resolve(in)
		assert.Equal(t, IntentGreeting, res.Intent, in)
		assert.Equal(t, ReplyGreeting, res.Reply, in)
		assert.Empty(t, res.Matches, in)
	}
}

func TestResolve_GreetingNeedsWordBoundary(t *testing.T) {
	r := New(docs("History", "Passport"))

	res := r.Resolve("history")
	assert.Equal(t, IntentLookup, res.Intent)
	assert.Equal(t, []string{"History"}, names(res.Matches))

	res = r.Resolve("your passport")
	assert.Equal(t, IntentLookup, res.Intent)
	assert.Equal(t, []string{"Passport"}, names(res.Matches))
}

func TestResolve_EmptyVaultListAll(t *testing.T) {
	res := New(staticSource(nil)).Resolve("show all")
	assert.Equal(t, IntentEmptyVault, res.Intent)
	assert.Equal(t, ReplyEmptyVault, res.Reply)
	assert.Empty(t, res.Matches)
}

func TestResolve_ListAll(t *testing.T) {
	res := New(docs("Passport", "Visa", "Lease")).Resolve("list all documents")
	assert.Equal(t, IntentListAll, res.Intent)
	assert.Equal(t, "You have 3 stored documents:", res.Reply)
	require.Len(t, res.Matches, 3)
	assert.Equal(t, 3, res.Matches[2].Position)
	assert.Equal(t, "3. Lease: vLease", res.Matches[2].Text)
}

func TestResolve_WiFiScenario(t *testing.T) {
	src := staticSource{{ID: 1, Name: "WiFi", Value: "MyNetwork-5G", Info: "Guest password same"}}
	res := New(src).Resolve("wifi password")

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "1. WiFi: MyNetwork-5G\nGuest password same", res.Matches[0].Text)
	assert.Equal(t, []string{"1. WiFi: MyNetwork-5G\nGuest password same"}, res.Lines())
}

func TestResolve_TwoCardsInStoreOrder(t *testing.T) {
	res := New(docs("ID Card", "Passport", "Credit Card")).Resolve("show my card")

	assert.Equal(t, IntentTargeted, res.Intent)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, 1, res.Matches[0].Position)
	assert.Equal(t, "ID Card", res.Matches[0].Document.Name)
	assert.Equal(t, 2, res.Matches[1].Position)
	assert.Equal(t, "Credit Card", res.Matches[1].Document.Name)
	assert.Equal(t, "2. Credit Card: vCredit Card", res.Matches[1].Text)
}

func TestResolve_FillerOnlyMatchesNothing(t *testing.T) {
	r := New(docs("My Car", "Mystery"))
	for _, in := range []string{"my", "give me my", "show me", "get"} {
		res := r.Resolve(in)
		assert.Equal(t, IntentNotFound, res.Intent, in)
		assert.Empty(t, res.Matches, in)
	}
}

func TestResolve_NotFound(t *testing.T) {
	res := New(docs("Passport")).Resolve("weather tomorrow")
	assert.Equal(t, IntentNotFound, res.Intent)
	assert.Equal(t, ReplyNotFound, res.Reply)
	assert.Equal(t, []string{ReplyNotFound}, res.Lines())
}

func TestResolve_BlankInput(t *testing.T) {
	res := New(docs("Passport")).Resolve("   ")
	assert.Equal(t, IntentNotFound, res.Intent)
}

func TestResolve_TargetedFallsThroughToListAll(t *testing.T) {
	// "my documents" не совпал ни с одним именем, срабатывает "показать всё"
	res := New(docs("Passport")).Resolve("show my documents")
	assert.Equal(t, IntentListAll, res.Intent)
	assert.Len(t, res.Matches, 1)
}

func TestResolve_MatchCarriesAttachmentKind(t *testing.T) {
	src := staticSource{
		{ID: 1, Name: "Scan", File: &model.Attachment{Name: "s.pdf", Type: "application/pdf", Data: "data:application/pdf;base64,AA=="}},
		{ID: 2, Name: "Scan photo", File: &model.Attachment{Name: "p.png", Type: "image/png", Data: "data:image/png;base64,AA=="}},
		{ID: 3, Name: "Scan note"},
	}
	res := New(src).Resolve("scan")
	require.Len(t, res.Matches, 3)
	assert.Equal(t, attachment.KindPDF, res.Matches[0].Kind)
	assert.Equal(t, attachment.KindImage, res.Matches[1].Kind)
	assert.Equal(t, attachment.KindOther, res.Matches[2].Kind)
}

func TestKeyword(t *testing.T) {
	tests := map[string]string{
		"give me my passport":  "passport",
		"show me my card":      "card",
		"open insurance file":  "insurance file",
		"my id card please":    "id card please",
		"mystery get together": "mystery together",
		"my":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Keyword(in), in)
	}
}

func TestFind(t *testing.T) {
	list := []model.Document{{Name: "Passport"}, {Name: ""}, {Name: "ID"}}
	assert.Empty(t, Find(list, ""))
	assert.Empty(t, Find(list, "   "))
	assert.Len(t, Find(list, "PASS"), 1)
	assert.Len(t, Find(list, "my id please"), 1)
}
