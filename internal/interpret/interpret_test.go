package interpret

import (
	"strings"
	"testing"

	"github.com/aksoydem/huntboard-cli/internal/models"
)

type fakeBoard struct {
	terms  []models.Term
	active models.Term
	apps   []models.Application
}

func (f *fakeBoard) Terms() []models.Term    { return f.terms }
func (f *fakeBoard) ActiveTerm() models.Term { return f.active }
func (f *fakeBoard) ApplicationsInTerm(termID string) []models.Application {
	var out []models.Application
	for _, a := range f.apps {
		if a.TermID == termID {
			out = append(out, a)
		}
	}
	return out
}

func testBoard() *fakeBoard {
	summer := models.Term{ID: "t1", Name: "Summer 2026"}
	fall := models.Term{ID: "t2", Name: "Fall 2026"}
	return &fakeBoard{
		terms:  []models.Term{summer, fall},
		active: summer,
		apps: []models.Application{
			{ID: "a1", TermID: "t1", Company: "Acme", Position: "Backend Intern", Status: models.StatusOffer},
			{ID: "a2", TermID: "t1", Company: "Globex", Position: "Data Intern", Status: models.StatusOffer},
			{ID: "a3", TermID: "t1", Company: "Initech", Position: "QA Intern", Status: models.StatusApplied},
			{ID: "a4", TermID: "t2", Company: "Hooli", Position: "SRE Intern", Status: models.StatusApplied},
		},
	}
}

func TestInterpretBlankInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\t"} {
		if _, ok := Interpret(text, testBoard()).(NoOp); !ok {
			t.Errorf("Interpret(%q) is not a NoOp", text)
		}
	}
}

func TestInterpretHelp(t *testing.T) {
	for _, text := range []string{"help", "HELP", "?", "what can you do", "commands"} {
		resp, ok := Interpret(text, testBoard()).(TextResponse)
		if !ok {
			t.Fatalf("Interpret(%q) is not a TextResponse", text)
		}
		if !strings.Contains(resp.Body, "switch to") {
			t.Errorf("Interpret(%q) did not return the help text", text)
		}
		if resp.Play {
			t.Errorf("Interpret(%q) flagged Play", text)
		}
	}
}

func TestInterpretPlay(t *testing.T) {
	for _, text := range []string{"play", "i'm bored", "im bored", "play a game", "BORED"} {
		resp, ok := Interpret(text, testBoard()).(TextResponse)
		if !ok || !resp.Play {
			t.Errorf("Interpret(%q) = %#v, want a Play response", text, resp)
		}
	}

	// "playing it safe" is a sentence, not a request to play.
	if resp, ok := Interpret("playing it safe", testBoard()).(TextResponse); ok && resp.Play {
		t.Error("non-exact play phrase matched the play rule")
	}
}

func TestInterpretCreate(t *testing.T) {
	tests := []struct {
		text     string
		company  string
		position string
	}{
		{"add Backend Intern at Acme", "Acme", "Backend Intern"},
		{"create Data Scientist for Globex Corp", "Globex Corp", "Data Scientist"},
		{"new QA role at Initech", "Initech", "QA role"},
		{"Add SRE at Hooli", "Hooli", "SRE"},
	}
	for _, tt := range tests {
		action, ok := Interpret(tt.text, testBoard()).(OpenCreateForm)
		if !ok {
			t.Fatalf("Interpret(%q) is not an OpenCreateForm", tt.text)
		}
		if action.Company != tt.company || action.Position != tt.position {
			t.Errorf("Interpret(%q) = %+v, want company %q position %q",
				tt.text, action, tt.company, tt.position)
		}
	}

	// "additional" starts with "add" but has no separating space.
	if _, ok := Interpret("additional info at hand", testBoard()).(OpenCreateForm); ok {
		t.Error("\"additional...\" matched the create rule")
	}
}

func TestInterpretCount(t *testing.T) {
	b := testBoard()

	resp, ok := Interpret("how many offer", b).(TextResponse)
	if !ok {
		t.Fatal("count query is not a TextResponse")
	}
	if resp.Body != "You have 2 offer applications in Summer 2026." {
		t.Errorf("count body = %q", resp.Body)
	}

	// No status keyword counts everything in the active term.
	resp, _ = Interpret("how many applications do I have", b).(TextResponse)
	if resp.Body != "You have 3 applications in Summer 2026." {
		t.Errorf("total count body = %q", resp.Body)
	}

	// Singular noun for one.
	b.apps = b.apps[:1]
	resp, _ = Interpret("count offers", b).(TextResponse)
	if resp.Body != "You have 1 offer application in Summer 2026." {
		t.Errorf("singular count body = %q", resp.Body)
	}
}

func TestInterpretSearch(t *testing.T) {
	b := testBoard()

	resp, ok := Interpret("find Acme", b).(TextResponse)
	if !ok {
		t.Fatal("search is not a TextResponse")
	}
	if !strings.Contains(resp.Body, "Found 1 in Summer 2026") ||
		!strings.Contains(resp.Body, "Acme: Backend Intern (offer)") {
		t.Errorf("search body = %q", resp.Body)
	}

	// Substring search over positions too.
	resp, _ = Interpret("show Intern", b).(TextResponse)
	if !strings.Contains(resp.Body, "Found 3 in Summer 2026") {
		t.Errorf("position search body = %q", resp.Body)
	}

	// A status word after a search verb reads as a count.
	resp, _ = Interpret("show applied", b).(TextResponse)
	if resp.Body != "You have 1 applied application in Summer 2026." {
		t.Errorf("status search body = %q", resp.Body)
	}

	resp, _ = Interpret("find Vandelay", b).(TextResponse)
	if !strings.Contains(resp.Body, "couldn't find anything") {
		t.Errorf("no-match body = %q", resp.Body)
	}
}

func TestInterpretSwitch(t *testing.T) {
	b := testBoard()

	action, ok := Interpret("switch to Fall", b).(SwitchTerm)
	if !ok {
		t.Fatal("switch is not a SwitchTerm")
	}
	if action.TermID != "t2" {
		t.Errorf("SwitchTerm.TermID = %q, want t2", action.TermID)
	}

	// Case-insensitive partial match against term names.
	if action, ok := Interpret("please switch to summer 2026", b).(SwitchTerm); !ok || action.TermID != "t1" {
		t.Errorf("partial switch = %#v", action)
	}

	// An unknown term name stays a text reply, never a mutation.
	resp, ok := Interpret("switch to Winter", b).(TextResponse)
	if !ok || !strings.Contains(resp.Body, `"winter"`) {
		t.Errorf("unknown term reply = %#v", resp)
	}
}

// Ambiguous input resolves by rule order, count before search.
func TestInterpretPrecedence(t *testing.T) {
	if _, ok := Interpret("find how many offers", testBoard()).(TextResponse); !ok {
		t.Fatal("mixed query is not a TextResponse")
	}
	resp := Interpret("find how many offers", testBoard()).(TextResponse)
	if resp.Body != "You have 2 offer applications in Summer 2026." {
		t.Errorf("count rule should win over search, got %q", resp.Body)
	}
}

func TestInterpretFallback(t *testing.T) {
	resp, ok := Interpret("what's the weather like", testBoard()).(TextResponse)
	if !ok {
		t.Fatal("fallback is not a TextResponse")
	}
	if !strings.Contains(resp.Body, "Not sure what you mean") {
		t.Errorf("fallback body = %q", resp.Body)
	}
}
