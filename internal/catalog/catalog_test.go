package catalog

import (
	"encoding/json"
	"testing"
)

func TestDemoPayloadsAreValidJSON(t *testing.T) {
	for _, ex := range DemoExamples() {
		if !json.Valid([]byte(ex.Payload)) {
			t.Fatalf("payload of %s is not valid JSON", ex.ID)
		}
		if len(ex.Steps) == 0 {
			t.Fatalf("example %s has no steps", ex.ID)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	first := DemoExamples()
	first[0].Steps[0].Title = "changed"
	if DemoExamples()[0].Steps[0].Title == "changed" {
		t.Fatal("DemoExamples shares step slices between calls")
	}

	convs := SeedConversations()
	convs[0].Name = "changed"
	if SeedConversations()[0].Name == "changed" {
		t.Fatal("SeedConversations shares state between calls")
	}
}

func TestCannedResponses(t *testing.T) {
	if n := len(CannedResponses()); n != 4 {
		t.Fatalf("expected 4 canned responses, got %d", n)
	}
}
