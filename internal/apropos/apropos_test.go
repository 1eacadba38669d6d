package apropos

import (
	"reflect"
	"testing"

	"github.com/kestrel-md/curio/internal/collection"
)

func testCollections() []*collection.Collection {
	return []*collection.Collection{
		{
			ID:          "devops",
			Name:        "DevOps Essentials",
			Description: "Terraform reviews and pipeline automation prompts",
			Tags:        []string{"terraform", "ci"},
			Items: []collection.Item{
				{Path: "prompts/terraform-review.prompt.md"},
			},
		},
		{
			ID:          "writing",
			Name:        "Technical Writing",
			Description: "Documentation and editing prompts",
			Items: []collection.Item{
				{Path: "prompts/edit-docs.prompt.md"},
			},
		},
	}
}

func TestSearch_RanksExactIDFirst(t *testing.T) {
	entries := BuildEntries(testCollections())

	matches := Search(entries, "devops")
	if len(matches) == 0 {
		t.Fatal("Search(devops) returned no matches")
	}
	if matches[0].Entry.ID != "devops" {
		t.Errorf("top match = %q, want devops", matches[0].Entry.ID)
	}
}

func TestSearch_MatchesDescriptionAndTags(t *testing.T) {
	entries := BuildEntries(testCollections())

	matches := Search(entries, "terraform")
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Entry.ID != "devops" {
		t.Errorf("match = %q, want devops", matches[0].Entry.ID)
	}

	matches = Search(entries, "documentation")
	if len(matches) != 1 || matches[0].Entry.ID != "writing" {
		t.Errorf("Search(documentation) = %v, want the writing collection", matches)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	entries := BuildEntries(testCollections())

	if matches := Search(entries, "kubernetes"); matches != nil {
		t.Errorf("Search(kubernetes) = %v, want nil", matches)
	}
	if matches := Search(entries, "   "); matches != nil {
		t.Errorf("Search(blank) = %v, want nil", matches)
	}
}

func TestExtractKeywords(t *testing.T) {
	got := extractKeywords("The Terraform reviews, and the pipeline automation!")
	want := []string{"terraform", "reviews", "pipeline", "automation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractKeywords() = %v, want %v", got, want)
	}
}

func TestExtractKeywords_DedupesAndFiltersShortWords(t *testing.T) {
	got := extractKeywords("Go go CI ci review review")
	want := []string{"review"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractKeywords() = %v, want %v", got, want)
	}
}
