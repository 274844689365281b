package guides

import "testing"

func TestAllSectionsPresent(t *testing.T) {
	want := []string{
		"business_name", "category", "description", "photos",
		"hours", "menu", "reviews", "seo",
	}
	for _, section := range want {
		guide, ok := Get(section)
		if !ok {
			t.Errorf("section %q missing", section)
			continue
		}
		if guide.Section != section {
			t.Errorf("Get(%q).Section = %q", section, guide.Section)
		}
		if guide.Title == "" || guide.Content == "" || guide.Priority == "" {
			t.Errorf("section %q incomplete: %+v", section, guide)
		}
	}
	if len(All()) != len(want) {
		t.Errorf("All() returned %d sections, want %d", len(All()), len(want))
	}
}

func TestSectionsSorted(t *testing.T) {
	names := Sections()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("sections not sorted: %v", names)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, ok := Get("nonexistent"); ok {
		t.Error("Get(nonexistent) reported found")
	}
}
