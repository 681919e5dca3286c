package checksum

import "testing"

func TestSum_Stable(t *testing.T) {
	a := Sum([]byte("osirris"))
	b := Sum([]byte("osirris"))
	if a != b {
		t.Fatalf("digests differ: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("len = %d, want 64", len(a))
	}
}

func TestSum_Known(t *testing.T) {
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Sum(nil); got != empty {
		t.Errorf("Sum(nil) = %q", got)
	}
}

func TestETag_Quoted(t *testing.T) {
	got := ETag([]byte("osirris"))
	if want := `"` + Sum([]byte("osirris")) + `"`; got != want {
		t.Errorf("ETag = %s, want %s", got, want)
	}
}

func TestView(t *testing.T) {
	type page struct {
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}
	body, tag, err := View(page{Title: "Home", Tags: []string{}})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if string(body) != `{"title":"Home","tags":[]}` {
		t.Errorf("body = %s", body)
	}
	if tag != ETag(body) {
		t.Errorf("tag = %s, want %s", tag, ETag(body))
	}
	_, again, _ := View(page{Title: "Home", Tags: []string{}})
	if again != tag {
		t.Errorf("equal views tagged differently: %s vs %s", tag, again)
	}
	if _, _, err := View(func() {}); err == nil {
		t.Error("expected error for unencodable value")
	}
}
