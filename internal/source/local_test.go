package source

import (
	"context"
	"errors"
	"testing"

	"github.com/starford/osirris/internal/apperr"
	"github.com/starford/osirris/internal/content"
	"github.com/starford/osirris/internal/testutil"
)

func TestLocalFetch_Singleton(t *testing.T) {
	_, store := testutil.ContentTree(t, map[string]string{
		"pages/index.mdx": "---\ntitle: Osirris\nhero:\n  heading: Clean water\n---\n\nWelcome body.\n",
	})
	res := NewLocal(store, nil).Fetch(context.Background(), content.Pages, content.IndexKey)
	if res.Outcome() != content.OutcomeFound {
		t.Fatalf("outcome = %v, err = %v", res.Outcome(), res.Err)
	}
	rec := res.First()
	if rec.ID != "index" {
		t.Errorf("id = %q", rec.ID)
	}
	if v, _ := rec.Get("hero.heading"); v != "Clean water" {
		t.Errorf("hero.heading = %v", v)
	}
	if rec.Body != "Welcome body.\n" {
		t.Errorf("body = %q", rec.Body)
	}
	if rec.ModTime.IsZero() {
		t.Error("expected mod time")
	}
}

func TestLocalFetch_JSONSingleton(t *testing.T) {
	_, store := testutil.ContentTree(t, map[string]string{
		"global/index.json": `{"footer":{"copyright":"© 2025 Osirris"}}`,
	})
	res := NewLocal(store, nil).Fetch(context.Background(), content.Global, content.IndexKey)
	if res.Outcome() != content.OutcomeFound {
		t.Fatalf("outcome = %v, err = %v", res.Outcome(), res.Err)
	}
	if v, _ := res.First().Get("footer.copyright"); v != "© 2025 Osirris" {
		t.Errorf("copyright = %v", v)
	}
}

func TestLocalFetch_MissingIsNotFound(t *testing.T) {
	_, store := testutil.ContentTree(t, nil)
	res := NewLocal(store, nil).Fetch(context.Background(), content.Pages, content.IndexKey)
	if res.Outcome() != content.OutcomeFailed {
		t.Fatalf("outcome = %v", res.Outcome())
	}
	if !errors.Is(res.Err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", res.Err)
	}
}

func TestLocalFetch_DottedNeighbour(t *testing.T) {
	_, store := testutil.ContentTree(t, map[string]string{
		"blog/a.b.mdx": "---\ntitle: Wrong\n---\n",
		"blog/a.mdx":   "---\ntitle: Right\n---\n",
		"blog/c.d.mdx": "---\ntitle: Other\n---\n",
	})
	src := NewLocal(store, nil)

	res := src.Fetch(context.Background(), content.Posts, "a")
	if res.Outcome() != content.OutcomeFound {
		t.Fatalf("outcome = %v, err = %v", res.Outcome(), res.Err)
	}
	if rec := res.First(); rec.ID != "a" {
		t.Errorf("id = %q, want a", rec.ID)
	}
	if v, _ := res.First().Get("title"); v != "Right" {
		t.Errorf("title = %v", v)
	}

	res = src.Fetch(context.Background(), content.Posts, "c")
	if !errors.Is(res.Err, apperr.ErrNotFound) {
		t.Errorf("c: outcome = %v, err = %v, want ErrNotFound", res.Outcome(), res.Err)
	}
}

func TestLocalFetch_Malformed(t *testing.T) {
	_, store := testutil.ContentTree(t, map[string]string{
		"global/index.json": `{"footer":`,
	})
	res := NewLocal(store, nil).Fetch(context.Background(), content.Global, content.IndexKey)
	if !errors.Is(res.Err, apperr.ErrMalformedContent) {
		t.Errorf("err = %v, want ErrMalformedContent", res.Err)
	}
}

func TestLocalFetch_RejectsTraversalKey(t *testing.T) {
	_, store := testutil.ContentTree(t, map[string]string{
		"secret.md": "---\ntitle: x\n---\n",
	})
	for _, key := range []string{"../secret", "", ".hidden", "a*"} {
		res := NewLocal(store, nil).Fetch(context.Background(), content.Posts, key)
		if res.Outcome() != content.OutcomeFailed {
			t.Errorf("key %q: outcome = %v", key, res.Outcome())
		}
	}
}

func TestLocalFetchAll_SkipsMalformed(t *testing.T) {
	_, store := testutil.ContentTree(t, map[string]string{
		"blog/water-savings.mdx": "---\ntitle: Water savings\n---\nBody\n",
		"blog/broken.mdx":        "---\ntitle: [unterminated\n---\n",
		"blog/pilot-results.md":  "---\ntitle: Pilot results\n---\n",
		"blog/notes.txt":         "ignored",
	})
	res := NewLocal(store, nil).FetchAll(context.Background(), content.Posts)
	if res.Outcome() != content.OutcomeFound {
		t.Fatalf("outcome = %v, err = %v", res.Outcome(), res.Err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(res.Records))
	}
	ids := map[string]bool{}
	for _, r := range res.Records {
		ids[r.ID] = true
	}
	if !ids["water-savings"] || !ids["pilot-results"] {
		t.Errorf("ids = %v", ids)
	}
}

func TestLocalFetchAll_MissingDirIsEmpty(t *testing.T) {
	_, store := testutil.ContentTree(t, nil)
	res := NewLocal(store, nil).FetchAll(context.Background(), content.Media)
	if res.Outcome() != content.OutcomeEmpty {
		t.Errorf("outcome = %v, err = %v", res.Outcome(), res.Err)
	}
}

func TestLocalFetchAll_DuplicateStem(t *testing.T) {
	_, store := testutil.ContentTree(t, map[string]string{
		"blog/hello.md":  "---\ntitle: From md\n---\n",
		"blog/hello.mdx": "---\ntitle: From mdx\n---\n",
	})
	res := NewLocal(store, nil).FetchAll(context.Background(), content.Posts)
	if len(res.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(res.Records))
	}
	if v, _ := res.Records[0].Get("title"); v != "From md" {
		t.Errorf("title = %v", v)
	}
}

func TestLocalFetch_CanceledContext(t *testing.T) {
	_, store := testutil.ContentTree(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := NewLocal(store, nil).FetchAll(ctx, content.Posts)
	if !errors.Is(res.Err, context.Canceled) {
		t.Errorf("err = %v", res.Err)
	}
}
