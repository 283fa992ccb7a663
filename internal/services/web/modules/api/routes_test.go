package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	coredice "github.com/louisbranch/gmscreen/internal/core/dice"
	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/rules/lookup"
	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

func testCatalog() *catalog.Catalog {
	return catalog.MustNew(catalog.Metadata{SystemID: "nightcity", SystemVersion: "v1", Source: "test", Locale: "en-US"}, []catalog.Entry{
		{ID: "combat-initiative", Title: "Initiative", Category: catalog.CategoryCombat, Content: "REF + 1d10", Related: []string{"combat-armor", "ghost-rule"}, QuickRef: true, Page: 126},
		{ID: "combat-armor", Title: "Armor", Category: catalog.CategoryCombat, Content: "Stopping power ablates.", Page: 186},
		{ID: "net-interface", Title: "Interface", Category: catalog.CategoryNetrunning, Content: "Netrunner actions", QuickRef: true, Page: 199},
	})
}

func testMux(t *testing.T) http.Handler {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{Catalog: testCatalog()})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.APIPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content-type = %q", ct)
	}
	if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
}

func TestMountRequiresCatalog(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatal("expected error without catalog")
	}
	if New().ID() != "api" {
		t.Fatalf("ID() = %q", New().ID())
	}
	registerRoutes(nil, newHandlers(lookup.New(testCatalog()), coredice.NewRoller()))
}

func TestSearchReturnsGroups(t *testing.T) {
	t.Parallel()

	rr := do(t, testMux(t), http.MethodGet, routepath.APIRules+"?quick=1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got lookup.SearchResult
	decode(t, rr, &got)
	if got.Total != 2 || len(got.Groups) != 2 {
		t.Fatalf("result = %+v", got)
	}
	if got.Groups[0].Entries[0].ID != "combat-initiative" {
		t.Fatalf("first entry = %q", got.Groups[0].Entries[0].ID)
	}
}

func TestSearchEmptyResultKeepsGroupsArray(t *testing.T) {
	t.Parallel()

	rr := do(t, testMux(t), http.MethodGet, routepath.APIRules+"?q=zzz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"groups":[]`) {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestSearchStructuredFilter(t *testing.T) {
	t.Parallel()

	rr := do(t, testMux(t), http.MethodGet, routepath.APIRules+"?filter=page+%3E+150", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	var got lookup.SearchResult
	decode(t, rr, &got)
	if got.Total != 2 {
		t.Fatalf("Total = %d, want 2", got.Total)
	}

	rr = do(t, testMux(t), http.MethodGet, routepath.APIRules+"?filter=rarity+%3D+%22rare%22", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("invalid filter status = %d", rr.Code)
	}
	var errBody map[string]string
	decode(t, rr, &errBody)
	if errBody["error"] == "" {
		t.Fatal("expected error message")
	}
}

func TestRuleDetail(t *testing.T) {
	t.Parallel()

	rr := do(t, testMux(t), http.MethodGet, routepath.APIRule("combat-initiative"), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got lookup.RuleDetail
	decode(t, rr, &got)
	if got.ID != "combat-initiative" || got.Page != 126 {
		t.Fatalf("entry = %+v", got.Entry)
	}
	if len(got.RelatedEntries) != 1 || got.RelatedEntries[0].ID != "combat-armor" {
		t.Fatalf("related = %+v", got.RelatedEntries)
	}

	rr = do(t, testMux(t), http.MethodGet, routepath.APIRule("ghost-rule"), "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d", rr.Code)
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	rr := do(t, testMux(t), http.MethodGet, routepath.APICategories, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got CategoriesResponse
	decode(t, rr, &got)
	if len(got.Categories) != len(catalog.Categories()) {
		t.Fatalf("categories = %+v", got.Categories)
	}
	if got.Categories[0].Category != catalog.CategoryCombat || got.Categories[0].Count != 2 {
		t.Fatalf("first facet = %+v", got.Categories[0])
	}
}

func TestDiceRoll(t *testing.T) {
	t.Parallel()

	rr := do(t, testMux(t), http.MethodPost, routepath.APIDiceRoll, `{"notation":"2d6+3","seed":42}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	var got coredice.NotationRoll
	decode(t, rr, &got)
	want, err := coredice.RollNotation("2d6+3", 42)
	if err != nil {
		t.Fatalf("RollNotation() error = %v", err)
	}
	if got.Expression != "2d6+3" || got.Total != want.Total || got.Seed != 42 {
		t.Fatalf("roll = %+v, want total %d", got, want.Total)
	}
}

func TestDiceRollErrors(t *testing.T) {
	t.Parallel()

	mux := testMux(t)
	tests := []struct {
		name   string
		method string
		body   string
		want   int
	}{
		{name: "bad notation", method: http.MethodPost, body: `{"notation":"d"}`, want: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, body: `{"notation":"1d10","extra":1}`, want: http.StatusBadRequest},
		{name: "empty body", method: http.MethodPost, body: "", want: http.StatusBadRequest},
		{name: "wrong method", method: http.MethodGet, want: http.StatusMethodNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(t, mux, tc.method, routepath.APIDiceRoll, tc.body)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestDiceRollSeedFailure(t *testing.T) {
	t.Parallel()

	roller := coredice.Roller{ResolveSeed: func(*int64) (int64, error) { return 0, errors.New("no entropy") }}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(lookup.New(testCatalog()), roller))
	rr := do(t, mux, http.MethodPost, routepath.APIDiceRoll, `{"notation":"1d10"}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestUnknownAPIPathIsJSON404(t *testing.T) {
	t.Parallel()

	rr := do(t, testMux(t), http.MethodGet, routepath.APIPrefix+"nope", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	var body map[string]string
	decode(t, rr, &body)
	if body["error"] == "" {
		t.Fatal("expected error message")
	}
}
