package countries

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	cases := []struct {
		base string
		fns  []OptionFn
		want string
	}{
		{base: "/admin", want: "/admin/api/countries"},
		{base: "admin", want: "/admin/api/countries"},
		{base: "", want: "/api/countries"},
		{base: "/", want: "/api/countries"},
		{base: "/admin/", fns: []OptionFn{WithRoutePath("api/dial-codes")}, want: "/admin/api/dial-codes"},
	}
	for _, tc := range cases {
		if got := MountPath(tc.base, tc.fns...); got != tc.want {
			t.Fatalf("MountPath(%q): got %q want %q", tc.base, got, tc.want)
		}
	}
}

func TestRegisterRoutes_RegistersHandler(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := New(WithRegions([]string{"US"})).RegisterRoutes(mux, "/admin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/admin/api/countries" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?q=us&limit=1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
