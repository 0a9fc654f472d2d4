package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListTags(t *testing.T) {
	mux, srv := setupServer(t)
	mux.HandleFunc(
		"GET /api/v4/projects/{id}/releases",
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]map[string]string{
				{"tag_name": "v1.2.0"},
				{"tag_name": "v1.1.0"},
				{"tag_name": "v1.0.0"},
			})
		},
	)

	c := newReleaseClient(srv.URL)
	got, err := c.ListTags(context.Background(), "feldspar-io/fldctl")
	if err != nil {
		t.Fatalf("ListTags() failed: %v", err)
	}

	want := []string{"v1.2.0", "v1.1.0", "v1.0.0"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("ListTags() mismatch (-want/+got): %v", d)
	}
}

func Test_filterTags(t *testing.T) {
	tests := []struct {
		testName string // description of this test case
		// Named input parameters for target function.
		tags       []string
		constraint string
		want       []string
		wantErr    bool
	}{
		{
			testName: "empty constraint matches all, newest first",
			tags:     []string{"v0.1.0", "v0.2.0"},
			want:     []string{"v0.2.0", "v0.1.0"},
		},
		{
			testName:   "latest alias",
			tags:       []string{"v0.1.0", "v0.2.0"},
			constraint: "latest",
			want:       []string{"v0.2.0", "v0.1.0"},
		},
		{
			testName:   "constraint filters",
			tags:       []string{"v1.0.0", "v1.1.0", "v2.0.0"},
			constraint: ">=1.1.0 <2.0.0",
			want:       []string{"v1.1.0"},
		},
		{
			testName: "non-semver tags dropped",
			tags:     []string{"nightly", "v1.0.0"},
			want:     []string{"v1.0.0"},
		},
		{
			testName:   "invalid constraint",
			tags:       []string{"v1.0.0"},
			constraint: "not-a-constraint",
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			got, gotErr := filterTags(tt.tags, tt.constraint)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("filterTags() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("filterTags() succeeded unexpectedly")
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("filterTags() mismatch (-want/+got): %v", d)
			}
		})
	}
}
