package main

import (
	"net/url"
	"strings"
	"testing"
)

const mustEncodeSet = " \t!\"#$&'()*+,-./:;<=>?@[\\]^_`{|}~"

func Test_encodePathSegment(t *testing.T) {
	tests := []struct {
		testName string // description of this test case
		// Named input parameters for target function.
		in   string
		want string
	}{
		{
			testName: "project id",
			in:       "feldspar-io/fldctl",
			want:     "feldspar%2Dio%2Ffldctl",
		},
		{
			testName: "alphanumeric untouched",
			in:       "abcXYZ0129",
			want:     "abcXYZ0129",
		},
		{
			testName: "space and tab",
			in:       "a b\tc",
			want:     "a%20b%09c",
		},
		{
			testName: "empty",
			in:       "",
			want:     "",
		},
		{
			testName: "percent is re-encoded",
			in:       "100%",
			want:     "100%25",
		},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			got := encodePathSegment(tt.in)
			if got != tt.want {
				t.Errorf("encodePathSegment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func Test_encodePathSegmentMustEncode(t *testing.T) {
	encoded := encodePathSegment(mustEncodeSet)
	for _, c := range mustEncodeSet {
		if strings.ContainsRune(encoded, c) {
			t.Errorf("encodePathSegment() output %q contains raw %q", encoded, c)
		}
	}
}

func Test_encodePathSegmentIdempotent(t *testing.T) {
	inputs := []string{
		mustEncodeSet,
		"feldspar-io/fldctl",
		"plain",
		"",
	}
	for _, in := range inputs {
		encoded := encodePathSegment(in)
		decoded, err := url.PathUnescape(encoded)
		if err != nil {
			t.Fatalf("PathUnescape(%q) failed: %v", encoded, err)
		}
		if again := encodePathSegment(decoded); again != encoded {
			t.Errorf("re-encoding %q = %q, want %q", in, again, encoded)
		}
	}
}
