package testutil

import (
	"os"
	"testing"
)

func TestCheckGoldenCasesDiscovered(t *testing.T) {
	cases, err := CheckGoldenCases()
	if err != nil {
		t.Fatalf("CheckGoldenCases: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("expected at least one checker golden case")
	}

	for _, c := range cases {
		if _, err := os.Stat(c.InputPath); err != nil {
			t.Fatalf("input fixture missing for %s: %v", c.Name, err)
		}
		if _, err := os.Stat(c.ExpectedPath); err != nil {
			t.Fatalf("expected fixture missing for %s: %v", c.Name, err)
		}
	}
}
