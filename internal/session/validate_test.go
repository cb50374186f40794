package session

import "testing"

func TestValidateRepositoryURL(t *testing.T) {
	valid := []string{
		"https://github.com/owner/repo",
		"http://github.com/owner/repo",
		"github.com/owner/repo",
		"https://www.github.com/owner/repo",
		"www.github.com/owner/repo",
		"https://github.com/owner/repo/",
		"https://github.com/some-owner/some.repo-name",
		"https://github.com/owner_1/repo_2",
		"  https://github.com/owner/repo  ",
	}
	for _, url := range valid {
		if err := ValidateRepositoryURL(url); err != nil {
			t.Errorf("ValidateRepositoryURL(%q) = %v, want nil", url, err)
		}
	}

	invalid := []string{
		"",
		"   ",
		"https://gitlab.com/owner/repo",
		"https://github.com/owner",
		"https://github.com/owner/repo/tree/main",
		"github.com//repo",
		"ftp://github.com/owner/repo",
		"not a url",
		"https://github.com/owner/re po",
	}
	for _, url := range invalid {
		if err := ValidateRepositoryURL(url); err == nil {
			t.Errorf("ValidateRepositoryURL(%q) = nil, want error", url)
		}
	}
}

func TestValidateRepositoryURL_EmptyMessage(t *testing.T) {
	err := ValidateRepositoryURL("   ")
	if err == nil {
		t.Fatal("expected error for blank URL")
	}
	if err.Error() != "missing repository URL" {
		t.Errorf("message = %q, want %q", err.Error(), "missing repository URL")
	}
}

func TestValidateAnswerSet(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]string
		wantErr bool
	}{
		{"all empty", map[string]string{"q1": "", "q2": ""}, true},
		{"all whitespace", map[string]string{"q1": "   ", "q2": "\n\t"}, true},
		{"no questions", map[string]string{}, true},
		{"one answered", map[string]string{"q1": "binary search", "q2": ""}, false},
		{"all answered", map[string]string{"q1": "a", "q2": "b"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswerSet(tt.answers)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
