package session

import (
	"regexp"
	"strings"
)

// ValidationError is a client-detected input error. It never reaches the
// network and its message is deterministic.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// repoURLPattern matches https://github.com/<owner>/<name>, with an
// optional http/https protocol, optional www., and optional trailing
// slash. Owner and name are word characters, dots, and hyphens.
var repoURLPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?github\.com/[\w.-]+/[\w.-]+/?$`)

// ValidateRepositoryURL checks the syntactic shape of a repository URL.
// It never verifies the repository exists; an unreachable repository is
// detected downstream by the analyze service.
func ValidateRepositoryURL(raw string) error {
	url := strings.TrimSpace(raw)
	if url == "" {
		return &ValidationError{Message: "missing repository URL"}
	}
	if !repoURLPattern.MatchString(url) {
		return &ValidationError{Message: "repository URL must look like https://github.com/owner/repo"}
	}
	return nil
}

// ValidateAnswerSet fails only when every answer trims to empty. Partial
// answer sets are valid: an unanswered question is a zero-credit input to
// evaluation, not an error.
func ValidateAnswerSet(answers map[string]string) error {
	for _, a := range answers {
		if trimmed(a) != "" {
			return nil
		}
	}
	return &ValidationError{Message: "no answers provided"}
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
