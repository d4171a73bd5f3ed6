package adapters

import (
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/Slime-Stack/Sluggers/domain"
)

func TestClassifyBackendErrorRateLimitedByCode(t *testing.T) {
	apiErr := &genai.APIError{Code: 429, Message: "Resource has been exhausted"}

	err := classifyBackendError(narrativeStage, apiErr)
	if !domain.IsRateLimited(err) {
		t.Error("429 should classify as rate limited, got:", err)
	}

	var backendErr *domain.BackendError
	if !errors.As(err, &backendErr) {
		t.Fatal("expected a BackendError")
	}
	if backendErr.Stage != narrativeStage {
		t.Error("stage not carried:", backendErr.Stage)
	}
}

func TestClassifyBackendErrorRateLimitedByMessage(t *testing.T) {
	for _, msg := range []string{
		"rpc error: code = ResourceExhausted desc = Quota exceeded",
		"rate limit hit, try again later",
	} {
		err := classifyBackendError(visualPromptStage, errors.New(msg))
		if !domain.IsRateLimited(err) {
			t.Errorf("message %q should classify as rate limited", msg)
		}
	}
}

func TestClassifyBackendErrorOtherFailures(t *testing.T) {
	for _, underlying := range []error{
		&genai.APIError{Code: 500, Message: "internal error"},
		errors.New("dial tcp: connection refused"),
	} {
		err := classifyBackendError(narrativeStage, underlying)
		if domain.IsRateLimited(err) {
			t.Error("non-quota failure misclassified as rate limited:", underlying)
		}
		if !errors.Is(err, underlying) {
			t.Error("underlying error must stay reachable:", underlying)
		}
	}
}
