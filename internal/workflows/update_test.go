package workflows

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
)

func TestCheckUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/acme/passmgr/releases/latest" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"tag_name":"v0.3.0","html_url":"https://example.com/v0.3.0"}`))
	}))
	defer server.Close()

	result, err := CheckUpdate(context.Background(), UpdateOptions{
		CurrentVersion: "0.2.1",
		Owner:          "acme",
		Repo:           "passmgr",
		BaseURL:        server.URL,
	})
	if err != nil {
		t.Fatalf("CheckUpdate failed: %v", err)
	}
	if !result.UpdateAvailable || result.Latest != "0.3.0" {
		t.Errorf("Unexpected result %+v", result)
	}

	_, err = CheckUpdate(context.Background(), UpdateOptions{
		CurrentVersion: "0.2.1",
		Owner:          "acme",
		Repo:           "missing",
		BaseURL:        server.URL,
	})
	if !errors.Is(err, perrors.ErrUpdateCheckFailed) {
		t.Errorf("Expected ErrUpdateCheckFailed, got %v", err)
	}
}
