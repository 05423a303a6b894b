package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/kanbo/internal/app"
	"github.com/thenoetrevino/kanbo/internal/config"
	"github.com/thenoetrevino/kanbo/internal/logging"
	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/storage"
	"github.com/thenoetrevino/kanbo/internal/testutil"
)

// SetupCLITest starts a fake API and returns it with an App pointed at it.
// The app keeps its session in memory.
func SetupCLITest(t *testing.T) (*testutil.FakeAPI, *app.App) {
	t.Helper()
	fake := testutil.NewFakeAPI(t)

	cfg := config.Default()
	cfg.APIURL = fake.URL()

	appInstance, err := app.New(context.Background(), cfg,
		app.WithStorage(storage.NewMemory()),
		app.WithLogger(logging.Discard()),
	)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = appInstance.Close() })

	return fake, appInstance
}

// SignIn seeds an account on the fake API and signs the app in with it
func SignIn(t *testing.T, fake *testutil.FakeAPI, a *app.App) models.UserResponse {
	t.Helper()
	u := fake.SeedUser("Test User", "tester", "secret")
	if _, err := a.Store.SignIn(context.Background(), models.SignInRequest{Login: "tester", Password: "secret"}); err != nil {
		t.Fatalf("Failed to sign in: %v", err)
	}
	return u
}
