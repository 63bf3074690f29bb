package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/unisync/unisync-backend/internal/platform/ctxutil"
)

func newAuthService(t *testing.T, stores testStores) AuthService {
	t.Helper()
	return NewAuthService(testLogger(t), stores.users, stores.credentials, nil, "test-secret", time.Hour)
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Name:            "Alice Chen",
		Email:           "alice@campus.edu",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Year:            "2",
		Major:           "CS",
		Skills:          "Python, Guitar",
		Interests:       "AI, Music",
	}
}

func TestRegisterUser(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	svc := newAuthService(t, stores)
	ctx := context.Background()

	user, err := svc.RegisterUser(ctx, validRegistration())
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("first user id: got=%d want=1", user.ID)
	}
	if user.CanTeach != "None yet" {
		t.Errorf("empty can_teach default: got=%q", user.CanTeach)
	}
	if user.WantsToLearn != "Open to learning" {
		t.Errorf("empty wants_to_learn default: got=%q", user.WantsToLearn)
	}

	exists, err := stores.credentials.EmailExists(ctx, "alice@campus.edu")
	if err != nil || !exists {
		t.Fatalf("credentials not stored: exists=%v err=%v", exists, err)
	}
}

func TestRegisterUserValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr string
	}{
		{"missing name", func(in *RegisterInput) { in.Name = " " }, "name is required"},
		{"missing email", func(in *RegisterInput) { in.Email = "" }, "email is required"},
		{"missing password", func(in *RegisterInput) { in.Password = "" }, "password is required"},
		{"password mismatch", func(in *RegisterInput) { in.ConfirmPassword = "other" }, "do not match"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stores := newTestStores(t)
			svc := newAuthService(t, stores)

			in := validRegistration()
			tt.mutate(&in)
			_, err := svc.RegisterUser(context.Background(), in)
			if err == nil || !strings.Contains(strings.ToLower(err.Error()), tt.wantErr) {
				t.Fatalf("got err=%v want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	svc := newAuthService(t, stores)
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, validRegistration()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	in := validRegistration()
	in.Email = "ALICE@campus.edu"
	if _, err := svc.RegisterUser(ctx, in); err == nil {
		t.Fatal("expected duplicate email to be rejected case-insensitively")
	}
}

func TestLoginAndTokenRoundTrip(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	svc := newAuthService(t, stores)
	ctx := context.Background()

	registered, err := svc.RegisterUser(ctx, validRegistration())
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	token, err := svc.LoginUser(ctx, "alice@campus.edu", "hunter22")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	authed, err := svc.SetContextFromToken(ctx, token)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd, err := ctxutil.GetRequestData(authed)
	if err != nil {
		t.Fatalf("GetRequestData: %v", err)
	}
	if rd.UserID != registered.ID {
		t.Fatalf("token subject: got=%d want=%d", rd.UserID, registered.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	svc := newAuthService(t, stores)
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, validRegistration()); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	if _, err := svc.LoginUser(ctx, "alice@campus.edu", "wrong"); err == nil {
		t.Fatal("expected wrong password to be rejected")
	}
	if _, err := svc.LoginUser(ctx, "nobody@campus.edu", "hunter22"); err == nil {
		t.Fatal("expected unknown email to be rejected")
	}
}

func TestSetContextFromTokenRejectsGarbage(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	svc := newAuthService(t, stores)

	if _, err := svc.SetContextFromToken(context.Background(), "not.a.token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
