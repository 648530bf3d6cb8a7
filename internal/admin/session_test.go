package admin_test

import (
	"testing"

	"github.com/leighmacdonald/mrs-board/internal/admin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSessionGate(t *testing.T) {
	cases := []struct {
		name     string
		user     string
		password string
		want     admin.State
	}{
		{name: "exact pair", user: "admin", password: "admin", want: admin.LoggedIn},
		{name: "wrong password", user: "admin", password: "hunter2", want: admin.LoggedOut},
		{name: "wrong user", user: "root", password: "admin", want: admin.LoggedOut},
		{name: "empty", user: "", password: "", want: admin.LoggedOut},
		{name: "case differs", user: "Admin", password: "admin", want: admin.LoggedOut},
		{name: "trailing space", user: "admin ", password: "admin", want: admin.LoggedOut},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session := admin.NewSession(admin.StaticVerifier{User: "admin", Password: "admin"})
			session.Open()

			ok := session.Login(tc.user, tc.password)
			require.Equal(t, tc.want, session.State())
			require.Equal(t, tc.want == admin.LoggedIn, ok)
			require.Equal(t, tc.want == admin.LoggedOut, session.ErrorVisible())
		})
	}
}

func TestSessionTransitions(t *testing.T) {
	session := admin.NewSession(admin.StaticVerifier{User: "admin", Password: "admin"})
	require.Equal(t, admin.LoggedOut, session.State())

	session.Login("admin", "nope")
	require.True(t, session.ErrorVisible())

	// Reopening clears the error.
	session.Open()
	require.False(t, session.ErrorVisible())
	require.Equal(t, admin.LoggedOut, session.State())

	require.True(t, session.Login("admin", "admin"))
	require.True(t, session.LoggedIn())
	require.False(t, session.ErrorVisible())

	session.Logout()
	require.Equal(t, admin.LoggedOut, session.State())

	// Opening always resets, even while logged in.
	session.Login("admin", "admin")
	session.Open()
	require.False(t, session.LoggedIn())
}

func TestNilVerifierRejects(t *testing.T) {
	session := admin.NewSession(nil)
	require.False(t, session.Login("admin", "admin"))
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier, errVerifier := admin.NewBcryptVerifier("accueil", string(hash))
	require.NoError(t, errVerifier)

	require.True(t, verifier.Verify("accueil", "s3cret"))
	require.False(t, verifier.Verify("accueil", "admin"))
	require.False(t, verifier.Verify("admin", "s3cret"))

	session := admin.NewSession(verifier)
	require.True(t, session.Login("accueil", "s3cret"))

	_, errInvalid := admin.NewBcryptVerifier("accueil", "plaintext")
	require.Error(t, errInvalid)
}
