package testutil

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/Perlera89/campus/core/session"
)

// MakeToken mints a signed access token carrying the given claims. The client
// never verifies signatures, so any signing key does.
func MakeToken(t *testing.T, userID, username, email, role string, expiresAt ...time.Time) string {
	claims := session.Claims{
		StandardClaims: jwt.StandardClaims{Subject: userID},
		Username:       username,
		Email:          email,
		Role:           role,
		ProfileID:      "profile-" + userID,
	}
	if len(expiresAt) > 0 {
		claims.ExpiresAt = expiresAt[0].Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("MakeToken() failed: %v", err)
	}
	return token
}

func MarshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("MarshalObj() failed: %v", err)
	}
	return data
}

// JSONBytesEqual compares two JSON payloads structurally, printing a unified
// diff of the indented forms on mismatch.
func JSONBytesEqual(t *testing.T, got, want []byte) bool {
	var j1, j2 interface{}
	if err := json.Unmarshal(got, &j1); err != nil {
		t.Errorf("JSONBytesEqual() got is not JSON: %v", err)
		return false
	}
	if err := json.Unmarshal(want, &j2); err != nil {
		t.Errorf("JSONBytesEqual() want is not JSON: %v", err)
		return false
	}
	if reflect.DeepEqual(j1, j2) {
		return true
	}

	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(indent(t, j1)),
		B:        difflib.SplitLines(indent(t, j2)),
		FromFile: "got",
		ToFile:   "want",
		Context:  2,
	})
	t.Errorf("JSON mismatch:\n%s", diff)
	return false
}

func indent(t *testing.T, v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("indent() failed: %v", err)
	}
	return string(data)
}
