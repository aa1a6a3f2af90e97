package session

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func makeToken(t *testing.T, claims Claims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("makeToken() failed: %v", err)
	}
	return token
}

func TestDecodeToken(t *testing.T) {
	claims := Claims{
		StandardClaims: jwt.StandardClaims{Subject: "usr-1"},
		Username:       "awe",
		Email:          "awe@test.cd",
		Role:           RoleStudent,
		ProfileID:      "prof-1",
	}
	valid := makeToken(t, claims)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "no token", wantErr: ErrMalformedToken},
		{name: "not a jwt", token: "lmaooolol", wantErr: ErrMalformedToken},
		{name: "invalid parts", token: "a.b", wantErr: ErrMalformedToken},
		{name: "valid token", token: valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeToken(tt.token)
			if err != tt.wantErr {
				t.Fatalf("DecodeToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && *got != claims {
				t.Errorf("DecodeToken() = %+v, want %+v", got, claims)
			}
		})
	}
}

func TestClaims_Expired(t *testing.T) {
	now := time.Now()
	NowFunc = func() time.Time { return now }
	defer func() { NowFunc = time.Now }()

	tests := []struct {
		name string
		exp  int64
		want bool
	}{
		{name: "no expiry never expires", exp: 0, want: false},
		{name: "future expiry", exp: now.Add(time.Hour).Unix(), want: false},
		{name: "past expiry", exp: now.Add(-time.Hour).Unix(), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Claims{StandardClaims: jwt.StandardClaims{ExpiresAt: tt.exp}}
			if got := c.Expired(); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromToken(t *testing.T) {
	access := makeToken(t, Claims{
		StandardClaims: jwt.StandardClaims{Subject: "usr-1"},
		Username:       "awe",
		Email:          "awe@test.cd",
		Role:           RoleManager,
		ProfileID:      "prof-1",
	})

	sess, err := FromToken(access, "refresh-1")
	if err != nil {
		t.Fatalf("FromToken() failed: %v", err)
	}
	want := Session{
		UserID:       "usr-1",
		ProfileID:    "prof-1",
		Username:     "awe",
		Email:        "awe@test.cd",
		Role:         RoleManager,
		AccessToken:  access,
		RefreshToken: "refresh-1",
	}
	if sess != want {
		t.Errorf("FromToken() = %+v, want %+v", sess, want)
	}

	if _, err = FromToken("lol", ""); err != ErrMalformedToken {
		t.Errorf("FromToken() error = %v, want %v", err, ErrMalformedToken)
	}
}

func TestIsElevated(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{role: RoleAdmin, want: true},
		{role: RoleManager, want: true},
		{role: "manager", want: true},
		{role: RoleInstructor, want: false},
		{role: RoleStudent, want: false},
		{role: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsElevated(tt.role); got != tt.want {
				t.Errorf("IsElevated(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}
