package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Perlera89/campus/core"
	"github.com/Perlera89/campus/core/session"
	apisvc "github.com/Perlera89/campus/services/api"
	inmemstorage "github.com/Perlera89/campus/storage/inmem"
	"github.com/Perlera89/campus/store"
	testutil "github.com/Perlera89/campus/tests"
)

func setup(t *testing.T, remote http.HandlerFunc) (*commandLine, *bytes.Buffer) {
	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	conf := new(core.Config)
	conf.API.BaseURL = srv.URL

	out := &bytes.Buffer{}
	cli := &commandLine{
		out:      out,
		client:   apisvc.NewClient(conf),
		sessions: store.NewSessionStore(inmemstorage.Open()),
	}
	return cli, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantOutput string
	extra      interface{}
}

func Test_commandLine_login(t *testing.T) {
	access := ""
	remote := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/sign-in" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"tokens": map[string]string{"accessToken": access, "refreshToken": "refresh-1"},
			},
		})
	}

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"login"}, wantErr: errHelp},
		{name: "identifier but no password", args: []string{"login", "-identifier", "awe"}, wantErr: errHelp},
		{
			name: "signs in and persists the session",
			args: []string{"login", "-identifier", "AWE"}, extra: extra{pwd: "pwd"},
			wantOutput: "Signed in as awe (MANAGER)",
		},
	}
	for _, tt := range tests {
		cli, out := setup(t, remote)
		access = testutil.MakeToken(t, "usr-1", "awe", "awe@test.cd", session.RoleManager)
		args := append([]string{"campus"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err != tt.wantErr {
				t.Fatalf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantOutput != "" && !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.wantOutput)
			}
			if err == nil && cli.sessions.Session().AccessToken != access {
				t.Error("session was not stored")
			}
		})
	}
}

func Test_commandLine_whoami(t *testing.T) {
	cli, out := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if err := cli.run([]string{"campus", "whoami"}); err != nil {
		t.Fatalf("cli.run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Not signed in") {
		t.Errorf("output = %q, want 'Not signed in'", out.String())
	}
}

func Test_commandLine_courses(t *testing.T) {
	remote := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/course/all" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"courses": []map[string]interface{}{
					{"id": "c-1", "title": "Álgebra", "status": "IN_PROGRESS"},
				},
				"pagination": map[string]int{"total": 50, "page": 5, "limit": 10, "pages": 10},
			},
		})
	}

	cli, out := setup(t, remote)
	if err := cli.run([]string{"campus", "courses", "-page", "5"}); err != nil {
		t.Fatalf("cli.run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Álgebra") {
		t.Errorf("output = %q, want course title", out.String())
	}
	if !strings.Contains(out.String(), "… 3 4 [5] 6 7 …") {
		t.Errorf("output = %q, want page window", out.String())
	}
}

func Test_formatPageWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{name: "single page", current: 1, total: 1, want: ""},
		{name: "start", current: 1, total: 10, want: "[1] 2 3 …"},
		{name: "middle", current: 5, total: 10, want: "… 3 4 [5] 6 7 …"},
		{name: "end", current: 10, total: 10, want: "… 8 9 [10]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatPageWindow(core.NewPageWindow(tt.current, tt.total))
			if got != tt.want {
				t.Errorf("formatPageWindow() = %q, want %q", got, tt.want)
			}
		})
	}
}
