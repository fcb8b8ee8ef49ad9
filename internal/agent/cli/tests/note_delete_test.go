package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/agent/config"
	serr "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/errors"
)

func TestNoteDelete_Success_PrintsDeletedID(t *testing.T) {
	withDeps(t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/notes/n1", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Fatalf("expected DELETE, got %s", r.Method)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer access-1" {
				t.Fatalf("expected Authorization Bearer access-1, got %q", auth)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"note deleted"}`))
		})

		srv := httptest.NewTLSServer(mux)
		defer srv.Close()

		app := &cli.App{
			ServerURL: srv.URL,
			CredsPath: filepath.Join(t.TempDir(), "creds.json"),
			Creds:     &config.Credentials{AccessToken: "access-1"},
		}

		cmd := cli.NoteDelete(app)
		cmd.SetArgs([]string{"n1"})

		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		if !strings.Contains(out.String(), "deleted note n1") {
			t.Fatalf("unexpected output: %s", out.String())
		}
	})
}

func TestNoteDelete_NotFound_PropagatesError(t *testing.T) {
	withDeps(t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/notes/n1", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(serr.ErrNotFound.Error()))
		})

		srv := httptest.NewTLSServer(mux)
		defer srv.Close()

		app := &cli.App{
			ServerURL: srv.URL,
			CredsPath: filepath.Join(t.TempDir(), "creds.json"),
			Creds:     &config.Credentials{AccessToken: "access-1"},
		}

		cmd := cli.NoteDelete(app)
		cmd.SetArgs([]string{"n1"})

		err := cmd.Execute()
		if err == nil {
			t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
		}
		if !strings.Contains(err.Error(), serr.ErrNotFound.Error()) {
			t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
		}
	})
}

func TestNoteDelete_NoToken_ReturnsError(t *testing.T) {
	withDeps(t, func() {
		app := &cli.App{
			ServerURL: "https://127.0.0.1:8080",
			CredsPath: filepath.Join(t.TempDir(), "creds.json"),
			Creds:     &config.Credentials{},
		}

		cmd := cli.NoteDelete(app)
		cmd.SetArgs([]string{"n1"})

		err := cmd.Execute()
		if err == nil {
			t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
		}
		if !strings.Contains(err.Error(), "no access_token") {
			t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
		}
	})
}
