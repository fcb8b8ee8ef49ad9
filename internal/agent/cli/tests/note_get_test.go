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

func TestNoteGet_Success_PrintsNoteWithContent(t *testing.T) {
	withDeps(t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/notes/n1", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Fatalf("expected GET, got %s", r.Method)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id":"n1",
				"title":"Список покупок",
				"content":"хлеб, молоко",
				"created_at":"2026-01-19T12:00:00Z",
				"updated_at":"2026-01-19T13:00:00Z"
			}`))
		})

		srv := httptest.NewTLSServer(mux)
		defer srv.Close()

		app := &cli.App{
			ServerURL: srv.URL,
			CredsPath: filepath.Join(t.TempDir(), "creds.json"),
			Creds:     &config.Credentials{AccessToken: "access-1"},
		}

		cmd := cli.NoteGet(app)
		cmd.SetArgs([]string{"n1"})

		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		got := out.String()
		for _, sub := range []string{"id=n1", "title=Список покупок", "хлеб, молоко"} {
			if !strings.Contains(got, sub) {
				t.Fatalf("expected output to contain %q, got %q", sub, got)
			}
		}
	})
}

func TestNoteGet_Forbidden_PropagatesError(t *testing.T) {
	withDeps(t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/notes/n1", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(serr.ErrForbidden.Error()))
		})

		srv := httptest.NewTLSServer(mux)
		defer srv.Close()

		app := &cli.App{
			ServerURL: srv.URL,
			CredsPath: filepath.Join(t.TempDir(), "creds.json"),
			Creds:     &config.Credentials{AccessToken: "access-1"},
		}

		cmd := cli.NoteGet(app)
		cmd.SetArgs([]string{"n1"})

		err := cmd.Execute()
		if err == nil {
			t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
		}
		if !strings.Contains(err.Error(), serr.ErrForbidden.Error()) {
			t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
		}
	})
}

func TestNoteGet_NoArgs_ReturnsError(t *testing.T) {
	withDeps(t, func() {
		app := &cli.App{
			ServerURL: "https://127.0.0.1:8080",
			CredsPath: filepath.Join(t.TempDir(), "creds.json"),
			Creds:     &config.Credentials{AccessToken: "access-1"},
		}

		cmd := cli.NoteGet(app)
		cmd.SetArgs([]string{})

		if err := cmd.Execute(); err == nil {
			t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
		}
	})
}
