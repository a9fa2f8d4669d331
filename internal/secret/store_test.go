package secret

import (
	stderrors "errors"
	"testing"

	"github.com/zx06/picred/internal/errors"
)

type fakePrompter struct {
	username string
	password string
	err      error
	asked    []string
}

func (f *fakePrompter) PromptUsername(label string) (string, error) {
	f.asked = append(f.asked, label)
	return f.username, f.err
}

func (f *fakePrompter) PromptPassword(label string) (string, error) {
	f.asked = append(f.asked, label)
	return f.password, f.err
}

func TestStore(t *testing.T) {
	kr := newMockKeyring()
	if xe := Store("test", Credentials{Username: "alice", Password: "pw"}, Options{Keyring: kr}); xe != nil {
		t.Fatalf("Store failed: %v", xe)
	}
	if got := kr.data[DefaultService]["test_user"]; got != "alice" {
		t.Errorf("test_user=%q", got)
	}
	if got := kr.data[DefaultService]["test_pass"]; got != "pw" {
		t.Errorf("test_pass=%q", got)
	}
}

func TestStore_Incomplete(t *testing.T) {
	kr := newMockKeyring()
	for _, c := range []Credentials{{}, {Username: "alice"}, {Password: "pw"}} {
		xe := Store("prod", c, Options{Keyring: kr})
		if xe == nil || xe.Code != errors.CodeCfgInvalid {
			t.Errorf("Store(%+v): expected %s, got %v", c, errors.CodeCfgInvalid, xe)
		}
	}
	if len(kr.data) != 0 {
		t.Errorf("nothing should be written, got %v", kr.data)
	}
}

func TestStore_KeyringFailure(t *testing.T) {
	xe := Store("prod", Credentials{Username: "u", Password: "p"}, Options{Keyring: brokenKeyring{err: stderrors.New("locked")}})
	if xe == nil || xe.Code != errors.CodeKeyringFailed {
		t.Fatalf("expected %s, got %v", errors.CodeKeyringFailed, xe)
	}
}

// failingSetKeyring 在第 failOn 次 Set 时失败（failRest 时其后也失败），其余操作委托给 mockKeyring
type failingSetKeyring struct {
	*mockKeyring
	failOn   int
	failRest bool
	sets     int
}

func (f *failingSetKeyring) Set(service, account, value string) error {
	f.sets++
	if f.sets == f.failOn || (f.failRest && f.sets > f.failOn) {
		return stderrors.New("keyring locked")
	}
	return f.mockKeyring.Set(service, account, value)
}

func TestStore_PasswordWriteFailureRestoresUsername(t *testing.T) {
	kr := &failingSetKeyring{mockKeyring: newMockKeyring(), failOn: 2}
	kr.set(DefaultService, "prod_user", "old-user")
	kr.set(DefaultService, "prod_pass", "old-pass")

	xe := Store("prod", Credentials{Username: "new-user", Password: "new-pass"}, Options{Keyring: kr})
	if xe == nil || xe.Code != errors.CodeKeyringFailed {
		t.Fatalf("expected %s, got %v", errors.CodeKeyringFailed, xe)
	}
	if xe.Details["rolled_back"] != true {
		t.Errorf("details=%v", xe.Details)
	}
	if got := kr.data[DefaultService]["prod_user"]; got != "old-user" {
		t.Errorf("prod_user=%q, want old-user restored", got)
	}
	if got := kr.data[DefaultService]["prod_pass"]; got != "old-pass" {
		t.Errorf("prod_pass=%q, want old-pass", got)
	}
}

func TestStore_PasswordWriteFailureRemovesNewUsername(t *testing.T) {
	kr := &failingSetKeyring{mockKeyring: newMockKeyring(), failOn: 2}

	xe := Store("prod", Credentials{Username: "new-user", Password: "new-pass"}, Options{Keyring: kr})
	if xe == nil || xe.Code != errors.CodeKeyringFailed {
		t.Fatalf("expected %s, got %v", errors.CodeKeyringFailed, xe)
	}
	if xe.Details["rolled_back"] != true {
		t.Errorf("details=%v", xe.Details)
	}
	if _, ok := kr.data[DefaultService]["prod_user"]; ok {
		t.Error("prod_user should be removed when no previous username existed")
	}
}

func TestStore_RollbackFailureReported(t *testing.T) {
	// 第 2 次（密码）与第 3 次（恢复用户名）都失败
	kr := &failingSetKeyring{mockKeyring: newMockKeyring(), failOn: 2, failRest: true}
	kr.set(DefaultService, "prod_user", "old-user")

	xe := Store("prod", Credentials{Username: "new-user", Password: "new-pass"}, Options{Keyring: kr})
	if xe == nil || xe.Details["rolled_back"] != false {
		t.Fatalf("expected rolled_back=false, got %v", xe)
	}
}

func TestStoreThenResolve(t *testing.T) {
	kr := newMockKeyring()
	opts := Options{Service: "svc", Keyring: kr, Getenv: envMap(nil)}
	if xe := Store("prod", Credentials{Username: "alice", Password: "pw"}, opts); xe != nil {
		t.Fatal(xe)
	}
	r, xe := Resolve("prod", opts)
	if xe != nil {
		t.Fatal(xe)
	}
	if r.Username != "alice" || r.Password != "pw" {
		t.Fatalf("got %+v", r.Credentials)
	}
}

func TestSetBasicAuth_Prompts(t *testing.T) {
	kr := newMockKeyring()
	p := &fakePrompter{username: " alice\n", password: "pw"}
	if xe := SetBasicAuth("prod", Credentials{}, Options{Keyring: kr, Prompter: p}); xe != nil {
		t.Fatalf("SetBasicAuth failed: %v", xe)
	}
	if len(p.asked) != 2 {
		t.Errorf("expected 2 prompts, got %v", p.asked)
	}
	if got := kr.data[DefaultService]["prod_user"]; got != "alice" {
		t.Errorf("username should be trimmed, got %q", got)
	}
}

func TestSetBasicAuth_PresetSkipsPrompt(t *testing.T) {
	kr := newMockKeyring()
	p := &fakePrompter{password: "pw"}
	if xe := SetBasicAuth("prod", Credentials{Username: "alice"}, Options{Keyring: kr, Prompter: p}); xe != nil {
		t.Fatal(xe)
	}
	if len(p.asked) != 1 || p.asked[0] != "PI Password: " {
		t.Errorf("expected only password prompt, got %v", p.asked)
	}

	// 全部给出时无需 Prompter
	if xe := SetBasicAuth("test", Credentials{Username: "bob", Password: "x"}, Options{Keyring: kr}); xe != nil {
		t.Fatal(xe)
	}
}

func TestSetBasicAuth_PromptErrors(t *testing.T) {
	kr := newMockKeyring()

	xe := SetBasicAuth("prod", Credentials{}, Options{Keyring: kr})
	if xe == nil || xe.Code != errors.CodePromptFailed {
		t.Fatalf("no prompter: expected %s, got %v", errors.CodePromptFailed, xe)
	}

	xe = SetBasicAuth("prod", Credentials{}, Options{Keyring: kr, Prompter: &fakePrompter{err: stderrors.New("EOF")}})
	if xe == nil || xe.Code != errors.CodePromptFailed {
		t.Fatalf("prompt error: expected %s, got %v", errors.CodePromptFailed, xe)
	}

	// 空用户名
	xe = SetBasicAuth("prod", Credentials{}, Options{Keyring: kr, Prompter: &fakePrompter{username: "   ", password: "pw"}})
	if xe == nil || xe.Code != errors.CodeCfgInvalid {
		t.Fatalf("blank username: expected %s, got %v", errors.CodeCfgInvalid, xe)
	}
}

func TestDelete(t *testing.T) {
	kr := newMockKeyring()
	opts := Options{Keyring: kr, Getenv: envMap(nil)}
	if xe := Store("prod", Credentials{Username: "alice", Password: "pw"}, opts); xe != nil {
		t.Fatal(xe)
	}
	if xe := Delete("prod", opts); xe != nil {
		t.Fatalf("Delete failed: %v", xe)
	}
	if _, xe := Resolve("prod", opts); xe == nil || xe.Code != errors.CodeCredentialsUnavailable {
		t.Fatalf("expected credentials unavailable after delete, got %v", xe)
	}
	// 幂等
	if xe := Delete("prod", opts); xe != nil {
		t.Fatalf("second Delete should succeed, got %v", xe)
	}
}

func TestDelete_PartialEntries(t *testing.T) {
	kr := newMockKeyring()
	kr.set(DefaultService, "prod_pass", "pw")
	if xe := Delete("prod", Options{Keyring: kr}); xe != nil {
		t.Fatalf("Delete failed: %v", xe)
	}
	if _, ok := kr.data[DefaultService]["prod_pass"]; ok {
		t.Error("prod_pass should be removed")
	}
}

func TestDelete_KeyringFailure(t *testing.T) {
	xe := Delete("prod", Options{Keyring: brokenKeyring{err: stderrors.New("locked")}})
	if xe == nil || xe.Code != errors.CodeKeyringFailed {
		t.Fatalf("expected %s, got %v", errors.CodeKeyringFailed, xe)
	}
}
