package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-humanbench/internal/core"
)

type stubGame struct {
	id    string
	title string
	rng   core.Rand
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Description() string { return "stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Result() core.GameResult { return core.GameResult{GameID: g.id} }

// unregister removes a game so tests can reuse IDs.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}

func registerStub(t *testing.T, id, title string, order int) {
	t.Helper()
	Register(id, order, func(deps Deps) Game {
		return &stubGame{id: id, title: title, rng: deps.Rand}
	})
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	registerStub(t, "stub-a", "Stub A", 1)

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false after Register")
	}

	rng := core.NewRand(7)
	g, err := Create("stub-a", Deps{Rand: rng})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.Title() != "Stub A" {
		t.Errorf("Title() = %q, want %q", g.Title(), "Stub A")
	}
	if g.(*stubGame).rng != rng {
		t.Error("Create should pass deps to the factory")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game", Deps{})
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerStub(t, "stub-dup", "Dup", 1)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", 2, func(Deps) Game { return &stubGame{id: "stub-dup"} })
}

func TestListSortedByOrder(t *testing.T) {
	registerStub(t, "stub-z", "Z", 10)
	registerStub(t, "stub-y", "Y", 11)
	registerStub(t, "stub-x", "X", 11)

	var got []string
	for _, info := range List() {
		switch info.ID {
		case "stub-z", "stub-y", "stub-x":
			got = append(got, info.ID)
		}
	}

	want := []string{"stub-z", "stub-x", "stub-y"}
	if len(got) != len(want) {
		t.Fatalf("List() ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
