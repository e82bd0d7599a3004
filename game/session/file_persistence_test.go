package session

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/PhoneMk/treasure-hunt/game/engine"
	"github.com/PhoneMk/treasure-hunt/game/service"
)

// stubConfigManager serves the test config under a fixed ID
type stubConfigManager struct {
	config *engine.GameConfig
}

func (m *stubConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	if name == "test_map" {
		return m.config, nil
	}
	return nil, fmt.Errorf("configuration not found: %s", name)
}

func (m *stubConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	return []*service.ConfigInfo{
		{ConfigID: "test_map", Name: m.config.Name},
	}, nil
}

func (m *stubConfigManager) GetDefault() *engine.GameConfig {
	return m.config
}

func (m *stubConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	return nil
}

func newTestPersistence(t *testing.T) (*FilePersistence, string) {
	t.Helper()
	dir := t.TempDir()
	fp, err := NewFilePersistence(dir, &stubConfigManager{config: createTestConfig()})
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}
	return fp, dir
}

func TestFilePersistence_SaveAndLoad(t *testing.T) {
	fp, dir := newTestPersistence(t)

	session, err := buildSession("abcd", createTestConfig())
	if err != nil {
		t.Fatalf("Failed to build session: %v", err)
	}

	// Make some progress so the loaded state is distinguishable
	session.Engine.Move("right")
	session.Engine.Move("down")
	session.Plan = []engine.Position{{X: 2, Y: 2}}

	if err := fp.Save(session); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "abcd.json")); err != nil {
		t.Fatalf("Expected session file on disk: %v", err)
	}

	loaded, err := fp.Load("abcd")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if loaded.ID != "abcd" {
		t.Errorf("Expected session ID 'abcd', got '%s'", loaded.ID)
	}

	state := loaded.Engine.GetState()
	if state.PlayerPos != (engine.Position{X: 1, Y: 0}) {
		t.Errorf("Expected restored position (1,0), got (%d,%d)", state.PlayerPos.X, state.PlayerPos.Y)
	}
	if state.Energy != 9 {
		t.Errorf("Expected restored energy 9, got %d", state.Energy)
	}
	if len(state.MoveHistory) != 2 {
		t.Errorf("Expected 2 history entries restored, got %d", len(state.MoveHistory))
	}
	if len(loaded.Plan) != 1 || loaded.Plan[0] != (engine.Position{X: 2, Y: 2}) {
		t.Errorf("Expected restored plan [(2,2)], got %v", loaded.Plan)
	}
	if loaded.Searcher == nil {
		t.Error("Expected searcher rebuilt on load")
	}
}

func TestFilePersistence_LoadMissing(t *testing.T) {
	fp, _ := newTestPersistence(t)

	if _, err := fp.Load("nope"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_Delete(t *testing.T) {
	fp, _ := newTestPersistence(t)

	session, _ := buildSession("dead", createTestConfig())
	fp.Save(session)

	if !fp.Exists("dead") {
		t.Fatal("Expected session file to exist before delete")
	}
	if err := fp.Delete("dead"); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if fp.Exists("dead") {
		t.Error("Expected session file removed")
	}
	if err := fp.Delete("dead"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound on double delete, got %v", err)
	}
}

func TestFilePersistence_ListAll(t *testing.T) {
	fp, _ := newTestPersistence(t)

	for _, id := range []string{"aa01", "aa02", "aa03"} {
		session, _ := buildSession(id, createTestConfig())
		if err := fp.Save(session); err != nil {
			t.Fatalf("Failed to save session %s: %v", id, err)
		}
	}

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(ids) != 3 {
		t.Errorf("Expected 3 persisted sessions, got %d", len(ids))
	}
}

func TestManager_PersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	configs := &stubConfigManager{config: createTestConfig()}
	fp, err := NewFilePersistence(dir, configs)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	manager := NewManagerWithPersistence(fp)
	session, err := manager.Create("rt01", createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	session.Engine.Move("down")
	if err := manager.Save("rt01"); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	// A fresh manager sees only the persisted copy
	restarted := NewManagerWithPersistence(fp)
	if err := restarted.LoadPersistedSessions(); err != nil {
		t.Fatalf("Failed to load persisted sessions: %v", err)
	}
	if restarted.Count() != 1 {
		t.Fatalf("Expected 1 restored session, got %d", restarted.Count())
	}

	loaded, err := restarted.Get("rt01")
	if err != nil {
		t.Fatalf("Failed to get restored session: %v", err)
	}
	if loaded.Engine.GetState().PlayerPos != (engine.Position{X: 0, Y: 1}) {
		t.Error("Expected restored session to keep its progress")
	}
}
