package dao

import (
	"context"
	"testing"
	"time"

	"maxops/maxops/sources/psql/models"
	"maxops/maxops/types"
	"maxops/maxops/utils/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- Helpers ---
func setupTestDB(t *testing.T) *gorm.DB {
	logging.InitLogger()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.ChatMessage{}, &models.Playbook{}, &models.UserPreference{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := db.Create(&models.User{ID: 1, Username: "op", Email: "op@plant.test"}).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return db
}

// --- Playbook DAO ---
func TestPlaybookUpsertConverges(t *testing.T) {
	dao := NewPlaybookDAO(setupTestDB(t))
	ctx := context.Background()

	pb := models.Playbook{Title: "Energy Management", Category: "facilities", Content: "v1"}
	created, err := dao.UpsertByTitle(ctx, &pb)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if !created {
		t.Errorf("first upsert should create")
	}

	// Second run with changed content updates the same row.
	pb2 := models.Playbook{Title: "Energy Management", Category: "facilities", Content: "v2"}
	created, err = dao.UpsertByTitle(ctx, &pb2)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if created {
		t.Errorf("second upsert should update, not create")
	}
	if pb2.ID != pb.ID {
		t.Errorf("upsert changed row identity: %v vs %v", pb2.ID, pb.ID)
	}

	all, err := dao.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 playbook, got %d", len(all))
	}
	if all[0].Content != "v2" {
		t.Errorf("expected updated content, got %q", all[0].Content)
	}
}

func TestPlaybookSearch(t *testing.T) {
	dao := NewPlaybookDAO(setupTestDB(t))
	ctx := context.Background()

	seed := []models.Playbook{
		{Title: "Scheduling Preferences for Phoenix Brewery Plant", Tags: "scheduling,brewery", Content: "fermentation capacity"},
		{Title: "Energy Management for Manufacturing Facilities", Tags: "energy,utilities", Content: "demand spikes"},
	}
	for i := range seed {
		if _, err := dao.UpsertByTitle(ctx, &seed[i]); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	got, err := dao.Search(ctx, "brewery schedule", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Tags != "scheduling,brewery" {
		t.Errorf("matched wrong playbook: %q", got[0].Title)
	}

	// Short words are ignored as terms; an all-short query matches nothing
	// rather than everything.
	for _, q := range []string{"an of it", "job 123"} {
		got, err = dao.Search(ctx, q, 5)
		if err != nil {
			t.Fatalf("search %q failed: %v", q, err)
		}
		if len(got) != 0 {
			t.Errorf("query %q: expected no matches, got %d", q, len(got))
		}
	}
}

// --- ChatMessage DAO ---
func TestChatMessageHistoryOrder(t *testing.T) {
	dao := NewChatMessageDAO(setupTestDB(t))
	ctx := context.Background()
	session := dao.CreateSessionID()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		msg := models.ChatMessage{
			SessionID: session,
			UserID:    1,
			Role:      types.RoleUser,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := dao.SaveMessage(ctx, &msg); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	history, err := dao.GetHistoryBySession(ctx, session)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(history))
	}
	if history[0].Content != "first" || history[2].Content != "third" {
		t.Errorf("history out of order: %v", history)
	}

	recent, err := dao.GetRecentBySession(ctx, session, 2)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent messages, got %d", len(recent))
	}
	// Chronological order even though fetched newest-first.
	if recent[0].Content != "second" || recent[1].Content != "third" {
		t.Errorf("recent window wrong: %q, %q", recent[0].Content, recent[1].Content)
	}
}

func TestChatMessageSessionIsolation(t *testing.T) {
	dao := NewChatMessageDAO(setupTestDB(t))
	ctx := context.Background()
	a, b := dao.CreateSessionID(), dao.CreateSessionID()

	for _, s := range []string{a, b} {
		msg := models.ChatMessage{SessionID: s, UserID: 1, Role: types.RoleUser, Content: "hi from " + s}
		if err := dao.SaveMessage(ctx, &msg); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	history, err := dao.GetHistoryBySession(ctx, a)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 message in session a, got %d", len(history))
	}
}

// --- Preference DAO ---
func TestPreferenceGetCreatesDefaults(t *testing.T) {
	dao := NewPreferenceDAO(setupTestDB(t))
	ctx := context.Background()

	pref, err := dao.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !pref.SoundEnabled {
		t.Errorf("default sound should be enabled")
	}
	if pref.VoiceSpeed != 1 {
		t.Errorf("default voice speed should be 1, got %v", pref.VoiceSpeed)
	}
}

func TestPreferencePatchAppliesOnlySetFields(t *testing.T) {
	dao := NewPreferenceDAO(setupTestDB(t))
	ctx := context.Background()

	speed := 1.5
	pref, err := dao.Patch(ctx, 1, types.PreferencePatch{VoiceSpeed: &speed})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if pref.VoiceSpeed != 1.5 {
		t.Errorf("voice speed not applied: %v", pref.VoiceSpeed)
	}
	if !pref.SoundEnabled {
		t.Errorf("unpatched field must keep its value")
	}

	off := false
	pref, err = dao.Patch(ctx, 1, types.PreferencePatch{SoundEnabled: &off})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if pref.SoundEnabled {
		t.Errorf("sound should be off after patch")
	}
	if pref.VoiceSpeed != 1.5 {
		t.Errorf("earlier patch lost: %v", pref.VoiceSpeed)
	}
}
