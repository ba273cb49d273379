package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())

	// All operations should be safe to call without initialization
	// These should not panic
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayBurst()
	sm.PlayExhaust()
	sm.PlayCrackle()
	sm.SetVolume(0.5)
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies that a disabled config skips speaker setup
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false

	sm := NewSoundManager(cfg)

	err := sm.Initialize()
	if err != nil {
		t.Errorf("Expected disabled initialization to succeed as no-op, got error: %v", err)
	}

	if sm.initialized {
		t.Error("Expected manager to stay uninitialized when audio is disabled")
	}

	// Playback must be a no-op without panicking
	sm.PlayBurst()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())

	// Note: Speaker initialization may fail in CI/test environments without audio devices
	// This is expected behavior - the field should work without audio
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		// Not a test failure - audio is optional
		return
	}

	// If initialization succeeded, cleanup should work
	sm.Cleanup()
}

// TestSoundManagerDoubleInitialization verifies double initialization is safe
func TestSoundManagerDoubleInitialization(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())

	err1 := sm.Initialize()
	if err1 != nil {
		t.Logf("First initialization failed (expected in test environment): %v", err1)
		return
	}

	// Second initialization should be a no-op
	err2 := sm.Initialize()
	if err2 != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err2)
	}

	sm.Cleanup()
}

// TestSoundManagerCleanupWithoutInit verifies cleanup without initialization is safe
func TestSoundManagerCleanupWithoutInit(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())

	// Should not panic
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cleanup panicked without initialization: %v", r)
		}
	}()

	sm.Cleanup()
}

// TestSoundManagerVolumeClamp verifies master volume stays within [0, 1]
func TestSoundManagerVolumeClamp(t *testing.T) {
	cfg := DefaultAudioConfig()
	sm := NewSoundManager(cfg)

	sm.SetVolume(1.5)
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %f", cfg.MasterVolume)
	}

	sm.SetVolume(-0.3)
	if cfg.MasterVolume != 0.0 {
		t.Errorf("Expected volume clamped to 0.0, got %f", cfg.MasterVolume)
	}

	sm.SetVolume(0.65)
	if cfg.MasterVolume != 0.65 {
		t.Errorf("Expected volume 0.65, got %f", cfg.MasterVolume)
	}
}
