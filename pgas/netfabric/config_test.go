package netfabric

import "testing"

func TestDefaultConfigSmuxConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := cfg.smuxConfig(); err != nil {
		t.Fatalf("smuxConfig: %v", err)
	}
}

func TestBlockCryptKnownCiphers(t *testing.T) {
	// null deliberately returns a nil BlockCrypt (no encryption); every
	// other cipher must construct successfully from a stretched key.
	nilOK := map[string]bool{"null": true}
	for name := range cryptMethods {
		cfg := Config{Cipher: name, Key: "correct horse battery staple"}
		block, used := cfg.blockCrypt()
		if used != name {
			t.Fatalf("cipher %s: blockCrypt reported %q", name, used)
		}
		if block == nil && !nilOK[name] {
			t.Fatalf("cipher %s: blockCrypt returned nil BlockCrypt", name)
		}
	}
}

func TestBlockCryptUnknownCipherFallsBackToAES(t *testing.T) {
	cfg := Config{Cipher: "does-not-exist", Key: "k"}
	block, used := cfg.blockCrypt()
	if used != "aes-128" {
		t.Fatalf("used = %q, want aes-128", used)
	}
	if block == nil {
		t.Fatalf("expected non-nil fallback BlockCrypt")
	}
}

func TestBlockCryptEmptyCipherDefaultsToAES(t *testing.T) {
	cfg := Config{Key: "k"}
	_, used := cfg.blockCrypt()
	if used != "aes-128" {
		t.Fatalf("used = %q, want aes-128", used)
	}
}
