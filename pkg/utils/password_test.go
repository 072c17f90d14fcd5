package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"valid password", "password123"},
		{"empty password", ""},
		{"unicode password", "пароль"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}
			if !strings.HasPrefix(hash, "$argon2id$") {
				t.Errorf("HashPassword() = %q, want $argon2id$ prefix", hash)
			}
		})
	}
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	hash1, _ := HashPassword("same password")
	hash2, _ := HashPassword("same password")

	if hash1 == hash2 {
		t.Error("HashPassword() produced identical hashes for the same password")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
		wantErr  bool
	}{
		{"correct password", "correct horse", hash, true, false},
		{"wrong password", "battery staple", hash, false, false},
		{"malformed hash", "correct horse", "not-a-hash", false, true},
		{"wrong algorithm", "correct horse", "$bcrypt$v=19$m=1,t=1,p=1$abc$def", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPassword(tt.password, tt.hash)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("VerifyPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}
