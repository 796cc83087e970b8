package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl":   "http://localhost:3000",
			"userAgent": "tontine",
		},
		"credentialStore": map[string]any{
			"bucketUrl": "mem://",
		},
		"identity": map[string]any{
			"verificationSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "BACKEND_USERAGENT", want: "backend.userAgent"},
		{envKey: "CREDENTIALSTORE_BUCKETURL", want: "credentialStore.bucketUrl"},
		{envKey: "IDENTITY_VERIFICATIONSECRET", want: "identity.verificationSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
