package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"borrowing": map[string]any{
			"loanPeriodDays": 14,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "BORROWING_LOANPERIODDAYS", want: "borrowing.loanPeriodDays"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestLoanPeriodDays_Default(t *testing.T) {
	cfg := &Config{}
	if got := cfg.LoanPeriodDays(); got != defaultLoanPeriodDays {
		t.Fatalf("LoanPeriodDays() = %d, want %d", got, defaultLoanPeriodDays)
	}

	cfg.Borrowing = &BorrowingConfig{LoanPeriodDays: 21}
	if got := cfg.LoanPeriodDays(); got != 21 {
		t.Fatalf("LoanPeriodDays() = %d, want 21", got)
	}
}
