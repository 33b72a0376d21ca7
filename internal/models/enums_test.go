package models

import (
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{
			name:  "exact match",
			input: "Scheduled",
			want:  StatusScheduled,
		},
		{
			name:  "lowercase input",
			input: "delayed",
			want:  StatusDelayed,
		},
		{
			name:  "uppercase input",
			input: "CANCELLED",
			want:  StatusCancelled,
		},
		{
			name:  "surrounding whitespace",
			input: "  boarding  ",
			want:  StatusBoarding,
		},
		{
			name:    "unknown status",
			input:   "Landed",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !IsValidation(err) {
					t.Errorf("ParseStatus(%q) error = %v, want ValidationError", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRank(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Rank
		wantErr bool
	}{
		{
			name:  "exact captain",
			input: "Captain",
			want:  RankCaptain,
		},
		{
			name:  "lowercase captain",
			input: "captain",
			want:  RankCaptain,
		},
		{
			name:  "lowercase first officer",
			input: "first officer",
			want:  RankFirstOfficer,
		},
		{
			name:  "shouting first officer",
			input: "FIRST OFFICER",
			want:  RankFirstOfficer,
		},
		{
			name:    "unknown rank",
			input:   "Engineer",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRank(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRank(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("ParseRank(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCapitalizeHandlesMultibyteRunes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"émma", "Émma"},
		{"ÉMMA", "Émma"},
		{"scheduled", "Scheduled"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := capitalize(tt.input); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	// A multi-byte leading rune must stay valid UTF-8 through parsing.
	if _, err := ParseStatus("échelon"); err == nil {
		t.Error("ParseStatus(échelon) accepted an unknown status")
	}
}

func TestAllStatuses(t *testing.T) {
	statuses := AllStatuses()
	if len(statuses) != 5 {
		t.Fatalf("AllStatuses() returned %d statuses, want 5", len(statuses))
	}
	if statuses[0] != StatusScheduled {
		t.Errorf("AllStatuses()[0] = %q, want %q", statuses[0], StatusScheduled)
	}
}
