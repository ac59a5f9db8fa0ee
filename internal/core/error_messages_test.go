package core

import (
	"errors"
	"testing"

	"github.com/chris-tela/nuzlocke-tracker-sub000/internal/save"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "unrecognized save maps correctly",
			err:         save.ErrNotRecognized,
			wantCode:    "SAV001",
			wantMessage: "This file is not a supported save format",
		},
		{
			name:        "truncated save maps correctly",
			err:         &save.TruncatedError{Variant: save.VariantGen3, Size: 4096, Want: 131072},
			wantCode:    "SAV002",
			wantMessage: "The save file is incomplete",
		},
		{
			name:        "checksum failure maps correctly",
			err:         &save.ChecksumError{Variant: save.VariantGen1, Section: "save body", Want: 1, Got: 2},
			wantCode:    "SAV003",
			wantMessage: "The save file failed an integrity check",
		},
		{
			name:        "unknown species maps correctly",
			err:         &save.UnknownSpeciesError{Variant: save.VariantGen1, Slot: 0, Index: 0x1F},
			wantCode:    "SAV004",
			wantMessage: "The save contains a creature this tracker does not know",
		},
		{
			name:        "field range maps correctly",
			err:         &save.FieldRangeError{Variant: save.VariantGen2, Field: "level", Value: 120},
			wantCode:    "SAV005",
			wantMessage: "The save contains an invalid value",
		},
		{
			name: "game mismatch maps correctly",
			err: &save.GameMismatchError{
				Target: "Gold", Game: "Red/Blue/Yellow",
				Compatible: []string{"Red", "Blue", "Yellow"},
			},
			wantCode:    "SAV006",
			wantMessage: "This save belongs to a different game than the run tracks",
		},
		{
			name:        "run not found maps correctly",
			err:         ErrRunNotFound,
			wantCode:    "RUN001",
			wantMessage: "Run not found",
		},
		{
			name:        "duplicate key maps correctly",
			err:         errors.New("pq: duplicate key value violates unique constraint"),
			wantCode:    "DB001",
			wantMessage: "A record with this ID already exists",
		},
		{
			name:        "foreign key maps correctly",
			err:         errors.New("violates foreign key constraint"),
			wantCode:    "DB003",
			wantMessage: "Referenced record does not exist",
		},
		{
			name:        "connection refused maps correctly",
			err:         errors.New("dial tcp: connection refused"),
			wantCode:    "DB004",
			wantMessage: "Unable to connect to database",
		},
		{
			name:        "oversized upload maps correctly",
			err:         errors.New("http: request body too large"),
			wantCode:    "FILE001",
			wantMessage: "File exceeds the maximum size limit",
		},
		{
			name:        "timeout maps correctly",
			err:         errors.New("context deadline exceeded"),
			wantCode:    "REQ002",
			wantMessage: "Request timed out",
		},
		{
			name:        "rate limit maps correctly",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("DUPLICATE KEY value violates"),
			wantCode:    "DB001",
			wantMessage: "A record with this ID already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(save.ErrNotRecognized)

	expected := "This file is not a supported save format (Code: SAV001). Upload a raw .sav file from a Generation 1-5 game"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error is not user facing",
			err:  nil,
			want: false,
		},
		{
			name: "known error is user facing",
			err:  save.ErrNotRecognized,
			want: true,
		},
		{
			name: "unknown error is not user facing",
			err:  errors.New("random internal error xyz"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUserFacing(tt.err)
			if got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}
