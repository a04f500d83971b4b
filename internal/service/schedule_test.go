package service

import "testing"

func TestValidateWindowTimes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid window", start: "10:00", end: "18:00"},
		{name: "end before start", start: "18:00", end: "10:00", wantErr: true},
		{name: "zero length window", start: "12:00", end: "12:00", wantErr: true},
		{name: "bad start format", start: "10", end: "18:00", wantErr: true},
		{name: "bad end format", start: "10:00", end: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWindowTimes(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateWindowTimes(%q, %q) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}
